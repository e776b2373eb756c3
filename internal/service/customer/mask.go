package customer

import "strings"

// MaskCreditCard replaces every character of a stored card number except
// the last four with 'X'. Values shorter than four characters are fully
// masked.
func MaskCreditCard(number string) string {
	if number == "" {
		return ""
	}
	if len(number) <= 4 {
		if len(number) < 4 {
			return strings.Repeat("X", len(number))
		}
		return number
	}
	return strings.Repeat("X", len(number)-4) + number[len(number)-4:]
}
