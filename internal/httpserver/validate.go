package httpserver

import (
	"regexp"
	"strings"

	"tshirtshop/internal/apierror"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	cardPattern  = regexp.MustCompile(`^[0-9]{12,20}$`)
)

// checkSignup validates the signup payload field by field and reports
// the first failure.
func checkSignup(req signupRequest) *apierror.Error {
	if strings.TrimSpace(req.Name) == "" {
		return apierror.BadRequest(apierror.CodeFieldInvalid, "The field name is empty.", "name")
	}
	if strings.TrimSpace(req.Email) == "" {
		return apierror.BadRequest(apierror.CodeFieldInvalid, "The field email is empty.", "email")
	}
	if !emailPattern.MatchString(req.Email) {
		return apierror.BadRequest(apierror.CodeFieldInvalid, "The email is invalid.", "email")
	}
	if req.Password == "" {
		return apierror.BadRequest(apierror.CodeFieldInvalid, "The field password is empty.", "password")
	}
	return nil
}

func checkLogin(req loginRequest) *apierror.Error {
	if strings.TrimSpace(req.Email) == "" {
		return apierror.BadRequest(apierror.CodeFieldInvalid, "The field email is empty.", "email")
	}
	if !emailPattern.MatchString(req.Email) {
		return apierror.BadRequest(apierror.CodeFieldInvalid, "The email is invalid.", "email")
	}
	if req.Password == "" {
		return apierror.BadRequest(apierror.CodeFieldInvalid, "The field password is empty.", "password")
	}
	return nil
}

// checkCreditCard accepts plain card numbers of 12 to 20 digits.
func checkCreditCard(number string) *apierror.Error {
	if strings.TrimSpace(number) == "" {
		return apierror.BadRequest(apierror.CodeFieldInvalid, "The field credit_card is empty.", "credit_card")
	}
	if !cardPattern.MatchString(number) {
		return apierror.BadRequest(apierror.CodeFieldInvalid, "The credit card number is invalid.", "credit_card")
	}
	return nil
}
