package domain

// Customer represents a registered shop account. PasswordHash is nil for
// accounts created through an OAuth provider; such accounts cannot be
// password-authenticated.
type Customer struct {
	ID               int     `json:"customer_id"`
	Name             string  `json:"name"`
	Email            string  `json:"email"`
	PasswordHash     *string `json:"-"`
	CreditCard       string  `json:"credit_card,omitempty"`
	Address1         string  `json:"address_1,omitempty"`
	Address2         string  `json:"address_2,omitempty"`
	City             string  `json:"city,omitempty"`
	Region           string  `json:"region,omitempty"`
	PostalCode       string  `json:"postal_code,omitempty"`
	Country          string  `json:"country,omitempty"`
	ShippingRegionID int     `json:"shipping_region_id"`
	DayPhone         string  `json:"day_phone,omitempty"`
	EvePhone         string  `json:"eve_phone,omitempty"`
	MobPhone         string  `json:"mob_phone,omitempty"`
}

// HasPassword reports whether the account can be password-authenticated.
func (c Customer) HasPassword() bool {
	return c.PasswordHash != nil && *c.PasswordHash != ""
}
