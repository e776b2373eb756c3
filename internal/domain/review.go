package domain

import "time"

// Review is unique per (customer_id, product_id); a later review for the
// same pair replaces the earlier one.
type Review struct {
	ID         int       `json:"review_id"`
	CustomerID int       `json:"customer_id"`
	ProductID  int       `json:"product_id"`
	Review     string    `json:"review"`
	Rating     int       `json:"rating"`
	CreatedOn  time.Time `json:"created_on"`
}
