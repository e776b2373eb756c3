package domain

import "github.com/shopspring/decimal"

type Product struct {
	ID              int             `json:"product_id"`
	Name            string          `json:"name"`
	Description     string          `json:"description,omitempty"`
	Price           decimal.Decimal `json:"price"`
	DiscountedPrice decimal.Decimal `json:"discounted_price"`
	Image           string          `json:"image,omitempty"`
	Image2          string          `json:"image_2,omitempty"`
	Thumbnail       string          `json:"thumbnail,omitempty"`
	DisplayFlag     int             `json:"display"`
}
