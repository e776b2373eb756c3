package customer

import (
	"context"

	"tshirtshop/internal/domain"
)

// CreateInput carries the fields persisted on signup. PasswordHash is
// nil for OAuth-created accounts.
type CreateInput struct {
	Name         string
	Email        string
	PasswordHash *string
}

// ProfileUpdate is the allow-list of fields the profile endpoint may
// touch. Nil pointers leave the column unchanged.
type ProfileUpdate struct {
	Name         *string
	Email        *string
	PasswordHash *string
	DayPhone     *string
	EvePhone     *string
	MobPhone     *string
}

// AddressUpdate is the allow-list of address fields.
type AddressUpdate struct {
	Address1         *string
	Address2         *string
	City             *string
	Region           *string
	PostalCode       *string
	Country          *string
	ShippingRegionID *int
}

// Repository persists and fetches customers.
type Repository interface {
	Create(ctx context.Context, in CreateInput) (*domain.Customer, error)
	// FindOrCreateByEmail atomically inserts the customer unless a row
	// with the same email exists, returning the resulting row and
	// whether it was created. Used by OAuth sign-ins.
	FindOrCreateByEmail(ctx context.Context, in CreateInput) (*domain.Customer, bool, error)
	GetByEmail(ctx context.Context, email string) (*domain.Customer, error)
	GetByID(ctx context.Context, id int) (*domain.Customer, error)
	UpdateProfile(ctx context.Context, id int, upd ProfileUpdate) (*domain.Customer, error)
	UpdateAddress(ctx context.Context, id int, upd AddressUpdate) (*domain.Customer, error)
	UpdateCreditCard(ctx context.Context, id int, cardNumber string) (*domain.Customer, error)
}
