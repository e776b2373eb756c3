package customer

import (
	"context"
	"errors"
	"strings"

	"tshirtshop/internal/domain"
	custrepo "tshirtshop/internal/repository/customer"
	"tshirtshop/internal/token"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrEmailExists is returned when signup hits an already-registered
	// email. Signup never silently logs the existing account in.
	ErrEmailExists = errors.New("email already exists")
	// ErrEmailNotFound is returned by Login for an unknown email.
	ErrEmailNotFound = errors.New("email not found")
	// ErrInvalidCredentials is returned when the password does not
	// match, including for OAuth-only accounts with no local password.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Service handles customer signup, login, OAuth sign-in and profile
// maintenance.
type Service struct {
	repo   custrepo.Repository
	tokens *token.Manager
}

func New(repo custrepo.Repository, tokens *token.Manager) *Service {
	return &Service{repo: repo, tokens: tokens}
}

// SignupInput captures the fields expected by the signup endpoint.
type SignupInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// OAuthProfile is the identity a provider reports after a successful
// authorization-code exchange.
type OAuthProfile struct {
	Provider string
	Subject  string
	Name     string
	Email    string
}

// ProfileInput mirrors the updatable profile fields. Nil means "leave
// unchanged"; anything outside this allow-list is never persisted.
type ProfileInput struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	DayPhone *string `json:"day_phone"`
	EvePhone *string `json:"eve_phone"`
	MobPhone *string `json:"mob_phone"`
}

// AddressInput mirrors the updatable address fields.
type AddressInput struct {
	Address1         *string `json:"address_1"`
	Address2         *string `json:"address_2"`
	City             *string `json:"city"`
	Region           *string `json:"region"`
	PostalCode       *string `json:"postal_code"`
	Country          *string `json:"country"`
	ShippingRegionID *int    `json:"shipping_region_id"`
}

// Signup registers a new customer and issues a token for it. The unique
// email constraint is the source of truth for duplicates.
func (s *Service) Signup(ctx context.Context, in SignupInput) (*domain.Customer, string, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))
	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}
	hash := string(hashed)

	c, err := s.repo.Create(ctx, custrepo.CreateInput{
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		PasswordHash: &hash,
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, "", ErrEmailExists
		}
		return nil, "", err
	}

	accessToken, err := s.tokens.Issue(c.ID, c.Email)
	if err != nil {
		return nil, "", err
	}
	return c, accessToken, nil
}

// Login validates credentials and issues a token. The token subject is
// taken from the looked-up record, never from request state.
func (s *Service) Login(ctx context.Context, email, password string) (*domain.Customer, string, error) {
	c, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", ErrEmailNotFound
		}
		return nil, "", err
	}
	if !c.HasPassword() {
		// OAuth-only account; there is no hash to compare against.
		return nil, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*c.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	accessToken, err := s.tokens.Issue(c.ID, c.Email)
	if err != nil {
		return nil, "", err
	}
	return c, accessToken, nil
}

// OAuthLogin finds or creates the customer matching the provider
// profile's primary email and issues a token. Created accounts carry no
// local password and cannot be password-authenticated afterwards.
func (s *Service) OAuthLogin(ctx context.Context, profile OAuthProfile) (*domain.Customer, string, error) {
	email := strings.TrimSpace(strings.ToLower(profile.Email))
	if email == "" {
		return nil, "", ErrInvalidCredentials
	}
	c, _, err := s.repo.FindOrCreateByEmail(ctx, custrepo.CreateInput{
		Name:         profile.Name,
		Email:        email,
		PasswordHash: nil,
	})
	if err != nil {
		return nil, "", err
	}

	accessToken, err := s.tokens.Issue(c.ID, c.Email)
	if err != nil {
		return nil, "", err
	}
	return c, accessToken, nil
}

// GetProfile returns the customer for a verified token subject.
func (s *Service) GetProfile(ctx context.Context, customerID int) (*domain.Customer, error) {
	return s.repo.GetByID(ctx, customerID)
}

// UpdateProfile applies a partial update restricted to name, email,
// password and phone fields.
func (s *Service) UpdateProfile(ctx context.Context, customerID int, in ProfileInput) (*domain.Customer, error) {
	upd := custrepo.ProfileUpdate{
		Name:     in.Name,
		DayPhone: in.DayPhone,
		EvePhone: in.EvePhone,
		MobPhone: in.MobPhone,
	}
	if in.Email != nil {
		email := strings.TrimSpace(strings.ToLower(*in.Email))
		upd.Email = &email
	}
	if in.Password != nil && *in.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		hash := string(hashed)
		upd.PasswordHash = &hash
	}
	return s.repo.UpdateProfile(ctx, customerID, upd)
}

// UpdateAddress applies a partial update restricted to address fields.
func (s *Service) UpdateAddress(ctx context.Context, customerID int, in AddressInput) (*domain.Customer, error) {
	return s.repo.UpdateAddress(ctx, customerID, custrepo.AddressUpdate{
		Address1:         in.Address1,
		Address2:         in.Address2,
		City:             in.City,
		Region:           in.Region,
		PostalCode:       in.PostalCode,
		Country:          in.Country,
		ShippingRegionID: in.ShippingRegionID,
	})
}

// UpdateCreditCard stores the card number. Masking happens only at the
// response boundary.
func (s *Service) UpdateCreditCard(ctx context.Context, customerID int, cardNumber string) (*domain.Customer, error) {
	return s.repo.UpdateCreditCard(ctx, customerID, cardNumber)
}
