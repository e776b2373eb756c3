package customer

import (
	"context"
	"strings"
	"testing"
	"time"

	"tshirtshop/internal/domain"
	custrepo "tshirtshop/internal/repository/customer"
	"tshirtshop/internal/token"
)

// memoryRepo is a lightweight in-memory customer repository for tests.
type memoryRepo struct {
	nextID  int
	byEmail map[string]*domain.Customer
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{nextID: 1, byEmail: make(map[string]*domain.Customer)}
}

func (r *memoryRepo) Create(_ context.Context, in custrepo.CreateInput) (*domain.Customer, error) {
	if _, exists := r.byEmail[in.Email]; exists {
		return nil, domain.ErrAlreadyExists
	}
	c := &domain.Customer{ID: r.nextID, Name: in.Name, Email: in.Email, PasswordHash: in.PasswordHash}
	r.nextID++
	r.byEmail[in.Email] = c
	clone := *c
	return &clone, nil
}

func (r *memoryRepo) FindOrCreateByEmail(ctx context.Context, in custrepo.CreateInput) (*domain.Customer, bool, error) {
	if c, exists := r.byEmail[in.Email]; exists {
		clone := *c
		return &clone, false, nil
	}
	c, err := r.Create(ctx, in)
	return c, true, err
}

func (r *memoryRepo) GetByEmail(_ context.Context, email string) (*domain.Customer, error) {
	if c, ok := r.byEmail[strings.ToLower(email)]; ok {
		clone := *c
		return &clone, nil
	}
	return nil, domain.ErrNotFound
}

func (r *memoryRepo) GetByID(_ context.Context, id int) (*domain.Customer, error) {
	for _, c := range r.byEmail {
		if c.ID == id {
			clone := *c
			return &clone, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memoryRepo) UpdateProfile(ctx context.Context, id int, upd custrepo.ProfileUpdate) (*domain.Customer, error) {
	for _, c := range r.byEmail {
		if c.ID != id {
			continue
		}
		if upd.Name != nil {
			c.Name = *upd.Name
		}
		if upd.Email != nil && *upd.Email != c.Email {
			delete(r.byEmail, c.Email)
			c.Email = *upd.Email
			r.byEmail[c.Email] = c
		}
		if upd.PasswordHash != nil {
			c.PasswordHash = upd.PasswordHash
		}
		if upd.DayPhone != nil {
			c.DayPhone = *upd.DayPhone
		}
		if upd.EvePhone != nil {
			c.EvePhone = *upd.EvePhone
		}
		if upd.MobPhone != nil {
			c.MobPhone = *upd.MobPhone
		}
		clone := *c
		return &clone, nil
	}
	return nil, domain.ErrNotFound
}

func (r *memoryRepo) UpdateAddress(_ context.Context, id int, upd custrepo.AddressUpdate) (*domain.Customer, error) {
	for _, c := range r.byEmail {
		if c.ID != id {
			continue
		}
		if upd.Address1 != nil {
			c.Address1 = *upd.Address1
		}
		if upd.City != nil {
			c.City = *upd.City
		}
		if upd.Country != nil {
			c.Country = *upd.Country
		}
		clone := *c
		return &clone, nil
	}
	return nil, domain.ErrNotFound
}

func (r *memoryRepo) UpdateCreditCard(_ context.Context, id int, cardNumber string) (*domain.Customer, error) {
	for _, c := range r.byEmail {
		if c.ID == id {
			c.CreditCard = cardNumber
			clone := *c
			return &clone, nil
		}
	}
	return nil, domain.ErrNotFound
}

func newTestService() (*Service, *memoryRepo, *token.Manager) {
	repo := newMemoryRepo()
	tokens := token.NewManager("test-secret", 24*time.Hour)
	return New(repo, tokens), repo, tokens
}

func TestSignup_CreatesCustomerAndToken(t *testing.T) {
	svc, repo, tokens := newTestService()
	ctx := context.Background()

	c, accessToken, err := svc.Signup(ctx, SignupInput{Name: "Test User", Email: "User@Example.com", Password: "secret1"})
	if err != nil {
		t.Fatalf("signup returned error: %v", err)
	}
	if c.Email != "user@example.com" {
		t.Fatalf("expected lowercased email, got %q", c.Email)
	}
	if len(repo.byEmail) != 1 {
		t.Fatalf("expected exactly one stored customer, got %d", len(repo.byEmail))
	}

	claims, err := tokens.Verify(accessToken)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if claims.CustomerID != c.ID {
		t.Fatalf("token subject %d does not match customer %d", claims.CustomerID, c.ID)
	}
}

func TestSignup_DuplicateEmailConflicts(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()

	if _, _, err := svc.Signup(ctx, SignupInput{Name: "A", Email: "dup@example.com", Password: "pw1"}); err != nil {
		t.Fatalf("first signup failed: %v", err)
	}
	if _, _, err := svc.Signup(ctx, SignupInput{Name: "B", Email: "dup@example.com", Password: "pw2"}); err != ErrEmailExists {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}
	if len(repo.byEmail) != 1 {
		t.Fatalf("duplicate signup created a second record")
	}
}

func TestLogin_Succeeds(t *testing.T) {
	svc, _, tokens := newTestService()
	ctx := context.Background()

	created, _, err := svc.Signup(ctx, SignupInput{Name: "L", Email: "login@example.com", Password: "hunter2"})
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	c, accessToken, err := svc.Login(ctx, "login@example.com", "hunter2")
	if err != nil {
		t.Fatalf("login returned error: %v", err)
	}
	if c.ID != created.ID {
		t.Fatalf("login returned wrong customer")
	}
	claims, err := tokens.Verify(accessToken)
	if err != nil {
		t.Fatalf("login token does not verify: %v", err)
	}
	if claims.CustomerID != created.ID || claims.Email != created.Email {
		t.Fatalf("claims %+v do not match looked-up record", claims)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	if _, _, err := svc.Signup(ctx, SignupInput{Name: "W", Email: "w@example.com", Password: "right"}); err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	if _, accessToken, err := svc.Login(ctx, "w@example.com", "wrong"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v (token=%q)", err, accessToken)
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc, _, _ := newTestService()
	if _, _, err := svc.Login(context.Background(), "ghost@example.com", "x"); err != ErrEmailNotFound {
		t.Fatalf("expected ErrEmailNotFound, got %v", err)
	}
}

func TestOAuthLogin_CreatesThenFinds(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()

	profile := OAuthProfile{Provider: "google", Subject: "sub-123", Name: "O Auth", Email: "oauth@example.com"}
	first, _, err := svc.OAuthLogin(ctx, profile)
	if err != nil {
		t.Fatalf("first oauth login failed: %v", err)
	}
	if first.HasPassword() {
		t.Fatalf("oauth-created account must not carry a local password")
	}

	second, _, err := svc.OAuthLogin(ctx, profile)
	if err != nil {
		t.Fatalf("second oauth login failed: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("second oauth login created a new account")
	}
	if len(repo.byEmail) != 1 {
		t.Fatalf("expected one stored customer, got %d", len(repo.byEmail))
	}

	// The oauth-only account cannot be password-authenticated.
	if _, _, err := svc.Login(ctx, "oauth@example.com", "sub-123"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for oauth-only account, got %v", err)
	}
}

func TestMaskCreditCard(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"1234", "1234"},
		{"378282246310005", "XXXXXXXXXXX0005"},
		{"4012888888881881", "XXXXXXXXXXXX1881"},
	}
	for _, tc := range cases {
		if got := MaskCreditCard(tc.in); got != tc.want {
			t.Fatalf("MaskCreditCard(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
