// Package oauth implements the Google/Facebook authorization-code
// handoff: building the consent URL, exchanging the callback code, and
// fetching the provider profile used to find-or-create a customer.
package oauth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/facebook"
	"golang.org/x/oauth2/google"
)

// ErrProviderFailure covers any provider-side failure: rejected code,
// unreachable userinfo endpoint, or a profile without an email. Callers
// surface it as an authentication failure, never as a created account.
var ErrProviderFailure = errors.New("oauth provider failure")

// Profile is the identity a provider reports for the signed-in user.
type Profile struct {
	Provider string
	Subject  string
	Name     string
	Email    string
}

// Provider wraps one configured OAuth backend.
type Provider struct {
	name        string
	cfg         *oauth2.Config
	userInfoURL string
}

// Config carries the per-provider client credentials.
type Config struct {
	ClientID     string
	ClientSecret string
	// RedirectBase is the externally visible base URL of this server;
	// /auth/<provider>/redirect is appended to it.
	RedirectBase string
}

// NewGoogle configures the Google sign-in provider.
func NewGoogle(c Config) *Provider {
	return &Provider{
		name: "google",
		cfg: &oauth2.Config{
			ClientID:     c.ClientID,
			ClientSecret: c.ClientSecret,
			RedirectURL:  c.RedirectBase + "/auth/google/redirect",
			Scopes:       []string{"openid", "profile", "email"},
			Endpoint:     google.Endpoint,
		},
		userInfoURL: "https://www.googleapis.com/oauth2/v2/userinfo",
	}
}

// NewFacebook configures the Facebook sign-in provider.
func NewFacebook(c Config) *Provider {
	return &Provider{
		name: "facebook",
		cfg: &oauth2.Config{
			ClientID:     c.ClientID,
			ClientSecret: c.ClientSecret,
			RedirectURL:  c.RedirectBase + "/auth/facebook/redirect",
			Scopes:       []string{"public_profile", "email"},
			Endpoint:     facebook.Endpoint,
		},
		userInfoURL: "https://graph.facebook.com/me?fields=id,name,email",
	}
}

// Name identifies the provider in routes and profiles.
func (p *Provider) Name() string {
	return p.name
}

// AuthCodeURL builds the consent URL the client is redirected to.
func (p *Provider) AuthCodeURL(state string) string {
	return p.cfg.AuthCodeURL(state)
}

// Exchange trades the callback code for a token and fetches the user's
// profile from the provider.
func (p *Provider) Exchange(ctx context.Context, code string) (Profile, error) {
	tok, err := p.cfg.Exchange(ctx, code)
	if err != nil {
		return Profile{}, fmt.Errorf("%w: %v", ErrProviderFailure, err)
	}
	return p.fetchProfile(ctx, tok)
}

func (p *Provider) fetchProfile(ctx context.Context, tok *oauth2.Token) (Profile, error) {
	client := p.cfg.Client(ctx, tok)
	resp, err := client.Get(p.userInfoURL)
	if err != nil {
		return Profile{}, fmt.Errorf("%w: %v", ErrProviderFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Profile{}, fmt.Errorf("%w: userinfo status %d", ErrProviderFailure, resp.StatusCode)
	}

	var body struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Profile{}, fmt.Errorf("%w: %v", ErrProviderFailure, err)
	}
	if body.Email == "" {
		return Profile{}, fmt.Errorf("%w: profile has no email", ErrProviderFailure)
	}

	return Profile{
		Provider: p.name,
		Subject:  body.ID,
		Name:     body.Name,
		Email:    body.Email,
	}, nil
}
