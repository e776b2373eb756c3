package httpserver

import (
	"crypto/rand"
	"encoding/base64"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"tshirtshop/internal/apierror"
	"tshirtshop/internal/domain"
	customersvc "tshirtshop/internal/service/customer"
	"tshirtshop/internal/token"
)

const stateCookieAge = 600 // seconds

// oauthResponse mirrors authResponse but keys the account as "user",
// matching the provider-login contract.
type oauthResponse struct {
	User        domain.Customer `json:"user"`
	AccessToken string          `json:"accessToken"`
	ExpiresIn   string          `json:"expiresIn"`
}

func stateCookieName(provider string) string {
	return "oauth_state_" + provider
}

func newOAuthState() (string, error) {
	buf := make([]byte, 24)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// oauthStartHandler sends the browser off to the provider's consent
// page. The state nonce is pinned in a cookie for the redirect leg.
func oauthStartHandler(provider OAuthProvider, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		state, err := newOAuthState()
		if err != nil {
			respondServiceError(c, logger, err)
			return
		}
		c.SetCookie(stateCookieName(provider.Name()), state, stateCookieAge, "/", "", false, true)
		c.Redirect(http.StatusFound, provider.AuthCodeURL(state))
	}
}

// oauthRedirectHandler completes the code exchange and logs the
// reported identity in as a shop customer.
func oauthRedirectHandler(provider OAuthProvider, svc CustomerService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		state := c.Query("state")
		cookie, err := c.Cookie(stateCookieName(provider.Name()))
		if err != nil || state == "" || state != cookie {
			respondError(c, apierror.BadRequest(apierror.CodeAuthInvalid, "The state parameter does not match.", "state"))
			return
		}
		c.SetCookie(stateCookieName(provider.Name()), "", -1, "/", "", false, true)

		code := c.Query("code")
		if code == "" {
			respondError(c, apierror.BadRequest(apierror.CodeAuthInvalid, "The authorization code is missing.", "code"))
			return
		}

		profile, err := provider.Exchange(c.Request.Context(), code)
		if err != nil {
			logger.Printf("%s exchange failed: %v", provider.Name(), err)
			respondError(c, apierror.BadRequest(apierror.CodeAuthInvalid, "The provider login failed.", "code"))
			return
		}

		customer, accessToken, err := svc.OAuthLogin(c.Request.Context(), customersvc.OAuthProfile{
			Provider: profile.Provider,
			Subject:  profile.Subject,
			Name:     profile.Name,
			Email:    profile.Email,
		})
		if err != nil {
			respondServiceError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, oauthResponse{
			User:        publicCustomer(customer),
			AccessToken: accessToken,
			ExpiresIn:   token.ExpiresIn,
		})
	}
}
