package httpserver

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tshirtshop/internal/apierror"
	"tshirtshop/internal/token"
)

const claimsContextKey = "authClaims"

// requestID tags every response with an X-Request-ID, minting one when
// the client did not send its own.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}

// tokenPresent rejects requests that carry no token header at all.
func tokenPresent() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("token") == "" {
			respondError(c, apierror.Unauthorized(apierror.CodeAuthMissing, "Authorization code is empty.", "token"))
			return
		}
		c.Next()
	}
}

// tokenValid verifies the token header and stores the claims for the
// handler. Runs after tokenPresent, so an empty header never gets here.
func tokenValid(tokens TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := tokens.Verify(c.GetHeader("token"))
		if err != nil {
			respondError(c, apierror.BadRequest(apierror.CodeAuthInvalid, "The token is invalid.", "token"))
			return
		}
		c.Set(claimsContextKey, claims)
		c.Next()
	}
}

// customerID pulls the authenticated customer out of the request
// context. Only callable behind tokenValid.
func customerID(c *gin.Context) int {
	claims := c.MustGet(claimsContextKey).(token.Claims)
	return claims.CustomerID
}
