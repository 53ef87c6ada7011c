package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/storefront/backend/internal/infrastructure/auth"
	"github.com/storefront/backend/internal/interfaces/http/dto"
)

const claimsContextKey = "token_claims"

// RequireToken guards a route with bearer token authentication. The error
// messages are part of the public API contract and must not be reworded.
func RequireToken(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				ErrorMsg: "Token doesn't exist in the auth headers",
			})
			return
		}

		// The token is whatever follows the first space, commonly after a
		// "Bearer" prefix.
		var tokenString string
		if parts := strings.SplitN(header, " ", 2); len(parts) == 2 {
			tokenString = parts[1]
		}
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				ErrorMsg: "Token is not provided !",
			})
			return
		}

		claims, err := tokens.Validate(tokenString)
		if err != nil {
			msg := err.Error()
			if errors.Is(err, auth.ErrInvalidSignature) {
				msg = "Invalid token is provided"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{ErrorMsg: msg})
			return
		}

		c.Set(claimsContextKey, claims)
		c.Next()
	}
}

// TokenClaims returns the validated claims set by RequireToken, or nil when
// the route was reached without authentication.
func TokenClaims(c *gin.Context) *auth.Claims {
	value, exists := c.Get(claimsContextKey)
	if !exists {
		return nil
	}
	claims, ok := value.(*auth.Claims)
	if !ok {
		return nil
	}
	return claims
}
