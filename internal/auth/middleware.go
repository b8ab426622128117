package auth

import (
	"log"
	"net/http"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	apperrors "eventsnow/internal/errors"
)

// TokenHeader is the request header carrying the raw signed token.
const TokenHeader = "x-auth-token"

// ContextKey is the echo context key the verified *Claims are attached under.
const ContextKey = "user"

// Verifier returns middleware that guards protected routes. A request either
// reaches the next handler with verified claims attached to its context, or it
// receives exactly one terminal JSON error response; the misconfigured-secret
// case answers 500 instead of stalling the request.
func Verifier(tokens *TokenService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey:  ContextKey,
		TokenLookup: "header:" + TokenHeader,
		ParseTokenFunc: func(c echo.Context, auth string) (interface{}, error) {
			return tokens.Verify(auth)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			if c.Request().Header.Get(TokenHeader) == "" {
				return c.JSON(http.StatusUnauthorized, apperrors.NewErrorResponse(apperrors.ErrNoToken.Error()))
			}
			if !tokens.Configured() {
				log.Printf("token verification unavailable: %v", ErrNoSecret)
				return c.JSON(http.StatusInternalServerError, apperrors.NewErrorResponse(apperrors.ErrServerMisconfigured.Error()))
			}
			return c.JSON(http.StatusUnauthorized, apperrors.NewErrorResponse(apperrors.ErrInvalidToken.Error()))
		},
	})
}

// ClaimsFrom returns the verified claims attached by Verifier, or nil when the
// request never passed through it.
func ClaimsFrom(c echo.Context) *Claims {
	claims, _ := c.Get(ContextKey).(*Claims)
	return claims
}
