package http

import (
	"net/http"
	"strings"

	"autoshop/internal/pkg/token"

	"github.com/labstack/echo/v4"
)

const principalContextKey = "principal"

// NewAuthMiddleware returns middleware that requires a valid bearer token on
// every request it wraps. Verified claims are stored on the request context
// for handlers that need the authenticated principal.
func NewAuthMiddleware(issuer *token.Issuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			const prefix = "Bearer "

			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(header, prefix) {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    codeUser + http.StatusUnauthorized,
					Message: "missing bearer token",
				})
			}

			claims, err := issuer.Verify(strings.TrimPrefix(header, prefix))
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    codeUser + http.StatusUnauthorized,
					Message: "token is invalid",
				})
			}

			ctx.Set(principalContextKey, claims)
			return next(ctx)
		}
	}
}

// principal returns the verified claims of the authenticated request, nil on
// unguarded routes.
func principal(ctx echo.Context) *token.Claims {
	claims, _ := ctx.Get(principalContextKey).(*token.Claims)
	return claims
}
