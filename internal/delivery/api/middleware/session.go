package middleware

import (
	"surveyor/internal/delivery/api/response"
	deliverycontext "surveyor/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// SessionMiddleware pulls the session token out of the Authorization header.
// It does not verify the token; the usecases do that on every call.
type SessionMiddleware struct{}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware() *SessionMiddleware {
	return &SessionMiddleware{}
}

// RequireToken rejects requests without a token and stores it for handlers.
func (m *SessionMiddleware) RequireToken(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := deliverycontext.ExtractSessionToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if token == "" {
			return response.Unauthorized(c, "Authorization header is missing")
		}

		deliverycontext.SetSessionToken(c, token)

		return next(c)
	}
}
