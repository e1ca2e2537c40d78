package context

import (
	"strings"

	"github.com/labstack/echo/v4"
)

// KeySessionToken is the echo.Context key holding the caller's raw session token.
const KeySessionToken ContextKey = "session_token"

const bearerPrefix = "Bearer "

// ExtractSessionToken reads a token from an Authorization header value.
// Both "Bearer <token>" and a bare token are accepted.
func ExtractSessionToken(header string) string {
	header = strings.TrimSpace(header)
	if len(header) >= len(bearerPrefix) && strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return strings.TrimSpace(header[len(bearerPrefix):])
	}

	return header
}

// SetSessionToken stores the session token in echo.Context.
func SetSessionToken(c echo.Context, token string) {
	c.Set(string(KeySessionToken), token)
}

// GetSessionToken returns the token stored by the session middleware, or "".
func GetSessionToken(c echo.Context) string {
	token, _ := c.Get(string(KeySessionToken)).(string)

	return token
}
