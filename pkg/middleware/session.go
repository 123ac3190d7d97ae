package middleware

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"chili/pkg/credential/repository"
)

const SessionCookie = "CHILI_UID"

// Session resolves the identity cookie set at login and places the caller's
// id and role into the echo context for every downstream handler. The cookie
// holds a bare user id, mirroring the client-trusted session of the legacy
// app; real session security is out of scope.
func Session(creds repository.CredentialRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ck, err := c.Cookie(SessionCookie)
			if err != nil || ck.Value == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "not logged in"})
			}
			id, err := strconv.ParseUint(ck.Value, 10, 32)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "not logged in"})
			}
			u, err := creds.FindByID(uint(id))
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "not logged in"})
			}
			c.Set("uid", u.ID)
			c.Set("role", u.Role)
			return next(c)
		}
	}
}
