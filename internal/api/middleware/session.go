package middleware

import (
	"net/http"

	"github.com/gorilla/securecookie"
	"github.com/labstack/echo/v4"

	"github.com/wplex/atlas-admin/internal/core/domain"
	"github.com/wplex/atlas-admin/internal/session"
)

const (
	// SessionCookie is the name of the signed cookie carrying the internal id.
	SessionCookie = "_atlas_session"

	// CtxUser and CtxCredential are the echo context keys populated by the
	// Session middleware on every authenticated request.
	CtxUser       = "user"
	CtxCredential = "credential"
)

// Session authenticates a request from the signed session cookie: decode the
// internal id, resolve it through the loader, and inject the user plus a
// request-scoped Credential into the echo context. Anything short of a valid,
// registered session is a 401.
func Session(sc *securecookie.SecureCookie, loader *session.Loader, provider string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookie)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing session cookie")
			}

			var internal string
			if err := sc.Decode(SessionCookie, cookie.Value, &internal); err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid session cookie")
			}

			user, token, ok := loader.Load(c.Request().Context(), internal)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "session expired")
			}

			c.Set(CtxUser, *user)
			c.Set(CtxCredential, domain.Credential{Provider: provider, Authorization: token})

			return next(c)
		}
	}
}
