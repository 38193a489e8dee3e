package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wplex/atlas-admin/internal/api/middleware"
	"github.com/wplex/atlas-admin/internal/core/domain"
)

// ctxUser and ctxCredential extract what the Session middleware injected.
// Their absence means the middleware did not run for this route — treat it
// as an unauthenticated request, never as a server error.
func ctxUser(c echo.Context) (domain.User, error) {
	user, ok := c.Get(middleware.CtxUser).(domain.User)
	if !ok {
		return domain.User{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authenticated user")
	}
	return user, nil
}

func ctxCredential(c echo.Context) (domain.Credential, error) {
	cred, ok := c.Get(middleware.CtxCredential).(domain.Credential)
	if !ok {
		return domain.Credential{}, echo.NewHTTPError(http.StatusUnauthorized, "missing request credential")
	}
	return cred, nil
}
