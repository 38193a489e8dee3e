package handler

import (
	"net/http"
	"time"

	"github.com/gorilla/securecookie"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/wplex/atlas-admin/internal/api/metrics"
	"github.com/wplex/atlas-admin/internal/api/middleware"
	"github.com/wplex/atlas-admin/internal/core/domain"
	"github.com/wplex/atlas-admin/internal/core/ports"
)

// AuthHandler owns the login/logout flow: token exchange with the backend,
// session registration, and the signed session cookie.
type AuthHandler struct {
	resources ports.Resources
	registry  ports.SessionRegistry
	cookies   *securecookie.SecureCookie
	provider  string
	cookieTTL time.Duration
	secure    bool
	log       zerolog.Logger
}

func NewAuthHandler(resources ports.Resources, registry ports.SessionRegistry, cookies *securecookie.SecureCookie,
	provider string, cookieTTL time.Duration, secure bool, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		resources: resources,
		registry:  registry,
		cookies:   cookies,
		provider:  provider,
		cookieTTL: cookieTTL,
		secure:    secure,
		log:       log,
	}
}

// Login authenticates against the remote identity API and opens a session.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	ctx := c.Request().Context()

	// The login call itself carries only the provider signature.
	bootstrap := domain.Credential{Provider: h.provider}
	grant, err := h.resources.Login(bootstrap).Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		if ae, ok := domain.AsAPIError(err); ok && ae.StatusCode < http.StatusInternalServerError {
			metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
			h.log.Warn().Str("username", req.Username).Str("ip", c.RealIP()).Msg("login rejected")
			return c.JSON(http.StatusUnauthorized,
				errorResponse{Error: "username or password does not match any account"})
		}
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return err
	}

	cred := domain.Credential{Provider: h.provider, Authorization: grant.AccessToken, Expires: grant.ExpiresIn}
	user, err := h.resources.Users(cred).FindByUsername(ctx, req.Username)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return err
	}
	if !user.Active {
		metrics.LoginsTotal.WithLabelValues("inactive").Inc()
		return domain.ErrUserInactive
	}

	if err := h.registry.Add(ctx, grant.AccessToken, *user); err != nil {
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return err
	}

	encoded, err := h.cookies.Encode(middleware.SessionCookie, user.Internal)
	if err != nil {
		_ = h.registry.Remove(ctx, user.Internal)
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return err
	}

	cookie := &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    encoded,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	}
	if req.Remember {
		cookie.MaxAge = int(h.cookieTTL.Seconds())
	}
	c.SetCookie(cookie)

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	h.log.Info().Str("username", user.Username).Str("ip", c.RealIP()).Msg("login accepted")

	return c.JSON(http.StatusOK, loginResponse{User: user.WithoutPassword()})
}

// Logout closes the current session.
//
// @Summary      Logout
// @Tags         auth
// @Success      204
// @Failure      401  {object}  errorResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	if err := h.registry.Remove(c.Request().Context(), user.Internal); err != nil {
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})

	h.log.Info().Str("username", user.Username).Msg("logout")
	return c.NoContent(http.StatusNoContent)
}

// ChangePassword updates the current user's password through the backend.
// The change takes effect upstream; the running session stays valid.
//
// @Summary      Change own password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  changePasswordRequest  true  "New password"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /manage/profile/password [put]
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	current, err := ctxUser(c)
	if err != nil {
		return err
	}
	cred, err := ctxCredential(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	users := h.resources.Users(cred)

	user, err := users.GetByInternal(ctx, current.Internal)
	if err != nil {
		return err
	}

	user.Password = req.Password
	updated, err := users.Update(ctx, user.Internal, *user)
	if err != nil {
		return err
	}

	h.log.Info().Str("username", updated.Username).Msg("password changed")
	return c.JSON(http.StatusOK, loginResponse{User: updated.WithoutPassword()})
}
