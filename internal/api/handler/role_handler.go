package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/wplex/atlas-admin/internal/core/domain"
	"github.com/wplex/atlas-admin/internal/core/ports"
)

// RoleHandler exposes the role management screens' API.
type RoleHandler struct {
	resources ports.Resources
}

func NewRoleHandler(resources ports.Resources) *RoleHandler {
	return &RoleHandler{resources: resources}
}

// List returns every role known to the backend.
//
// @Summary      List roles
// @Tags         roles
// @Produce      json
// @Success      200  {array}  domain.Role
// @Router       /manage/roles [get]
func (h *RoleHandler) List(c echo.Context) error {
	cred, err := ctxCredential(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.resources.Roles(cred).List(c.Request().Context()))
}

// Get returns one role by internal id.
//
// @Summary      Get role
// @Tags         roles
// @Produce      json
// @Param        internal  path      string  true  "Role internal id"
// @Success      200       {object}  domain.Role
// @Failure      404       {object}  errorResponse
// @Router       /manage/roles/{internal} [get]
func (h *RoleHandler) Get(c echo.Context) error {
	cred, err := ctxCredential(c)
	if err != nil {
		return err
	}

	role, err := h.resources.Roles(cred).GetByInternal(c.Request().Context(), c.Param("internal"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, role)
}

// Create registers a new role. The short code is stored uppercased.
//
// @Summary      Create role
// @Tags         roles
// @Accept       json
// @Produce      json
// @Param        body  body      roleRequest  true  "Role details"
// @Success      201   {object}  domain.Role
// @Failure      400   {object}  errorResponse
// @Router       /manage/roles [post]
func (h *RoleHandler) Create(c echo.Context) error {
	var req roleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	cred, err := ctxCredential(c)
	if err != nil {
		return err
	}

	role := domain.Role{
		Name:        req.Name,
		Type:        strings.ToUpper(req.Type),
		Description: req.Description,
	}

	created, err := h.resources.Roles(cred).Persist(c.Request().Context(), role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// Update replaces a role's fields.
//
// @Summary      Update role
// @Tags         roles
// @Accept       json
// @Produce      json
// @Param        internal  path      string       true  "Role internal id"
// @Param        body      body      roleRequest  true  "Role details"
// @Success      200       {object}  domain.Role
// @Failure      400       {object}  errorResponse
// @Failure      404       {object}  errorResponse
// @Router       /manage/roles/{internal} [put]
func (h *RoleHandler) Update(c echo.Context) error {
	var req roleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	cred, err := ctxCredential(c)
	if err != nil {
		return err
	}

	role := domain.Role{
		Name:        req.Name,
		Type:        strings.ToUpper(req.Type),
		Description: req.Description,
	}

	updated, err := h.resources.Roles(cred).Update(c.Request().Context(), c.Param("internal"), role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete removes a role.
//
// @Summary      Delete role
// @Tags         roles
// @Param        internal  path  string  true  "Role internal id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /manage/roles/{internal} [delete]
func (h *RoleHandler) Delete(c echo.Context) error {
	cred, err := ctxCredential(c)
	if err != nil {
		return err
	}

	if err := h.resources.Roles(cred).Delete(c.Request().Context(), c.Param("internal")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
