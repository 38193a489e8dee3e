package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/wplex/atlas-admin/internal/core/domain"
	"github.com/wplex/atlas-admin/internal/core/ports"
)

// UserHandler exposes the user management screens' API.
type UserHandler struct {
	resources ports.Resources
}

func NewUserHandler(resources ports.Resources) *UserHandler {
	return &UserHandler{resources: resources}
}

// List returns every user known to the backend.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Success      200  {array}  domain.User
// @Router       /manage/users [get]
func (h *UserHandler) List(c echo.Context) error {
	cred, err := ctxCredential(c)
	if err != nil {
		return err
	}

	users := h.resources.Users(cred).List(c.Request().Context())
	for i := range users {
		users[i] = users[i].WithoutPassword()
	}
	return c.JSON(http.StatusOK, users)
}

// Get returns one user by internal id.
//
// @Summary      Get user
// @Tags         users
// @Produce      json
// @Param        internal  path      string  true  "User internal id"
// @Success      200       {object}  domain.User
// @Failure      404       {object}  errorResponse
// @Router       /manage/users/{internal} [get]
func (h *UserHandler) Get(c echo.Context) error {
	cred, err := ctxCredential(c)
	if err != nil {
		return err
	}

	user, err := h.resources.Users(cred).GetByInternal(c.Request().Context(), c.Param("internal"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user.WithoutPassword())
}

// Create registers a new user in the backend.
//
// @Summary      Create user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      createUserRequest  true  "User details"
// @Success      201   {object}  domain.User
// @Failure      400   {object}  errorResponse
// @Router       /manage/users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
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

	user := domain.User{
		Active:       req.Active,
		Name:         req.Name,
		Username:     strings.ToLower(req.UserEmail),
		UserEmail:    strings.ToLower(req.UserEmail),
		Password:     req.Password,
		Phone:        normalizePhone(req.Phone),
		DocumentMain: req.DocumentMain,
		Company:      req.Company,
		Occupation:   req.Occupation,
		FileName:     req.FileName,
		FileURL:      req.FileURL,
		Roles:        roleRefs(req.Roles),
	}

	created, err := h.resources.Users(cred).Persist(c.Request().Context(), user)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created.WithoutPassword())
}

// Update replaces a user's editable fields.
//
// @Summary      Update user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        internal  path      string             true  "User internal id"
// @Param        body      body      updateUserRequest  true  "User details"
// @Success      200       {object}  domain.User
// @Failure      400       {object}  errorResponse
// @Failure      404       {object}  errorResponse
// @Router       /manage/users/{internal} [put]
func (h *UserHandler) Update(c echo.Context) error {
	var req updateUserRequest
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

	user := domain.User{
		Active:       req.Active,
		Name:         req.Name,
		Username:     strings.ToLower(req.UserEmail),
		UserEmail:    strings.ToLower(req.UserEmail),
		Phone:        normalizePhone(req.Phone),
		DocumentMain: req.DocumentMain,
		Company:      req.Company,
		Occupation:   req.Occupation,
		FileName:     req.FileName,
		FileURL:      req.FileURL,
		Roles:        roleRefs(req.Roles),
	}

	updated, err := h.resources.Users(cred).Update(c.Request().Context(), c.Param("internal"), user)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated.WithoutPassword())
}

// Delete removes a user.
//
// @Summary      Delete user
// @Tags         users
// @Param        internal  path  string  true  "User internal id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /manage/users/{internal} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	cred, err := ctxCredential(c)
	if err != nil {
		return err
	}

	if err := h.resources.Users(cred).Delete(c.Request().Context(), c.Param("internal")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// normalizePhone strips the mask the admin screens apply to phone numbers.
var phoneCleaner = strings.NewReplacer("(", "", ") ", "", ")", "", "-", "")

func normalizePhone(s string) string {
	return phoneCleaner.Replace(s)
}

// roleRefs turns role internal ids into role references for the backend.
func roleRefs(internals []string) domain.RoleList {
	refs := make(domain.RoleList, 0, len(internals))
	for _, internal := range internals {
		refs = append(refs, domain.Role{Internal: internal})
	}
	return refs
}
