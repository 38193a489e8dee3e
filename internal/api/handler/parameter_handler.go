package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wplex/atlas-admin/internal/core/domain"
	"github.com/wplex/atlas-admin/internal/core/ports"
)

// ParameterHandler exposes the clients and institutions screens. Both
// collections live in the parameters backend; referential rules (a client
// with institutions cannot be deleted) are enforced there and surface as
// APIErrors.
type ParameterHandler struct {
	resources ports.Resources
}

func NewParameterHandler(resources ports.Resources) *ParameterHandler {
	return &ParameterHandler{resources: resources}
}

// --- Clients ---

// @Summary      List clients
// @Tags         parameters
// @Produce      json
// @Success      200  {array}  domain.Client
// @Router       /parameters/clients [get]
func (h *ParameterHandler) ListClients(c echo.Context) error {
	cred, err := ctxCredential(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.resources.Clients(cred).List(c.Request().Context()))
}

// @Summary      Get client
// @Tags         parameters
// @Produce      json
// @Param        internal  path      string  true  "Client internal id"
// @Success      200       {object}  domain.Client
// @Failure      404       {object}  errorResponse
// @Router       /parameters/clients/{internal} [get]
func (h *ParameterHandler) GetClient(c echo.Context) error {
	cred, err := ctxCredential(c)
	if err != nil {
		return err
	}

	client, err := h.resources.Clients(cred).GetByInternal(c.Request().Context(), c.Param("internal"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, client)
}

// @Summary      Create client
// @Tags         parameters
// @Accept       json
// @Produce      json
// @Param        body  body      clientRequest  true  "Client details"
// @Success      201   {object}  domain.Client
// @Failure      400   {object}  errorResponse
// @Router       /parameters/clients [post]
func (h *ParameterHandler) CreateClient(c echo.Context) error {
	var req clientRequest
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

	created, err := h.resources.Clients(cred).Persist(c.Request().Context(), clientFromRequest(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// @Summary      Update client
// @Tags         parameters
// @Accept       json
// @Produce      json
// @Param        internal  path      string         true  "Client internal id"
// @Param        body      body      clientRequest  true  "Client details"
// @Success      200       {object}  domain.Client
// @Failure      400       {object}  errorResponse
// @Failure      404       {object}  errorResponse
// @Router       /parameters/clients/{internal} [put]
func (h *ParameterHandler) UpdateClient(c echo.Context) error {
	var req clientRequest
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

	updated, err := h.resources.Clients(cred).Update(c.Request().Context(), c.Param("internal"), clientFromRequest(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// @Summary      Delete client
// @Tags         parameters
// @Param        internal  path  string  true  "Client internal id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Router       /parameters/clients/{internal} [delete]
func (h *ParameterHandler) DeleteClient(c echo.Context) error {
	cred, err := ctxCredential(c)
	if err != nil {
		return err
	}

	if err := h.resources.Clients(cred).Delete(c.Request().Context(), c.Param("internal")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// --- Institutions ---

// @Summary      List institutions
// @Tags         parameters
// @Produce      json
// @Success      200  {array}  domain.Institution
// @Router       /parameters/institutions [get]
func (h *ParameterHandler) ListInstitutions(c echo.Context) error {
	cred, err := ctxCredential(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.resources.Institutions(cred).List(c.Request().Context()))
}

// @Summary      Get institution
// @Tags         parameters
// @Produce      json
// @Param        internal  path      string  true  "Institution internal id"
// @Success      200       {object}  domain.Institution
// @Failure      404       {object}  errorResponse
// @Router       /parameters/institutions/{internal} [get]
func (h *ParameterHandler) GetInstitution(c echo.Context) error {
	cred, err := ctxCredential(c)
	if err != nil {
		return err
	}

	institution, err := h.resources.Institutions(cred).GetByInternal(c.Request().Context(), c.Param("internal"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, institution)
}

// @Summary      Create institution
// @Tags         parameters
// @Accept       json
// @Produce      json
// @Param        body  body      institutionRequest  true  "Institution details"
// @Success      201   {object}  domain.Institution
// @Failure      400   {object}  errorResponse
// @Router       /parameters/institutions [post]
func (h *ParameterHandler) CreateInstitution(c echo.Context) error {
	var req institutionRequest
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

	created, err := h.resources.Institutions(cred).Persist(c.Request().Context(), institutionFromRequest(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// @Summary      Update institution
// @Tags         parameters
// @Accept       json
// @Produce      json
// @Param        internal  path      string              true  "Institution internal id"
// @Param        body      body      institutionRequest  true  "Institution details"
// @Success      200       {object}  domain.Institution
// @Failure      400       {object}  errorResponse
// @Failure      404       {object}  errorResponse
// @Router       /parameters/institutions/{internal} [put]
func (h *ParameterHandler) UpdateInstitution(c echo.Context) error {
	var req institutionRequest
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

	updated, err := h.resources.Institutions(cred).Update(c.Request().Context(), c.Param("internal"), institutionFromRequest(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// @Summary      Delete institution
// @Tags         parameters
// @Param        internal  path  string  true  "Institution internal id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /parameters/institutions/{internal} [delete]
func (h *ParameterHandler) DeleteInstitution(c echo.Context) error {
	cred, err := ctxCredential(c)
	if err != nil {
		return err
	}

	if err := h.resources.Institutions(cred).Delete(c.Request().Context(), c.Param("internal")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func clientFromRequest(req clientRequest) domain.Client {
	return domain.Client{
		Name:              req.Name,
		DocumentMain:      req.DocumentMain,
		AddressStreet:     req.AddressStreet,
		AddressComplement: req.AddressComplement,
		AddressZip:        req.AddressZip,
		AddressDistrict:   req.AddressDistrict,
		AddressCity:       req.AddressCity,
		AddressState:      req.AddressState,
		DateStart:         req.DateStart,
		DateEnd:           req.DateEnd,
	}
}

func institutionFromRequest(req institutionRequest) domain.Institution {
	return domain.Institution{
		Name:              req.Name,
		Phone:             req.Phone,
		Email:             req.Email,
		DocumentMain:      req.DocumentMain,
		Principal:         req.Principal,
		Coordinator:       req.Coordinator,
		AddressStreet:     req.AddressStreet,
		AddressComplement: req.AddressComplement,
		AddressZip:        req.AddressZip,
		AddressDistrict:   req.AddressDistrict,
		AddressCity:       req.AddressCity,
		AddressState:      req.AddressState,
		ClientGlobalID:    req.ClientGlobalID,
	}
}
