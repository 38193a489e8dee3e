package handler

import "github.com/wplex/atlas-admin/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx
// responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Auth ---

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Remember bool   `json:"remember"`
}

type loginResponse struct {
	User domain.User `json:"user"`
}

// --- Users ---

// Roles carries role internal ids; they are sent upstream as references.
type createUserRequest struct {
	Active       bool     `json:"active"`
	Name         string   `json:"name"          validate:"required"`
	UserEmail    string   `json:"user_email"    validate:"required,email"`
	Password     string   `json:"password"      validate:"required,min=6,max=20"`
	Phone        string   `json:"phone"         validate:"required"`
	DocumentMain string   `json:"document_main"`
	Company      string   `json:"company"`
	Occupation   string   `json:"occupation"`
	FileName     string   `json:"file_name"`
	FileURL      string   `json:"file_url"`
	Roles        []string `json:"roles"         validate:"required,min=1"`
}

type updateUserRequest struct {
	Active       bool     `json:"active"`
	Name         string   `json:"name"          validate:"required"`
	UserEmail    string   `json:"user_email"    validate:"required,email"`
	Phone        string   `json:"phone"         validate:"required"`
	DocumentMain string   `json:"document_main"`
	Company      string   `json:"company"`
	Occupation   string   `json:"occupation"`
	FileName     string   `json:"file_name"`
	FileURL      string   `json:"file_url"`
	Roles        []string `json:"roles"         validate:"required,min=1"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	Password        string `json:"password"         validate:"required,min=6,max=20"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
}

// --- Roles ---

type roleRequest struct {
	Name        string `json:"name"        validate:"required"`
	Type        string `json:"type"        validate:"required,min=1,max=25"`
	Description string `json:"description"`
}

// --- Parameters ---

type clientRequest struct {
	Name              string `json:"name" validate:"required"`
	DocumentMain      string `json:"document_main"`
	AddressStreet     string `json:"address_street"`
	AddressComplement string `json:"address_complement"`
	AddressZip        string `json:"address_zip"`
	AddressDistrict   string `json:"address_district"`
	AddressCity       string `json:"address_city"`
	AddressState      string `json:"address_state"`
	DateStart         string `json:"date_start"`
	DateEnd           string `json:"date_end"`
}

type institutionRequest struct {
	Name              string `json:"name"             validate:"required"`
	Phone             string `json:"phone"`
	Email             string `json:"email"            validate:"omitempty,email"`
	DocumentMain      string `json:"document_main"`
	Principal         string `json:"principal"`
	Coordinator       string `json:"coordinator"`
	AddressStreet     string `json:"address_street"`
	AddressComplement string `json:"address_complement"`
	AddressZip        string `json:"address_zip"`
	AddressDistrict   string `json:"address_district"`
	AddressCity       string `json:"address_city"`
	AddressState      string `json:"address_state"`
	ClientGlobalID    string `json:"client_global_id" validate:"required"`
}
