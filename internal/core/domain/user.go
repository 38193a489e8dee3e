package domain

// User is the identity record managed by the atlas-auth backend. Internal is
// the stable identity key; the remaining fields are display data round-tripped
// through the remote API.
type User struct {
	Internal              string   `json:"internal,omitempty"`
	Created               int64    `json:"created,omitempty"`
	Active                bool     `json:"active"`
	Name                  string   `json:"name"`
	Phone                 string   `json:"phone"`
	DocumentMain          string   `json:"document_main"`
	Username              string   `json:"username"`
	UserEmail             string   `json:"user_email"`
	Password              string   `json:"password,omitempty"`
	LastPasswordResetDate int64    `json:"last_password_reset_date,omitempty"`
	FileName              string   `json:"file_name,omitempty"`
	FileURL               string   `json:"file_url,omitempty"`
	Company               string   `json:"company"`
	Occupation            string   `json:"occupation"`
	Roles                 RoleList `json:"roles"`
}

// WithoutPassword returns a copy safe for rendering. Password is write-only:
// it goes out on persist/update and never comes back to a client.
func (u User) WithoutPassword() User {
	u.Password = ""
	return u
}
