package domain

// Credential carries the outbound auth material in effect for one request:
// the application's provider signature and the user's bearer token. It is
// built by the session middleware and threaded explicitly into every
// resource-client constructor — never held in package-level state.
type Credential struct {
	Provider      string `json:"provider"`
	Authorization string `json:"authorization"`
	Expires       int64  `json:"expires"`
}
