package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/wplex/atlas-admin/internal/core/domain"
	"github.com/wplex/atlas-admin/internal/core/ports"
	"github.com/wplex/atlas-admin/internal/upstream/rest"
)

// LoginClient exchanges credentials for a bearer token.
type LoginClient struct {
	rc   *rest.Client
	eps  Endpoints
	cred domain.Credential
}

type authenticationRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (lc *LoginClient) Authenticate(ctx context.Context, username, password string) (*ports.TokenGrant, error) {
	body, err := json.Marshal(authenticationRequest{Username: username, Password: password})
	if err != nil {
		return nil, fmt.Errorf("encode login request: %w", err)
	}

	payload, err := lc.rc.Do(ctx, http.MethodPost, lc.eps.Login(), lc.cred, body)
	if err != nil {
		return nil, err
	}

	var grant ports.TokenGrant
	if err := json.Unmarshal(payload, &grant); err != nil {
		return nil, fmt.Errorf("decode token grant: %w", err)
	}
	return &grant, nil
}
