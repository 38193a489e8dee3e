package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/wplex/atlas-admin/internal/core/domain"
	"github.com/wplex/atlas-admin/internal/upstream/rest"
)

// RoleClient is the typed façade over the roles collection.
type RoleClient struct {
	rc   *rest.Client
	eps  Endpoints
	cred domain.Credential
}

func (rc *RoleClient) List(ctx context.Context) []domain.Role {
	payload, err := rc.rc.Do(ctx, http.MethodGet, rc.eps.Roles(), rc.cred, nil)
	if err != nil || len(payload) == 0 {
		return []domain.Role{}
	}
	var roles []domain.Role
	if err := json.Unmarshal(payload, &roles); err != nil {
		return []domain.Role{}
	}
	return roles
}

func (rc *RoleClient) GetByInternal(ctx context.Context, internal string) (*domain.Role, error) {
	payload, err := rc.rc.Do(ctx, http.MethodGet, rc.eps.RoleByInternal(internal), rc.cred, nil)
	if err != nil {
		return nil, err
	}
	return decodeRole(payload)
}

func (rc *RoleClient) Persist(ctx context.Context, role domain.Role) (*domain.Role, error) {
	body, err := json.Marshal(role)
	if err != nil {
		return nil, fmt.Errorf("encode role: %w", err)
	}
	payload, err := rc.rc.Do(ctx, http.MethodPost, rc.eps.Roles(), rc.cred, body)
	if err != nil {
		return nil, err
	}
	return decodeRole(payload)
}

func (rc *RoleClient) Update(ctx context.Context, internal string, role domain.Role) (*domain.Role, error) {
	body, err := json.Marshal(role)
	if err != nil {
		return nil, fmt.Errorf("encode role: %w", err)
	}
	payload, err := rc.rc.Do(ctx, http.MethodPut, rc.eps.RoleByInternal(internal), rc.cred, body)
	if err != nil {
		return nil, err
	}
	return decodeRole(payload)
}

func (rc *RoleClient) Delete(ctx context.Context, internal string) error {
	_, err := rc.rc.Do(ctx, http.MethodDelete, rc.eps.RoleByInternal(internal), rc.cred, nil)
	return err
}

func decodeRole(payload []byte) (*domain.Role, error) {
	var r domain.Role
	if err := json.Unmarshal(payload, &r); err != nil {
		return nil, fmt.Errorf("decode role: %w", err)
	}
	return &r, nil
}
