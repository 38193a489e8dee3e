package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/wplex/atlas-admin/internal/core/domain"
	"github.com/wplex/atlas-admin/internal/upstream/rest"
)

// UserClient is the typed façade over the users collection.
type UserClient struct {
	rc   *rest.Client
	eps  Endpoints
	cred domain.Credential
}

// List returns every user, or an empty slice when the backend is unreachable
// or errors — listing screens never need a second error check.
func (uc *UserClient) List(ctx context.Context) []domain.User {
	payload, err := uc.rc.Do(ctx, http.MethodGet, uc.eps.Users(), uc.cred, nil)
	if err != nil || len(payload) == 0 {
		return []domain.User{}
	}
	var users []domain.User
	if err := json.Unmarshal(payload, &users); err != nil {
		return []domain.User{}
	}
	return users
}

func (uc *UserClient) GetByInternal(ctx context.Context, internal string) (*domain.User, error) {
	return uc.fetch(ctx, uc.eps.UserByInternal(internal))
}

func (uc *UserClient) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	return uc.fetch(ctx, uc.eps.UserSearch(username))
}

func (uc *UserClient) Persist(ctx context.Context, user domain.User) (*domain.User, error) {
	body, err := json.Marshal(user)
	if err != nil {
		return nil, fmt.Errorf("encode user: %w", err)
	}
	payload, err := uc.rc.Do(ctx, http.MethodPost, uc.eps.Users(), uc.cred, body)
	if err != nil {
		return nil, err
	}
	return decodeUser(payload)
}

func (uc *UserClient) Update(ctx context.Context, internal string, user domain.User) (*domain.User, error) {
	body, err := json.Marshal(user)
	if err != nil {
		return nil, fmt.Errorf("encode user: %w", err)
	}
	payload, err := uc.rc.Do(ctx, http.MethodPut, uc.eps.UserByInternal(internal), uc.cred, body)
	if err != nil {
		return nil, err
	}
	return decodeUser(payload)
}

func (uc *UserClient) Delete(ctx context.Context, internal string) error {
	_, err := uc.rc.Do(ctx, http.MethodDelete, uc.eps.UserByInternal(internal), uc.cred, nil)
	return err
}

func (uc *UserClient) fetch(ctx context.Context, url string) (*domain.User, error) {
	payload, err := uc.rc.Do(ctx, http.MethodGet, url, uc.cred, nil)
	if err != nil {
		return nil, err
	}
	return decodeUser(payload)
}

func decodeUser(payload []byte) (*domain.User, error) {
	var u domain.User
	if err := json.Unmarshal(payload, &u); err != nil {
		return nil, fmt.Errorf("decode user: %w", err)
	}
	return &u, nil
}
