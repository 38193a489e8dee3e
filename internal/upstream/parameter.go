package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/wplex/atlas-admin/internal/core/domain"
	"github.com/wplex/atlas-admin/internal/upstream/rest"
)

// ClientClient is the typed façade over the clients parameters collection.
type ClientClient struct {
	rc   *rest.Client
	eps  Endpoints
	cred domain.Credential
}

func (cc *ClientClient) List(ctx context.Context) []domain.Client {
	payload, err := cc.rc.Do(ctx, http.MethodGet, cc.eps.Clients(), cc.cred, nil)
	if err != nil || len(payload) == 0 {
		return []domain.Client{}
	}
	var clients []domain.Client
	if err := json.Unmarshal(payload, &clients); err != nil {
		return []domain.Client{}
	}
	return clients
}

func (cc *ClientClient) GetByInternal(ctx context.Context, internal string) (*domain.Client, error) {
	payload, err := cc.rc.Do(ctx, http.MethodGet, cc.eps.ClientByInternal(internal), cc.cred, nil)
	if err != nil {
		return nil, err
	}
	return decodeClient(payload)
}

func (cc *ClientClient) Persist(ctx context.Context, client domain.Client) (*domain.Client, error) {
	body, err := json.Marshal(client)
	if err != nil {
		return nil, fmt.Errorf("encode client: %w", err)
	}
	payload, err := cc.rc.Do(ctx, http.MethodPost, cc.eps.Clients(), cc.cred, body)
	if err != nil {
		return nil, err
	}
	return decodeClient(payload)
}

func (cc *ClientClient) Update(ctx context.Context, internal string, client domain.Client) (*domain.Client, error) {
	body, err := json.Marshal(client)
	if err != nil {
		return nil, fmt.Errorf("encode client: %w", err)
	}
	payload, err := cc.rc.Do(ctx, http.MethodPut, cc.eps.ClientByInternal(internal), cc.cred, body)
	if err != nil {
		return nil, err
	}
	return decodeClient(payload)
}

func (cc *ClientClient) Delete(ctx context.Context, internal string) error {
	_, err := cc.rc.Do(ctx, http.MethodDelete, cc.eps.ClientByInternal(internal), cc.cred, nil)
	return err
}

func decodeClient(payload []byte) (*domain.Client, error) {
	var c domain.Client
	if err := json.Unmarshal(payload, &c); err != nil {
		return nil, fmt.Errorf("decode client: %w", err)
	}
	return &c, nil
}

// InstitutionClient is the typed façade over the institutions collection.
type InstitutionClient struct {
	rc   *rest.Client
	eps  Endpoints
	cred domain.Credential
}

func (ic *InstitutionClient) List(ctx context.Context) []domain.Institution {
	payload, err := ic.rc.Do(ctx, http.MethodGet, ic.eps.Institutions(), ic.cred, nil)
	if err != nil || len(payload) == 0 {
		return []domain.Institution{}
	}
	var institutions []domain.Institution
	if err := json.Unmarshal(payload, &institutions); err != nil {
		return []domain.Institution{}
	}
	return institutions
}

func (ic *InstitutionClient) GetByInternal(ctx context.Context, internal string) (*domain.Institution, error) {
	payload, err := ic.rc.Do(ctx, http.MethodGet, ic.eps.InstitutionByInternal(internal), ic.cred, nil)
	if err != nil {
		return nil, err
	}
	return decodeInstitution(payload)
}

func (ic *InstitutionClient) Persist(ctx context.Context, institution domain.Institution) (*domain.Institution, error) {
	body, err := json.Marshal(institution)
	if err != nil {
		return nil, fmt.Errorf("encode institution: %w", err)
	}
	payload, err := ic.rc.Do(ctx, http.MethodPost, ic.eps.Institutions(), ic.cred, body)
	if err != nil {
		return nil, err
	}
	return decodeInstitution(payload)
}

func (ic *InstitutionClient) Update(ctx context.Context, internal string, institution domain.Institution) (*domain.Institution, error) {
	body, err := json.Marshal(institution)
	if err != nil {
		return nil, fmt.Errorf("encode institution: %w", err)
	}
	payload, err := ic.rc.Do(ctx, http.MethodPut, ic.eps.InstitutionByInternal(internal), ic.cred, body)
	if err != nil {
		return nil, err
	}
	return decodeInstitution(payload)
}

func (ic *InstitutionClient) Delete(ctx context.Context, internal string) error {
	_, err := ic.rc.Do(ctx, http.MethodDelete, ic.eps.InstitutionByInternal(internal), ic.cred, nil)
	return err
}

func decodeInstitution(payload []byte) (*domain.Institution, error) {
	var i domain.Institution
	if err := json.Unmarshal(payload, &i); err != nil {
		return nil, fmt.Errorf("decode institution: %w", err)
	}
	return &i, nil
}
