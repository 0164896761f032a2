package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"bakehouse/internal/domain"
)

// Remote talks to the REST service with one round trip per operation.
// List reads degrade to a default or empty result when the transport
// fails, so a flaky backend never takes the caller down; mutations
// surface the failure instead. No retries anywhere.
type Remote struct {
	base   string
	client *http.Client
}

// NewRemote builds a client for the service at baseURL (e.g.
// "http://localhost:3000/api"). httpClient may be nil for the default.
func NewRemote(baseURL string, httpClient *http.Client) *Remote {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Remote{base: strings.TrimRight(baseURL, "/"), client: httpClient}
}

func (r *Remote) do(ctx context.Context, method, path string, body, out any) error {
	op := method + " " + path
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return &TransportError{Op: op, Err: err}
		}
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, r.base+path, rd)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := r.client.Do(req)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode == http.StatusBadRequest:
		var e struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&e)
		return &ValidationError{Field: "request", Reason: e.Error}
	case resp.StatusCode >= 300:
		return &TransportError{Op: op, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &TransportError{Op: op, Err: err}
	}
	return nil
}

func (r *Remote) ListItems(ctx context.Context) ([]domain.Item, error) {
	var items []domain.Item
	if err := r.do(ctx, http.MethodGet, "/items", nil, &items); err != nil {
		if IsTransport(err) {
			// degrade to the default catalog rather than failing the read
			return domain.DefaultItems(), nil
		}
		return nil, err
	}
	return items, nil
}

func (r *Remote) GetItem(ctx context.Context, id int64) (domain.Item, error) {
	var it domain.Item
	if err := r.do(ctx, http.MethodGet, fmt.Sprintf("/items/%d", id), nil, &it); err != nil {
		return domain.Item{}, err
	}
	return it, nil
}

func (r *Remote) CreateItem(ctx context.Context, it domain.Item) (domain.Item, error) {
	if err := CheckItem(it); err != nil {
		return domain.Item{}, err
	}
	it.ID = 0 // the service assigns ids
	var created domain.Item
	if err := r.do(ctx, http.MethodPost, "/items", it, &created); err != nil {
		return domain.Item{}, err
	}
	return created, nil
}

func (r *Remote) UpdateItem(ctx context.Context, id int64, patch domain.ItemPatch) (domain.Item, error) {
	if err := CheckPatch(patch); err != nil {
		return domain.Item{}, err
	}
	var updated domain.Item
	if err := r.do(ctx, http.MethodPut, fmt.Sprintf("/items/%d", id), patch, &updated); err != nil {
		return domain.Item{}, err
	}
	return updated, nil
}

func (r *Remote) DeleteItem(ctx context.Context, id int64) error {
	return r.do(ctx, http.MethodDelete, fmt.Sprintf("/items/%d", id), nil, nil)
}

func (r *Remote) ListOrders(ctx context.Context) ([]domain.Order, error) {
	var orders []domain.Order
	if err := r.do(ctx, http.MethodGet, "/orders", nil, &orders); err != nil {
		if IsTransport(err) {
			return []domain.Order{}, nil
		}
		return nil, err
	}
	return orders, nil
}

func (r *Remote) CreateOrder(ctx context.Context, o domain.Order) (domain.Order, error) {
	o.ID = 0 // id and timestamp come from the service
	var created domain.Order
	if err := r.do(ctx, http.MethodPost, "/orders", o, &created); err != nil {
		return domain.Order{}, err
	}
	return created, nil
}
