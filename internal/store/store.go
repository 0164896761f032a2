// Package store defines the persistence contract shared by every
// backend and the local and remote implementations of it. All variants
// are behaviorally identical from the caller's perspective.
package store

import (
	"context"
	"errors"
	"fmt"
	"math"

	"bakehouse/internal/domain"
	"bakehouse/internal/validate"
)

// Store is the full capability set a backend must provide. Mutating
// catalog calls are atomic from the caller's perspective; the order log
// is append-only, so no order update or delete exists.
type Store interface {
	ListItems(ctx context.Context) ([]domain.Item, error)
	GetItem(ctx context.Context, id int64) (domain.Item, error)
	CreateItem(ctx context.Context, it domain.Item) (domain.Item, error)
	UpdateItem(ctx context.Context, id int64, patch domain.ItemPatch) (domain.Item, error)
	DeleteItem(ctx context.Context, id int64) error

	ListOrders(ctx context.Context) ([]domain.Order, error)
	CreateOrder(ctx context.Context, o domain.Order) (domain.Order, error)
}

// ErrNotFound reports a get/update/delete against a missing id.
var ErrNotFound = errors.New("not found")

// ValidationError rejects malformed input before anything is persisted.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// TransportError wraps a failed round trip of the remote variant. Reads
// degrade to empty results; writes surface this to the caller.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// IsTransport reports whether err came from a remote round trip.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// CheckItem rejects items with a blank or oversized name, an unknown
// status, or a price that is not a finite non-negative number. A blank
// status is allowed here and defaulted to Active by the backend. Every
// backend applies the same rules before persisting.
func CheckItem(it domain.Item) error {
	if _, ok := validate.Name(it.Name); !ok {
		return &ValidationError{Field: "name", Reason: "required, at most 100 characters"}
	}
	if it.Status != "" {
		if _, ok := validate.Status(it.Status); !ok {
			return &ValidationError{Field: "status", Reason: "must be Active or Inactive"}
		}
	}
	return checkPrice(it.Price)
}

// CheckPatch validates the fields a patch actually carries.
func CheckPatch(p domain.ItemPatch) error {
	if p.Name != nil {
		if _, ok := validate.Name(*p.Name); !ok {
			return &ValidationError{Field: "name", Reason: "required, at most 100 characters"}
		}
	}
	if p.Status != nil {
		if _, ok := validate.Status(*p.Status); !ok {
			return &ValidationError{Field: "status", Reason: "must be Active or Inactive"}
		}
	}
	if p.Price != nil {
		return checkPrice(*p.Price)
	}
	return nil
}

func checkPrice(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &ValidationError{Field: "price", Reason: "not a finite number"}
	}
	if v < 0 {
		return &ValidationError{Field: "price", Reason: "must be non-negative"}
	}
	return nil
}
