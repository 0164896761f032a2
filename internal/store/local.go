package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"bakehouse/internal/domain"
)

// Fixed document keys in the local namespace, one serialized array each.
const (
	itemsKey  = "bakery_items.json"
	ordersKey = "bakery_orders.json"
)

// Local keeps each collection as one JSON document on disk and does a
// full read-modify-write on every mutating call. A per-collection mutex
// serializes writers within this process; concurrent writers from other
// processes can still lose updates (accepted, single-operator tool).
type Local struct {
	dir string

	itemsMu  sync.Mutex
	ordersMu sync.Mutex

	now func() time.Time
}

// NewLocal opens the local store rooted at dir, creating it if needed
// and seeding the default catalog when no items document exists yet.
func NewLocal(dir string) (*Local, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("local store: %w", err)
	}
	s := &Local{dir: dir, now: time.Now}
	if _, err := os.Stat(s.path(itemsKey)); os.IsNotExist(err) {
		if err := writeDoc(s.path(itemsKey), domain.DefaultItems()); err != nil {
			return nil, err
		}
	}
	if _, err := os.Stat(s.path(ordersKey)); os.IsNotExist(err) {
		if err := writeDoc(s.path(ordersKey), []domain.Order{}); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *Local) path(key string) string { return filepath.Join(s.dir, key) }

func readDoc[T any](path string) ([]T, error) {
	b, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("local store: read %s: %w", filepath.Base(path), err)
	}
	var out []T
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("local store: decode %s: %w", filepath.Base(path), err)
	}
	return out, nil
}

func writeDoc(path string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

func (s *Local) ListItems(_ context.Context) ([]domain.Item, error) {
	s.itemsMu.Lock()
	defer s.itemsMu.Unlock()
	return readDoc[domain.Item](s.path(itemsKey))
}

func (s *Local) GetItem(_ context.Context, id int64) (domain.Item, error) {
	s.itemsMu.Lock()
	defer s.itemsMu.Unlock()
	items, err := readDoc[domain.Item](s.path(itemsKey))
	if err != nil {
		return domain.Item{}, err
	}
	for _, it := range items {
		if it.ID == id {
			return it, nil
		}
	}
	return domain.Item{}, ErrNotFound
}

func (s *Local) CreateItem(_ context.Context, it domain.Item) (domain.Item, error) {
	if err := CheckItem(it); err != nil {
		return domain.Item{}, err
	}
	if it.Status == "" {
		it.Status = domain.StatusActive
	}
	s.itemsMu.Lock()
	defer s.itemsMu.Unlock()
	items, err := readDoc[domain.Item](s.path(itemsKey))
	if err != nil {
		return domain.Item{}, err
	}
	it.ID = nextID(items, func(x domain.Item) int64 { return x.ID })
	items = append(items, it)
	if err := writeDoc(s.path(itemsKey), items); err != nil {
		return domain.Item{}, err
	}
	return it, nil
}

func (s *Local) UpdateItem(_ context.Context, id int64, patch domain.ItemPatch) (domain.Item, error) {
	if err := CheckPatch(patch); err != nil {
		return domain.Item{}, err
	}
	s.itemsMu.Lock()
	defer s.itemsMu.Unlock()
	items, err := readDoc[domain.Item](s.path(itemsKey))
	if err != nil {
		return domain.Item{}, err
	}
	for i, it := range items {
		if it.ID != id {
			continue
		}
		items[i] = patch.Apply(it)
		if err := writeDoc(s.path(itemsKey), items); err != nil {
			return domain.Item{}, err
		}
		return items[i], nil
	}
	return domain.Item{}, ErrNotFound
}

func (s *Local) DeleteItem(_ context.Context, id int64) error {
	s.itemsMu.Lock()
	defer s.itemsMu.Unlock()
	items, err := readDoc[domain.Item](s.path(itemsKey))
	if err != nil {
		return err
	}
	kept := items[:0]
	for _, it := range items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	if len(kept) == len(items) {
		return ErrNotFound
	}
	return writeDoc(s.path(itemsKey), kept)
}

func (s *Local) ListOrders(_ context.Context) ([]domain.Order, error) {
	s.ordersMu.Lock()
	defer s.ordersMu.Unlock()
	return readDoc[domain.Order](s.path(ordersKey))
}

func (s *Local) CreateOrder(_ context.Context, o domain.Order) (domain.Order, error) {
	s.ordersMu.Lock()
	defer s.ordersMu.Unlock()
	orders, err := readDoc[domain.Order](s.path(ordersKey))
	if err != nil {
		return domain.Order{}, err
	}
	o.ID = nextID(orders, func(x domain.Order) int64 { return x.ID })
	o.Timestamp = s.now()
	if o.CustomerName == "" {
		o.CustomerName = domain.WalkInCustomer
	}
	if o.Items == nil {
		o.Items = []domain.OrderLine{}
	}
	orders = append(orders, o)
	if err := writeDoc(s.path(ordersKey), orders); err != nil {
		return domain.Order{}, err
	}
	return o, nil
}

// nextID assigns max existing id + 1, or 1 on an empty collection.
func nextID[T any](xs []T, id func(T) int64) int64 {
	var maxID int64
	for _, x := range xs {
		if v := id(x); v > maxID {
			maxID = v
		}
	}
	return maxID + 1
}
