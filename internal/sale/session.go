// Package sale holds the mutable state of one in-progress sale: the
// cart, the discount, the customer, and the invoice number. The UI
// controller owns exactly one Session at a time and it resets itself
// after a successful checkout.
package sale

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"bakehouse/internal/billing"
	"bakehouse/internal/domain"
	applog "bakehouse/internal/log"
	"bakehouse/internal/store"
)

// ErrEmptyCart rejects checkout of a cart with no lines.
var ErrEmptyCart = errors.New("cart is empty")

type Session struct {
	ID              string // audit identity; survives Clear across sales
	InvoiceNumber   string
	CustomerName    string
	DiscountPercent float64
	Lines           []domain.OrderLine
}

func NewSession() *Session {
	return &Session{
		ID:            uuid.NewString(),
		InvoiceNumber: NewInvoiceNumber(time.Now()),
	}
}

// NewInvoiceNumber builds the display identifier: date prefix plus a
// 3-digit random suffix. Collisions are possible and accepted; the
// store-assigned order id is the real key.
func NewInvoiceNumber(now time.Time) string {
	return fmt.Sprintf("INV-%s-%03d", now.Format("20060102"), rand.Intn(1000))
}

// Add puts one unit of the item in the cart, merging with an existing
// line for the same item.
func (s *Session) Add(it domain.Item) {
	for i := range s.Lines {
		if s.Lines[i].ItemID == it.ID {
			s.Lines[i].Quantity++
			return
		}
	}
	s.Lines = append(s.Lines, domain.OrderLine{
		ItemID:   it.ID,
		Name:     it.Name,
		Category: it.Category,
		Price:    it.Price,
		Quantity: 1,
	})
}

// SetQuantity pins a line's quantity, clamping to at least 1.
func (s *Session) SetQuantity(itemID int64, qty int) {
	if qty < 1 {
		qty = 1
	}
	for i := range s.Lines {
		if s.Lines[i].ItemID == itemID {
			s.Lines[i].Quantity = qty
			return
		}
	}
}

// Adjust changes a line's quantity by delta. Decrementing to zero or
// below removes the line instead.
func (s *Session) Adjust(itemID int64, delta int) {
	for i := range s.Lines {
		if s.Lines[i].ItemID != itemID {
			continue
		}
		s.Lines[i].Quantity += delta
		if s.Lines[i].Quantity <= 0 {
			s.Remove(itemID)
		}
		return
	}
}

func (s *Session) Remove(itemID int64) {
	kept := s.Lines[:0]
	for _, l := range s.Lines {
		if l.ItemID != itemID {
			kept = append(kept, l)
		}
	}
	s.Lines = kept
}

// Clear drops the cart and starts a fresh invoice.
func (s *Session) Clear() {
	s.Lines = nil
	s.CustomerName = ""
	s.DiscountPercent = 0
	s.InvoiceNumber = NewInvoiceNumber(time.Now())
}

// Totals computes the running bill for display. Nothing is frozen until
// checkout.
func (s *Session) Totals() billing.Totals {
	lines := make([]billing.Line, len(s.Lines))
	for i, l := range s.Lines {
		lines[i] = billing.Line{Price: l.Price, Quantity: l.Quantity}
	}
	return billing.Calculate(lines, s.DiscountPercent)
}

// Checkout freezes the totals, persists the order through the given
// store, and resets the session on success. The store assigns id and
// timestamp.
func (s *Session) Checkout(ctx context.Context, st store.Store) (domain.Order, error) {
	if len(s.Lines) == 0 {
		return domain.Order{}, ErrEmptyCart
	}
	tt := s.Totals()
	customer := s.CustomerName
	if customer == "" {
		customer = domain.WalkInCustomer
	}
	o := domain.Order{
		InvoiceNumber: s.InvoiceNumber,
		CustomerName:  customer,
		Items:         append([]domain.OrderLine(nil), s.Lines...),
		Subtotal:      tt.Subtotal,
		Discount:      tt.Discount,
		Tax:           tt.Tax,
		Total:         tt.Total,
	}
	created, err := st.CreateOrder(ctx, o)
	if err != nil {
		return domain.Order{}, err
	}
	applog.Audit(nil, "sale.checkout", map[string]any{
		"session": s.ID,
		"order":   created.ID,
		"invoice": created.InvoiceNumber,
		"total":   created.Total,
	})
	s.Clear()
	return created, nil
}
