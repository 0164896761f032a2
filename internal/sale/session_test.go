package sale_test

import (
	"context"
	"errors"
	"math"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"

	"bakehouse/internal/domain"
	"bakehouse/internal/sale"
	"bakehouse/internal/store"
)

var invoicePattern = regexp.MustCompile(`^INV-\d{8}-\d{3}$`)

func chai() domain.Item {
	return domain.Item{ID: 1, Name: "Masala Chai", Category: "Tea", Price: 15, Status: domain.StatusActive}
}

func cake() domain.Item {
	return domain.Item{ID: 5, Name: "Chocolate Cake", Category: "Cake", Price: 250, Status: domain.StatusActive}
}

func TestNewSessionAssignsAuditID(t *testing.T) {
	a, b := sale.NewSession(), sale.NewSession()
	if _, err := uuid.Parse(a.ID); err != nil {
		t.Fatalf("session id must be a uuid: %q", a.ID)
	}
	if a.ID == b.ID {
		t.Fatalf("session ids must be unique, both %q", a.ID)
	}

	id := a.ID
	a.Add(chai())
	a.Clear()
	if a.ID != id {
		t.Fatalf("audit identity must survive Clear: %q vs %q", a.ID, id)
	}
}

func TestNewInvoiceNumberFormat(t *testing.T) {
	now, _ := time.Parse("2006-01-02", "2025-03-07")
	n := sale.NewInvoiceNumber(now)
	if !invoicePattern.MatchString(n) {
		t.Fatalf("bad invoice number %q", n)
	}
	if n[:12] != "INV-20250307" {
		t.Fatalf("date prefix wrong: %q", n)
	}
}

func TestSession_AddMergesLines(t *testing.T) {
	s := sale.NewSession()
	s.Add(chai())
	s.Add(chai())
	s.Add(cake())
	if len(s.Lines) != 2 {
		t.Fatalf("want 2 lines, got %d", len(s.Lines))
	}
	if s.Lines[0].Quantity != 2 {
		t.Fatalf("same item must merge into one line, got qty %d", s.Lines[0].Quantity)
	}
}

func TestSession_QuantityEdges(t *testing.T) {
	s := sale.NewSession()
	s.Add(chai())

	s.SetQuantity(1, 0) // clamped to 1
	if s.Lines[0].Quantity != 1 {
		t.Fatalf("set to zero must clamp to 1, got %d", s.Lines[0].Quantity)
	}

	s.Adjust(1, 3)
	if s.Lines[0].Quantity != 4 {
		t.Fatalf("want 4, got %d", s.Lines[0].Quantity)
	}

	// decrement to zero removes the line instead of keeping qty 0
	s.Adjust(1, -4)
	if len(s.Lines) != 0 {
		t.Fatalf("decrement to zero must remove the line: %+v", s.Lines)
	}
}

func TestSession_Totals(t *testing.T) {
	s := sale.NewSession()
	s.Add(cake())
	s.Add(chai())
	s.DiscountPercent = 10

	tt := s.Totals()
	if math.Abs(tt.Subtotal-265) > 1e-9 {
		t.Fatalf("want subtotal 265, got %v", tt.Subtotal)
	}
	if math.Abs(tt.Total-((265-26.5)*1.05)) > 1e-9 {
		t.Fatalf("want discounted+taxed total, got %v", tt.Total)
	}
}

func TestSession_CheckoutPersistsAndResets(t *testing.T) {
	dir := t.TempDir()
	st, err := store.NewLocal(dir)
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()

	s := sale.NewSession()
	invoice := s.InvoiceNumber
	s.Add(chai())
	s.Add(chai())
	s.DiscountPercent = 10

	o, err := s.Checkout(ctx, st)
	if err != nil {
		t.Fatal(err)
	}
	if o.ID != 1 || o.Timestamp.IsZero() {
		t.Fatalf("store must assign id and timestamp: %+v", o)
	}
	if o.InvoiceNumber != invoice {
		t.Fatalf("invoice number must carry over: %q vs %q", o.InvoiceNumber, invoice)
	}
	if o.CustomerName != domain.WalkInCustomer {
		t.Fatalf("blank customer must default, got %q", o.CustomerName)
	}
	if math.Abs(o.Total-((30-3)*1.05)) > 1e-9 {
		t.Fatalf("frozen total wrong: %v", o.Total)
	}

	// session reset: empty cart, zero discount, fresh invoice number
	if len(s.Lines) != 0 || s.DiscountPercent != 0 {
		t.Fatalf("session must reset on save: %+v", s)
	}
	if !invoicePattern.MatchString(s.InvoiceNumber) {
		t.Fatalf("new invoice number malformed: %q", s.InvoiceNumber)
	}

	orders, err := st.ListOrders(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(orders) != 1 {
		t.Fatalf("order not persisted, got %d", len(orders))
	}
}

func TestSession_CheckoutEmptyCart(t *testing.T) {
	st, err := store.NewLocal(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	s := sale.NewSession()
	if _, err := s.Checkout(context.Background(), st); !errors.Is(err, sale.ErrEmptyCart) {
		t.Fatalf("want ErrEmptyCart, got %v", err)
	}
}
