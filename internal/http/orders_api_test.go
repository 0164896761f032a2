package handlers_test

import (
	"net/http"
	"testing"

	"bakehouse/internal/domain"
)

func TestOrdersAPI_CreateAndList(t *testing.T) {
	app := newApp(t)

	resp := doJSON(t, app, "POST", "/api/orders", `{
		"invoiceNumber": "INV-20250301-042",
		"customerName": "Asha",
		"items": [
			{"id": 2, "name": "Cappuccino", "category": "Coffee", "price": 50, "quantity": 2},
			{"id": 1, "name": "Masala Chai", "category": "Tea", "price": 15, "quantity": 1}
		],
		"subtotal": 115, "discount": 11.5, "tax": 5.175, "total": 108.675
	}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("create: want 200, got %d", resp.StatusCode)
	}
	created := decode[domain.Order](t, resp)
	if created.ID != 1 {
		t.Fatalf("want id 1, got %d", created.ID)
	}
	if created.Timestamp.IsZero() {
		t.Fatal("timestamp must be assigned by the service, not the caller")
	}
	if created.InvoiceNumber != "INV-20250301-042" || created.Total != 108.675 {
		t.Fatalf("order fields must pass through verbatim: %+v", created)
	}

	resp = doJSON(t, app, "GET", "/api/orders", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list: want 200, got %d", resp.StatusCode)
	}
	orders := decode[[]domain.Order](t, resp)
	if len(orders) != 1 {
		t.Fatalf("want 1 order, got %d", len(orders))
	}
	// items come back as a decoded nested array, not a string
	if len(orders[0].Items) != 2 || orders[0].Items[0].Name != "Cappuccino" {
		t.Fatalf("bad line items: %+v", orders[0].Items)
	}
}

func TestOrdersAPI_DefaultsCustomerName(t *testing.T) {
	app := newApp(t)
	resp := doJSON(t, app, "POST", "/api/orders",
		`{"invoiceNumber":"INV-20250301-001","items":[],"subtotal":0,"discount":0,"tax":0,"total":0}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("want 200, got %d", resp.StatusCode)
	}
	created := decode[domain.Order](t, resp)
	if created.CustomerName != "Walk-in Customer" {
		t.Fatalf("want default customer, got %q", created.CustomerName)
	}
}
