package domain

import "time"

// WalkInCustomer is the customer name recorded when none is given.
const WalkInCustomer = "Walk-in Customer"

// OrderLine is a point-in-time snapshot of a catalog item at sale time.
// Later catalog edits or deletions never touch it.
type OrderLine struct {
	ItemID   int64   `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Order is an immutable record of one completed sale. The store assigns
// id and timestamp on insert; totals are computed once at save time and
// frozen.
type Order struct {
	ID            int64       `json:"id"`
	InvoiceNumber string      `json:"invoiceNumber"`
	CustomerName  string      `json:"customerName"`
	Items         []OrderLine `json:"items"`
	Subtotal      float64     `json:"subtotal"`
	Discount      float64     `json:"discount"`
	Tax           float64     `json:"tax"`
	Total         float64     `json:"total"`
	Timestamp     time.Time   `json:"timestamp"`
}

// ItemCount sums line quantities.
func (o Order) ItemCount() int {
	n := 0
	for _, l := range o.Items {
		n += l.Quantity
	}
	return n
}
