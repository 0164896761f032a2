package repos

import (
	"encoding/json"
	"time"

	"github.com/jmoiron/sqlx"

	"bakehouse/internal/domain"
)

type OrderRepo struct{ db *sqlx.DB }

func NewOrderRepo(db *sqlx.DB) *OrderRepo { return &OrderRepo{db: db} }

type orderRow struct {
	ID            int64   `db:"id"`
	InvoiceNumber string  `db:"invoice_number"`
	CustomerName  string  `db:"customer_name"`
	ItemsJSON     string  `db:"items_json"`
	Subtotal      float64 `db:"subtotal"`
	Discount      float64 `db:"discount"`
	Tax           float64 `db:"tax"`
	Total         float64 `db:"total"`
	CreatedAt     string  `db:"created_at"`
}

func (row orderRow) toDomain() (domain.Order, error) {
	var lines []domain.OrderLine
	if err := json.Unmarshal([]byte(row.ItemsJSON), &lines); err != nil {
		return domain.Order{}, err
	}
	ts, err := time.Parse(time.RFC3339Nano, row.CreatedAt)
	if err != nil {
		return domain.Order{}, err
	}
	return domain.Order{
		ID:            row.ID,
		InvoiceNumber: row.InvoiceNumber,
		CustomerName:  row.CustomerName,
		Items:         lines,
		Subtotal:      row.Subtotal,
		Discount:      row.Discount,
		Tax:           row.Tax,
		Total:         row.Total,
		Timestamp:     ts,
	}, nil
}

// List returns the full order log in storage order, line items decoded
// from their JSON column.
func (r *OrderRepo) List() ([]domain.Order, error) {
	var rows []orderRow
	err := r.db.Select(&rows, `
	  SELECT id, invoice_number, COALESCE(customer_name,'') AS customer_name,
	         items_json, subtotal, discount, tax, total, created_at
	  FROM orders
	  ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Order, 0, len(rows))
	for _, row := range rows {
		o, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, nil
}

// Create appends the order, assigning id and creation timestamp here.
// The log is append-only; there is no update or delete.
func (r *OrderRepo) Create(o domain.Order) (domain.Order, error) {
	itemsJSON, err := json.Marshal(o.Items)
	if err != nil {
		return domain.Order{}, err
	}
	o.Timestamp = time.Now().UTC()
	res, err := r.db.Exec(`
	  INSERT INTO orders(invoice_number, customer_name, items_json, subtotal, discount, tax, total, created_at)
	  VALUES(?, ?, ?, ?, ?, ?, ?, ?)
	`, o.InvoiceNumber, o.CustomerName, string(itemsJSON), o.Subtotal, o.Discount, o.Tax, o.Total,
		o.Timestamp.Format(time.RFC3339Nano))
	if err != nil {
		return domain.Order{}, err
	}
	o.ID, err = res.LastInsertId()
	return o, err
}
