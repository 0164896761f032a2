package reports

import (
	"fmt"
	"io"
	"strings"

	"bakehouse/internal/domain"
)

var csvHeader = []string{
	"Invoice Number", "Date", "Customer", "Items", "Quantity",
	"Subtotal", "Discount", "Tax", "Total",
}

// WriteCSV writes one row per order with every data field double-quoted.
// Amounts are rounded for display here only; stored values keep full
// precision. The Items column is a semicolon-joined "name (qty)" list.
func WriteCSV(w io.Writer, orders []domain.Order) error {
	if _, err := io.WriteString(w, strings.Join(csvHeader, ",")+"\n"); err != nil {
		return err
	}
	for _, o := range orders {
		parts := make([]string, 0, len(o.Items))
		for _, l := range o.Items {
			parts = append(parts, fmt.Sprintf("%s (%d)", l.Name, l.Quantity))
		}
		row := []string{
			o.InvoiceNumber,
			o.Timestamp.Local().Format("2006-01-02 15:04:05"),
			o.CustomerName,
			strings.Join(parts, "; "),
			fmt.Sprintf("%d", o.ItemCount()),
			fmt.Sprintf("%.2f", o.Subtotal),
			fmt.Sprintf("%.2f", o.Discount),
			fmt.Sprintf("%.2f", o.Tax),
			fmt.Sprintf("%.2f", o.Total),
		}
		if _, err := io.WriteString(w, joinQuoted(row)+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func joinQuoted(fields []string) string {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = `"` + strings.ReplaceAll(f, `"`, `""`) + `"`
	}
	return strings.Join(quoted, ",")
}
