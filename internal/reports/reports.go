// Package reports recomputes sales rollups from the full order log on
// every call. Order volumes are single-store-operator scale, so there is
// no caching layer.
package reports

import (
	"sort"
	"time"

	"bakehouse/internal/domain"
)

// Filter narrows the order log. Nil bounds mean unbounded; both bounds
// are inclusive. Category "" or "all" matches every order; otherwise an
// order passes when at least one of its lines carries the category.
type Filter struct {
	Start    *time.Time
	End      *time.Time
	Category string
}

// Apply returns the orders passing the filter, in input order.
func Apply(orders []domain.Order, f Filter) []domain.Order {
	out := make([]domain.Order, 0, len(orders))
	for _, o := range orders {
		if f.Start != nil && o.Timestamp.Before(*f.Start) {
			continue
		}
		if f.End != nil && o.Timestamp.After(*f.End) {
			continue
		}
		if f.Category != "" && f.Category != "all" && !hasCategory(o, f.Category) {
			continue
		}
		out = append(out, o)
	}
	return out
}

func hasCategory(o domain.Order, category string) bool {
	for _, l := range o.Items {
		if l.Category == category {
			return true
		}
	}
	return false
}

// Summary are the headline numbers over a set of orders.
type Summary struct {
	TotalRevenue float64 `json:"totalRevenue"`
	OrderCount   int     `json:"orderCount"`
	AvgOrder     float64 `json:"avgOrder"`
	ItemsSold    int     `json:"itemsSold"`
}

func Summarize(orders []domain.Order) Summary {
	var s Summary
	for _, o := range orders {
		s.TotalRevenue += o.Total
		s.OrderCount++
		s.ItemsSold += o.ItemCount()
	}
	if s.OrderCount > 0 {
		s.AvgOrder = s.TotalRevenue / float64(s.OrderCount)
	}
	return s
}

// ItemSales is a per-item-name rollup of quantity and revenue.
type ItemSales struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Quantity int     `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

// TopItems groups order lines by item name, sums quantity and revenue,
// and returns the top n by quantity. Ties keep first-encounter order.
func TopItems(orders []domain.Order, n int) []ItemSales {
	byName := map[string]int{}
	sales := []ItemSales{}
	for _, o := range orders {
		for _, l := range o.Items {
			i, ok := byName[l.Name]
			if !ok {
				i = len(sales)
				byName[l.Name] = i
				sales = append(sales, ItemSales{Name: l.Name, Category: l.Category})
			}
			sales[i].Quantity += l.Quantity
			sales[i].Revenue += l.Price * float64(l.Quantity)
		}
	}
	sort.SliceStable(sales, func(a, b int) bool {
		return sales[a].Quantity > sales[b].Quantity
	})
	if len(sales) > n {
		sales = sales[:n]
	}
	return sales
}

// DailyPoint is one calendar day's revenue.
type DailyPoint struct {
	Date    string  `json:"date"` // YYYY-MM-DD, local calendar
	Revenue float64 `json:"revenue"`
}

// DailyRevenue buckets order totals by local calendar date and returns
// the 7 days ending at now, oldest first, zero-filled for days without
// sales.
func DailyRevenue(orders []domain.Order, now time.Time) []DailyPoint {
	byDay := map[string]float64{}
	for _, o := range orders {
		byDay[o.Timestamp.Local().Format("2006-01-02")] += o.Total
	}
	points := make([]DailyPoint, 0, 7)
	for i := 6; i >= 0; i-- {
		day := now.AddDate(0, 0, -i).Local().Format("2006-01-02")
		points = append(points, DailyPoint{Date: day, Revenue: byDay[day]})
	}
	return points
}

// CategoryRevenue sums line revenue (price * quantity) per category.
func CategoryRevenue(orders []domain.Order) map[string]float64 {
	out := map[string]float64{}
	for _, o := range orders {
		for _, l := range o.Items {
			out[l.Category] += l.Price * float64(l.Quantity)
		}
	}
	return out
}

// Report bundles everything one reporting call produces.
type Report struct {
	Summary         Summary            `json:"summary"`
	TopItems        []ItemSales        `json:"topItems"`
	DailyRevenue    []DailyPoint       `json:"dailyRevenue"`
	CategoryRevenue map[string]float64 `json:"categoryRevenue"`
	Orders          []domain.Order     `json:"orders"`
}

// Build filters the log and computes all rollups in one pass set.
func Build(orders []domain.Order, f Filter, now time.Time) Report {
	filtered := Apply(orders, f)
	return Report{
		Summary:         Summarize(filtered),
		TopItems:        TopItems(filtered, 5),
		DailyRevenue:    DailyRevenue(filtered, now),
		CategoryRevenue: CategoryRevenue(filtered),
		Orders:          filtered,
	}
}
