package reports

import (
	"sort"
	"time"

	"bakehouse/internal/domain"
)

// Dashboard is the landing-page snapshot: lifetime numbers plus today's
// take and the current sellers.
type Dashboard struct {
	TotalSales   float64        `json:"totalSales"`
	TotalOrders  int            `json:"totalOrders"`
	TodayRevenue float64        `json:"todayRevenue"`
	ActiveItems  int            `json:"activeItems"`
	TopItems     []ItemSales    `json:"topItems"`
	RecentOrders []domain.Order `json:"recentOrders"`
	DailyRevenue []DailyPoint   `json:"dailyRevenue"`
}

// BuildDashboard computes the dashboard over the whole catalog and order
// log. Recent orders are newest first, capped at 10.
func BuildDashboard(items []domain.Item, orders []domain.Order, now time.Time) Dashboard {
	d := Dashboard{
		TotalOrders:  len(orders),
		ActiveItems:  len(domain.ActiveItems(items)),
		TopItems:     TopItems(orders, 5),
		DailyRevenue: DailyRevenue(orders, now),
	}
	today := now.Local().Format("2006-01-02")
	for _, o := range orders {
		d.TotalSales += o.Total
		if o.Timestamp.Local().Format("2006-01-02") == today {
			d.TodayRevenue += o.Total
		}
	}

	recent := make([]domain.Order, len(orders))
	copy(recent, orders)
	sort.SliceStable(recent, func(a, b int) bool {
		return recent[a].Timestamp.After(recent[b].Timestamp)
	})
	if len(recent) > 10 {
		recent = recent[:10]
	}
	d.RecentOrders = recent
	return d
}
