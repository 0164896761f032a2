package services_test

import (
	"testing"
	"time"

	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"bakehouse/internal/domain"
	"bakehouse/internal/repos"
	"bakehouse/internal/reports"
	"bakehouse/internal/services"
)

func TestOrderFlow_CreateListReport(t *testing.T) {
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	itemRepo := repos.NewItemRepo(db)
	orderRepo := repos.NewOrderRepo(db)
	orderSvc := services.NewOrderService(orderRepo)
	reportSvc := services.NewReportService(itemRepo, orderRepo)

	created, err := orderSvc.Create(domain.Order{
		InvoiceNumber: "INV-20250301-123",
		Items: []domain.OrderLine{
			{ItemID: 2, Name: "Cappuccino", Category: "Coffee", Price: 50, Quantity: 2},
			{ItemID: 1, Name: "Masala Chai", Category: "Tea", Price: 15, Quantity: 1},
		},
		Subtotal: 115, Discount: 11.5, Tax: 5.175, Total: 108.675,
	})
	if err != nil {
		t.Fatal(err)
	}
	if created.ID != 1 {
		t.Fatalf("want id 1, got %d", created.ID)
	}
	if created.Timestamp.IsZero() {
		t.Fatal("timestamp must be store-assigned")
	}
	if created.CustomerName != domain.WalkInCustomer {
		t.Fatalf("blank customer must default, got %q", created.CustomerName)
	}

	// line items survive the JSON column round trip
	listed, err := orderSvc.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(listed) != 1 || len(listed[0].Items) != 2 {
		t.Fatalf("bad order list: %+v", listed)
	}
	if listed[0].Items[0].Name != "Cappuccino" || listed[0].Items[0].Quantity != 2 {
		t.Fatalf("line snapshot corrupted: %+v", listed[0].Items)
	}
	if listed[0].Total != 108.675 {
		t.Fatalf("frozen total changed: %v", listed[0].Total)
	}

	rep, err := reportSvc.Build(reports.Filter{})
	if err != nil {
		t.Fatal(err)
	}
	if rep.Summary.OrderCount != 1 || rep.Summary.ItemsSold != 3 {
		t.Fatalf("bad summary: %+v", rep.Summary)
	}
	if len(rep.TopItems) != 2 || rep.TopItems[0].Name != "Cappuccino" {
		t.Fatalf("bad top items: %+v", rep.TopItems)
	}
	if rep.CategoryRevenue["Coffee"] != 100 || rep.CategoryRevenue["Tea"] != 15 {
		t.Fatalf("bad category revenue: %v", rep.CategoryRevenue)
	}

	dash, err := reportSvc.Dashboard()
	if err != nil {
		t.Fatal(err)
	}
	if dash.TotalOrders != 1 || dash.ActiveItems != 10 {
		t.Fatalf("bad dashboard: %+v", dash)
	}
	if dash.TodayRevenue != 108.675 {
		t.Fatalf("today's order must count, got %v", dash.TodayRevenue)
	}

	// category filter keeps only orders with a matching line
	start := time.Now().Add(-time.Hour)
	rep2, err := reportSvc.Build(reports.Filter{Start: &start, Category: "Tea"})
	if err != nil {
		t.Fatal(err)
	}
	if rep2.Summary.OrderCount != 1 {
		t.Fatalf("want the order to pass the Tea filter: %+v", rep2.Summary)
	}
	rep3, err := reportSvc.Build(reports.Filter{Category: "Cake"})
	if err != nil {
		t.Fatal(err)
	}
	if rep3.Summary.OrderCount != 0 {
		t.Fatalf("want no Cake orders: %+v", rep3.Summary)
	}
}
