package domain_test

import (
	"testing"

	"bakehouse/internal/domain"
)

func menu() []domain.Item {
	return []domain.Item{
		{ID: 1, Name: "Masala Chai", Category: "Tea", Description: "Spiced Indian tea", Status: domain.StatusActive},
		{ID: 2, Name: "Cappuccino", Category: "Coffee", Description: "Espresso with foam", Status: domain.StatusActive},
		{ID: 3, Name: "Old Special", Category: "Cake", Description: "Retired", Status: domain.StatusInactive},
	}
}

func TestActiveItems(t *testing.T) {
	got := domain.ActiveItems(menu())
	if len(got) != 2 {
		t.Fatalf("want 2 active items, got %d", len(got))
	}
	for _, it := range got {
		if it.Status != domain.StatusActive {
			t.Fatalf("inactive item leaked: %+v", it)
		}
	}
}

func TestFilterItems(t *testing.T) {
	items := menu()

	if got := domain.FilterItems(items, "all", ""); len(got) != 3 {
		t.Fatalf("category 'all' must match everything, got %d", len(got))
	}
	if got := domain.FilterItems(items, "Tea", ""); len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("category filter wrong: %+v", got)
	}
	// search matches name or description, case-insensitive
	if got := domain.FilterItems(items, "", "ESPRESSO"); len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("description search wrong: %+v", got)
	}
	if got := domain.FilterItems(items, "Coffee", "chai"); len(got) != 0 {
		t.Fatalf("both filters must apply, got %+v", got)
	}
}

func TestItemPatch_ApplyPreservesID(t *testing.T) {
	name := "Ginger Chai"
	price := 18.0
	it := menu()[0]
	patched := domain.ItemPatch{Name: &name, Price: &price}.Apply(it)
	if patched.ID != it.ID {
		t.Fatalf("patch must never touch the id: %+v", patched)
	}
	if patched.Name != "Ginger Chai" || patched.Price != 18 {
		t.Fatalf("patched fields not applied: %+v", patched)
	}
	if patched.Category != it.Category || patched.Status != it.Status {
		t.Fatalf("omitted fields changed: %+v", patched)
	}
}
