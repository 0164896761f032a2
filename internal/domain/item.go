package domain

import "strings"

const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

// Item is a sellable catalog entry. IDs are assigned by the store on
// creation and never change afterwards.
type Item struct {
	ID          int64   `json:"id" db:"id"`
	Name        string  `json:"name" db:"name"`
	Category    string  `json:"category" db:"category"`
	Price       float64 `json:"price" db:"price"`
	Description string  `json:"description" db:"description"`
	Image       string  `json:"image" db:"image"`
	Status      string  `json:"status" db:"status"`
}

// ItemPatch lists exactly the fields an update may touch. Nil means
// "leave as is"; the id is never part of a patch.
type ItemPatch struct {
	Name        *string  `json:"name"`
	Category    *string  `json:"category"`
	Price       *float64 `json:"price"`
	Description *string  `json:"description"`
	Image       *string  `json:"image"`
	Status      *string  `json:"status"`
}

// Apply merges the patch onto a copy of the item, preserving its id.
func (p ItemPatch) Apply(it Item) Item {
	if p.Name != nil {
		it.Name = *p.Name
	}
	if p.Category != nil {
		it.Category = *p.Category
	}
	if p.Price != nil {
		it.Price = *p.Price
	}
	if p.Description != nil {
		it.Description = *p.Description
	}
	if p.Image != nil {
		it.Image = *p.Image
	}
	if p.Status != nil {
		it.Status = *p.Status
	}
	return it
}

// ActiveItems filters out items retired from sale. Inactive items stay in
// the catalog for historical order display but never show up on the menu.
func ActiveItems(items []Item) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if it.Status == StatusActive {
			out = append(out, it)
		}
	}
	return out
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

// FilterItems narrows a list by category and a case-insensitive search
// term over name and description. category "all" or "" matches everything.
func FilterItems(items []Item, category, term string) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if category != "" && category != "all" && it.Category != category {
			continue
		}
		if term != "" && !containsFold(it.Name, term) && !containsFold(it.Description, term) {
			continue
		}
		out = append(out, it)
	}
	return out
}
