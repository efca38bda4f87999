package items

import "strings"

// Filter keeps the single-valued category/status constraints of the
// source's item filters (unlike orders/staff, which take sets).
type Filter struct {
	Category   Category `form:"category" json:"category,omitempty"`
	Status     Status   `form:"status" json:"status,omitempty"`
	MinPrice   float64  `form:"minPrice" json:"minPrice,omitempty"`
	MaxPrice   float64  `form:"maxPrice" json:"maxPrice,omitempty"`
	SearchTerm string   `form:"searchTerm" json:"searchTerm,omitempty"`
}

func (f Filter) Match(it Item) bool {
	if f.Category != "" && it.Category != f.Category {
		return false
	}
	if f.Status != "" && it.Status != f.Status {
		return false
	}
	if f.MinPrice != 0 && it.Price < f.MinPrice {
		return false
	}
	if f.MaxPrice != 0 && it.Price > f.MaxPrice {
		return false
	}
	if f.SearchTerm != "" {
		term := strings.ToLower(f.SearchTerm)
		return strings.Contains(strings.ToLower(it.Name), term) ||
			strings.Contains(strings.ToLower(it.Description), term) ||
			strings.Contains(strings.ToLower(it.Specifications.Material), term)
	}
	return true
}

func Apply(list []Item, f Filter) []Item {
	out := make([]Item, 0, len(list))
	for _, it := range list {
		if f.Match(it) {
			out = append(out, it)
		}
	}
	return out
}
