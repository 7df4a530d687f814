package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FilterCategory is a UI-level tag used to narrow the displayed inventory
type FilterCategory string

const (
	FilterAll    FilterCategory = "all"
	FilterArmor  FilterCategory = "armor"
	FilterWeapon FilterCategory = "weapon"
	FilterMisc   FilterCategory = "misc"
)

var filterCategories = []FilterCategory{FilterAll, FilterArmor, FilterWeapon, FilterMisc}

// AllFilterCategories returns the closed set of categories in display order
func AllFilterCategories() []FilterCategory {
	out := make([]FilterCategory, len(filterCategories))
	copy(out, filterCategories)
	return out
}

// IsValidFilterCategory checks if a filter string is valid (empty string is valid = no filter)
func IsValidFilterCategory(filter string) bool {
	if filter == "" {
		return true
	}
	for _, c := range filterCategories {
		if string(c) == filter {
			return true
		}
	}
	return false
}

// Label returns the display label for the category, e.g. "Weapon"
func (c FilterCategory) Label() string {
	return cases.Title(language.English).String(string(c))
}

// Matches reports whether an item belongs to the category, comparing the
// item type case-insensitively. FilterAll matches everything.
func (c FilterCategory) Matches(item InventoryItem) bool {
	if c == FilterAll || c == "" {
		return true
	}
	return strings.EqualFold(item.Type, string(c))
}

// FilterItems returns the items matching the category, preserving order
func FilterItems(items []InventoryItem, c FilterCategory) []InventoryItem {
	out := make([]InventoryItem, 0, len(items))
	for _, item := range items {
		if c.Matches(item) {
			out = append(out, item)
		}
	}
	return out
}
