package domain

// InventoryItem represents a single ownable item returned for a case.
// Optional counters are pointers so an absent field stays absent when the
// item is re-encoded for a consumer.
type InventoryItem struct {
	ID         string `json:"id"`
	Type       string `json:"type"`
	Name       string `json:"name"`
	ImageURL   string `json:"imageUrl"`
	Count      *int   `json:"count,omitempty"`
	Charges    *int   `json:"charges,omitempty"`
	MaxCharges *int   `json:"maxCharges,omitempty"`
	Cooldown   *int   `json:"cooldown,omitempty"`
}

// InventoryResponse is the payload shape served by the inventory endpoint
type InventoryResponse struct {
	Inventory []InventoryItem `json:"inventory"`
}

// IntPtr returns a pointer to v. Handy for building items with optional counters.
func IntPtr(v int) *int {
	return &v
}
