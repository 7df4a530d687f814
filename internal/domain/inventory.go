package domain

// LoaderState is the triple exposed by the inventory loader to its consumer.
// Error is nil when the last load succeeded or none has failed yet.
type LoaderState struct {
	Items   []InventoryItem `json:"items"`
	Loading bool            `json:"loading"`
	Error   *string         `json:"error"`
}

// NewLoaderState returns the state a freshly created loader starts with
func NewLoaderState() LoaderState {
	return LoaderState{
		Items:   []InventoryItem{},
		Loading: true,
	}
}

// Clone returns a copy whose Items slice and Error pointer are not shared
func (s LoaderState) Clone() LoaderState {
	out := LoaderState{Loading: s.Loading}
	out.Items = make([]InventoryItem, len(s.Items))
	copy(out.Items, s.Items)
	if s.Error != nil {
		msg := *s.Error
		out.Error = &msg
	}
	return out
}

// ErrorMessage returns the error string, or "" when there is none
func (s LoaderState) ErrorMessage() string {
	if s.Error == nil {
		return ""
	}
	return *s.Error
}
