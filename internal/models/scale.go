package models

// Scale is one entry of the scale catalog (scales.json)
type Scale struct {
	ID          string   `json:"id"`
	Key         string   `json:"key"`  // Root note
	Type        string   `json:"type"` // Interval table type code
	Name        string   `json:"name"`
	Notes       []string `json:"notes"`
	Intervals   []string `json:"intervals"`
	Description string   `json:"description,omitempty"`
}

// Identity returns the catalog key of the scale
func (s Scale) Identity() string {
	return s.ID
}
