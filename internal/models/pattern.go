package models

// PatternInfo describes an interval pattern for the type listing endpoints
type PatternInfo struct {
	Code      string   `json:"code"`
	Name      string   `json:"name"`
	Offsets   []int    `json:"offsets"`
	Intervals []string `json:"intervals"`
}
