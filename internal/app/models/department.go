package models

// Department represents an academic sub-unit that owns programs
type Department struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Code string `json:"code,omitempty"`
}
