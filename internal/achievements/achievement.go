package achievements

import "time"

// Status is a catalog entry together with whether the user earned it.
type Status struct {
	Code     string     `json:"code"`
	Title    string     `json:"title"`
	Icon     string     `json:"icon"`
	Earned   bool       `json:"earned"`
	EarnedAt *time.Time `json:"earnedAt,omitempty"`
}
