package models

// HouseStanding is a house's aggregated medal counts and point total.
// Derived on demand from the full event history — never stored in DB.
// Rank is positional in the returned slice (index + 1), not a field.
type HouseStanding struct {
	House       House `json:"house"`
	Gold        int   `json:"gold"`
	Silver      int   `json:"silver"`
	Bronze      int   `json:"bronze"`
	TotalPoints int   `json:"total_points"`
}
