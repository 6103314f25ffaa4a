package entity

// Category classifies an event or a profile's interest.
// Like Location, rows are created per add/edit call rather than deduplicated.
type Category struct {
	ID          int64  `json:"id"`          // Database identifier, zero while unpersisted.
	Name        string `json:"name"`        // Category name, e.g. "Concert".
	Description string `json:"description"` // Short human-readable description.
}
