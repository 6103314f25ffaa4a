package entity

// Location is a physical address owned by exactly one Event or Profile reference.
// Rows are created per add/edit call rather than shared between owners.
type Location struct {
	ID      int64  `json:"id"`      // Database identifier, zero while unpersisted.
	Street  string `json:"street"`  // Street name.
	Number  int    `json:"number"`  // House or building number.
	City    string `json:"city"`    // City name.
	Country string `json:"country"` // Country name.
}
