package entity

// Profile is the person-facing identity linked one-to-one to a User account.
// A user without a completed profile cannot join events.
type Profile struct {
	ID        int64    `json:"id"`        // Database identifier, zero while unpersisted.
	UserID    int64    `json:"userId"`    // Owning user account.
	FirstName string   `json:"firstName"` // Given name.
	LastName  string   `json:"lastName"`  // Family name.
	Age       int      `json:"age"`       // Age in years.
	Location  Location `json:"location"`  // Home address.
	Category  Category `json:"category"`  // Preferred event category.
}

// Membership records that a Profile has joined an Event. The (ProfileID,
// EventID) pair is unique; existence of a row means "joined". No further
// attributes are modeled.
type Membership struct {
	ProfileID int64 `json:"profileId"`
	EventID   int64 `json:"eventId"`
}
