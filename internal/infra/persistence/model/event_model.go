package model

import (
	"time"

	"eventer/internal/domain/entity"
)

// EventModel mirrors the 'events' table. LastEdit and DateCreated are
// server-assigned by the application, never client-supplied, so there are no
// GORM auto-time tags here.
type EventModel struct {
	ID              int64   `gorm:"primaryKey;autoIncrement"`
	Name            string  `gorm:"type:varchar(255);not null"`
	Date            time.Time
	Price           float64 `gorm:"not null"`
	MinParticipants int     `gorm:"not null"`
	MaxParticipants int     `gorm:"not null"`
	LocationID      int64
	Location        LocationModel `gorm:"foreignKey:LocationID"`
	CategoryID      int64
	Category        CategoryModel `gorm:"foreignKey:CategoryID"`
	LastEdit        time.Time
	DateCreated     time.Time
}

// TableName explicitly sets the table name for GORM.
func (EventModel) TableName() string {
	return "events"
}

// MembershipModel mirrors the 'event_participants' join table. The composite
// primary key makes the (profile, event) pair unique at the storage layer.
// Deleting an event cascades into its membership rows.
type MembershipModel struct {
	ProfileID int64        `gorm:"primaryKey;autoIncrement:false"`
	Profile   ProfileModel `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE"`
	EventID   int64        `gorm:"primaryKey;autoIncrement:false"`
	Event     EventModel   `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (MembershipModel) TableName() string {
	return "event_participants"
}

// FromEventDomain maps a pure domain event to its persistence model.
func FromEventDomain(event *entity.Event) *EventModel {
	return &EventModel{
		ID:              event.ID,
		Name:            event.Name,
		Date:            event.Date,
		Price:           event.Price,
		MinParticipants: event.MinParticipants,
		MaxParticipants: event.MaxParticipants,
		LocationID:      event.Location.ID,
		Location:        *FromLocationDomain(&event.Location),
		CategoryID:      event.Category.ID,
		Category:        *FromCategoryDomain(&event.Category),
		LastEdit:        event.LastEdit,
		DateCreated:     event.DateCreated,
	}
}

// ToEventDomain maps a persistence model back to a pure domain event.
func ToEventDomain(m *EventModel) *entity.Event {
	return &entity.Event{
		ID:              m.ID,
		Name:            m.Name,
		Date:            m.Date,
		Price:           m.Price,
		MinParticipants: m.MinParticipants,
		MaxParticipants: m.MaxParticipants,
		Location:        ToLocationDomain(&m.Location),
		Category:        ToCategoryDomain(&m.Category),
		LastEdit:        m.LastEdit,
		DateCreated:     m.DateCreated,
	}
}

// FromMembershipDomain maps a pure domain membership to its persistence model.
func FromMembershipDomain(membership *entity.Membership) *MembershipModel {
	return &MembershipModel{
		ProfileID: membership.ProfileID,
		EventID:   membership.EventID,
	}
}

// ToMembershipDomain maps a persistence model back to a pure domain membership.
func ToMembershipDomain(m *MembershipModel) *entity.Membership {
	return &entity.Membership{
		ProfileID: m.ProfileID,
		EventID:   m.EventID,
	}
}
