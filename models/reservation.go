package models

import (
	"time"

	"github.com/google/uuid"
)

// Kind tells which sort of subject a reservation holds.
type Kind string

const (
	KindRoom       Kind = "room"
	KindExperience Kind = "experience"
)

// Subject is the bookable entity a reservation is made against.
type Subject struct {
	Kind Kind   `json:"kind"`
	ID   string `json:"id"`
}

// Key identifies the subject across kinds, e.g. "room:42".
func (s Subject) Key() string {
	return string(s.Kind) + ":" + s.ID
}

// Reservation is an accepted claim by a user on a subject for a set of days.
type Reservation struct {
	ID             string    `bson:"id" json:"pk"`                                           // Unique reservation identifier (UUID)
	Kind           Kind      `bson:"kind" json:"kind"`                                       // "room" or "experience"
	RoomID         string    `bson:"room_id,omitempty" json:"room_id,omitempty"`             // Set when Kind is room
	ExperienceID   string    `bson:"experience_id,omitempty" json:"experience_id,omitempty"` // Set when Kind is experience
	UserID         string    `bson:"user_id" json:"user_id"`                                 // Guest who holds the reservation
	CheckIn        *Date     `bson:"check_in,omitempty" json:"check_in"`                     // Room reservations only
	CheckOut       *Date     `bson:"check_out,omitempty" json:"check_out"`                   // Room reservations only
	ExperienceTime *Date     `bson:"experience_time,omitempty" json:"experience_time"`       // Experience reservations only
	Guests         int       `bson:"guests" json:"guests"`                                   // Party size
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`                           // Acceptance time
}

// NewRoomReservation builds an unsaved room reservation with a fresh ID.
func NewRoomReservation(roomID, userID string, iv RoomInterval, guests int) Reservation {
	in, out := iv.CheckIn, iv.CheckOut
	return Reservation{
		ID:        uuid.New().String(),
		Kind:      KindRoom,
		RoomID:    roomID,
		UserID:    userID,
		CheckIn:   &in,
		CheckOut:  &out,
		Guests:    guests,
		CreatedAt: time.Now().UTC(),
	}
}

// NewExperienceReservation builds an unsaved experience reservation with a fresh ID.
func NewExperienceReservation(experienceID, userID string, slot ExperienceSlot, guests int) Reservation {
	day := slot.Day
	return Reservation{
		ID:             uuid.New().String(),
		Kind:           KindExperience,
		ExperienceID:   experienceID,
		UserID:         userID,
		ExperienceTime: &day,
		Guests:         guests,
		CreatedAt:      time.Now().UTC(),
	}
}

// Subject returns the entity the reservation is held against.
func (r Reservation) Subject() Subject {
	if r.Kind == KindExperience {
		return Subject{Kind: KindExperience, ID: r.ExperienceID}
	}
	return Subject{Kind: KindRoom, ID: r.RoomID}
}

// Occupancy returns the reservation's days as a tagged variant.
// A record missing its date fields yields nil.
func (r Reservation) Occupancy() Occupancy {
	switch r.Kind {
	case KindRoom:
		if r.CheckIn != nil && r.CheckOut != nil {
			return RoomInterval{CheckIn: *r.CheckIn, CheckOut: *r.CheckOut}
		}
	case KindExperience:
		if r.ExperienceTime != nil {
			return ExperienceSlot{Day: *r.ExperienceTime}
		}
	}
	return nil
}

// Span returns the occupied days, or false when the record has no dates.
func (r Reservation) Span() (Span, bool) {
	occ := r.Occupancy()
	if occ == nil {
		return Span{}, false
	}
	return occ.Occupies(), true
}

// PublicReservation is the view of a reservation shown to anyone browsing a
// listing's calendar; it omits who holds it.
type PublicReservation struct {
	ID             string `json:"pk"`
	CheckIn        *Date  `json:"check_in"`
	CheckOut       *Date  `json:"check_out"`
	ExperienceTime *Date  `json:"experience_time"`
	Guests         int    `json:"guests"`
}

func (r Reservation) Public() PublicReservation {
	return PublicReservation{
		ID:             r.ID,
		CheckIn:        r.CheckIn,
		CheckOut:       r.CheckOut,
		ExperienceTime: r.ExperienceTime,
		Guests:         r.Guests,
	}
}
