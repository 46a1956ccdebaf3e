package models

import "time"

// RoomKind is the type of place a room listing offers.
type RoomKind string

const (
	RoomEntirePlace RoomKind = "entire_place"
	RoomPrivate     RoomKind = "private_room"
	RoomShared      RoomKind = "shared_room"
)

// Valid reports whether k is one of the known room kinds.
func (k RoomKind) Valid() bool {
	switch k {
	case RoomEntirePlace, RoomPrivate, RoomShared:
		return true
	}
	return false
}

// Photo is an image stored on the media host.
type Photo struct {
	PublicID    string    `bson:"public_id" json:"public_id"`
	URL         string    `bson:"url" json:"url"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}

// Room is a bookable place, reserved by check-in/check-out intervals.
type Room struct {
	ID          string    `bson:"id" json:"id"`
	OwnerID     string    `bson:"owner_id" json:"owner_id"`
	Name        string    `bson:"name" json:"name"`
	Country     string    `bson:"country" json:"country"`
	City        string    `bson:"city" json:"city"`
	Price       int       `bson:"price" json:"price"` // Nightly price in the smallest currency unit
	Rooms       int       `bson:"rooms" json:"rooms"`
	Toilets     int       `bson:"toilets" json:"toilets"`
	Description string    `bson:"description" json:"description"`
	Address     string    `bson:"address" json:"address"`
	PetFriendly bool      `bson:"pet_friendly" json:"pet_friendly"`
	Kind        RoomKind  `bson:"kind" json:"kind"`
	Amenities   []string  `bson:"amenities" json:"amenities"` // Amenity catalog IDs
	Photos      []Photo   `bson:"photos" json:"photos"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}

// RoomInput is the body accepted when creating a room.
type RoomInput struct {
	Name        string   `json:"name" binding:"required,max=180"`
	Country     string   `json:"country" binding:"required"`
	City        string   `json:"city" binding:"required"`
	Price       int      `json:"price" binding:"gte=0"`
	Rooms       int      `json:"rooms" binding:"gte=0"`
	Toilets     int      `json:"toilets" binding:"gte=0"`
	Description string   `json:"description"`
	Address     string   `json:"address"`
	PetFriendly bool     `json:"pet_friendly"`
	Kind        RoomKind `json:"kind" binding:"required"`
	Amenities   []string `json:"amenities"`
}

// RoomUpdate carries a partial room update; nil fields are left alone.
type RoomUpdate struct {
	Name        *string   `json:"name"`
	Country     *string   `json:"country"`
	City        *string   `json:"city"`
	Price       *int      `json:"price" binding:"omitempty,gte=0"`
	Rooms       *int      `json:"rooms" binding:"omitempty,gte=0"`
	Toilets     *int      `json:"toilets" binding:"omitempty,gte=0"`
	Description *string   `json:"description"`
	Address     *string   `json:"address"`
	PetFriendly *bool     `json:"pet_friendly"`
	Kind        *RoomKind `json:"kind"`
	Amenities   []string  `json:"amenities"`
}

// Apply copies the set fields of u onto r.
func (u RoomUpdate) Apply(r *Room) {
	if u.Name != nil {
		r.Name = *u.Name
	}
	if u.Country != nil {
		r.Country = *u.Country
	}
	if u.City != nil {
		r.City = *u.City
	}
	if u.Price != nil {
		r.Price = *u.Price
	}
	if u.Rooms != nil {
		r.Rooms = *u.Rooms
	}
	if u.Toilets != nil {
		r.Toilets = *u.Toilets
	}
	if u.Description != nil {
		r.Description = *u.Description
	}
	if u.Address != nil {
		r.Address = *u.Address
	}
	if u.PetFriendly != nil {
		r.PetFriendly = *u.PetFriendly
	}
	if u.Kind != nil {
		r.Kind = *u.Kind
	}
	if u.Amenities != nil {
		r.Amenities = u.Amenities
	}
}
