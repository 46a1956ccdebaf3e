package models

import "time"

// Amenity is a catalog entry rooms refer to by ID, e.g. "Wi-Fi".
type Amenity struct {
	ID          string    `bson:"id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description" json:"description"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}

type AmenityInput struct {
	Name        string `json:"name" binding:"required,max=150"`
	Description string `json:"description" binding:"max=150"`
}

// AmenityUpdate carries a partial amenity update; nil fields are left alone.
type AmenityUpdate struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=150"`
	Description *string `json:"description" binding:"omitempty,max=150"`
}

func (u AmenityUpdate) Apply(a *Amenity) {
	if u.Name != nil {
		a.Name = *u.Name
	}
	if u.Description != nil {
		a.Description = *u.Description
	}
}

// Perk is a catalog entry experiences refer to by ID, e.g. "Lunch included".
type Perk struct {
	ID          string    `bson:"id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Details     string    `bson:"details" json:"details"`
	Explanation string    `bson:"explanation" json:"explanation"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}

type PerkInput struct {
	Name        string `json:"name" binding:"required,max=100"`
	Details     string `json:"details" binding:"max=250"`
	Explanation string `json:"explanation"`
}

// PerkUpdate carries a partial perk update; nil fields are left alone.
type PerkUpdate struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=100"`
	Details     *string `json:"details" binding:"omitempty,max=250"`
	Explanation *string `json:"explanation"`
}

func (u PerkUpdate) Apply(p *Perk) {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Details != nil {
		p.Details = *u.Details
	}
	if u.Explanation != nil {
		p.Explanation = *u.Explanation
	}
}
