package models

import "time"

// Experience is a hosted activity, booked one day at a time inside its window.
type Experience struct {
	ID          string    `bson:"id" json:"id"`
	HostID      string    `bson:"host_id" json:"host_id"`
	Name        string    `bson:"name" json:"name"`
	Country     string    `bson:"country" json:"country"`
	City        string    `bson:"city" json:"city"`
	Price       int       `bson:"price" json:"price"`
	Address     string    `bson:"address" json:"address"`
	Description string    `bson:"description" json:"description"`
	Start       Date      `bson:"start" json:"start"` // First bookable day
	End         Date      `bson:"end" json:"end"`     // Last bookable day
	Perks       []string  `bson:"perks" json:"perks"` // Perk catalog IDs
	Photos      []Photo   `bson:"photos" json:"photos"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}

// Window is the closed span of days the experience can be booked on.
func (e Experience) Window() Span {
	return Span{Start: e.Start, End: e.End}
}

// ExperienceInput is the body accepted when creating an experience.
type ExperienceInput struct {
	Name        string   `json:"name" binding:"required,max=250"`
	Country     string   `json:"country" binding:"required"`
	City        string   `json:"city" binding:"required"`
	Price       int      `json:"price" binding:"gte=0"`
	Address     string   `json:"address"`
	Description string   `json:"description"`
	Start       *Date    `json:"start" binding:"required"`
	End         *Date    `json:"end" binding:"required"`
	Perks       []string `json:"perks"`
}

// ExperienceUpdate carries a partial experience update; nil fields are left alone.
type ExperienceUpdate struct {
	Name        *string  `json:"name"`
	Country     *string  `json:"country"`
	City        *string  `json:"city"`
	Price       *int     `json:"price" binding:"omitempty,gte=0"`
	Address     *string  `json:"address"`
	Description *string  `json:"description"`
	Start       *Date    `json:"start"`
	End         *Date    `json:"end"`
	Perks       []string `json:"perks"`
}

// Apply copies the set fields of u onto e.
func (u ExperienceUpdate) Apply(e *Experience) {
	if u.Name != nil {
		e.Name = *u.Name
	}
	if u.Country != nil {
		e.Country = *u.Country
	}
	if u.City != nil {
		e.City = *u.City
	}
	if u.Price != nil {
		e.Price = *u.Price
	}
	if u.Address != nil {
		e.Address = *u.Address
	}
	if u.Description != nil {
		e.Description = *u.Description
	}
	if u.Start != nil {
		e.Start = *u.Start
	}
	if u.End != nil {
		e.End = *u.End
	}
	if u.Perks != nil {
		e.Perks = u.Perks
	}
}
