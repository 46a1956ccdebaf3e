package models

import "time"

// Wishlist is a user's named collection of saved rooms and experiences.
type Wishlist struct {
	ID          string    `bson:"id" json:"id"`
	UserID      string    `bson:"user_id" json:"-"`
	Name        string    `bson:"name" json:"name"`
	Rooms       []string  `bson:"rooms" json:"rooms"`
	Experiences []string  `bson:"experiences" json:"experiences"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}

type WishlistInput struct {
	Name string `json:"name" binding:"required,max=150"`
}

// ListingSummary is the short form of a room or experience shown in wishlists.
type ListingSummary struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
	City    string `json:"city"`
	Price   int    `json:"price"`
}

func (r Room) Summary() ListingSummary {
	return ListingSummary{ID: r.ID, Name: r.Name, Country: r.Country, City: r.City, Price: r.Price}
}

func (e Experience) Summary() ListingSummary {
	return ListingSummary{ID: e.ID, Name: e.Name, Country: e.Country, City: e.City, Price: e.Price}
}

// WishlistView is a wishlist with its saved listings resolved. Listings
// deleted since they were saved are left out.
type WishlistView struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Rooms       []ListingSummary `json:"rooms"`
	Experiences []ListingSummary `json:"experiences"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}
