package models

import "time"

// User represents a platform user. Hosts and guests share one account type.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Username     string    `bson:"username" json:"username"`
	Email        string    `bson:"email" json:"email"`
	Name         string    `bson:"name" json:"name"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	TokenHash    string    `bson:"token_hash,omitempty" json:"-"` // SHA-256 of the last issued token
	IsHost       bool      `bson:"is_host" json:"is_host"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}

// UserRegistration is the body accepted by the register endpoint.
type UserRegistration struct {
	Username string `json:"username" binding:"required,min=3,max=150"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name"`
	IsHost   bool   `json:"is_host"`
}

// UserLogin is the body accepted by the login endpoint.
type UserLogin struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned after a successful login.
type AuthResponse struct {
	ID    string `json:"id"`
	Token string `json:"token"`
}

// UserUpdate is a partial profile update; nil fields are left alone.
type UserUpdate struct {
	Name   *string `json:"name"`
	Email  *string `json:"email" binding:"omitempty,email"`
	IsHost *bool   `json:"is_host"`
}

// PasswordChange is the body of the change-password endpoint.
type PasswordChange struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}
