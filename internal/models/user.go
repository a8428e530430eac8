package models

import (
	"time"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID       int64     `json:"id" db:"id"`                // Primary key
	Email        string    `json:"email" db:"email"`          // Unique email
	Username     string    `json:"username" db:"username"`    // Unique username
	PasswordHash string    `json:"-" db:"password_hash"`      // Bcrypt hash, never the plaintext
	Birthdate    time.Time `json:"birthdate" db:"birthdate"`  // Date of birth
	CreatedAt    time.Time `json:"createdAt" db:"created_at"` // Creation timestamp
}

// UserProfileDB represents the auxiliary attributes owned by exactly one user
type UserProfileDB struct {
	ProfileID int64   `json:"id" db:"id"`
	UserID    int64   `json:"userId" db:"user_id"`
	Bio       *string `json:"bio" db:"bio"`
}

// FavoriteGenreDB is a genre name scoped to one user
type FavoriteGenreDB struct {
	GenreID int64  `json:"id" db:"id"`
	UserID  int64  `json:"userId" db:"user_id"`
	Name    string `json:"name" db:"name"`
}

// NewUser carries everything needed to create an account.
type NewUser struct {
	Email          string
	Username       string
	Password       string
	Birthdate      time.Time
	FavoriteGenres []string
}

// Profile is the aggregate returned to an authenticated user.
type Profile struct {
	ID             int64            `json:"id"`
	Email          string           `json:"email"`
	Username       string           `json:"username"`
	Birthdate      time.Time        `json:"birthdate"`
	Profile        ProfileBio       `json:"profile"`
	FavoriteGenres []GenreName      `json:"favoriteGenres"`
	BookLists      []BookListDetail `json:"bookLists"`
}

// ProfileBio holds the public part of a user profile.
type ProfileBio struct {
	Bio *string `json:"bio"`
}

// GenreName is a favourite genre as exposed through the API.
type GenreName struct {
	Name string `json:"name"`
}
