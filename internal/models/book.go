package models

import (
	"github.com/lib/pq"
)

// Placeholder titles for books created before their metadata is known.
const (
	UnknownBookTitle  = "Desconocido"
	ExternalBookTitle = "Libro externo"
)

// BookDB represents cached metadata of a book from the external catalog.
// The primary key is the catalog identifier, never generated locally.
type BookDB struct {
	BookID        string         `json:"id" db:"id"`
	Title         string         `json:"title" db:"title"`
	Authors       string         `json:"authors" db:"authors"`
	Image         string         `json:"image" db:"image"`
	Description   string         `json:"description" db:"description"`
	Categories    pq.StringArray `json:"categories" db:"categories"`
	AverageRating *float64       `json:"averageRating" db:"average_rating"`
}

// PlaceholderBook returns a book row with only an id and a title.
func PlaceholderBook(bookID, title string) BookDB {
	return BookDB{
		BookID:     bookID,
		Title:      title,
		Categories: pq.StringArray{},
	}
}
