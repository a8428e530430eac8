package models

import (
	"time"

	"github.com/lib/pq"
)

// Names of the lists every user gets at registration.
const (
	DefaultListWantToRead = "Lo quiero leer"
	DefaultListReading    = "Leyendo actualmente"
	DefaultListRead       = "Leído"
)

// DefaultBookLists returns the names of the lists provisioned at registration, in creation order.
func DefaultBookLists() []string {
	return []string{DefaultListWantToRead, DefaultListReading, DefaultListRead}
}

// BookListDB represents a named collection of books owned by one user
type BookListDB struct {
	BookListID int64     `json:"id" db:"id"`
	UserID     int64     `json:"userId" db:"user_id"`
	Name       string    `json:"name" db:"name"`
	IsDefault  bool      `json:"isDefault" db:"is_default"` // Default lists cannot be deleted
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}

// BookListDetail is a list together with the books it contains.
type BookListDetail struct {
	ID        int64       `json:"id"`
	Name      string      `json:"name"`
	IsDefault bool        `json:"isDefault"`
	Entries   []ListEntry `json:"entries"`
}

// ListEntry wraps a book inside a list.
type ListEntry struct {
	Book BookDB `json:"book"`
}

// BookListBookRow is one row of the lists/entries/books outer join.
type BookListBookRow struct {
	BookListID    int64          `db:"list_id"`
	Name          string         `db:"list_name"`
	IsDefault     bool           `db:"is_default"`
	BookID        *string        `db:"book_id"`
	Title         *string        `db:"title"`
	Authors       *string        `db:"authors"`
	Image         *string        `db:"image"`
	Description   *string        `db:"description"`
	Categories    pq.StringArray `db:"categories"`
	AverageRating *float64       `db:"average_rating"`
}
