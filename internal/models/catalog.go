package models

// CatalogItem is a book as returned by the external catalog.
type CatalogItem struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Authors     []string `json:"authors"`
	Description string   `json:"description"`
	Categories  []string `json:"categories"`
	Thumbnail   string   `json:"thumbnail,omitempty"`
}

// SearchKind selects how a catalog search term is interpreted.
type SearchKind string

// Supported search kinds.
const (
	SearchByText    SearchKind = "text"
	SearchByAuthor  SearchKind = "author"
	SearchBySubject SearchKind = "subject"
)
