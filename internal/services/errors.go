package services

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Error variables
var (
	ErrUserAlreadyExists  = errors.New("username or email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")

	ErrBookListNameInvalid  = errors.New("invalid book list name")
	ErrBookListExists       = errors.New("book list with this name already exists")
	ErrBookListForbidden    = errors.New("book list not owned by user")
	ErrDefaultListProtected = errors.New("default book lists cannot be deleted")
	ErrBookAlreadyInList    = errors.New("book already in list")

	ErrInvalidRating  = errors.New("rating must be an integer between 1 and 5")
	ErrInvalidComment = errors.New("comment content is empty")

	ErrInvalidSearch      = errors.New("invalid catalog search")
	ErrCatalogUnavailable = errors.New("catalog unavailable")
)

// uniqueViolation is the PostgreSQL SQLSTATE for a UNIQUE constraint failure.
const uniqueViolation = "23505"

// isUniqueViolation reports whether a concurrent writer won the race for a
// unique key that the pre-insert lookup saw as free.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
