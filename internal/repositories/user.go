package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sbilibin2017/gw-bookshelf/internal/models"
)

// UserReadRepository handles user read operations
type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByUsernameOrEmail returns the first user matching the username or the email.
// A nil argument is ignored. Returns nil, nil when nothing matches.
func (r *UserReadRepository) GetByUsernameOrEmail(ctx context.Context, username, email *string) (*models.UserDB, error) {
	const query = `
		SELECT id, email, username, password_hash, birthdate, created_at
		FROM users
		WHERE ($1::VARCHAR IS NOT NULL AND username = $1)
		   OR ($2::VARCHAR IS NOT NULL AND email = $2)
		ORDER BY id
		LIMIT 1
	`

	var user models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &user, query, username, email)
	logQuery(query, []any{username, email}, user.UserID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByID returns the user with the given id, or nil, nil when absent.
func (r *UserReadRepository) GetByID(ctx context.Context, userID int64) (*models.UserDB, error) {
	const query = `
		SELECT id, email, username, password_hash, birthdate, created_at
		FROM users
		WHERE id = $1
	`

	var user models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &user, query, userID)
	logQuery(query, []any{userID}, user.Username, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetProfile returns the profile owned by the user, or nil, nil when absent.
func (r *UserReadRepository) GetProfile(ctx context.Context, userID int64) (*models.UserProfileDB, error) {
	const query = `
		SELECT id, user_id, bio
		FROM user_profiles
		WHERE user_id = $1
	`

	var profile models.UserProfileDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &profile, query, userID)
	logQuery(query, []any{userID}, profile.ProfileID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetFavoriteGenres returns the user's favourite genres in insertion order.
func (r *UserReadRepository) GetFavoriteGenres(ctx context.Context, userID int64) ([]models.FavoriteGenreDB, error) {
	const query = `
		SELECT id, user_id, name
		FROM favorite_genres
		WHERE user_id = $1
		ORDER BY id
	`

	genres := []models.FavoriteGenreDB{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db), &genres, query, userID)
	logQuery(query, []any{userID}, len(genres), err)

	return genres, err
}

// UserWriteRepository handles user write operations
type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a user and returns its generated id.
func (r *UserWriteRepository) Save(ctx context.Context, email, username, passwordHash string, birthdate time.Time) (int64, error) {
	const query = `
		INSERT INTO users (email, username, password_hash, birthdate, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id
	`

	var userID int64
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &userID, query, email, username, passwordHash, birthdate)
	logQuery(query, []any{email, username, birthdate}, userID, err)

	return userID, err
}

// SaveProfile creates the empty profile of a user.
func (r *UserWriteRepository) SaveProfile(ctx context.Context, userID int64) error {
	const query = `
		INSERT INTO user_profiles (user_id, bio)
		VALUES ($1, NULL)
	`

	res, err := executor(ctx, r.db).ExecContext(ctx, query, userID)
	logQuery(query, []any{userID}, rowsAffected(res), err)

	return err
}

// SaveFavoriteGenres stores the given genre names for a user in a single statement.
func (r *UserWriteRepository) SaveFavoriteGenres(ctx context.Context, userID int64, names []string) error {
	if len(names) == 0 {
		return nil
	}

	const query = `
		INSERT INTO favorite_genres (user_id, name)
		SELECT $1, genre FROM unnest($2::TEXT[]) AS genre
	`

	res, err := executor(ctx, r.db).ExecContext(ctx, query, userID, pq.Array(names))
	logQuery(query, []any{userID, names}, rowsAffected(res), err)

	return err
}

func rowsAffected(res sql.Result) int64 {
	if res == nil {
		return 0
	}
	n, _ := res.RowsAffected()
	return n
}
