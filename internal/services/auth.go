package services

import (
	"context"
	"time"

	"github.com/sbilibin2017/gw-bookshelf/internal/logger"
	"github.com/sbilibin2017/gw-bookshelf/internal/models"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsernameOrEmail(ctx context.Context, username *string, email *string) (*models.UserDB, error)
	GetByID(ctx context.Context, userID int64) (*models.UserDB, error)
	GetProfile(ctx context.Context, userID int64) (*models.UserProfileDB, error)
	GetFavoriteGenres(ctx context.Context, userID int64) ([]models.FavoriteGenreDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, email, username, passwordHash string, birthdate time.Time) (int64, error)
	SaveProfile(ctx context.Context, userID int64) error
	SaveFavoriteGenres(ctx context.Context, userID int64, names []string) error
}

// DefaultListCreator creates book lists during registration.
type DefaultListCreator interface {
	Save(ctx context.Context, userID int64, name string, isDefault bool) (*models.BookListDB, error)
}

// BookListDetailReader reads lists with their nested books.
type BookListDetailReader interface {
	ListWithBooks(ctx context.Context, userID int64) ([]models.BookListDetail, error)
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID int64) (string, error)
}

// Transactor runs fn atomically.
type Transactor interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	// AfterCommit runs fn once the transaction carried by ctx commits, or
	// immediately when ctx carries none.
	AfterCommit(ctx context.Context, fn func())
}

// AuthService handles registration, login and profile lookup.
type AuthService struct {
	reader    UserReader
	writer    UserWriter
	lists     DefaultListCreator
	details   BookListDetailReader
	jwt       JWTGenerator
	tx        Transactor
	publisher Publisher
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(
	reader UserReader,
	writer UserWriter,
	lists DefaultListCreator,
	details BookListDetailReader,
	jwt JWTGenerator,
	tx Transactor,
	publisher Publisher,
) *AuthService {
	return &AuthService{
		reader:    reader,
		writer:    writer,
		lists:     lists,
		details:   details,
		jwt:       jwt,
		tx:        tx,
		publisher: publisher,
	}
}

// Register creates the user, its profile, its favourite genres and the default
// lists in one transaction.
func (svc *AuthService) Register(ctx context.Context, in models.NewUser) error {
	user, err := svc.reader.GetByUsernameOrEmail(ctx, &in.Username, &in.Email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return err
	}
	if user != nil {
		logger.Log.Errorw("user already exists", "username", in.Username, "email", in.Email)
		return ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	var userID int64
	err = svc.tx.Do(ctx, func(ctx context.Context) error {
		var err error
		userID, err = svc.writer.Save(ctx, in.Email, in.Username, string(hashedPassword), in.Birthdate)
		if err != nil {
			return err
		}
		if err := svc.writer.SaveProfile(ctx, userID); err != nil {
			return err
		}
		if err := svc.writer.SaveFavoriteGenres(ctx, userID, in.FavoriteGenres); err != nil {
			return err
		}
		for _, name := range models.DefaultBookLists() {
			if _, err := svc.lists.Save(ctx, userID, name, true); err != nil {
				return err
			}
		}
		return nil
	})
	if isUniqueViolation(err) {
		logger.Log.Warnw("user registered concurrently", "username", in.Username, "email", in.Email)
		return ErrUserAlreadyExists
	}
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return err
	}

	svc.tx.AfterCommit(ctx, func() {
		svc.publisher.Publish(ctx, models.ActivityEvent{
			UserID:    userID,
			Operation: models.OperationUserRegistered,
			Payload:   map[string]any{"favoriteGenres": in.FavoriteGenres},
		})
	})
	return nil
}

// Login authenticates a user by email and returns a bearer token.
func (svc *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := svc.reader.GetByUsernameOrEmail(ctx, nil, &email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil {
		logger.Log.Warnw("user does not exist", "email", email)
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Warnw("invalid credentials", "email", email)
		return "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}

	return token, nil
}

// Profile returns the user with profile, favourite genres and all lists with their books.
func (svc *AuthService) Profile(ctx context.Context, userID int64) (*models.Profile, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "userID", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	profile, err := svc.reader.GetProfile(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get profile", "userID", userID, "err", err)
		return nil, err
	}

	genres, err := svc.reader.GetFavoriteGenres(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get favorite genres", "userID", userID, "err", err)
		return nil, err
	}

	lists, err := svc.details.ListWithBooks(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get book lists", "userID", userID, "err", err)
		return nil, err
	}

	result := &models.Profile{
		ID:             user.UserID,
		Email:          user.Email,
		Username:       user.Username,
		Birthdate:      user.Birthdate,
		FavoriteGenres: make([]models.GenreName, 0, len(genres)),
		BookLists:      lists,
	}
	if profile != nil {
		result.Profile.Bio = profile.Bio
	}
	for _, g := range genres {
		result.FavoriteGenres = append(result.FavoriteGenres, models.GenreName{Name: g.Name})
	}
	return result, nil
}
