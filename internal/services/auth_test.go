package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sbilibin2017/gw-bookshelf/internal/models"
	"github.com/sbilibin2017/gw-bookshelf/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type authMocks struct {
	reader    *services.MockUserReader
	writer    *services.MockUserWriter
	lists     *services.MockDefaultListCreator
	details   *services.MockBookListDetailReader
	jwt       *services.MockJWTGenerator
	tx        *services.MockTransactor
	publisher *services.MockPublisher
}

func newAuthService(ctrl *gomock.Controller) (*services.AuthService, authMocks) {
	m := authMocks{
		reader:    services.NewMockUserReader(ctrl),
		writer:    services.NewMockUserWriter(ctrl),
		lists:     services.NewMockDefaultListCreator(ctrl),
		details:   services.NewMockBookListDetailReader(ctrl),
		jwt:       services.NewMockJWTGenerator(ctrl),
		tx:        services.NewMockTransactor(ctrl),
		publisher: services.NewMockPublisher(ctrl),
	}
	return services.NewAuthService(m.reader, m.writer, m.lists, m.details, m.jwt, m.tx, m.publisher), m
}

func TestAuthService_Register(t *testing.T) {
	birthdate := time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC)
	newUser := models.NewUser{
		Email:          "alice@example.com",
		Username:       "alice",
		Password:       "pass123",
		Birthdate:      birthdate,
		FavoriteGenres: []string{"Ficcion", "Misterio"},
	}

	tests := []struct {
		name         string
		existingUser *models.UserDB
		readerErr    error
		writerErr    error
		listErr      error
		wantErr      error
	}{
		{
			name: "successful registration",
		},
		{
			name:         "user already exists",
			existingUser: &models.UserDB{UserID: 7},
			wantErr:      services.ErrUserAlreadyExists,
		},
		{
			name:      "reader error",
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:      "writer error",
			writerErr: errors.New("save error"),
			wantErr:   errors.New("save error"),
		},
		{
			name:      "concurrent registration wins the unique key",
			writerErr: &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"},
			wantErr:   services.ErrUserAlreadyExists,
		},
		{
			name:    "default list error",
			listErr: errors.New("list error"),
			wantErr: errors.New("list error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc, m := newAuthService(ctrl)

			m.reader.EXPECT().
				GetByUsernameOrEmail(gomock.Any(), &newUser.Username, &newUser.Email).
				Return(tt.existingUser, tt.readerErr)

			if tt.existingUser == nil && tt.readerErr == nil {
				expectTx(m.tx)
				m.writer.EXPECT().
					Save(gomock.Any(), newUser.Email, newUser.Username, gomock.Any(), birthdate).
					DoAndReturn(func(_ context.Context, _, _, hash string, _ time.Time) (int64, error) {
						assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte(newUser.Password)))
						return 42, tt.writerErr
					})

				if tt.writerErr == nil {
					m.writer.EXPECT().SaveProfile(gomock.Any(), int64(42)).Return(nil)
					m.writer.EXPECT().SaveFavoriteGenres(gomock.Any(), int64(42), newUser.FavoriteGenres).Return(nil)
					if tt.listErr != nil {
						m.lists.EXPECT().
							Save(gomock.Any(), int64(42), models.DefaultListWantToRead, true).
							Return(nil, tt.listErr)
					} else {
						for _, name := range models.DefaultBookLists() {
							m.lists.EXPECT().
								Save(gomock.Any(), int64(42), name, true).
								Return(&models.BookListDB{UserID: 42, Name: name, IsDefault: true}, nil)
						}
						expectAfterCommit(m.tx)
						m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).
							Do(func(_ context.Context, e models.ActivityEvent) {
								assert.Equal(t, models.OperationUserRegistered, e.Operation)
								assert.Equal(t, int64(42), e.UserID)
							})
					}
				}
			}

			err := svc.Register(context.Background(), newUser)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	password := "secret"
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)

	tests := []struct {
		name      string
		email     string
		user      *models.UserDB
		readerErr error
		jwtErr    error
		wantErr   error
		wantToken string
		loginPass string
	}{
		{
			name:      "successful login",
			email:     "alice@example.com",
			user:      &models.UserDB{UserID: 1, Email: "alice@example.com", PasswordHash: string(hashed)},
			wantToken: "token123",
			loginPass: password,
		},
		{
			name:      "unknown email",
			email:     "bob@example.com",
			wantErr:   services.ErrInvalidCredentials,
			loginPass: password,
		},
		{
			name:      "invalid password",
			email:     "carol@example.com",
			user:      &models.UserDB{UserID: 3, Email: "carol@example.com", PasswordHash: string(hashed)},
			wantErr:   services.ErrInvalidCredentials,
			loginPass: "wrongpass",
		},
		{
			name:      "reader error",
			email:     "eve@example.com",
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
			loginPass: password,
		},
		{
			name:      "JWT generation error",
			email:     "dan@example.com",
			user:      &models.UserDB{UserID: 4, Email: "dan@example.com", PasswordHash: string(hashed)},
			jwtErr:    errors.New("jwt error"),
			wantErr:   errors.New("jwt error"),
			loginPass: password,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc, m := newAuthService(ctrl)

			m.reader.EXPECT().
				GetByUsernameOrEmail(gomock.Any(), gomock.Nil(), &tt.email).
				Return(tt.user, tt.readerErr)

			if tt.user != nil && tt.loginPass == password {
				m.jwt.EXPECT().
					Generate(gomock.Any(), tt.user.UserID).
					Return(tt.wantToken, tt.jwtErr)
			}

			token, err := svc.Login(context.Background(), tt.email, tt.loginPass)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantToken, token)
			}
		})
	}
}

func TestAuthService_Profile(t *testing.T) {
	bio := "lectora"
	birthdate := time.Date(2000, 1, 2, 0, 0, 0, 0, time.UTC)

	t.Run("full profile", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newAuthService(ctrl)

		lists := []models.BookListDetail{
			{ID: 1, Name: models.DefaultListWantToRead, IsDefault: true, Entries: []models.ListEntry{}},
		}

		m.reader.EXPECT().GetByID(gomock.Any(), int64(5)).
			Return(&models.UserDB{UserID: 5, Email: "a@b.c", Username: "ana", Birthdate: birthdate}, nil)
		m.reader.EXPECT().GetProfile(gomock.Any(), int64(5)).
			Return(&models.UserProfileDB{ProfileID: 9, UserID: 5, Bio: &bio}, nil)
		m.reader.EXPECT().GetFavoriteGenres(gomock.Any(), int64(5)).
			Return([]models.FavoriteGenreDB{{GenreID: 1, UserID: 5, Name: "Drama"}}, nil)
		m.details.EXPECT().ListWithBooks(gomock.Any(), int64(5)).Return(lists, nil)

		profile, err := svc.Profile(context.Background(), 5)
		require.NoError(t, err)
		assert.Equal(t, int64(5), profile.ID)
		assert.Equal(t, "ana", profile.Username)
		assert.Equal(t, &bio, profile.Profile.Bio)
		assert.Equal(t, []models.GenreName{{Name: "Drama"}}, profile.FavoriteGenres)
		assert.Equal(t, lists, profile.BookLists)
	})

	t.Run("user not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newAuthService(ctrl)

		m.reader.EXPECT().GetByID(gomock.Any(), int64(6)).Return(nil, nil)

		profile, err := svc.Profile(context.Background(), 6)
		assert.ErrorIs(t, err, services.ErrUserNotFound)
		assert.Nil(t, profile)
	})

	t.Run("missing profile row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newAuthService(ctrl)

		m.reader.EXPECT().GetByID(gomock.Any(), int64(8)).Return(&models.UserDB{UserID: 8}, nil)
		m.reader.EXPECT().GetProfile(gomock.Any(), int64(8)).Return(nil, nil)
		m.reader.EXPECT().GetFavoriteGenres(gomock.Any(), int64(8)).Return(nil, nil)
		m.details.EXPECT().ListWithBooks(gomock.Any(), int64(8)).Return(nil, nil)

		profile, err := svc.Profile(context.Background(), 8)
		require.NoError(t, err)
		assert.Nil(t, profile.Profile.Bio)
		assert.Empty(t, profile.FavoriteGenres)
	})

	t.Run("genres error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newAuthService(ctrl)

		m.reader.EXPECT().GetByID(gomock.Any(), int64(8)).Return(&models.UserDB{UserID: 8}, nil)
		m.reader.EXPECT().GetProfile(gomock.Any(), int64(8)).Return(nil, nil)
		m.reader.EXPECT().GetFavoriteGenres(gomock.Any(), int64(8)).Return(nil, errors.New("db error"))

		_, err := svc.Profile(context.Background(), 8)
		assert.EqualError(t, err, "db error")
	})
}
