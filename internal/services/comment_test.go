package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-bookshelf/internal/models"
	"github.com/sbilibin2017/gw-bookshelf/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := services.NewMockCommentReader(ctrl)
	svc := services.NewCommentService(reader, services.NewMockCommentWriter(ctrl), services.NewMockPlaceholderBookCreator(ctrl), services.NewMockPublisher(ctrl))

	ana := "ana"
	reader.EXPECT().ListByBook(gomock.Any(), "abc").Return([]models.CommentDB{
		{CommentID: 1, UserID: 1, BookID: "abc", Content: "primero", Username: &ana},
		{CommentID: 2, UserID: 2, BookID: "abc", Content: "segundo"},
	}, nil)

	comments, err := svc.List(context.Background(), "abc")
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "ana", comments[0].User.Name)
	assert.Equal(t, models.AnonymousAuthor, comments[1].User.Name)
}

func TestCommentService_Create(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		writer := services.NewMockCommentWriter(ctrl)
		books := services.NewMockPlaceholderBookCreator(ctrl)
		publisher := services.NewMockPublisher(ctrl)
		svc := services.NewCommentService(services.NewMockCommentReader(ctrl), writer, books, publisher)

		ana := "ana"
		books.EXPECT().EnsureExists(gomock.Any(), "abc", models.ExternalBookTitle).Return(nil)
		writer.EXPECT().Save(gomock.Any(), int64(1), "abc", "Muy bueno").
			Return(&models.CommentDB{CommentID: 5, UserID: 1, BookID: "abc", Content: "Muy bueno", CreatedAt: time.Now(), Username: &ana}, nil)
		publisher.EXPECT().Publish(gomock.Any(), gomock.Any())

		comment, err := svc.Create(context.Background(), 1, "abc", "Muy bueno")
		require.NoError(t, err)
		assert.Equal(t, int64(5), comment.CommentID)
		assert.Equal(t, "ana", comment.User.Name)
	})

	t.Run("empty content", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc := services.NewCommentService(services.NewMockCommentReader(ctrl), services.NewMockCommentWriter(ctrl), services.NewMockPlaceholderBookCreator(ctrl), services.NewMockPublisher(ctrl))

		_, err := svc.Create(context.Background(), 1, "abc", "  ")
		assert.ErrorIs(t, err, services.ErrInvalidComment)
	})

	t.Run("placeholder error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		books := services.NewMockPlaceholderBookCreator(ctrl)
		svc := services.NewCommentService(services.NewMockCommentReader(ctrl), services.NewMockCommentWriter(ctrl), books, services.NewMockPublisher(ctrl))

		books.EXPECT().EnsureExists(gomock.Any(), "abc", models.ExternalBookTitle).Return(errors.New("db error"))

		_, err := svc.Create(context.Background(), 1, "abc", "hola")
		assert.EqualError(t, err, "db error")
	})
}
