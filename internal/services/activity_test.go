package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-bookshelf/internal/logger"
	"github.com/sbilibin2017/gw-bookshelf/internal/models"
	"github.com/sbilibin2017/gw-bookshelf/internal/services"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestActivityPublisher_Publish(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := services.NewMockKafkaWriter(ctrl)
	publisher := services.NewActivityPublisher(writer)

	writer.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
			require.Len(t, msgs, 1)
			assert.Equal(t, "12", string(msgs[0].Key))

			var event models.ActivityEvent
			require.NoError(t, json.Unmarshal(msgs[0].Value, &event))
			assert.NotEmpty(t, event.EventID)
			assert.NotZero(t, event.Timestamp)
			assert.Equal(t, int64(12), event.UserID)
			assert.Equal(t, "abc", event.BookID)
			assert.Equal(t, models.OperationCommentCreated, event.Operation)
			return nil
		})

	publisher.Publish(context.Background(), models.ActivityEvent{
		UserID:    12,
		BookID:    "abc",
		Operation: models.OperationCommentCreated,
	})
}

func TestActivityPublisher_WriteErrorIsSwallowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := services.NewMockKafkaWriter(ctrl)
	writer.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	core, logs := observer.New(zap.InfoLevel)
	defer logger.Replace(zap.New(core).Sugar())()

	assert.NotPanics(t, func() {
		services.NewActivityPublisher(writer).Publish(context.Background(), models.ActivityEvent{UserID: 1})
	})
	assert.Equal(t, 1, logs.FilterLevelExact(zap.ErrorLevel).Len())
}

func TestActivityPublisher_NilWriter(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	defer logger.Replace(zap.New(core).Sugar())()

	assert.NotPanics(t, func() {
		services.NewActivityPublisher(nil).Publish(context.Background(), models.ActivityEvent{UserID: 1})
	})
	assert.Equal(t, 1, logs.FilterMessageSnippet("skipping publishing").Len())
}
