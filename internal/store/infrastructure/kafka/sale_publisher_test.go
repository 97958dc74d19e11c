package kafka

import (
	"context"
	"testing"
	"time"

	"github.com/Lexv0lk/stregsystem/internal/store/domain"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingWriter struct {
	messages []kafkago.Message
	err      error
	closed   bool
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafkago.Message) error {
	w.messages = append(w.messages, msgs...)
	return w.err
}

func (w *recordingWriter) Close() error {
	w.closed = true
	return nil
}

func TestSalePublisher_PublishSale(t *testing.T) {
	t.Parallel()

	roomID := 10
	timestamp := time.Date(2024, 3, 1, 16, 30, 0, 0, time.UTC)

	event := domain.SaleEvent{
		UserID:         7,
		Username:       "alice",
		RoomID:         &roomID,
		BoughtProducts: []domain.BoughtProduct{{ProductID: 1, Amount: 3}},
		Total:          600,
		NewBalance:     400,
		Timestamp:      timestamp,
	}

	type testCase struct {
		name      string
		writerErr error

		expectedErr error
	}

	tests := []testCase{
		{
			name: "message written",
		},
		{
			name:        "writer error",
			writerErr:   assert.AnError,
			expectedErr: assert.AnError,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			writer := &recordingWriter{err: tt.writerErr}
			publisher := &SalePublisher{writer: writer}

			err := publisher.PublishSale(t.Context(), event)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}

			require.NoError(t, err)
			require.Len(t, writer.messages, 1)

			message := writer.messages[0]
			assert.Equal(t, "7", string(message.Key))
			assert.Equal(t, timestamp, message.Time)
			assert.JSONEq(t, `{
				"user_id": 7,
				"username": "alice",
				"room_id": 10,
				"bought_products": [{"product_id": 1, "amount": 3}],
				"total": "6.00",
				"new_balance": "4.00",
				"timestamp": "2024-03-01T16:30:00Z"
			}`, string(message.Value))
		})
	}
}

func TestSalePublisher_Close(t *testing.T) {
	t.Parallel()

	writer := &recordingWriter{}
	require.NoError(t, (&SalePublisher{writer: writer}).Close())
	assert.True(t, writer.closed)
}
