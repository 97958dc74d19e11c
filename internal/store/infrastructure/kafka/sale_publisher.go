package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/Lexv0lk/stregsystem/internal/pkg/logging"
	"github.com/Lexv0lk/stregsystem/internal/store/domain"
	kafkago "github.com/segmentio/kafka-go"
)

const batchTimeout = 50 * time.Millisecond

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// SalePublisher writes one JSON message per committed multi-buy, keyed by
// user id so a user's sales stay ordered within a partition.
type SalePublisher struct {
	writer messageWriter
}

// NewSalePublisher returns an asynchronous publisher. Delivery failures are
// reported to logger since PublishSale does not wait for the broker.
func NewSalePublisher(brokers []string, topic string, logger logging.Logger) *SalePublisher {
	return &SalePublisher{
		writer: &kafkago.Writer{
			Addr:                   kafkago.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafkago.Hash{},
			RequiredAcks:           kafkago.RequireOne,
			BatchTimeout:           batchTimeout,
			AllowAutoTopicCreation: true,
			Async:                  true,
			Completion: func(messages []kafkago.Message, err error) {
				if err != nil {
					logger.Error("failed to deliver sale events", "count", len(messages), "error", err.Error())
				}
			},
		},
	}
}

func (p *SalePublisher) PublishSale(ctx context.Context, event domain.SaleEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode sale event: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafkago.Message{
		Key:   []byte(strconv.Itoa(int(event.UserID))),
		Value: value,
		Time:  event.Timestamp,
	})
	if err != nil {
		return fmt.Errorf("failed to publish sale event: %w", err)
	}

	return nil
}

func (p *SalePublisher) Close() error {
	return p.writer.Close()
}
