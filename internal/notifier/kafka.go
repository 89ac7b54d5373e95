package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/orgball2608/freecycle-offer-bot/internal/domain"
	"github.com/orgball2608/freecycle-offer-bot/pkg/logger"
	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Kafka publishes matches as JSON, keyed by post key so a post always lands
// on the same partition.
type Kafka struct {
	writer messageWriter
	logger logger.Logger
}

func NewKafka(brokers []string, topic string, log logger.Logger) *Kafka {
	return &Kafka{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
		},
		logger: log.WithComponent("KafkaNotifier"),
	}
}

var _ Notifier = (*Kafka)(nil)

func (k *Kafka) BoardStarted(context.Context, domain.Board) error {
	return nil
}

func (k *Kafka) Notify(ctx context.Context, match domain.Match) error {
	value, err := json.Marshal(match)
	if err != nil {
		return fmt.Errorf("failed to marshal match: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(match.Post.Key()),
		Value: value,
		Time:  time.Now(),
	}
	if err := k.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to write message to Kafka: %w", err)
	}

	k.logger.Debug("Produced match", "post_key", match.Post.Key())
	return nil
}

func (k *Kafka) Close() error {
	return k.writer.Close()
}
