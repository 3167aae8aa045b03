package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"

	"github.com/studhub/eventrec/internal/config"
)

// ServedMessage is the analytics record published after every scoring call.
type ServedMessage struct {
	RequestID        uuid.UUID `json:"request_id"`
	UserID           int64     `json:"user_id"`
	Mode             string    `json:"mode"`
	CandidateEvents  int       `json:"candidate_events"`
	ReturnedEvents   int       `json:"returned_events"`
	CacheHit         bool      `json:"cache_hit"`
	ProcessingTimeMs int64     `json:"processing_time_ms"`
	Timestamp        time.Time `json:"timestamp"`
}

// Publisher writes recommendation-served messages to Kafka. When no brokers
// are configured the publisher is a no-op; publication is fire-and-forget
// and never affects the response to the caller.
type Publisher struct {
	writer *kafka.Writer
	logger *logrus.Logger
}

func NewPublisher(cfg *config.KafkaConfig, logger *logrus.Logger) *Publisher {
	if len(cfg.Brokers) == 0 {
		logger.Debug("Kafka brokers not configured, analytics publishing disabled")
		return &Publisher{logger: logger}
	}

	return &Publisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.Topics.RecommendationsServed,
			Balancer:     &kafka.Hash{}, // Key by user id so one user's stream stays ordered
			RequiredAcks: kafka.RequireOne,
			Async:        true,
			BatchTimeout: 10 * time.Millisecond,
			BatchSize:    100,
		},
		logger: logger,
	}
}

func (p *Publisher) PublishServed(message ServedMessage) {
	if p.writer == nil {
		return
	}

	messageBytes, err := json.Marshal(message)
	if err != nil {
		p.logger.WithError(err).Error("Failed to marshal served message")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatInt(message.UserID, 10)),
		Value: messageBytes,
		Headers: []kafka.Header{
			{Key: "request_id", Value: []byte(message.RequestID.String())},
			{Key: "mode", Value: []byte(message.Mode)},
			{Key: "timestamp", Value: []byte(message.Timestamp.Format(time.RFC3339))},
		},
	})
	if err != nil {
		p.logger.WithError(err).WithField("user_id", message.UserID).
			Warn("Failed to publish served message to Kafka")
	}
}

func (p *Publisher) Close() error {
	if p.writer == nil {
		return nil
	}
	if err := p.writer.Close(); err != nil {
		return fmt.Errorf("failed to close Kafka writer: %w", err)
	}
	return nil
}
