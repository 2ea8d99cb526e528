// Package events publishes order lifecycle events for the manager-facing
// consumers (dashboards, notifications).
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/boudaoud-zakaria/e-com-furniture-sub000/internal/config"
	"github.com/boudaoud-zakaria/e-com-furniture-sub000/internal/entities"

	"github.com/segmentio/kafka-go"
)

// OrderCreatedEvent is the wire shape of an order.created message.
type OrderCreatedEvent struct {
	OrderID      string    `json:"order_id"`
	OrderNumber  string    `json:"order_number"`
	TrackingCode string    `json:"tracking_code"`
	ManagerID    string    `json:"manager_id,omitempty"`
	Region       string    `json:"region"`
	TotalAmount  int       `json:"total_amount"`
	ItemCount    int       `json:"item_count"`
	CreatedAt    time.Time `json:"created_at"`
}

type kafkaPublisher struct {
	logger *slog.Logger
	writer *kafka.Writer
}

func NewKafkaPublisher(logger *slog.Logger, cfg config.Kafka) *kafkaPublisher {
	return &kafkaPublisher{
		logger: logger.With(slog.String("publisher", "kafka")),
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.Topic,
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: cfg.BatchTimeout,
		},
	}
}

func (p *kafkaPublisher) OrderCreated(ctx context.Context, order entities.Order) error {
	event := OrderCreatedEvent{
		OrderID:      order.ID,
		OrderNumber:  order.OrderNumber,
		TrackingCode: order.TrackingCode,
		ManagerID:    order.ManagerID,
		Region:       order.Region,
		TotalAmount:  order.TotalAmount,
		ItemCount:    len(order.Items),
		CreatedAt:    order.CreatedAt,
	}

	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal order created event: %w", err)
	}

	// The writer retries internally.
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(order.ID),
		Value: value,
	})
}

func (p *kafkaPublisher) Close() error {
	return p.writer.Close()
}

// NopNotifier drops all events. Used when the Kafka publisher is disabled.
type NopNotifier struct{}

func (NopNotifier) OrderCreated(context.Context, entities.Order) error { return nil }
