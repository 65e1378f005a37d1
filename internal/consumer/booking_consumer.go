package consumer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Eursukkul/aquaagro-admin/internal/stats"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// BookingConsumer feeds booking.confirmed messages into the dashboard tally.
type BookingConsumer struct {
	tally  *stats.Tally
	logger *zap.Logger
}

func NewBookingConsumer(tally *stats.Tally, logger *zap.Logger) *BookingConsumer {
	return &BookingConsumer{tally: tally, logger: logger}
}

// Start processes deliveries until msgs is closed.
func (bc *BookingConsumer) Start(msgs <-chan amqp.Delivery) {
	go func() {
		for msg := range msgs {
			bc.handleMessage(msg)
		}
		bc.logger.Info("booking consumer channel closed, stopping")
	}()
}

func (bc *BookingConsumer) handleMessage(msg amqp.Delivery) {
	if err := bc.Handle(msg.Body); err != nil {
		bc.logger.Warn("dropping booking message", zap.Error(err))
		msg.Nack(false, false)
		return
	}
	msg.Ack(false)
}

// Handle decodes one booking.confirmed body and records it.
func (bc *BookingConsumer) Handle(body []byte) error {
	var ev stats.BookingConfirmed
	if err := json.Unmarshal(body, &ev); err != nil {
		return fmt.Errorf("unmarshal booking event: %w", err)
	}
	if ev.Reference == "" {
		return fmt.Errorf("booking event without reference")
	}

	if bc.tally.Record(ev) {
		bc.logger.Info("booking tallied",
			zap.String("reference", ev.Reference),
			zap.String("tier", ev.TierID),
			zap.Int("total", ev.Total))
	}
	return nil
}

// LocalPublisher hands published messages straight to a BookingConsumer.
// It stands in for RabbitMQ when no broker is configured.
type LocalPublisher struct {
	Consumer *BookingConsumer
}

func (p LocalPublisher) Publish(ctx context.Context, routingKey string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}
	return p.Consumer.Handle(body)
}
