package rabbitmq

import (
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const (
	ExchangeName = "bookings"
	ExchangeKind = "topic"
	QueueName    = "admin-service.bookings"
)

// dial connects and declares the bookings exchange, retrying while the broker comes up.
func dial(url string, maxWait time.Duration, logger *zap.Logger) (*amqp.Connection, *amqp.Channel, error) {
	var conn *amqp.Connection

	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = maxWait

	err := backoff.RetryNotify(
		func() error {
			c, err := amqp.Dial(url)
			if err != nil {
				return err
			}
			conn = c
			return nil
		},
		policy,
		func(err error, next time.Duration) {
			logger.Warn("RabbitMQ connection failed, retrying",
				zap.Error(err),
				zap.Duration("next_attempt_in", next))
		},
	)
	if err != nil {
		return nil, nil, fmt.Errorf("rabbitmq dial: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("rabbitmq channel: %w", err)
	}

	if err := ch.ExchangeDeclare(ExchangeName, ExchangeKind, true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, nil, fmt.Errorf("rabbitmq exchange declare: %w", err)
	}

	return conn, ch, nil
}
