package broker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	market "marketboard/internal/domain/entity/market"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

// Publisher sends batches to a durable fanout exchange.
type Publisher struct {
	channel  *amqp.Channel
	exchange string
	logger   logrus.FieldLogger
	mu       sync.Mutex
}

func NewPublisher(conn *amqp.Connection, exchange string, logger logrus.FieldLogger) (*Publisher, error) {
	if exchange == "" {
		return nil, errors.New("exchange name cannot be empty")
	}
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("create channel: %w", err)
	}
	if err := ch.ExchangeDeclare(exchange, "fanout", true, false, false, false, nil); err != nil {
		ch.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", exchange, err)
	}
	return &Publisher{
		channel:  ch,
		exchange: exchange,
		logger:   logger.WithField("component", "publisher"),
	}, nil
}

func (p *Publisher) Publish(ctx context.Context, batch *market.Batch) error {
	body, err := encodeBatch(batch)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.channel.PublishWithContext(ctx, p.exchange, "", false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    batch.ID.String(),
		Timestamp:    time.Now().UTC(),
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("publish batch %s: %w", batch.ID, err)
	}
	p.logger.WithFields(logrus.Fields{
		"batch_id":  batch.ID,
		"companies": batch.Len(),
		"bytes":     len(body),
	}).Debug("batch published")
	return nil
}

func (p *Publisher) Close() error {
	if p == nil || p.channel == nil {
		return nil
	}
	if err := p.channel.Close(); err != nil && !errors.Is(err, amqp.ErrClosed) {
		return fmt.Errorf("close rabbitmq channel: %w", err)
	}
	return nil
}
