package broker

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"marketboard/internal/config"
	market "marketboard/internal/domain/entity/market"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

// BatchSink receives batches decoded from the exchange.
type BatchSink interface {
	Replace(batch *market.Batch) error
}

// Consumer subscribes to the companies fanout exchange and hands every
// received batch to the sink.
type Consumer struct {
	cfg    config.RabbitMQConfig
	sink   BatchSink
	logger logrus.FieldLogger

	conn    *amqp.Connection
	channel *amqp.Channel
	wg      sync.WaitGroup
}

// NewConsumer prepares a consumer for the given configuration.
func NewConsumer(cfg config.RabbitMQConfig, sink BatchSink, logger logrus.FieldLogger) (*Consumer, error) {
	if cfg.URL == "" {
		return nil, errors.New("rabbitmq url is required")
	}
	if cfg.Exchange == "" {
		return nil, errors.New("rabbitmq exchange is required")
	}
	if sink == nil {
		return nil, errors.New("batch sink is required")
	}
	return &Consumer{
		cfg:    cfg,
		sink:   sink,
		logger: logger.WithField("component", "consumer"),
	}, nil
}

// Start connects to RabbitMQ and begins consuming in the background until
// ctx is done or Close is called.
func (c *Consumer) Start(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	conn, err := amqp.Dial(c.cfg.URL)
	if err != nil {
		return fmt.Errorf("connect to rabbitmq: %w", err)
	}
	c.conn = conn

	deliveries, err := c.subscribe()
	if err != nil {
		c.Close()
		return err
	}

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		c.consumeLoop(ctx, deliveries)
	}()

	c.logger.WithField("exchange", c.cfg.Exchange).Info("rabbitmq consumer started")
	return nil
}

// Close stops consumption and releases the connection.
func (c *Consumer) Close() error {
	var errs []error
	if c.channel != nil {
		if err := c.channel.Close(); err != nil && !errors.Is(err, amqp.ErrClosed) {
			errs = append(errs, fmt.Errorf("close channel: %w", err))
		}
		c.channel = nil
	}
	if c.conn != nil {
		if err := c.conn.Close(); err != nil && !errors.Is(err, amqp.ErrClosed) {
			errs = append(errs, fmt.Errorf("close connection: %w", err))
		}
		c.conn = nil
	}
	c.wg.Wait()
	return errors.Join(errs...)
}

func (c *Consumer) subscribe() (<-chan amqp.Delivery, error) {
	ch, err := c.conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("open channel: %w", err)
	}
	c.channel = ch

	if err := ch.ExchangeDeclare(c.cfg.Exchange, "fanout", true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("declare exchange %s: %w", c.cfg.Exchange, err)
	}
	queue, err := ch.QueueDeclare("", false, true, true, false, nil)
	if err != nil {
		return nil, fmt.Errorf("declare queue: %w", err)
	}
	if err := ch.QueueBind(queue.Name, "", c.cfg.Exchange, false, nil); err != nil {
		return nil, fmt.Errorf("bind queue %s to %s: %w", queue.Name, c.cfg.Exchange, err)
	}
	prefetch := c.cfg.Prefetch
	if prefetch <= 0 {
		prefetch = 1
	}
	if err := ch.Qos(prefetch, 0, false); err != nil {
		return nil, fmt.Errorf("set qos: %w", err)
	}
	deliveries, err := ch.Consume(queue.Name, "", false, true, false, false, nil)
	if err != nil {
		return nil, fmt.Errorf("start consume: %w", err)
	}
	return deliveries, nil
}

func (c *Consumer) consumeLoop(ctx context.Context, deliveries <-chan amqp.Delivery) {
	for {
		select {
		case <-ctx.Done():
			return
		case delivery, ok := <-deliveries:
			if !ok {
				return
			}
			c.process(&delivery)
		}
	}
}

// process installs the delivered batch. Rejected messages are dropped
// rather than requeued since redelivery cannot fix them.
func (c *Consumer) process(delivery *amqp.Delivery) {
	log := c.logger.WithField("message_id", delivery.MessageId)

	batch, err := c.handleDelivery(delivery.Body)
	if err != nil {
		log.WithError(err).Warn("failed to process message")
		if nackErr := delivery.Nack(false, false); nackErr != nil {
			log.WithError(nackErr).Warn("failed to nack delivery")
		}
		return
	}
	if err := delivery.Ack(false); err != nil {
		log.WithError(err).Warn("failed to ack delivery")
		return
	}
	log.WithFields(logrus.Fields{
		"batch_id":  batch.ID,
		"companies": batch.Len(),
	}).Debug("batch installed")
}

func (c *Consumer) handleDelivery(body []byte) (*market.Batch, error) {
	batch, err := decodeBatch(body)
	if err != nil {
		return nil, err
	}
	if err := c.sink.Replace(batch); err != nil {
		return nil, fmt.Errorf("install batch %s: %w", batch.ID, err)
	}
	return batch, nil
}
