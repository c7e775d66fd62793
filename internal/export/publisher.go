package export

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Publisher delivers clinical records to the external record system.
type Publisher interface {
	Publish(ctx context.Context, record ClinicalRecord) error
	Close() error
}

// AMQPPublisher publishes records to a durable RabbitMQ queue.
type AMQPPublisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   string
}

// Ensure AMQPPublisher implements Publisher
var _ Publisher = (*AMQPPublisher)(nil)

// NewAMQPPublisher dials the broker and declares the export queue.
func NewAMQPPublisher(addr, queue string) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(addr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to broker: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	// Durable queue so records survive a broker restart.
	if _, err := channel.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue %q: %w", queue, err)
	}

	return &AMQPPublisher{conn: conn, channel: channel, queue: queue}, nil
}

// Publish serializes the record and pushes it onto the queue with
// persistent delivery.
func (p *AMQPPublisher) Publish(ctx context.Context, record ClinicalRecord) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to serialize record: %w", err)
	}

	err = p.channel.PublishWithContext(ctx, "", p.queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         payload,
	})
	if err != nil {
		return fmt.Errorf("failed to publish record: %w", err)
	}
	return nil
}

// Close releases the channel and connection.
func (p *AMQPPublisher) Close() error {
	if err := p.channel.Close(); err != nil {
		p.conn.Close()
		return err
	}
	return p.conn.Close()
}

// LogPublisher writes records to the process log instead of a broker. Used
// when no broker is configured, mirroring a dry-run data exchange.
type LogPublisher struct {
	logger *log.Logger
}

var _ Publisher = (*LogPublisher)(nil)

// NewLogPublisher creates a publisher that logs records with the given
// logger, or the default logger when nil.
func NewLogPublisher(logger *log.Logger) *LogPublisher {
	if logger == nil {
		logger = log.Default()
	}
	return &LogPublisher{logger: logger}
}

// Publish logs the serialized record.
func (p *LogPublisher) Publish(_ context.Context, record ClinicalRecord) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to serialize record: %w", err)
	}
	p.logger.Printf("clinical record export: %s", payload)
	return nil
}

// Close is a no-op for the log publisher.
func (p *LogPublisher) Close() error { return nil }
