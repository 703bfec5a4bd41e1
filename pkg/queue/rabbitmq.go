package queue

import (
	"encoding/json"
	"fmt"
	"time"

	"pulse-feed/pkg/config"
	"pulse-feed/pkg/logger"

	amqp "github.com/rabbitmq/amqp091-go"
)

const ContentEventsExchange = "content_events"

type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	logger  *logger.Logger
}

func NewRabbitMQClient(cfg *config.Config, log *logger.Logger) (*Client, error) {
	url := fmt.Sprintf("amqp://%s:%s@%s:%s/",
		cfg.RabbitMQUser,
		cfg.RabbitMQPassword,
		cfg.RabbitMQHost,
		cfg.RabbitMQPort,
	)

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	// Declare exchange for domain events
	err = channel.ExchangeDeclare(
		ContentEventsExchange, // name
		"direct",              // type
		true,                  // durable
		false,                 // auto-deleted
		false,                 // internal
		false,                 // no-wait
		nil,                   // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	// One durable queue per topic, bound by its routing key
	for _, topic := range Topics {
		_, err = channel.QueueDeclare(
			topic, // name
			true,  // durable
			false, // delete when unused
			false, // exclusive
			false, // no-wait
			nil,   // arguments
		)
		if err != nil {
			channel.Close()
			conn.Close()
			return nil, fmt.Errorf("failed to declare queue %s: %w", topic, err)
		}

		err = channel.QueueBind(
			topic,                 // queue name
			topic,                 // routing key
			ContentEventsExchange, // exchange
			false,
			nil,
		)
		if err != nil {
			channel.Close()
			conn.Close()
			return nil, fmt.Errorf("failed to bind queue %s: %w", topic, err)
		}
	}

	log.Info("Connected to RabbitMQ at %s:%s", cfg.RabbitMQHost, cfg.RabbitMQPort)

	return &Client{
		conn:    conn,
		channel: channel,
		logger:  log,
	}, nil
}

func (c *Client) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// Publish sends a domain event to its topic. The event type doubles as the
// routing key.
func (c *Client) Publish(event Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	err = c.channel.Publish(
		ContentEventsExchange, // exchange
		event.EventType,       // routing key
		false,                 // mandatory
		false,                 // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
		},
	)

	if err != nil {
		c.logger.Error("[QUEUE] Failed to publish event to exchange=%s, topic=%s: %v", ContentEventsExchange, event.EventType, err)
		return fmt.Errorf("failed to publish event: %w", err)
	}

	return nil
}

// Consume delivers events from a topic queue to the handler. Messages are
// acked after the handler succeeds; handler errors requeue the message,
// undecodable messages are dropped.
func (c *Client) Consume(topic string, handler func(Event) error) error {
	msgs, err := c.channel.Consume(
		topic, // queue
		"",    // consumer
		false, // auto-ack (we'll manually ack after processing)
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer for %s: %w", topic, err)
	}

	c.logger.Info("[QUEUE] Started consuming from queue: %s", topic)

	go func() {
		for msg := range msgs {
			var event Event
			if err := json.Unmarshal(msg.Body, &event); err != nil {
				c.logger.Error("[QUEUE] Failed to unmarshal event: %v, body=%s", err, string(msg.Body))
				msg.Nack(false, false) // Reject and don't requeue
				continue
			}

			if err := handler(event); err != nil {
				c.logger.Error("[QUEUE] Handler failed to process event %s (%s): %v", event.EventID, event.EventType, err)
				msg.Nack(false, true) // Reject and requeue
				continue
			}

			msg.Ack(false)
		}
	}()

	return nil
}
