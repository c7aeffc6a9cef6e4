package amqp

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"max.ks1230/home-ledger/internal/logger"
	"max.ks1230/home-ledger/internal/model/events"
)

const (
	publishTimeout = 5 * time.Second
	contentType    = "application/x-protobuf"
)

type config interface {
	URL() string
	ExchangeName() string
	QueueName() string
}

// Client publishes ledger events to a topic exchange. Events are routed by
// kind; the configured queue gets all of them.
type Client struct {
	conn         *amqp091.Connection
	channel      *amqp091.Channel
	exchangeName string
	queueName    string
}

func NewClient(cfg config) (*Client, error) {
	conn, err := amqp091.Dial(cfg.URL())
	if err != nil {
		return nil, errors.Wrap(err, "dial AMQP")
	}

	channel, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, errors.Wrap(err, "open channel")
	}

	client := &Client{
		conn:         conn,
		channel:      channel,
		exchangeName: cfg.ExchangeName(),
		queueName:    cfg.QueueName(),
	}
	if err = client.setup(); err != nil {
		_ = client.Close()
		return nil, errors.Wrap(err, "setup exchange and queue")
	}
	return client, nil
}

func (c *Client) setup() error {
	err := c.channel.ExchangeDeclare(
		c.exchangeName,
		amqp091.ExchangeTopic,
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		return errors.Wrap(err, "declare exchange")
	}

	_, err = c.channel.QueueDeclare(
		c.queueName,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		return errors.Wrap(err, "declare queue")
	}

	err = c.channel.QueueBind(c.queueName, "#", c.exchangeName, false, nil)
	if err != nil {
		return errors.Wrap(err, "bind queue")
	}
	return nil
}

func (c *Client) Publish(ctx context.Context, ev events.Event) error {
	body, err := ev.Marshal()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = c.channel.PublishWithContext(
		ctx,
		c.exchangeName,
		string(ev.Kind),
		false, // mandatory
		false, // immediate
		amqp091.Publishing{
			ContentType:  contentType,
			DeliveryMode: amqp091.Persistent,
			Timestamp:    ev.At,
			Body:         body,
		},
	)
	if err != nil {
		return errors.Wrap(err, "publish message")
	}

	logger.Debug("published ledger event",
		zap.String("kind", string(ev.Kind)),
		zap.String("exchange", c.exchangeName))
	return nil
}

func (c *Client) Close() error {
	if c.channel != nil {
		_ = c.channel.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}
