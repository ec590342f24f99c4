// Package rabbitmq publishes delivery requests and order events to RabbitMQ.
package rabbitmq

import (
	"context"
	"errors"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

var (
	// ErrPublishNacked is returned when the broker rejects a published message
	// or the channel closes before confirming it.
	ErrPublishNacked = errors.New("publish nacked by broker")

	errNotInConfirmMode = errors.New("rabbitmq channel is not in confirm mode")
)

// confirmation is the broker's answer to one published message.
type confirmation interface {
	WaitContext(ctx context.Context) (bool, error)
}

// confirmChannel is the part of *amqp.Channel the client uses.
type confirmChannel interface {
	PublishWithDeferredConfirmWithContext(
		ctx context.Context,
		exchange, key string,
		mandatory, immediate bool,
		msg amqp.Publishing,
	) (confirmation, error)
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	Close() error
}

// amqpChannel adapts *amqp.Channel to confirmChannel.
type amqpChannel struct {
	*amqp.Channel
}

func (c amqpChannel) PublishWithDeferredConfirmWithContext(
	ctx context.Context,
	exchange, key string,
	mandatory, immediate bool,
	msg amqp.Publishing,
) (confirmation, error) {
	dc, err := c.Channel.PublishWithDeferredConfirmWithContext(ctx, exchange, key, mandatory, immediate, msg)
	if err != nil {
		return nil, err
	}
	if dc == nil {
		return nil, errNotInConfirmMode
	}
	return dc, nil
}

// Client owns one connection and one confirm-mode channel. Every publish
// waits for the confirmation carrying its own delivery tag, so an abandoned
// wait never hands its confirmation to a later publish.
type Client struct {
	conn *amqp.Connection
	ch   confirmChannel
}

// Dial connects to url (amqp:// or amqps://) and puts the channel into
// publisher confirm mode.
func Dial(url string) (*Client, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err := ch.Confirm(false); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("enable publisher confirms: %w", err)
	}

	return &Client{conn: conn, ch: amqpChannel{Channel: ch}}, nil
}

func newClient(ch confirmChannel) *Client {
	return &Client{ch: ch}
}

// DeclareExchange declares a durable exchange of the given kind.
func (c *Client) DeclareExchange(name, kind string) error {
	return c.ch.ExchangeDeclare(name, kind, true, false, false, false, nil)
}

// Publish sends a persistent JSON message and waits for the broker's
// confirmation or ctx cancellation. A nack, including one caused by the
// channel closing, is ErrPublishNacked.
func (c *Client) Publish(ctx context.Context, exchange, key string, body []byte) error {
	conf, err := c.ch.PublishWithDeferredConfirmWithContext(
		ctx,
		exchange,
		key,
		false,
		false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
	if err != nil {
		return err
	}

	acked, err := conf.WaitContext(ctx)
	if err != nil {
		return err
	}
	if !acked {
		return ErrPublishNacked
	}
	return nil
}

func (c *Client) Close() error {
	var errs []error
	if c.ch != nil {
		errs = append(errs, c.ch.Close())
	}
	if c.conn != nil {
		errs = append(errs, c.conn.Close())
	}
	return errors.Join(errs...)
}
