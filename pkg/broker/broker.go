package broker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"
)

const (
	ExchangeRides    = "ride_topic"
	publishTimeout   = 5 * time.Second
	reconnectBase    = 200 * time.Millisecond
	reconnectRetries = 3
)

var ErrClosed = errors.New("broker: publisher is closed")

type Publisher interface {
	Publish(ctx context.Context, routingKey string, body []byte) error
	Close() error
}

// channel is the part of *amqp.Channel the publisher needs.
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	IsClosed() bool
	Close() error
}

// openFunc returns a ready channel together with the connection that owns it.
type openFunc func() (channel, io.Closer, error)

// RabbitPublisher publishes to one exchange. A channel or connection lost to a
// broker restart or a channel error is re-opened on the next Publish.
type RabbitPublisher struct {
	open      openFunc
	exchange  string
	retryBase time.Duration

	mu     sync.Mutex
	conn   io.Closer
	ch     channel
	closed bool
}

// Dial connects to RabbitMQ and declares the durable topic exchange for ride events.
func Dial(url string) (*RabbitPublisher, error) {
	p := newPublisher(dialer(url, ExchangeRides), ExchangeRides)
	ch, conn, err := p.open()
	if err != nil {
		return nil, err
	}
	p.ch, p.conn = ch, conn
	zap.L().Info("connected to rabbitmq", zap.String("exchange", ExchangeRides))
	return p, nil
}

func dialer(url, exchange string) openFunc {
	return func() (channel, io.Closer, error) {
		conn, err := amqp.Dial(url)
		if err != nil {
			return nil, nil, fmt.Errorf("broker: dial: %w", err)
		}
		ch, err := conn.Channel()
		if err != nil {
			_ = conn.Close()
			return nil, nil, fmt.Errorf("broker: open channel: %w", err)
		}
		if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
			_ = ch.Close()
			_ = conn.Close()
			return nil, nil, fmt.Errorf("broker: declare exchange %s: %w", exchange, err)
		}
		return ch, conn, nil
	}
}

func newPublisher(open openFunc, exchange string) *RabbitPublisher {
	return &RabbitPublisher{open: open, exchange: exchange, retryBase: reconnectBase}
}

func (p *RabbitPublisher) Publish(ctx context.Context, routingKey string, body []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return ErrClosed
	}

	if p.ch == nil || p.ch.IsClosed() {
		if err := p.reconnect(ctx); err != nil {
			return err
		}
	}

	err := p.publish(ctx, routingKey, body)
	if errors.Is(err, amqp.ErrClosed) {
		zap.L().Warn("rabbitmq channel closed, reconnecting", zap.String("routingKey", routingKey), zap.Error(err))
		if rerr := p.reconnect(ctx); rerr != nil {
			return rerr
		}
		err = p.publish(ctx, routingKey, body)
	}
	if err != nil {
		return fmt.Errorf("broker: publish %s: %w", routingKey, err)
	}
	return nil
}

func (p *RabbitPublisher) publish(ctx context.Context, routingKey string, body []byte) error {
	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	return p.ch.PublishWithContext(ctx, p.exchange, routingKey, false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		Timestamp:    time.Now().UTC(),
		Body:         body,
	})
}

// reconnect drops the current channel and connection and dials again with
// exponential backoff. Callers hold p.mu.
func (p *RabbitPublisher) reconnect(ctx context.Context) error {
	_ = p.release()

	backoff := retry.WithMaxRetries(reconnectRetries, retry.NewExponential(p.retryBase))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		ch, conn, err := p.open()
		if err != nil {
			zap.L().Warn("rabbitmq reconnect attempt failed", zap.Error(err))
			return retry.RetryableError(err)
		}
		p.ch, p.conn = ch, conn
		return nil
	})
	if err != nil {
		return fmt.Errorf("broker: reconnect: %w", err)
	}
	zap.L().Info("reconnected to rabbitmq", zap.String("exchange", p.exchange))
	return nil
}

func (p *RabbitPublisher) release() error {
	var errs []error
	if p.ch != nil {
		errs = append(errs, p.ch.Close())
		p.ch = nil
	}
	if p.conn != nil {
		errs = append(errs, p.conn.Close())
		p.conn = nil
	}
	return errors.Join(errs...)
}

func (p *RabbitPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	p.closed = true
	return p.release()
}
