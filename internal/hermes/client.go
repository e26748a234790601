package hermes

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"
)

const contentTypeJSON = "application/json"

// Options configures the NATS connection. With a QueueGroup set, replicas of
// the service share inbound events instead of each handling every one.
type Options struct {
	URL        string
	Token      string
	QueueGroup string
}

// Handler receives a decoded subject and the raw JSON payload.
type Handler func(subject string, data []byte)

type Client struct {
	conn   *nats.Conn
	queue  string
	subs   []*nats.Subscription
	logger *slog.Logger
}

func NewClient(opts Options, logger *slog.Logger) (*Client, error) {
	natsOpts := []nats.Option{
		nats.Name("replymate"),
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(60),
		nats.ReconnectWait(2 * time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("nats disconnected", "error", err)
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("nats reconnected", "url", nc.ConnectedUrl())
		}),
		nats.ErrorHandler(func(_ *nats.Conn, sub *nats.Subscription, err error) {
			if sub != nil {
				logger.Error("nats async error", "subject", sub.Subject, "error", err)
				return
			}
			logger.Error("nats async error", "error", err)
		}),
	}
	if opts.Token != "" {
		natsOpts = append(natsOpts, nats.Token(opts.Token))
	}

	nc, err := nats.Connect(opts.URL, natsOpts...)
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}

	return &Client{conn: nc, queue: opts.QueueGroup, logger: logger}, nil
}

// Publish sends data as a JSON message tagged with a Content-Type header.
func (c *Client) Publish(subject string, data any) error {
	msg, err := newMessage(subject, data)
	if err != nil {
		return err
	}
	return c.conn.PublishMsg(msg)
}

func (c *Client) Subscribe(subject string, handler Handler) error {
	cb := func(msg *nats.Msg) {
		dispatch(c.logger, handler, msg)
	}

	var (
		sub *nats.Subscription
		err error
	)
	if c.queue != "" {
		sub, err = c.conn.QueueSubscribe(subject, c.queue, cb)
	} else {
		sub, err = c.conn.Subscribe(subject, cb)
	}
	if err != nil {
		return fmt.Errorf("subscribe %s: %w", subject, err)
	}
	c.subs = append(c.subs, sub)
	c.logger.Info("subscribed", "subject", subject, "queue", c.queue)
	return nil
}

// Close drains subscriptions so in-flight events finish before the
// connection goes away.
func (c *Client) Close() {
	if err := c.conn.Drain(); err != nil {
		c.logger.Warn("nats drain failed", "error", err)
		c.conn.Close()
	}
}

func newMessage(subject string, data any) (*nats.Msg, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}
	msg := nats.NewMsg(subject)
	msg.Header.Set("Content-Type", contentTypeJSON)
	msg.Data = payload
	return msg, nil
}

// dispatch runs handler and keeps a panicking handler from taking down the
// subscription goroutine.
func dispatch(logger *slog.Logger, handler Handler, msg *nats.Msg) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("event handler panicked", "subject", msg.Subject, "panic", r)
		}
	}()
	handler(msg.Subject, msg.Data)
}
