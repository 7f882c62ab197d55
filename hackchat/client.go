// Package hackchat is a client library for the hack.chat wire protocol.
// It maintains one persistent WebSocket session per Client, decodes
// inbound frames into typed events and encodes application intents into
// outbound frames.
//
// Basic usage:
//
//	client, err := hackchat.NewClient(hackchat.Config{
//		Nick:    "TestBot",
//		Channel: "botDev",
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Close()
//
//	client.StartKeepAlive()
//
//	for event, err := range client.Events().All() {
//		if err != nil {
//			log.Fatal(err)
//		}
//		if msg, ok := event.(hackchat.Message); ok {
//			fmt.Printf("<%s> %s\n", msg.Nick, msg.Text)
//		}
//	}
//
// The library never reconnects and never retries; when the stream ends
// the caller decides whether to build a new Client.
package hackchat

import (
	"context"
	"sync"
)

// Client is the composition root: it owns one Transport session joined
// to one channel and exposes the event stream plus outbound intents.
type Client struct {
	config    Config
	identity  Identity
	transport Transport
	stream    *EventStream

	keepAliveOnce sync.Once
	closeOnce     sync.Once
	done          chan struct{}
	wg            sync.WaitGroup
}

// NewClient connects to the chat server and performs the join handshake.
// Connection or handshake failure is fatal to the instance; no partial
// state is retained and the caller owns any retry policy.
func NewClient(config Config) (*Client, error) {
	config.applyDefaults()
	return NewClientWithTransport(config, NewWebSocketTransport(config.Endpoint, config.HandshakeTimeout))
}

// NewClientWithTransport is NewClient with a caller-supplied Transport.
// It is how tests and examples run against a MockTransport instead of a
// live server.
func NewClientWithTransport(config Config, transport Transport) (*Client, error) {
	if config.Nick == "" {
		return nil, ErrNickEmpty
	}
	if config.Channel == "" {
		return nil, ErrChannelEmpty
	}
	config.applyDefaults()

	c := &Client{
		config:    config,
		identity:  Identity{Nick: config.Nick, Channel: config.Channel},
		transport: transport,
		stream:    &EventStream{transport: transport},
		done:      make(chan struct{}),
	}

	ctx, cancel := context.WithTimeout(context.Background(), config.HandshakeTimeout)
	defer cancel()

	if err := transport.Connect(ctx, c.identity); err != nil {
		if config.Logger != nil {
			config.Logger.Error("failed to connect", "endpoint", config.Endpoint, "error", err)
		}
		return nil, err
	}

	if config.Logger != nil {
		config.Logger.Info("joined channel", "nick", config.Nick, "channel", config.Channel)
	}
	return c, nil
}

// Events returns the stream of decoded inbound events. A Client has one
// stream; only one consumer may iterate it.
func (c *Client) Events() *EventStream {
	return c.stream
}

// SendMessage sends a chat message to the channel. The error is the
// caller's to handle; a closed session reports ErrNotConnected.
func (c *Client) SendMessage(text string) error {
	if text == "" {
		return ErrMessageEmpty
	}
	return c.sendIntent(Chat{Text: text})
}

// SendStats asks the server for connection statistics. The reply arrives
// on the event stream as an Info event.
func (c *Client) SendStats() error {
	return c.sendIntent(Stats{})
}

func (c *Client) sendIntent(intent Intent) error {
	data, err := EncodeIntent(intent)
	if err != nil {
		return err
	}
	return c.transport.SendFrame(data)
}

// Close tears the session down. It is idempotent and safe to call from
// any goroutine; a consumer blocked in EventStream.Next is unblocked and
// the keep-alive emitter, if running, terminates.
func (c *Client) Close() error {
	var err error
	c.closeOnce.Do(func() {
		close(c.done)
		err = c.transport.Close()
		c.wg.Wait()
		if c.config.Logger != nil {
			c.config.Logger.Info("session closed", "channel", c.identity.Channel)
		}
	})
	return err
}
