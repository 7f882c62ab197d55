package hackchat

import "time"

// Config holds the settings for a Client. Nick and Channel are required;
// everything else has a working default.
type Config struct {
	// Nick is the nickname announced during the join handshake.
	Nick string

	// Channel selects the chat channel to join.
	Channel string

	// Endpoint is the WebSocket URL of the chat server. Defaults to the
	// public hack.chat endpoint.
	Endpoint string

	// HandshakeTimeout bounds the WebSocket dial and join handshake.
	HandshakeTimeout time.Duration

	// KeepAliveInterval is the delay between ping frames once
	// StartKeepAlive has been called.
	KeepAliveInterval time.Duration

	// Logger receives informational and error logs. A *slog.Logger
	// satisfies this. Nil disables logging.
	Logger Logger
}

// Logger is the minimal logging surface the client needs.
type Logger interface {
	Info(msg string, args ...any)
	Error(msg string, args ...any)
}

const (
	defaultEndpoint          = "wss://hack.chat/chat-ws"
	defaultHandshakeTimeout  = 10 * time.Second
	defaultKeepAliveInterval = 60 * time.Second
)

func (c *Config) applyDefaults() {
	if c.Endpoint == "" {
		c.Endpoint = defaultEndpoint
	}
	if c.HandshakeTimeout == 0 {
		c.HandshakeTimeout = defaultHandshakeTimeout
	}
	if c.KeepAliveInterval == 0 {
		c.KeepAliveInterval = defaultKeepAliveInterval
	}
}
