package hackchat

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// wsTransport implements the Transport interface over a WebSocket
// connection. Reads and writes take separate locks so a blocked
// ReceiveFrame never stalls the senders.
type wsTransport struct {
	endpoint         string
	handshakeTimeout time.Duration

	mu    sync.Mutex // guards state and conn assignment
	conn  *websocket.Conn
	state State

	writeMu sync.Mutex // serializes the write path
}

// NewWebSocketTransport returns a Transport speaking the wire protocol
// over a single WebSocket connection to endpoint.
func NewWebSocketTransport(endpoint string, handshakeTimeout time.Duration) Transport {
	if handshakeTimeout == 0 {
		handshakeTimeout = defaultHandshakeTimeout
	}
	return &wsTransport{
		endpoint:         endpoint,
		handshakeTimeout: handshakeTimeout,
		state:            StateConnecting,
	}
}

// Connect dials the endpoint and sends the join frame. The server sends
// nothing before the join, so the handshake is write-only.
func (w *wsTransport) Connect(ctx context.Context, identity Identity) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state != StateConnecting {
		return fmt.Errorf("%w: session is %s", ErrConnectionFailed, w.state)
	}

	dialer := websocket.Dialer{HandshakeTimeout: w.handshakeTimeout}
	conn, _, err := dialer.DialContext(ctx, w.endpoint, nil)
	if err != nil {
		w.state = StateClosed
		return fmt.Errorf("%w: %v", ErrConnectionFailed, err)
	}

	joinFrame, err := EncodeIntent(Join{Nick: identity.Nick, Channel: identity.Channel})
	if err != nil {
		conn.Close()
		w.state = StateClosed
		return fmt.Errorf("%w: %v", ErrConnectionFailed, err)
	}
	if err := conn.WriteMessage(websocket.TextMessage, joinFrame); err != nil {
		conn.Close()
		w.state = StateClosed
		return fmt.Errorf("%w: join handshake: %v", ErrConnectionFailed, err)
	}

	w.conn = conn
	w.state = StateOpen
	return nil
}

func (w *wsTransport) SendFrame(data []byte) error {
	w.mu.Lock()
	conn := w.conn
	open := w.state == StateOpen
	w.mu.Unlock()

	if !open {
		return ErrNotConnected
	}

	w.writeMu.Lock()
	defer w.writeMu.Unlock()
	if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}
	return nil
}

// ReceiveFrame blocks with no deadline; long silences are expected and
// are what the keep-alive emitter is for.
func (w *wsTransport) ReceiveFrame() ([]byte, error) {
	w.mu.Lock()
	conn := w.conn
	state := w.state
	w.mu.Unlock()

	if state == StateClosed {
		return nil, io.EOF
	}
	if state != StateOpen {
		return nil, ErrNotConnected
	}

	_, data, err := conn.ReadMessage()
	if err != nil {
		if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
			w.Close()
			return nil, io.EOF
		}
		if w.State() == StateClosed {
			// Local teardown unblocked the read.
			return nil, io.EOF
		}
		w.Close()
		return nil, fmt.Errorf("connection closed abnormally: %w", err)
	}
	return data, nil
}

// Close is idempotent. Closing the underlying connection unblocks a
// reader parked in ReceiveFrame.
func (w *wsTransport) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state == StateClosed {
		return nil
	}
	w.state = StateClosed
	if w.conn == nil {
		return nil
	}

	// Best-effort close handshake; WriteControl is safe to call
	// concurrently with WriteMessage.
	deadline := time.Now().Add(time.Second)
	w.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), deadline)

	err := w.conn.Close()
	w.conn = nil
	return err
}

func (w *wsTransport) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}
