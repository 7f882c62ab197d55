package hackchat

import "context"

// Identity is the nick and channel pair announced during the join
// handshake. It never changes for the lifetime of a session.
type Identity struct {
	Nick    string
	Channel string
}

// State describes where a session is in its lifecycle. StateClosed is
// terminal; a session never reconnects.
type State int

const (
	StateConnecting State = iota
	StateOpen
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateOpen:
		return "open"
	default:
		return "closed"
	}
}

// Transport owns one persistent connection to the chat server.
//
// SendFrame may be called from multiple goroutines; implementations must
// serialize writes so two frames never interleave on the wire.
// ReceiveFrame expects a single reader and must not contend with the
// write path. Close must be idempotent, callable from any goroutine, and
// must unblock a pending ReceiveFrame.
type Transport interface {
	// Connect establishes the connection, then sends the join frame
	// derived from identity as the first outbound frame.
	Connect(ctx context.Context, identity Identity) error

	// SendFrame writes one frame.
	SendFrame(data []byte) error

	// ReceiveFrame blocks until a full frame is available. It returns
	// io.EOF when the session closes orderly and the underlying error
	// when it closes abnormally.
	ReceiveFrame() ([]byte, error)

	// Close tears the session down.
	Close() error

	// State reports the session lifecycle state.
	State() State
}
