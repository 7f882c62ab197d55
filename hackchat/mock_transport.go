package hackchat

import (
	"context"
	"fmt"
	"io"
	"sync"
)

// MockTransport is an in-memory Transport for tests and examples; it
// needs no real server. Inbound frames are scripted with PushFrame and
// outbound frames are recorded for inspection with SentFrames.
type MockTransport struct {
	mu            sync.Mutex
	state         State
	identity      Identity
	sent          [][]byte
	failOnConnect bool
	failOnSend    bool

	inbound  chan []byte
	done     chan struct{}
	doneOnce sync.Once
	closeErr error
}

// NewMockTransport creates a mock transport. The concrete type is
// returned so the scripting helpers are callable.
func NewMockTransport() *MockTransport {
	return &MockTransport{
		state:   StateConnecting,
		inbound: make(chan []byte, 64),
		done:    make(chan struct{}),
	}
}

// SetFailOnConnect makes Connect fail with ErrConnectionFailed.
func (m *MockTransport) SetFailOnConnect(fail bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failOnConnect = fail
}

// SetFailOnSend makes SendFrame fail with ErrSendFailed.
func (m *MockTransport) SetFailOnSend(fail bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failOnSend = fail
}

// PushFrame scripts one inbound frame.
func (m *MockTransport) PushFrame(data []byte) {
	m.inbound <- data
}

// CloseFromServer simulates the server closing the connection orderly.
// Frames pushed before the close are still delivered.
func (m *MockTransport) CloseFromServer() {
	m.terminate(io.EOF)
}

// AbortFromServer simulates an abnormal close; err is what ReceiveFrame
// reports.
func (m *MockTransport) AbortFromServer(err error) {
	m.terminate(err)
}

// SentFrames returns a copy of every frame written so far, the join
// handshake included.
func (m *MockTransport) SentFrames() [][]byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	frames := make([][]byte, len(m.sent))
	copy(frames, m.sent)
	return frames
}

// JoinedAs reports the identity passed to Connect.
func (m *MockTransport) JoinedAs() Identity {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.identity
}

func (m *MockTransport) Connect(ctx context.Context, identity Identity) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failOnConnect {
		m.state = StateClosed
		return ErrConnectionFailed
	}
	if m.state != StateConnecting {
		return fmt.Errorf("%w: session is %s", ErrConnectionFailed, m.state)
	}

	frame, err := EncodeIntent(Join{Nick: identity.Nick, Channel: identity.Channel})
	if err != nil {
		m.state = StateClosed
		return fmt.Errorf("%w: %v", ErrConnectionFailed, err)
	}

	m.identity = identity
	m.sent = append(m.sent, frame)
	m.state = StateOpen
	return nil
}

func (m *MockTransport) SendFrame(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failOnSend {
		return ErrSendFailed
	}
	if m.state != StateOpen {
		return ErrNotConnected
	}

	frame := make([]byte, len(data))
	copy(frame, data)
	m.sent = append(m.sent, frame)
	return nil
}

func (m *MockTransport) ReceiveFrame() ([]byte, error) {
	if m.State() == StateConnecting {
		return nil, ErrNotConnected
	}

	// Drain scripted frames before reporting the close so a consumer
	// observes every frame pushed before CloseFromServer.
	select {
	case data := <-m.inbound:
		return data, nil
	default:
	}

	select {
	case data := <-m.inbound:
		return data, nil
	case <-m.done:
		m.mu.Lock()
		defer m.mu.Unlock()
		return nil, m.closeErr
	}
}

func (m *MockTransport) Close() error {
	m.terminate(io.EOF)
	return nil
}

func (m *MockTransport) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *MockTransport) terminate(err error) {
	m.doneOnce.Do(func() {
		m.mu.Lock()
		m.state = StateClosed
		m.closeErr = err
		m.mu.Unlock()
		close(m.done)
	})
}
