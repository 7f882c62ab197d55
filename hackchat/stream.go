package hackchat

import (
	"errors"
	"io"
	"iter"
)

// EventStream is a pull-based sequence of decoded events. Each Next call
// blocks until a frame arrives from the session. The sequence is finite:
// it ends with io.EOF when the session closes orderly, and with the
// underlying error when the session closes abnormally or a frame fails
// to decode. Either way the stream is spent; a fresh session is needed
// to read again.
//
// EventStream expects exactly one consumer.
type EventStream struct {
	transport Transport
	err       error
}

// Next blocks until the next event is available. Once Next has returned
// a non-nil error it keeps returning that error.
func (s *EventStream) Next() (Event, error) {
	if s.err != nil {
		return nil, s.err
	}

	data, err := s.transport.ReceiveFrame()
	if err != nil {
		s.err = err
		return nil, err
	}

	event, err := DecodeEvent(data)
	if err != nil {
		// Frame sync cannot be trusted after a malformed frame, so a
		// decode failure ends the stream rather than skipping.
		s.err = err
		return nil, err
	}
	return event, nil
}

// All ranges over the remaining events. Iteration stops silently on
// orderly close and yields a nil event with the error once on failure.
func (s *EventStream) All() iter.Seq2[Event, error] {
	return func(yield func(Event, error) bool) {
		for {
			event, err := s.Next()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(event, nil) {
				return
			}
		}
	}
}
