package hackchat

import (
	"encoding/json"
	"fmt"
	"unicode/utf8"
)

// Intent is an outbound command prior to wire encoding. Each intent maps
// deterministically to exactly one frame.
type Intent interface {
	isIntent()
}

// Join announces a nickname in a channel. It is sent once, immediately
// after the socket opens.
type Join struct {
	Nick    string
	Channel string
}

// Chat sends a message to the current channel.
type Chat struct {
	Text string
}

// Ping keeps the connection from being treated as idle.
type Ping struct{}

// Stats asks the server for connection statistics. The answer arrives on
// the event stream as an Info event.
type Stats struct{}

func (Join) isIntent()  {}
func (Chat) isIntent()  {}
func (Ping) isIntent()  {}
func (Stats) isIntent() {}

// wireFrame is the JSON shape shared by all frames: a "cmd" discriminator
// plus whichever payload fields the command uses.
type wireFrame struct {
	Cmd     string   `json:"cmd"`
	Nick    string   `json:"nick,omitempty"`
	Channel string   `json:"channel,omitempty"`
	Text    string   `json:"text,omitempty"`
	Trip    string   `json:"trip,omitempty"`
	Nicks   []string `json:"nicks,omitempty"`
}

// EncodeIntent serializes an intent into its wire frame. Payloads that
// are not valid UTF-8 fail with ErrEncodeFailed; JSON marshaling would
// silently substitute replacement characters otherwise.
func EncodeIntent(intent Intent) ([]byte, error) {
	var frame wireFrame
	switch in := intent.(type) {
	case Join:
		if !utf8.ValidString(in.Nick) || !utf8.ValidString(in.Channel) {
			return nil, fmt.Errorf("%w: join fields are not valid UTF-8", ErrEncodeFailed)
		}
		frame = wireFrame{Cmd: "join", Nick: in.Nick, Channel: in.Channel}
	case Chat:
		if !utf8.ValidString(in.Text) {
			return nil, fmt.Errorf("%w: text is not valid UTF-8", ErrEncodeFailed)
		}
		frame = wireFrame{Cmd: "chat", Text: in.Text}
	case Ping:
		frame = wireFrame{Cmd: "ping"}
	case Stats:
		frame = wireFrame{Cmd: "stats"}
	default:
		return nil, fmt.Errorf("%w: unsupported intent %T", ErrEncodeFailed, intent)
	}

	data, err := json.Marshal(frame)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncodeFailed, err)
	}
	return data, nil
}

// DecodeEvent parses one inbound frame. Malformed wire syntax fails with
// ErrDecodeFailed; a well-formed frame with an unrecognized command still
// succeeds and decodes to Unknown.
func DecodeEvent(data []byte) (Event, error) {
	// Decoding through a pointer distinguishes a top-level null, which is
	// well-formed JSON but not a frame, from an empty object.
	var frame *wireFrame
	if err := json.Unmarshal(data, &frame); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeFailed, err)
	}
	if frame == nil {
		return nil, fmt.Errorf("%w: frame is not an object", ErrDecodeFailed)
	}

	switch frame.Cmd {
	case "chat":
		return Message{Nick: frame.Nick, Text: frame.Text, Trip: frame.Trip}, nil
	case "onlineAdd":
		return JoinRoom{Nick: frame.Nick}, nil
	case "onlineRemove":
		return LeaveRoom{Nick: frame.Nick}, nil
	case "onlineSet":
		return OnlineSet{Nicks: frame.Nicks}, nil
	case "info", "warn":
		return Info{Text: frame.Text}, nil
	default:
		raw := make([]byte, len(data))
		copy(raw, data)
		return Unknown{Cmd: frame.Cmd, Raw: raw}, nil
	}
}
