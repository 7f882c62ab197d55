package hackchat

// Event is a decoded inbound frame. Every frame that parses yields
// exactly one event; commands this library does not recognize decode to
// Unknown rather than being dropped, so downstream code can rely on a
// 1:1 frame-to-event correspondence.
type Event interface {
	isEvent()
}

// Message is a chat message from the channel. Trip is the sender's
// trip code, empty when the sender has none.
type Message struct {
	Nick string
	Text string
	Trip string
}

// JoinRoom is raised when someone joins the channel.
type JoinRoom struct {
	Nick string
}

// LeaveRoom is raised when someone leaves the channel.
type LeaveRoom struct {
	Nick string
}

// OnlineSet is the roster snapshot the server sends once after the join
// handshake completes.
type OnlineSet struct {
	Nicks []string
}

// Info carries channel-level notices such as stats replies, bans and
// server warnings.
type Info struct {
	Text string
}

// Unknown preserves frames whose command this library does not
// recognize. Raw is the frame exactly as received.
type Unknown struct {
	Cmd string
	Raw []byte
}

func (Message) isEvent()   {}
func (JoinRoom) isEvent()  {}
func (LeaveRoom) isEvent() {}
func (OnlineSet) isEvent() {}
func (Info) isEvent()      {}
func (Unknown) isEvent()   {}
