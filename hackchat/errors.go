package hackchat

import "errors"

var (
	ErrNotConnected     = errors.New("session is not connected")
	ErrConnectionFailed = errors.New("connection failed")
	ErrSendFailed       = errors.New("failed to send frame")
	ErrDecodeFailed     = errors.New("malformed frame")
	ErrEncodeFailed     = errors.New("intent cannot be encoded")
	ErrNickEmpty        = errors.New("nick cannot be empty")
	ErrChannelEmpty     = errors.New("channel cannot be empty")
	ErrMessageEmpty     = errors.New("message cannot be empty")
)
