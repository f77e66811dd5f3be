package mail

import "errors"

var (
	// ErrSendFailed indicates an outbound message could not be delivered.
	ErrSendFailed = errors.New("mail send failed")
	// ErrNotFound indicates the requested message no longer exists.
	ErrNotFound = errors.New("message not found")
)
