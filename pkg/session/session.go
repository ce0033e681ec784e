package session

import (
	"errors"
	"time"
)

// ErrEmptyUserID is returned by Login when the user id is empty.
var ErrEmptyUserID = errors.New("user_id is required")

// Session is one client's claim to be online. LastActive carries a
// monotonic reading, so TTL comparisons are immune to wall-clock jumps.
type Session struct {
	ID         string
	UserID     string
	LastActive time.Time
}

// Registry owns the session table and the derived set of online users.
// A user is online iff at least one live session references them.
type Registry interface {
	Login(userID string) (string, error)
	Heartbeat(sessionID string) bool
	Logout(sessionID string)
	Validate(sessionID string) bool
	Count() int
	ListUsers() []string
	Sweep(now time.Time) int
}
