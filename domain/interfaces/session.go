package interfaces

import "context"

// Session owns one isolated browser context and its page, exclusive to a
// single scenario run. Close is safe to call more than once and must run
// on every exit path.
type Session interface {
	ID() string
	Page() Page
	Close() error
}

// SessionFactory launches browser sessions. Each Acquire returns a fresh,
// empty browsing context; nothing is shared between sessions.
type SessionFactory interface {
	Acquire(ctx context.Context) (Session, error)
}
