package terminal

// Observer is told about every state change of a session. It runs on the
// session's goroutine and must not block.
type Observer interface {
	Changed(Snapshot)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Snapshot)

func (f ObserverFunc) Changed(s Snapshot) { f(s) }

// Signal coalesces change notifications into a single pending wake-up.
// Consumers read Session.Snapshot after receiving from C. The channel is
// closed by Close once the session has stopped.
type Signal struct {
	ch chan struct{}
}

func NewSignal() *Signal {
	return &Signal{ch: make(chan struct{}, 1)}
}

func (s *Signal) Changed(Snapshot) {
	select {
	case s.ch <- struct{}{}:
	default:
	}
}

func (s *Signal) C() <-chan struct{} { return s.ch }

// Close must only be called after the session's Run has returned.
func (s *Signal) Close() { close(s.ch) }
