package terminal

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

const (
	DefaultSettleDelay = 150 * time.Millisecond
	DefaultEnterDelay  = 300 * time.Millisecond
	DefaultJitter      = 20 * time.Millisecond
)

var errEmptyAddress = errors.New("lookup returned an empty address")

// Phase is the externally visible state of a session.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunningPreamble
	PhaseResolvingAddress
	PhaseRunningEpilogue
	PhaseDone
	// PhaseCanceled is entered when the session is torn down mid-playback.
	PhaseCanceled
)

var phaseNames = [...]string{
	PhaseIdle:             "idle",
	PhaseRunningPreamble:  "running-preamble",
	PhaseResolvingAddress: "resolving-address",
	PhaseRunningEpilogue:  "running-epilogue",
	PhaseDone:             "done",
	PhaseCanceled:         "canceled",
}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return "unknown"
	}
	return phaseNames[p]
}

// Resolver looks up the visitor address spliced into the epilogue.
type Resolver interface {
	Resolve(ctx context.Context) (string, error)
}

// ResolverFunc adapts a function to Resolver.
type ResolverFunc func(ctx context.Context) (string, error)

func (f ResolverFunc) Resolve(ctx context.Context) (string, error) { return f(ctx) }

// Snapshot is a copy of the session state handed to presentation layers.
type Snapshot struct {
	Phase  Phase
	Lines  []Line
	Typing string
	// Resolved is empty until the lookup has finished.
	Resolved string
	Fallback bool
}

// Option configures a Session.
type Option func(*Session)

func WithClock(c Clock) Option { return func(s *Session) { s.clock = c } }

func WithDelays(f DelayFunc) Option { return func(s *Session) { s.delays = f } }

func WithResolver(r Resolver) Option { return func(s *Session) { s.resolver = r } }

func WithLogger(l *zap.Logger) Option { return func(s *Session) { s.logger = l } }

func WithObserver(o Observer) Option {
	return func(s *Session) { s.observers = append(s.observers, o) }
}

// WithTimings overrides the output settle delay and the pause after a
// typed line. Non-positive values mean no wait.
func WithTimings(settle, enter time.Duration) Option {
	return func(s *Session) {
		s.settle = settle
		s.enter = enter
	}
}

// state is the sequencer's position in its own machine. Each waiting state
// names the suspension that has to complete before the next transition.
type state int

const (
	stateMounted state = iota
	stateNextStep
	stateTypingChar
	stateAwaitingEnter
	stateAwaitingSettle
	stateAwaitingLookup
	stateResolved
	stateStopped
)

type waitKind int

const (
	waitNone waitKind = iota
	waitTimer
	waitLookup
	waitStopped
)

type wait struct {
	kind  waitKind
	delay time.Duration
}

func timer(d time.Duration) wait {
	if d <= 0 {
		return wait{}
	}
	return wait{kind: waitTimer, delay: d}
}

// Session is one mounted terminal widget. It is driven by a single call to
// Run; Snapshot may be called from any goroutine.
type Session struct {
	script    Script
	clock     Clock
	delays    DelayFunc
	resolver  Resolver
	settle    time.Duration
	enter     time.Duration
	logger    *zap.Logger
	observers []Observer

	started atomic.Bool

	mu       sync.RWMutex
	phase    Phase
	lines    []Line
	typing   string
	resolved string
	fallback bool

	// Owned by the Run goroutine.
	state    state
	steps    []Step
	index    int
	text     []rune
	revealed int
	pending  string
}

func NewSession(script Script, opts ...Option) *Session {
	s := &Session{
		script: script,
		clock:  RealClock{},
		delays: Jitter(DefaultJitter),
		settle: DefaultSettleDelay,
		enter:  DefaultEnterDelay,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if s.delays == nil {
		s.delays = NoJitter
	}
	return s
}

// Run plays the script to completion and returns PhaseDone, or
// PhaseCanceled if ctx ends first. Nothing is committed after ctx is done.
// Only the first call plays; later calls return the current phase.
func (s *Session) Run(ctx context.Context) Phase {
	if !s.started.CompareAndSwap(false, true) {
		return s.Phase()
	}
	for {
		if ctx.Err() != nil {
			return s.teardown()
		}
		w := s.transition()
		switch w.kind {
		case waitTimer:
			select {
			case <-ctx.Done():
				return s.teardown()
			case <-s.clock.After(w.delay):
			}
		case waitLookup:
			s.pending = s.lookup(ctx)
			s.state = stateResolved
		case waitStopped:
			return PhaseDone
		}
	}
}

func (s *Session) transition() wait {
	switch s.state {
	case stateMounted:
		s.beginSequence(PhaseRunningPreamble, s.script.Preamble)
		return wait{}

	case stateNextStep:
		if s.index >= len(s.steps) {
			if s.phase == PhaseRunningPreamble {
				s.setPhase(PhaseResolvingAddress)
				s.state = stateAwaitingLookup
				return wait{kind: waitLookup}
			}
			s.setPhase(PhaseDone)
			s.state = stateStopped
			return wait{kind: waitStopped}
		}
		step := s.steps[s.index]
		if step.Kind == Input {
			s.text = []rune(step.Text)
			s.revealed = 0
			s.state = stateTypingChar
			return wait{}
		}
		s.state = stateAwaitingSettle
		return timer(s.settle)

	case stateTypingChar:
		if s.revealed == len(s.text) {
			s.state = stateAwaitingEnter
			return timer(s.enter)
		}
		s.revealed++
		s.setTyping(string(s.text[:s.revealed]))
		return timer(s.delays(s.steps[s.index].TypeDelay))

	case stateAwaitingEnter:
		step := s.steps[s.index]
		s.commit(Line{Text: Prompt + step.Text, Style: step.Style})
		s.index++
		s.state = stateNextStep
		return wait{}

	case stateAwaitingSettle:
		step := s.steps[s.index]
		s.commit(Line{Text: step.Text, Style: step.Style})
		s.index++
		s.state = stateNextStep
		return wait{}

	case stateResolved:
		value, fallback := s.pending, false
		if value == "" {
			value, fallback = FallbackAddress, true
		}
		s.setResolved(value, fallback)
		s.beginSequence(PhaseRunningEpilogue, Interpolate(s.script.Epilogue, value))
		return wait{}
	}
	return wait{kind: waitStopped}
}

func (s *Session) beginSequence(phase Phase, steps []Step) {
	s.steps = steps
	s.index = 0
	s.state = stateNextStep
	s.setPhase(phase)
}

// lookup returns the resolved address, or "" when the fallback applies.
func (s *Session) lookup(ctx context.Context) string {
	if s.resolver == nil {
		s.logger.Debug("no address resolver configured", zap.String("fallback", FallbackAddress))
		return ""
	}
	addr, err := s.resolver.Resolve(ctx)
	if err == nil && addr == "" {
		err = errEmptyAddress
	}
	if err != nil {
		if ctx.Err() == nil {
			s.logger.Warn("address lookup failed",
				zap.Error(err),
				zap.String("fallback", FallbackAddress))
		}
		return ""
	}
	return addr
}

func (s *Session) teardown() Phase {
	s.state = stateStopped
	s.setPhase(PhaseCanceled)
	return PhaseCanceled
}

func (s *Session) setPhase(p Phase) {
	s.mu.Lock()
	s.phase = p
	s.mu.Unlock()
	s.notify()
}

func (s *Session) setTyping(text string) {
	s.mu.Lock()
	s.typing = text
	s.mu.Unlock()
	s.notify()
}

// commit appends a line and clears the typing state in one change.
func (s *Session) commit(line Line) {
	s.mu.Lock()
	s.lines = append(s.lines, line)
	s.typing = ""
	s.mu.Unlock()
	s.notify()
}

func (s *Session) setResolved(value string, fallback bool) {
	s.mu.Lock()
	s.resolved = value
	s.fallback = fallback
	s.mu.Unlock()
	s.notify()
}

func (s *Session) notify() {
	if len(s.observers) == 0 {
		return
	}
	snap := s.Snapshot()
	for _, o := range s.observers {
		o.Changed(snap)
	}
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	lines := make([]Line, len(s.lines))
	copy(lines, s.lines)
	return Snapshot{
		Phase:    s.phase,
		Lines:    lines,
		Typing:   s.typing,
		Resolved: s.resolved,
		Fallback: s.fallback,
	}
}

func (s *Session) Phase() Phase {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.phase
}
