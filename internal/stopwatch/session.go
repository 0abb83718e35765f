// Package stopwatch implements the interval timer core: tick accumulation,
// lap recording and pace classification behind a single serialized
// controller.
package stopwatch

import (
	"io"
	"log"
	"sync"
	"time"

	"github.com/akyairhashvil/splitpace/internal/config"
)

// Option customizes a Session.
type Option func(*Session)

// WithPeriod overrides the tick period. The period is also the increment
// each tick adds, so it must be a whole number of milliseconds.
func WithPeriod(d time.Duration) Option {
	return func(s *Session) {
		s.period = d
	}
}

// WithLogger sets the logger for state transitions.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// Session is the controller that owns all timing state. Every mutation runs
// under mu, so ticks from the ticker goroutine never interleave with
// commands.
type Session struct {
	mu       sync.Mutex
	ticker   Ticker
	period   time.Duration
	logger   *log.Logger
	state    TimingState
	acc      Accumulator
	laps     LapRecorder
	cfg      PacingConfig
	pacing   Pacing
	epoch    uint64
	revision uint64

	subs    map[int]func(SessionState)
	nextSub int
}

// NewSession returns an idle session. The configuration must be in range.
func NewSession(ticker Ticker, cfg PacingConfig, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, wrapOpErr("new session", err)
	}
	s := &Session{
		ticker: ticker,
		period: config.TickPeriod,
		logger: log.New(io.Discard, "", 0),
		cfg:    cfg,
		subs:   make(map[int]func(SessionState)),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.period < time.Millisecond || s.period%time.Millisecond != 0 {
		return nil, wrapFieldErr("new session", "period", ErrInvalidPeriod)
	}
	return s, nil
}

// Dispatch applies cmd and returns the resulting state. On error the state
// is unchanged, except for ErrInvalidBoundary which is fatal.
func (s *Session) Dispatch(cmd Command) (SessionState, error) {
	s.mu.Lock()
	changed, err := s.applyLocked(cmd)
	if changed {
		s.revision++
	}
	snap := s.snapshotLocked()
	subs := s.subscribersLocked(changed)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
	return snap, err
}

func (s *Session) Start() (SessionState, error) { return s.Dispatch(StartCommand) }
func (s *Session) Lap() (SessionState, error)   { return s.Dispatch(LapCommand) }
func (s *Session) Stop() (SessionState, error)  { return s.Dispatch(StopCommand) }

// SetConfig applies all three components. It fails without partial updates
// if any component is out of range or the session is running.
func (s *Session) SetConfig(cfg PacingConfig) (SessionState, error) {
	s.mu.Lock()
	var err error
	changed := false
	switch {
	case s.state == StateRunning:
		err = wrapOpErr("set config", ErrConfigLocked)
	default:
		if verr := cfg.Validate(); verr != nil {
			err = verr
		} else if cfg != s.cfg {
			s.cfg = cfg
			s.reclassifyLocked()
			changed = true
		}
	}
	if changed {
		s.revision++
	}
	snap := s.snapshotLocked()
	subs := s.subscribersLocked(changed)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
	return snap, err
}

// State returns the current snapshot without changing anything.
func (s *Session) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Subscribe registers fn to receive a snapshot after every change. fn is
// called outside the session lock and may be called from the ticker
// goroutine. The returned function removes the subscription.
func (s *Session) Subscribe(fn func(SessionState)) (cancel func()) {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
		})
	}
}

// Close stops a running session, closing its final lap, and disarms the
// ticker. Snapshots taken afterwards report StateStopped. Safe to call more
// than once.
func (s *Session) Close() {
	if _, err := s.Stop(); err != nil {
		s.logger.Printf("stopwatch: close: %v", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ticker.Disarm()
	s.epoch++
}

func (s *Session) applyLocked(cmd Command) (bool, error) {
	switch cmd.Kind {
	case CmdStart:
		s.startLocked()
		return true, nil
	case CmdTick:
		return s.tickLocked(s.epoch), nil
	case CmdLap:
		if s.state != StateRunning {
			return false, wrapOpErr("lap", ErrNotRunning)
		}
		if err := s.recordLocked("lap"); err != nil {
			return true, err
		}
		return true, nil
	case CmdStop:
		if s.state != StateRunning {
			return false, nil
		}
		s.ticker.Disarm()
		s.epoch++
		s.state = StateStopped
		s.logger.Printf("stopwatch: stopped at %dms", s.acc.Elapsed())
		if err := s.recordLocked("stop"); err != nil {
			return true, err
		}
		return true, nil
	case CmdSetTargetSeconds:
		return s.setLocked(cmd, "target seconds", ValidateTargetSeconds, func(c *PacingConfig) *int { return &c.TargetSeconds })
	case CmdSetTargetTenths:
		return s.setLocked(cmd, "target tenths", ValidateTargetTenths, func(c *PacingConfig) *int { return &c.TargetTenths })
	case CmdSetTolerance:
		return s.setLocked(cmd, "tolerance", ValidateTolerance, func(c *PacingConfig) *int { return &c.TolerancePercent })
	default:
		return false, wrapOpErr(cmd.Kind.String(), ErrUnknownCommand)
	}
}

func (s *Session) startLocked() {
	s.ticker.Disarm()
	s.epoch++
	s.acc.Reset()
	s.laps.Reset()
	s.pacing = PacingUnset
	s.state = StateRunning

	epoch := s.epoch
	s.ticker.Arm(s.period, func() { s.tick(epoch) })
	s.logger.Printf("stopwatch: started (epoch %d, period %s)", epoch, s.period)
}

// tick is the ticker callback. Ticks armed by an earlier start or delivered
// after stop carry a stale epoch and are dropped.
func (s *Session) tick(epoch uint64) {
	s.mu.Lock()
	changed := s.tickLocked(epoch)
	if changed {
		s.revision++
	}
	snap := s.snapshotLocked()
	subs := s.subscribersLocked(changed)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
}

func (s *Session) tickLocked(epoch uint64) bool {
	if s.state != StateRunning || epoch != s.epoch {
		s.logger.Printf("stopwatch: dropped tick (epoch %d, current %d, %s)", epoch, s.epoch, s.state)
		return false
	}
	s.acc.Advance(s.period.Milliseconds())
	return true
}

func (s *Session) recordLocked(op string) error {
	if _, err := s.laps.Record(s.acc.Elapsed()); err != nil {
		return wrapOpErr(op, err)
	}
	s.reclassifyLocked()
	return nil
}

func (s *Session) setLocked(cmd Command, field string, validate func(int) error, target func(*PacingConfig) *int) (bool, error) {
	if s.state == StateRunning {
		return false, wrapFieldErr("set", field, ErrConfigLocked)
	}
	if err := validate(cmd.Value); err != nil {
		return false, err
	}
	p := target(&s.cfg)
	if *p == cmd.Value {
		return false, nil
	}
	*p = cmd.Value
	s.reclassifyLocked()
	return true, nil
}

func (s *Session) reclassifyLocked() {
	last, ok := s.laps.Last()
	if !ok {
		s.pacing = PacingUnset
		return
	}
	s.pacing = Classify(last, s.cfg.TargetMillis(), s.cfg.TolerancePercent)
}

func (s *Session) snapshotLocked() SessionState {
	elapsed := s.acc.Elapsed()
	boundary := s.laps.Boundary()
	return SessionState{
		State:         s.state,
		ElapsedMs:     elapsed,
		LapBoundaryMs: boundary,
		DisplayMs:     displayMillis(s.state, elapsed, boundary),
		Laps:          s.laps.Laps(),
		Pacing:        s.pacing,
		Config:        s.cfg,
		TargetMs:      s.cfg.TargetMillis(),
		Revision:      s.revision,
	}
}

func (s *Session) subscribersLocked(changed bool) []func(SessionState) {
	if !changed || len(s.subs) == 0 {
		return nil
	}
	out := make([]func(SessionState), 0, len(s.subs))
	for _, fn := range s.subs {
		out = append(out, fn)
	}
	return out
}
