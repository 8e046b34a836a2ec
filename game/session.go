// Package game runs rounds of the blind maze: it owns the current maze and
// player, advances them one tick at a time, latches the win/loss outcome and
// tells the audio and presentation layers what happened.
//
// A Session is not safe for concurrent use. Frontends drive it from a single
// loop, so commands (Begin, Reseed, SetConfig, Resize) always land between
// ticks and a round is swapped in one assignment.
package game

import (
	"io"
	"log"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/blind-maze/config"
	"github.com/lixenwraith/blind-maze/maze"
	"github.com/lixenwraith/blind-maze/physics"
	"github.com/lixenwraith/blind-maze/vmath"
)

// FinishDelay is how long the end glyph shows before the finish overlay
const FinishDelay = 500 * time.Millisecond

// MaxSeed bounds seeds drawn for new mazes, [1, MaxSeed]
const MaxSeed = 65536

// Phase is the session's screen state
type Phase uint8

const (
	PhaseIntro Phase = iota
	PhasePlaying
	PhaseFinished
)

func (p Phase) String() string {
	switch p {
	case PhaseIntro:
		return "intro"
	case PhasePlaying:
		return "playing"
	case PhaseFinished:
		return "finished"
	}
	return "unknown"
}

// Cue is a discrete audio trigger
type Cue uint8

const (
	CueStart Cue = iota
	CueFail
	CueWin
)

func (c Cue) String() string {
	switch c {
	case CueStart:
		return "start"
	case CueFail:
		return "fail"
	case CueWin:
		return "win"
	}
	return "unknown"
}

// CuePlayer receives audio triggers; Play must not block the tick loop
type CuePlayer interface {
	Play(Cue)
}

type nopCuePlayer struct{}

func (nopCuePlayer) Play(Cue) {}

// Round is the state of one maze attempt, replaced wholesale on restart
type Round struct {
	ID      uuid.UUID
	Maze    *maze.Maze
	Body    physics.Body
	Radius  float64
	Motion  physics.Motion
	Trail   *Trail
	Outcome Outcome
	Started time.Time
	Ended   time.Time
}

// Elapsed returns round time, frozen once the outcome is latched
func (r *Round) Elapsed(now time.Time) time.Duration {
	if r.Outcome.Over() {
		return r.Ended.Sub(r.Started)
	}
	return now.Sub(r.Started)
}

// Option configures a Session
type Option func(*Session)

// WithClock replaces the real time source
func WithClock(tp TimeProvider) Option {
	return func(s *Session) { s.clock = tp }
}

// WithCuePlayer routes audio cues to p
func WithCuePlayer(p CuePlayer) Option {
	return func(s *Session) {
		if p != nil {
			s.cues = p
		}
	}
}

// WithSeedSource replaces the random seed generator used by Reseed
func WithSeedSource(fn func() int64) Option {
	return func(s *Session) { s.seeds = fn }
}

// WithLogger sets the session logger; nil discards
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l == nil {
			l = log.New(io.Discard, "", 0)
		}
		s.logger = l
	}
}

// Session drives rounds for one player
type Session struct {
	active  config.Config // Config of the current round
	pending config.Config // Applied on the next round swap

	pendingViewport vmath.Vec2 // Applied on the next round swap

	seed  int64
	round *Round
	phase Phase

	clock  TimeProvider
	cues   CuePlayer
	seeds  func() int64
	logger *log.Logger
	fps    FPSMeter
}

// NewSession validates cfg and prepares the first round at the intro screen
func NewSession(cfg config.Config, viewport vmath.Vec2, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Session{
		active:          cfg,
		pending:         cfg,
		pendingViewport: viewport,
		phase:           PhaseIntro,
		clock:           RealTimeProvider{},
		cues:            nopCuePlayer{},
		seeds:           RandomSeed,
		logger:          log.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.seed = cfg.Seed
	if s.seed == 0 {
		s.seed = s.seeds()
	}

	if err := s.swap(); err != nil {
		return nil, err
	}
	return s, nil
}

// RandomSeed draws a seed in [1, MaxSeed]
func RandomSeed() int64 {
	return rand.Int64N(MaxSeed) + 1
}

// Begin restarts on the current seed with staged config and enters play
func (s *Session) Begin() error {
	if err := s.swap(); err != nil {
		return err
	}
	s.phase = PhasePlaying
	s.logger.Printf("[GAME] [INFO] round %s started seed=%d grid=%d", s.round.ID, s.seed, s.round.Maze.GridSize)
	s.cues.Play(CueStart)
	return nil
}

// Reseed draws a new seed, then behaves like Begin
func (s *Session) Reseed() error {
	s.seed = s.seeds()
	return s.Begin()
}

// swap builds a fresh round from staged config and replaces the current one
func (s *Session) swap() error {
	m, err := maze.Generate(maze.Params{
		Size:     s.pending.Size,
		CellSize: s.pending.CellSize,
		Seed:     s.seed,
		Viewport: s.pendingViewport,
	})
	if err != nil {
		return err
	}

	s.active = s.pending
	s.round = &Round{
		ID:      uuid.New(),
		Maze:    m,
		Body:    physics.Body{Position: m.Entrance},
		Radius:  s.active.Radius,
		Motion:  physics.Motion{Speed: s.active.Speed, Friction: s.active.Friction},
		Trail:   NewTrail(),
		Started: s.clock.Now(),
	}
	return nil
}

// Tick advances the round by one frame under intent
// No-op outside play or once the outcome is latched
func (s *Session) Tick(intent vmath.Vec2) {
	r := s.round
	if s.phase != PhasePlaying || r.Outcome.Over() {
		return
	}

	// The maze owns the round's world extent
	physics.Step(&r.Body, intent, r.Motion, r.Maze.Viewport)

	status := physics.Classify(r.Body.Position, r.Radius, r.Maze, r.Trail.Len())
	if status.Terminal() {
		r.Outcome = outcomeFor(status, r.Body.Position)
		r.Ended = s.clock.Now()
		if r.Outcome.Kind == OutcomeWon {
			s.cues.Play(CueWin)
		} else {
			s.cues.Play(CueFail)
		}
		s.logger.Printf("[GAME] [INFO] round %s %s (%s) at %.1f,%.1f after %s trail=%d",
			r.ID, r.Outcome.Kind, status, r.Body.Position.X, r.Body.Position.Y,
			FormatElapsed(r.Elapsed(r.Ended)), r.Trail.Len())
	}

	r.Trail.Add(r.Body.Position)
}

// Frame records a rendered frame and moves a finished round to the finish screen
func (s *Session) Frame() {
	now := s.clock.Now()
	s.fps.Record(now)

	if s.phase == PhasePlaying && s.round.Outcome.Over() && now.Sub(s.round.Ended) > FinishDelay {
		s.phase = PhaseFinished
	}
}

// SetConfig validates cfg and stages it for the next round
func (s *Session) SetConfig(cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	s.pending = cfg
	// Display-only flags apply immediately
	s.active.Blind = cfg.Blind
	s.active.Mute = cfg.Mute
	return nil
}

// Resize stages a new viewport
// The intro maze is rebuilt at once; a round in play keeps its layout until the next swap
func (s *Session) Resize(viewport vmath.Vec2) error {
	s.pendingViewport = viewport
	if s.phase == PhaseIntro {
		return s.swap()
	}
	return nil
}

// Phase returns the current screen state
func (s *Session) Phase() Phase {
	return s.phase
}

// Config returns the staged configuration, the one the next round will use
func (s *Session) Config() config.Config {
	return s.pending
}

// Round returns the current round; callers must treat it as read-only
func (s *Session) Round() *Round {
	return s.round
}

// Seed returns the seed of the current maze
func (s *Session) Seed() int64 {
	return s.seed
}

// Snapshot is a per-frame read-only view for renderers
type Snapshot struct {
	Phase    Phase
	RoundID  uuid.UUID
	Seed     int64
	Maze     *maze.Maze
	Position vmath.Vec2
	Radius   float64
	Trail    []vmath.Vec2
	Outcome  Outcome
	Elapsed  time.Duration
	FPS      float64
	Active   config.Config
	Pending  config.Config
}

// Snapshot captures the state renderers need for this frame
func (s *Session) Snapshot() Snapshot {
	r := s.round
	elapsed := time.Duration(0)
	if s.phase != PhaseIntro {
		elapsed = r.Elapsed(s.clock.Now())
	}
	return Snapshot{
		Phase:    s.phase,
		RoundID:  r.ID,
		Seed:     s.seed,
		Maze:     r.Maze,
		Position: r.Body.Position,
		Radius:   r.Radius,
		Trail:    r.Trail.Points(),
		Outcome:  r.Outcome,
		Elapsed:  elapsed,
		FPS:      s.fps.FPS(),
		Active:   s.active,
		Pending:  s.pending,
	}
}

// WallsVisible reports whether renderers should draw maze walls
// Blind mode hides them until the round is over
func (snap Snapshot) WallsVisible() bool {
	return !snap.Active.Blind || snap.Outcome.Over() || snap.Phase != PhasePlaying
}
