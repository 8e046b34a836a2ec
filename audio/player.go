// Package audio plays the game's procedural sound cues through beep.
// A Player that failed to initialise stays usable and silently drops cues.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"

	"github.com/lixenwraith/blind-maze/game"
)

const (
	sampleRate = beep.SampleRate(48000)
	bufferSize = 100 * time.Millisecond
)

// Player routes game cues to the speaker through a single mixer
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	rate        beep.SampleRate
	muted       bool
	initialized bool
}

var _ game.CuePlayer = (*Player)(nil)

// NewPlayer creates an idle player; call Init to open the speaker
func NewPlayer() *Player {
	return &Player{
		mixer: &beep.Mixer{},
		rate:  sampleRate,
	}
}

// Init opens the speaker. Callers may ignore the error and keep playing without sound
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(p.rate, p.rate.N(bufferSize)); err != nil {
		return errors.Wrap(err, "audio: speaker init")
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// SetMuted drops subsequent cues while muted
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = muted
}

// Play queues cue c on the mixer without blocking
func (p *Player) Play(c game.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.muted {
		return
	}

	s := CueStreamer(c, p.rate)
	if s == nil {
		return
	}

	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close stops all cues and releases the speaker
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	p.initialized = false
}
