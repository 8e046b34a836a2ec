package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/blind-maze/game"
)

// Note frequencies in Hz
const (
	noteA2 = 110.0
	noteC5 = 523.25
	noteE5 = 659.25
	noteG5 = 783.99
	noteA5 = 880.0
	noteC6 = 1046.50
)

const (
	startNote1Duration = 90 * time.Millisecond
	startNote2Duration = 180 * time.Millisecond
	failDuration       = 450 * time.Millisecond
	winNoteDuration    = 90 * time.Millisecond
	winLastDuration    = 320 * time.Millisecond

	cueAttack = 5 * time.Millisecond
)

// StartCue is a rising two-note chime
func StartCue(rate beep.SampleRate) beep.Streamer {
	return level(phrase(rate,
		Note{Freq: noteE5, Length: startNote1Duration, Wave: Sine, Attack: cueAttack, Release: 30 * time.Millisecond, Level: 1},
		Note{Freq: noteA5, Length: startNote2Duration, Wave: Sine, Attack: cueAttack, Release: 120 * time.Millisecond, Level: 1},
	), 0.6)
}

// FailCue is a low saw buzz with two harmonics and a noise edge
func FailCue(rate beep.SampleRate) beep.Streamer {
	buzz := func(freq float64, w Wave, l float64) Note {
		return Note{Freq: freq, Length: failDuration, Wave: w, Attack: cueAttack, Release: 200 * time.Millisecond, Level: l}
	}
	return level(chord(rate,
		buzz(noteA2, Saw, 0.6),
		buzz(noteA2*2, Square, 0.25),
		buzz(noteA2*3, Saw, 0.15),
		Note{Length: 80 * time.Millisecond, Wave: Noise, Release: 60 * time.Millisecond, Level: 0.2},
	), 0.5)
}

// WinCue is a major arpeggio ending on the octave
func WinCue(rate beep.SampleRate) beep.Streamer {
	step := func(freq float64) Note {
		return Note{Freq: freq, Length: winNoteDuration, Wave: Square, Attack: cueAttack, Release: 30 * time.Millisecond, Level: 1}
	}
	return level(phrase(rate,
		step(noteC5),
		step(noteE5),
		step(noteG5),
		Note{Freq: noteC6, Length: winLastDuration, Wave: Square, Attack: cueAttack, Release: 240 * time.Millisecond, Level: 1},
	), 0.35)
}

// CueStreamer returns a fresh streamer for c, or nil for an unknown cue
func CueStreamer(c game.Cue, rate beep.SampleRate) beep.Streamer {
	switch c {
	case game.CueStart:
		return StartCue(rate)
	case game.CueFail:
		return FailCue(rate)
	case game.CueWin:
		return WinCue(rate)
	default:
		return nil
	}
}
