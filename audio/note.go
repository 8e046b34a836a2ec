package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave maps an oscillator phase in [0, 1) to a sample in [-1, 1]
type Wave func(phase float64) float64

var (
	Sine Wave = func(p float64) float64 { return math.Sin(2 * math.Pi * p) }

	Square Wave = func(p float64) float64 {
		if p < 0.5 {
			return 1
		}
		return -1
	}

	Saw Wave = func(p float64) float64 { return 2*p - 1 }

	// Noise ignores the phase
	Noise Wave = func(float64) float64 { return rand.Float64()*2 - 1 }
)

// Note is one voice of a cue: a wave held for Length with linear attack and release ramps
type Note struct {
	Freq    float64
	Length  time.Duration
	Wave    Wave
	Attack  time.Duration
	Release time.Duration
	Level   float64 // Linear, 1 is full scale and 0 is silent
}

// Streamer renders the note at rate; it ends after exactly Length worth of samples
func (n Note) Streamer(rate beep.SampleRate) beep.Streamer {
	total := rate.N(n.Length)
	att, rel := rate.N(n.Attack), rate.N(n.Release)
	step := n.Freq / float64(rate)

	var phase float64
	pos := 0
	voice := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			v := n.Wave(phase) * ramp(pos, total, att, rel)
			samples[i] = [2]float64{v, v}
			phase += step
			phase -= math.Floor(phase)
			pos++
		}
		return len(samples), true
	})

	return level(beep.Take(total, voice), n.Level)
}

// ramp is the envelope gain at sample pos of a total-sample note
// Overlapping attack and release take the lower of the two
func ramp(pos, total, attack, release int) float64 {
	g := 1.0
	if attack > 0 && pos < attack {
		g = float64(pos) / float64(attack)
	}
	if release > 0 && pos >= total-release {
		g = math.Min(g, float64(total-pos)/float64(release))
	}
	return math.Max(g, 0)
}

// level scales s by a linear factor
func level(s beep.Streamer, l float64) beep.Streamer {
	return &effects.Gain{Streamer: s, Gain: l - 1}
}

// phrase plays notes back to back
func phrase(rate beep.SampleRate, notes ...Note) beep.Streamer {
	parts := make([]beep.Streamer, len(notes))
	for i, n := range notes {
		parts[i] = n.Streamer(rate)
	}
	return beep.Seq(parts...)
}

// chord plays notes together
func chord(rate beep.SampleRate, notes ...Note) beep.Streamer {
	parts := make([]beep.Streamer, len(notes))
	for i, n := range notes {
		parts[i] = n.Streamer(rate)
	}
	return beep.Mix(parts...)
}
