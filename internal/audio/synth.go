package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/centipede-arcade/internal/core"
)

// Wave is an oscillator shape.
type Wave int

const (
	Sine Wave = iota
	Square
	Saw
)

// Sweep describes one synthesized tone: a frequency glide with an
// exponentially decaying gain.
type Sweep struct {
	Wave     Wave
	From, To float64 // Hz
	Linear   bool    // Glide linearly instead of exponentially
	Gain     float64 // Starting amplitude before master volume
	Duration time.Duration
}

type tone struct {
	sweep Sweep
	rate  beep.SampleRate
	n     int
	pos   int
	phase float64
}

func newTone(s Sweep, rate beep.SampleRate) *tone {
	return &tone{sweep: s, rate: rate, n: rate.N(s.Duration)}
}

const gainFloor = 0.01

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	if t.pos >= t.n {
		return 0, false
	}
	s := t.sweep
	for i := range samples {
		if t.pos >= t.n {
			return i, true
		}
		frac := float64(t.pos) / float64(t.n)

		var freq float64
		if s.Linear || s.From <= 0 || s.To <= 0 {
			freq = s.From + (s.To-s.From)*frac
		} else {
			freq = s.From * math.Pow(s.To/s.From, frac)
		}
		gain := s.Gain
		if s.Gain > gainFloor {
			gain = s.Gain * math.Pow(gainFloor/s.Gain, frac)
		}

		var v float64
		switch s.Wave {
		case Square:
			if t.phase < 0.5 {
				v = 1
			} else {
				v = -1
			}
		case Saw:
			v = 2 * (t.phase - 0.5)
		default:
			v = math.Sin(2 * math.Pi * t.phase)
		}
		v *= gain
		samples[i][0] = v
		samples[i][1] = v

		t.phase += freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// Note schedules a sweep after a delay.
type Note struct {
	At    time.Duration
	Sweep Sweep
}

func arpeggio(freqs []float64, spacing, length time.Duration, gain float64) []Note {
	out := make([]Note, len(freqs))
	for i, f := range freqs {
		out[i] = Note{
			At:    time.Duration(i) * spacing,
			Sweep: Sweep{Wave: Sine, From: f, To: f, Gain: gain, Duration: length},
		}
	}
	return out
}

// Recipe returns the notes that make up a cue, or nil for an unknown cue.
func Recipe(c core.Cue) []Note {
	switch c {
	case core.CueShoot:
		return []Note{{Sweep: Sweep{Wave: Sine, From: 800, To: 400, Gain: 0.3, Duration: 100 * time.Millisecond}}}
	case core.CueExplosion:
		return []Note{{Sweep: Sweep{Wave: Saw, From: 150, To: 50, Gain: 0.5, Duration: 300 * time.Millisecond}}}
	case core.CueEnemyHit:
		return []Note{{Sweep: Sweep{Wave: Sine, From: 300, To: 150, Gain: 0.4, Duration: 200 * time.Millisecond}}}
	case core.CuePlayerHit:
		return []Note{{Sweep: Sweep{Wave: Saw, From: 200, To: 100, Linear: true, Gain: 0.6, Duration: 500 * time.Millisecond}}}
	case core.CueLevelComplete:
		return arpeggio([]float64{262, 330, 392, 523}, 150*time.Millisecond, 300*time.Millisecond, 0.3)
	case core.CueGameOver:
		return arpeggio([]float64{392, 349, 311, 262}, 200*time.Millisecond, 400*time.Millisecond, 0.4)
	case core.CueSpiderBounce:
		return []Note{
			{Sweep: Sweep{Wave: Square, From: 600, To: 800, Gain: 0.15, Duration: 50 * time.Millisecond}},
			{At: 50 * time.Millisecond, Sweep: Sweep{Wave: Square, From: 800, To: 500, Gain: 0.05, Duration: 50 * time.Millisecond}},
		}
	default:
		return nil
	}
}

// Synth builds a finite streamer for c at the given sample rate. Unknown
// cues yield nil.
func Synth(c core.Cue, rate beep.SampleRate) beep.Streamer {
	notes := Recipe(c)
	if len(notes) == 0 {
		return nil
	}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		var s beep.Streamer = newTone(n.Sweep, rate)
		if n.At > 0 {
			s = beep.Seq(beep.Silence(rate.N(n.At)), s)
		}
		parts = append(parts, s)
	}
	if len(parts) == 1 {
		return parts[0]
	}
	return beep.Take(rate.N(Length(c)), beep.Mix(parts...))
}

// Length returns how long the cue plays.
func Length(c core.Cue) time.Duration {
	var end time.Duration
	for _, n := range Recipe(c) {
		if e := n.At + n.Sweep.Duration; e > end {
			end = e
		}
	}
	return end
}
