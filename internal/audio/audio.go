// Package audio plays the game's synthesized sound cues.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/centipede-arcade/internal/core"
)

const (
	sampleRate = beep.SampleRate(44100)
	queueSize  = 32
)

// Player plays cues. Play must return immediately.
type Player interface {
	Play(c core.Cue)
	Close()
}

// Nop discards every cue.
type Nop struct{}

func (Nop) Play(core.Cue) {}
func (Nop) Close()        {}

// SoundManager mixes cue streamers into the system speaker. Cues are
// queued to a worker goroutine so Play never waits on the speaker lock.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	queue       chan core.Cue
	done        chan struct{}
	initialized bool
	logger      *log.Logger
}

// NewSoundManager creates an uninitialized manager. volume is in [0,1].
func NewSoundManager(volume float64, logger *log.Logger) *SoundManager {
	if logger == nil {
		logger = log.Default()
	}
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: core.ClampF(volume, 0, 1),
		queue:  make(chan core.Cue, queueSize),
		done:   make(chan struct{}),
		logger: logger,
	}
}

// Initialize opens the speaker and starts the worker.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	go sm.run()
	return nil
}

func (sm *SoundManager) run() {
	for {
		select {
		case c := <-sm.queue:
			s := Synth(c, sampleRate)
			if s == nil {
				sm.logger.Debug("unknown cue", "cue", c)
				continue
			}
			speaker.Lock()
			sm.mixer.Add(withVolume(s, sm.volume))
			speaker.Unlock()
		case <-sm.done:
			return
		}
	}
}

func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Play queues a cue. A full queue drops the cue.
func (sm *SoundManager) Play(c core.Cue) {
	sm.mu.Lock()
	ok := sm.initialized
	sm.mu.Unlock()
	if !ok {
		return
	}
	select {
	case sm.queue <- c:
	default:
	}
}

// Close stops the worker and silences the mixer.
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	close(sm.done)
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// Open returns a working player, or Nop when disabled or when the audio
// device cannot be opened.
func Open(enabled bool, volume float64, logger *log.Logger) Player {
	if !enabled {
		return Nop{}
	}
	sm := NewSoundManager(volume, logger)
	if err := sm.Initialize(); err != nil {
		if logger != nil {
			logger.Warn("audio disabled", "err", err)
		}
		return Nop{}
	}
	return sm
}

// Recorder collects cues in memory.
type Recorder struct {
	mu   sync.Mutex
	cues []core.Cue
}

func (r *Recorder) Play(c core.Cue) {
	r.mu.Lock()
	r.cues = append(r.cues, c)
	r.mu.Unlock()
}

func (r *Recorder) Close() {}

// Cues returns a copy of everything played so far.
func (r *Recorder) Cues() []core.Cue {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]core.Cue, len(r.cues))
	copy(out, r.cues)
	return out
}
