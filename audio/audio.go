// Package audio plays short UI chimes through the system speaker.
// A failed speaker init flips the engine to silent mode; every call
// stays safe afterward, it just does nothing.
package audio

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Engine owns the speaker. Methods are safe from any goroutine.
type Engine struct {
	running atomic.Bool
	muted   atomic.Bool
	silent  atomic.Bool
}

// NewEngine creates an engine; enabled=false starts it muted
func NewEngine(enabled bool) *Engine {
	e := &Engine{}
	e.muted.Store(!enabled)
	return e
}

// Start initializes the speaker. Init failure is not an error: the
// engine keeps running in silent mode.
func (e *Engine) Start() error {
	if e.running.Load() {
		return fmt.Errorf("audio engine already running")
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		e.silent.Store(true)
	}
	e.running.Store(true)
	return nil
}

// Stop closes the speaker
func (e *Engine) Stop() {
	if e.running.Load() && !e.silent.Load() {
		speaker.Close()
	}
	e.running.Store(false)
}

// SetMuted toggles chime output without touching the speaker
func (e *Engine) SetMuted(m bool) {
	e.muted.Store(m)
}

// Muted reports the mute switch
func (e *Engine) Muted() bool {
	return e.muted.Load()
}

// Silent reports whether the speaker never came up
func (e *Engine) Silent() bool {
	return e.silent.Load()
}

// take builds one attenuated sine burst
func take(freq float64, d time.Duration, gain float64) beep.Streamer {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return nil
	}
	return &effects.Gain{Streamer: beep.Take(sampleRate.N(d), sine), Gain: gain}
}

// play queues streamers back to back if the speaker is live
func (e *Engine) play(parts ...beep.Streamer) {
	if !e.running.Load() || e.silent.Load() || e.muted.Load() {
		return
	}
	seq := make([]beep.Streamer, 0, len(parts))
	for _, p := range parts {
		if p != nil {
			seq = append(seq, p)
		}
	}
	if len(seq) == 0 {
		return
	}
	speaker.Play(beep.Seq(seq...))
}

// Click is the short tick for interactive presses
func (e *Engine) Click() {
	e.play(take(660, 30*time.Millisecond, -0.5))
}

// Notify marks an informational toast
func (e *Engine) Notify() {
	e.play(take(880, 50*time.Millisecond, -0.4))
}

// Success is the rising two-note confirmation
func (e *Engine) Success() {
	e.play(
		take(523.25, 90*time.Millisecond, -0.3),
		take(659.25, 140*time.Millisecond, -0.3),
	)
}

// Warn is a single mid-low caution tone
func (e *Engine) Warn() {
	e.play(take(330, 110*time.Millisecond, -0.35))
}

// Error is the low falling double burst
func (e *Engine) Error() {
	e.play(
		take(220, 110*time.Millisecond, -0.3),
		take(174.6, 160*time.Millisecond, -0.3),
	)
}
