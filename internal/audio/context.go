package audio

import "errors"

// State mirrors AudioContext.state.
type State string

const (
	StateSuspended State = "suspended"
	StateRunning   State = "running"
	StateClosed    State = "closed"
)

// Sentinel errors
var (
	ErrUnavailable  = errors.New("tone synthesis not available")
	ErrClosed       = errors.New("audio context closed")
	ErrVoiceStopped = errors.New("voice already stopped")
)

// Waveform selects the oscillator shape.
type Waveform int

const (
	WaveSquare Waveform = iota
	WaveSine
	WaveSawtooth
	WaveTriangle
)

func (w Waveform) String() string {
	switch w {
	case WaveSine:
		return "sine"
	case WaveSawtooth:
		return "sawtooth"
	case WaveTriangle:
		return "triangle"
	default:
		return "square"
	}
}

// Tone is one oscillator routed through a gain stage, fully described up
// front so every backend can realise it the same way.
type Tone struct {
	Wave      Waveform
	Frequency Automation
	Gain      Automation
	Start     float64 // context seconds
	Stop      float64 // context seconds
}

// Voice is the handle of a scheduled tone.
type Voice interface {
	// Stop silences the voice immediately. A second call returns ErrVoiceStopped.
	Stop() error
	// End is the scheduled stop time in context seconds.
	End() float64
}

// Context is a tone-synthesis capability, modelled on the Web Audio
// AudioContext.
type Context interface {
	// CurrentTime is the context clock in seconds.
	CurrentTime() float64
	State() State
	// Resume leaves the suspended state. done, if non-nil, is called once the
	// context runs or resuming failed; it may be called before Resume returns.
	Resume(done func(error))
	Schedule(t Tone) (Voice, error)
	Close() error
}

// Factory acquires a new Context. It returns an error wrapping
// ErrUnavailable when the platform has no tone synthesis.
type Factory func() (Context, error)
