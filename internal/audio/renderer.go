package audio

import (
	"encoding/binary"
	"io"
	"math"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
)

// Renderer is a software tone-synthesis Context. Its clock is the number of
// samples streamed while running, so a suspended renderer is silent and its
// CurrentTime stands still, like a suspended AudioContext.
//
// Renderer is a beep.Streamer and an io.Reader of interleaved stereo int16
// little-endian frames, suitable for an oto.Player. Only one consumer may
// pull samples at a time.
type Renderer struct {
	mu    sync.Mutex
	sr    beep.SampleRate
	mixer *beep.Mixer
	pos   int
	state State

	scratch [][2]float64
}

// NewRenderer returns a suspended renderer at the given sample rate.
func NewRenderer(sr beep.SampleRate) *Renderer {
	return &Renderer{
		sr:    sr,
		mixer: &beep.Mixer{},
		state: StateSuspended,
	}
}

func (r *Renderer) SampleRate() beep.SampleRate { return r.sr }

func (r *Renderer) CurrentTime() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return float64(r.pos) / float64(r.sr)
}

func (r *Renderer) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Resume switches to running and calls done synchronously.
func (r *Renderer) Resume(done func(error)) {
	r.mu.Lock()
	var err error
	if r.state == StateClosed {
		err = ErrClosed
	} else {
		r.state = StateRunning
	}
	r.mu.Unlock()
	if done != nil {
		done(err)
	}
}

func (r *Renderer) Schedule(t Tone) (Voice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state == StateClosed {
		return nil, ErrClosed
	}
	v := &toneVoice{tone: t, sr: float64(r.sr), origin: r.pos}
	r.mixer.Add(v)
	return v, nil
}

// Active reports how many voices are still mixed.
func (r *Renderer) Active() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.mixer.Len()
}

func (r *Renderer) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state == StateClosed {
		return ErrClosed
	}
	r.state = StateClosed
	r.mixer.Clear()
	return nil
}

// Stream implements beep.Streamer.
func (r *Renderer) Stream(samples [][2]float64) (n int, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	switch r.state {
	case StateClosed:
		return 0, false
	case StateSuspended:
		for i := range samples {
			samples[i] = [2]float64{}
		}
		return len(samples), true
	}
	r.mixer.Stream(samples)
	r.pos += len(samples)
	return len(samples), true
}

func (r *Renderer) Err() error { return nil }

// Read implements io.Reader for oto.Player.
func (r *Renderer) Read(p []byte) (int, error) {
	frames := len(p) / 4
	if cap(r.scratch) < frames {
		r.scratch = make([][2]float64, frames)
	}
	buf := r.scratch[:frames]
	n, ok := r.Stream(buf)
	if !ok {
		return 0, io.EOF
	}
	floatToBytes(buf[:n], p)
	return n * 4, nil
}

// floatToBytes converts stereo float frames to interleaved int16 LE with a
// hard clip at full scale.
func floatToBytes(in [][2]float64, out []byte) {
	for i, frame := range in {
		for ch, v := range frame {
			if v > 1 {
				v = 1
			} else if v < -1 {
				v = -1
			}
			binary.LittleEndian.PutUint16(out[i*4+ch*2:], uint16(int16(v*32767)))
		}
	}
}

// toneVoice renders one Tone sample by sample. Its clock starts at the
// renderer position it was scheduled at and advances with every streamed
// sample, so Start and Stop line up with Renderer.CurrentTime.
type toneVoice struct {
	tone    Tone
	sr      float64
	origin  int
	n       int
	phase   float64
	stopped atomic.Bool
}

func (v *toneVoice) Stream(samples [][2]float64) (n int, ok bool) {
	if v.stopped.Load() {
		return 0, false
	}
	for i := range samples {
		t := float64(v.origin+v.n) / v.sr
		v.n++
		if t < v.tone.Start || t >= v.tone.Stop {
			samples[i] = [2]float64{}
			continue
		}
		freq := v.tone.Frequency.ValueAt(t, 440)
		s := oscillate(v.tone.Wave, v.phase) * v.tone.Gain.ValueAt(t, 1)
		v.phase += freq / v.sr
		if v.phase >= 1 {
			v.phase -= math.Floor(v.phase)
		}
		samples[i] = [2]float64{s, s}
	}
	if float64(v.origin+v.n)/v.sr >= v.tone.Stop {
		v.stopped.Store(true)
	}
	return len(samples), true
}

func (v *toneVoice) Err() error { return nil }

func (v *toneVoice) Stop() error {
	if !v.stopped.CompareAndSwap(false, true) {
		return ErrVoiceStopped
	}
	return nil
}

func (v *toneVoice) End() float64 { return v.tone.Stop }

// oscillate returns the unity-gain waveform value at phase in [0,1).
func oscillate(w Waveform, phase float64) float64 {
	switch w {
	case WaveSine:
		return math.Sin(2 * math.Pi * phase)
	case WaveSawtooth:
		return 2.0 * (phase - 0.5)
	case WaveTriangle:
		return 1 - 4*math.Abs(phase-0.5)
	default:
		if phase < 0.5 {
			return 1.0
		}
		return -1.0
	}
}
