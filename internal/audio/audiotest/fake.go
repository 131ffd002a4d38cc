// Package audiotest provides a recording audio.Context for tests.
package audiotest

import (
	"errors"
	"sync"

	"github.com/ingyamilmolinar/retrofx/internal/audio"
)

// ErrScheduleFailed is returned by Schedule when Context.FailSchedule is set.
var ErrScheduleFailed = errors.New("audiotest: schedule failed")

// Voice records how often it was stopped.
type Voice struct {
	Tone  audio.Tone
	mu    sync.Mutex
	stops int
}

func (v *Voice) Stop() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.stops++
	if v.stops > 1 {
		return audio.ErrVoiceStopped
	}
	return nil
}

func (v *Voice) End() float64 { return v.Tone.Stop }

// Stops reports how many times Stop was called.
func (v *Voice) Stops() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.stops
}

// Context is a scriptable audio.Context. Resume calls are queued until
// CompleteResume unless ResumeImmediately is set.
type Context struct {
	mu sync.Mutex

	Now               float64
	Current           audio.State
	ResumeImmediately bool
	FailSchedule      bool

	voices  []*Voice
	pending []func(error)
	resumes int
	closed  int
}

// NewContext returns a context in the given state at time zero.
func NewContext(s audio.State) *Context {
	return &Context{Current: s}
}

func (c *Context) CurrentTime() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.Now
}

// SetTime moves the context clock.
func (c *Context) SetTime(t float64) {
	c.mu.Lock()
	c.Now = t
	c.mu.Unlock()
}

func (c *Context) State() audio.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.Current
}

func (c *Context) Resume(done func(error)) {
	c.mu.Lock()
	c.resumes++
	if !c.ResumeImmediately {
		c.pending = append(c.pending, done)
		c.mu.Unlock()
		return
	}
	c.Current = audio.StateRunning
	c.mu.Unlock()
	if done != nil {
		done(nil)
	}
}

// CompleteResume settles every queued Resume with err, switching to running
// when err is nil.
func (c *Context) CompleteResume(err error) {
	c.mu.Lock()
	pending := c.pending
	c.pending = nil
	if err == nil {
		c.Current = audio.StateRunning
	}
	c.mu.Unlock()
	for _, done := range pending {
		if done != nil {
			done(err)
		}
	}
}

// Resumes reports how many times Resume was called.
func (c *Context) Resumes() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.resumes
}

func (c *Context) Schedule(t audio.Tone) (audio.Voice, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Current == audio.StateClosed {
		return nil, audio.ErrClosed
	}
	if c.FailSchedule {
		return nil, ErrScheduleFailed
	}
	v := &Voice{Tone: t}
	c.voices = append(c.voices, v)
	return v, nil
}

// Voices returns every voice scheduled so far, oldest first.
func (c *Context) Voices() []*Voice {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]*Voice(nil), c.voices...)
}

func (c *Context) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed++
	if c.Current == audio.StateClosed {
		return audio.ErrClosed
	}
	c.Current = audio.StateClosed
	return nil
}

// Closed reports whether Close was called.
func (c *Context) Closed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed > 0
}

// Factory hands out Contexts and remembers them.
type Factory struct {
	mu sync.Mutex

	// Fail, when set, is returned instead of a context.
	Fail error
	// Initial is the state of new contexts; suspended when empty.
	Initial audio.State
	// Immediate makes new contexts resume synchronously.
	Immediate bool

	contexts []*Context
	calls    int
}

// New implements audio.Factory.
func (f *Factory) New() (audio.Context, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.Fail != nil {
		return nil, f.Fail
	}
	s := f.Initial
	if s == "" {
		s = audio.StateSuspended
	}
	c := NewContext(s)
	c.ResumeImmediately = f.Immediate
	f.contexts = append(f.contexts, c)
	return c, nil
}

// Calls reports how many times New was called, failed or not.
func (f *Factory) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// Contexts returns every context created so far.
func (f *Factory) Contexts() []*Context {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*Context(nil), f.contexts...)
}
