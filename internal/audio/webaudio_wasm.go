//go:build js && wasm

package audio

import (
	"errors"
	"fmt"

	"github.com/hack-pad/safejs"
)

// webContext drives a browser AudioContext.
type webContext struct {
	ctx safejs.Value
}

// NewWebContext constructs an AudioContext, falling back to the prefixed
// webkitAudioContext.
func NewWebContext() (Context, error) {
	global := safejs.Global()
	for _, name := range []string{"AudioContext", "webkitAudioContext"} {
		ctor, err := global.Get(name)
		if err != nil {
			continue
		}
		if ok, _ := ctor.Truthy(); !ok {
			continue
		}
		v, err := ctor.New()
		if err != nil {
			return nil, fmt.Errorf("%w: new %s: %v", ErrUnavailable, name, err)
		}
		return &webContext{ctx: v}, nil
	}
	return nil, ErrUnavailable
}

func (w *webContext) CurrentTime() float64 {
	v, err := w.ctx.Get("currentTime")
	if err != nil {
		return 0
	}
	f, _ := v.Float()
	return f
}

func (w *webContext) State() State {
	v, err := w.ctx.Get("state")
	if err != nil {
		return StateClosed
	}
	s, _ := v.String()
	return State(s)
}

func (w *webContext) Resume(done func(error)) {
	promise, err := w.ctx.Call("resume")
	if err != nil {
		if done != nil {
			done(err)
		}
		return
	}
	if done == nil {
		return
	}
	var onOK, onErr safejs.Func
	release := func() {
		onOK.Release()
		onErr.Release()
	}
	onOK, err = safejs.FuncOf(func(safejs.Value, []safejs.Value) any {
		release()
		done(nil)
		return nil
	})
	if err != nil {
		done(err)
		return
	}
	onErr, err = safejs.FuncOf(func(_ safejs.Value, args []safejs.Value) any {
		release()
		reason := "resume rejected"
		if len(args) > 0 {
			if s, err := args[0].Call("toString"); err == nil {
				reason, _ = s.String()
			}
		}
		done(errors.New(reason))
		return nil
	})
	if err != nil {
		onOK.Release()
		done(err)
		return
	}
	if _, err := promise.Call("then", onOK, onErr); err != nil {
		release()
		done(err)
	}
}

func (w *webContext) Schedule(t Tone) (Voice, error) {
	osc, err := w.ctx.Call("createOscillator")
	if err != nil {
		return nil, err
	}
	gain, err := w.ctx.Call("createGain")
	if err != nil {
		return nil, err
	}
	if err := osc.Set("type", t.Wave.String()); err != nil {
		return nil, err
	}
	dest, err := w.ctx.Get("destination")
	if err != nil {
		return nil, err
	}
	if _, err := osc.Call("connect", gain); err != nil {
		return nil, err
	}
	if _, err := gain.Call("connect", dest); err != nil {
		return nil, err
	}
	if err := automate(osc, "frequency", t.Frequency); err != nil {
		return nil, err
	}
	if err := automate(gain, "gain", t.Gain); err != nil {
		return nil, err
	}
	if _, err := osc.Call("start", t.Start); err != nil {
		return nil, err
	}
	if _, err := osc.Call("stop", t.Stop); err != nil {
		return nil, err
	}
	return &webVoice{osc: osc, end: t.Stop}, nil
}

func automate(node safejs.Value, param string, a Automation) error {
	p, err := node.Get(param)
	if err != nil {
		return err
	}
	for _, ev := range a {
		method := "setValueAtTime"
		switch ev.Kind {
		case LinearRamp:
			method = "linearRampToValueAtTime"
		case ExponentialRamp:
			method = "exponentialRampToValueAtTime"
		}
		if _, err := p.Call(method, ev.Value, ev.Time); err != nil {
			return fmt.Errorf("%s.%s: %w", param, method, err)
		}
	}
	return nil
}

func (w *webContext) Close() error {
	if w.State() == StateClosed {
		return ErrClosed
	}
	_, err := w.ctx.Call("close")
	return err
}

type webVoice struct {
	osc safejs.Value
	end float64
}

func (v *webVoice) Stop() error {
	if _, err := v.osc.Call("stop"); err != nil {
		return fmt.Errorf("%w: %v", ErrVoiceStopped, err)
	}
	return nil
}

func (v *webVoice) End() float64 { return v.end }
