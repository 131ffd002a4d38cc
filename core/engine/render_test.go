package engine

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/ingyamilmolinar/retrofx/internal/audio"
	"github.com/ingyamilmolinar/retrofx/internal/clock"
)

func audible(s [][2]float64) bool {
	for _, v := range s {
		if v[0] != 0 {
			return true
		}
	}
	return false
}

func TestLoopOnSoftwareRenderer(t *testing.T) {
	const sr = beep.SampleRate(8000)
	r := audio.NewRenderer(sr)
	clk := clock.NewFake()
	e := New(Options{
		NewContext: func() (audio.Context, error) { return r, nil },
		Clock:      clk,
	})

	e.Toggle()
	if !e.State().On() || r.State() != audio.StateRunning {
		t.Fatalf("renderer not resumed by toggle")
	}

	pass := sr.N(8 * time.Second)
	buf := make([][2]float64, pass)
	if n, ok := r.Stream(buf); !ok || n != pass {
		t.Fatalf("Stream = %d, %v", n, ok)
	}
	if !audible(buf[:sr.N(500*time.Millisecond)]) {
		t.Fatalf("first note silent")
	}
	if r.CurrentTime() != 8 {
		t.Fatalf("renderer at %v after one pass", r.CurrentTime())
	}

	clk.Advance(8 * time.Second)
	next := make([][2]float64, sr.N(20*time.Millisecond))
	r.Stream(next)
	if !audible(next) {
		t.Fatalf("second pass did not start at 8s")
	}

	e.Toggle()
	r.Stream(next)
	if audible(next) {
		t.Fatalf("audio continued after toggle off")
	}
}
