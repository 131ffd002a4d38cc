package audio

import (
	"math"
	"testing"
)

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestNoteEnvelopeShape(t *testing.T) {
	tone := NoteTone(440, 2, 0.5, 0.1, DefaultEnvelope)

	if tone.Start != 2 || tone.Stop != 2.5 {
		t.Fatalf("start/stop = %v/%v", tone.Start, tone.Stop)
	}
	if got := tone.Frequency.ValueAt(2.2, 440); got != 440 {
		t.Fatalf("frequency = %v", got)
	}

	cases := []struct {
		at, want float64
	}{
		{1.0, 1},      // before any event: param default
		{2.0, 0},      // attack starts silent
		{2.005, 0.05}, // halfway up the linear attack
		{2.01, 0.1},   // attack peak
		{2.5, 0.001},  // decay floor at note end
		{3.0, 0.001},  // holds after the last event
	}
	for _, c := range cases {
		if got := tone.Gain.ValueAt(c.at, 1); !near(got, c.want) {
			t.Fatalf("gain at %v = %v, want %v", c.at, got, c.want)
		}
	}

	mid := tone.Gain.ValueAt(2.255, 1)
	want := 0.1 * math.Pow(0.001/0.1, 0.5)
	if !near(mid, want) {
		t.Fatalf("exponential midpoint = %v, want %v", mid, want)
	}
}

func TestSweepToneDescends(t *testing.T) {
	tone := SweepTone(1, DefaultClick)
	if !near(tone.Stop, 1.1) {
		t.Fatalf("sweep ends at %v", tone.Stop)
	}
	if got := tone.Frequency.ValueAt(1, 0); got != 800 {
		t.Fatalf("start frequency %v", got)
	}
	if got := tone.Frequency.ValueAt(1.1, 0); !near(got, 400) {
		t.Fatalf("end frequency %v", got)
	}
	if got := tone.Frequency.ValueAt(1.05, 0); !near(got, 800*math.Sqrt(0.5)) {
		t.Fatalf("midpoint frequency %v", got)
	}
	if got := tone.Gain.ValueAt(1.1, 0); !near(got, 0.01) {
		t.Fatalf("end gain %v", got)
	}
}

func TestExponentialFromZeroHolds(t *testing.T) {
	a := Automation{}.Set(0, 0).ExponentialTo(1, 1)
	if got := a.ValueAt(0.5, 0); got != 0 {
		t.Fatalf("expected hold at 0, got %v", got)
	}
	if got := a.ValueAt(1, 0); got != 1 {
		t.Fatalf("expected 1 at ramp end, got %v", got)
	}
}

func TestSetValueInFutureHoldsPrevious(t *testing.T) {
	a := Automation{}.Set(0.2, 0).Set(0.8, 1)
	if got := a.ValueAt(0.5, 0); got != 0.2 {
		t.Fatalf("got %v, want 0.2", got)
	}
	if got := a.ValueAt(1, 0); got != 0.8 {
		t.Fatalf("got %v, want 0.8", got)
	}
}
