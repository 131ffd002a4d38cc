package audio

import "math"

// RampKind names the AudioParam automation methods.
type RampKind int

const (
	SetValue RampKind = iota
	LinearRamp
	ExponentialRamp
)

// ParamEvent is one automation call, e.g. linearRampToValueAtTime(Value, Time).
type ParamEvent struct {
	Kind  RampKind
	Value float64
	Time  float64
}

// Automation is an ordered list of events on one parameter.
type Automation []ParamEvent

func (a Automation) Set(v, at float64) Automation {
	return append(a, ParamEvent{Kind: SetValue, Value: v, Time: at})
}

func (a Automation) LinearTo(v, at float64) Automation {
	return append(a, ParamEvent{Kind: LinearRamp, Value: v, Time: at})
}

func (a Automation) ExponentialTo(v, at float64) Automation {
	return append(a, ParamEvent{Kind: ExponentialRamp, Value: v, Time: at})
}

// ValueAt evaluates the lane at time t. Before the first event the lane
// holds def. A ramp runs from the previous event's value and time to its
// own; an exponential ramp whose endpoints are not both strictly positive
// or both strictly negative holds the previous value until its end time.
func (a Automation) ValueAt(t, def float64) float64 {
	prevV, prevT := def, 0.0
	for i, ev := range a {
		if t >= ev.Time {
			prevV, prevT = ev.Value, ev.Time
			continue
		}
		if i == 0 || ev.Kind == SetValue {
			return prevV
		}
		frac := (t - prevT) / (ev.Time - prevT)
		if ev.Kind == ExponentialRamp {
			if prevV*ev.Value <= 0 {
				return prevV
			}
			return prevV * math.Pow(ev.Value/prevV, frac)
		}
		return prevV + (ev.Value-prevV)*frac
	}
	return prevV
}
