package audio

import "time"

// Envelope shapes a melody note: a linear attack to the note volume, then an
// exponential decay to Floor at the note's end.
type Envelope struct {
	Attack time.Duration
	Floor  float64
}

// DefaultEnvelope is the 10ms attack, 0.001 floor retro pluck.
var DefaultEnvelope = Envelope{Attack: 10 * time.Millisecond, Floor: 0.001}

// NoteTone builds a square-wave note at freq starting at start for dur
// seconds, peaking at vol.
func NoteTone(freq, start, dur, vol float64, env Envelope) Tone {
	return Tone{
		Wave:      WaveSquare,
		Frequency: Automation{}.Set(freq, start),
		Gain: Automation{}.
			Set(0, start).
			LinearTo(vol, start+env.Attack.Seconds()).
			ExponentialTo(env.Floor, start+dur),
		Start: start,
		Stop:  start + dur,
	}
}

// Sweep is a short pitch and amplitude glide used for UI clicks.
type Sweep struct {
	From, To        float64 // Hz
	Gain, FinalGain float64
	Duration        time.Duration
}

// DefaultClick descends 800Hz to 400Hz over 100ms.
var DefaultClick = Sweep{From: 800, To: 400, Gain: 0.1, FinalGain: 0.01, Duration: 100 * time.Millisecond}

// SweepTone builds the click tone starting at now.
func SweepTone(now float64, s Sweep) Tone {
	end := now + s.Duration.Seconds()
	return Tone{
		Wave:      WaveSquare,
		Frequency: Automation{}.Set(s.From, now).ExponentialTo(s.To, end),
		Gain:      Automation{}.Set(s.Gain, now).ExponentialTo(s.FinalGain, end),
		Start:     now,
		Stop:      end,
	}
}
