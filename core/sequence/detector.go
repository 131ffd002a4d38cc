// Package sequence recognises a fixed pattern in a stream of key codes.
package sequence

// Konami is the classic up-up-down-down cheat code, as KeyboardEvent.code values.
var Konami = []string{
	"ArrowUp", "ArrowUp", "ArrowDown", "ArrowDown",
	"ArrowLeft", "ArrowRight", "ArrowLeft", "ArrowRight",
	"KeyB", "KeyA",
}

// Detector compares a FIFO window of the most recent codes against a
// pattern. The window holds at most len(pattern) codes and is only compared
// once full; a mismatch keeps the window so the next code slides it.
type Detector struct {
	pattern []string
	window  []string
}

func NewDetector(pattern []string) *Detector {
	p := append([]string(nil), pattern...)
	return &Detector{
		pattern: p,
		window:  make([]string, 0, len(p)+1),
	}
}

// Push appends a code and reports whether the window now equals the
// pattern. A match clears the window.
func (d *Detector) Push(code string) bool {
	if len(d.pattern) == 0 {
		return false
	}
	d.window = append(d.window, code)
	if len(d.window) > len(d.pattern) {
		copy(d.window, d.window[1:])
		d.window = d.window[:len(d.pattern)]
	}
	if len(d.window) != len(d.pattern) {
		return false
	}
	for i, c := range d.pattern {
		if d.window[i] != c {
			return false
		}
	}
	d.window = d.window[:0]
	return true
}

// Window returns a copy of the buffered codes, oldest first.
func (d *Detector) Window() []string {
	return append([]string(nil), d.window...)
}

func (d *Detector) Reset() { d.window = d.window[:0] }

// Len is the pattern length, the upper bound of the window.
func (d *Detector) Len() int { return len(d.pattern) }
