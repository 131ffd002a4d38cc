package model

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// NoteFrequencies holds equal-tempered frequencies for MIDI notes 0-127,
// A4 (note 69) = 440Hz.
var NoteFrequencies [128]float64

func init() {
	for i := range NoteFrequencies {
		NoteFrequencies[i] = 440.0 * math.Pow(2, (float64(i)-69.0)/12.0)
	}
}

var semitones = map[byte]int{'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11}

// ParsePitch converts scientific pitch notation ("C5", "F#4", "Bb3") to Hz.
func ParsePitch(name string) (float64, error) {
	s := strings.TrimSpace(name)
	if len(s) < 2 {
		return 0, fmt.Errorf("%w: pitch %q", ErrInvalidNote, name)
	}
	base, ok := semitones[byte(strings.ToUpper(s[:1])[0])]
	if !ok {
		return 0, fmt.Errorf("%w: pitch %q", ErrInvalidNote, name)
	}
	rest := s[1:]
	switch rest[0] {
	case '#':
		base++
		rest = rest[1:]
	case 'b':
		base--
		rest = rest[1:]
	}
	octave, err := strconv.Atoi(rest)
	if err != nil {
		return 0, fmt.Errorf("%w: pitch %q octave", ErrInvalidNote, name)
	}
	midi := (octave+1)*12 + base
	if midi < 0 || midi >= len(NoteFrequencies) {
		return 0, fmt.Errorf("%w: pitch %q out of range", ErrInvalidNote, name)
	}
	return NoteFrequencies[midi], nil
}
