package model

import (
	"errors"
	"fmt"
)

var ErrInvalidNote = errors.New("invalid note")

// Note is one melody step: a pitch in Hz held for Duration seconds.
type Note struct {
	Freq     float64
	Duration float64
}

// Track is an immutable ordered melody.
type Track struct {
	notes []Note
	total float64
}

func NewTrack(notes []Note) (Track, error) {
	if len(notes) == 0 {
		return Track{}, fmt.Errorf("%w: empty track", ErrInvalidNote)
	}
	t := Track{notes: make([]Note, len(notes))}
	for i, n := range notes {
		if n.Freq <= 0 {
			return Track{}, fmt.Errorf("%w: note %d frequency %v", ErrInvalidNote, i, n.Freq)
		}
		if n.Duration <= 0 {
			return Track{}, fmt.Errorf("%w: note %d duration %v", ErrInvalidNote, i, n.Duration)
		}
		t.notes[i] = n
		t.total += n.Duration
	}
	return t, nil
}

// Notes returns a copy of the track's notes.
func (t Track) Notes() []Note {
	return append([]Note(nil), t.notes...)
}

func (t Track) Len() int { return len(t.notes) }

// Total is the length of one pass in seconds.
func (t Track) Total() float64 { return t.total }

// Offsets returns each note's start relative to the beginning of a pass.
func (t Track) Offsets() []float64 {
	offs := make([]float64, len(t.notes))
	at := 0.0
	for i, n := range t.notes {
		offs[i] = at
		at += n.Duration
	}
	return offs
}

// ChiptuneNotes is the default arcade melody.
var ChiptuneNotes = []Note{
	{523.25, 0.5}, // C5
	{659.25, 0.5}, // E5
	{783.99, 0.5}, // G5
	{1046.5, 0.5}, // C6
	{783.99, 0.5}, // G5
	{659.25, 0.5}, // E5
	{523.25, 1.0}, // C5
	{587.33, 0.5}, // D5
	{659.25, 0.5}, // E5
	{698.46, 0.5}, // F5
	{783.99, 1.0}, // G5
	{659.25, 0.5}, // E5
	{523.25, 1.0}, // C5
}
