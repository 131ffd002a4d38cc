package model

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

func TestChiptuneTrackTotals(t *testing.T) {
	tr, err := NewTrack(ChiptuneNotes)
	if err != nil {
		t.Fatalf("NewTrack: %v", err)
	}
	if tr.Len() != 13 {
		t.Fatalf("expected 13 notes, got %d", tr.Len())
	}
	if tr.Total() != 8.0 {
		t.Fatalf("expected 8s pass, got %v", tr.Total())
	}
}

func TestOffsetsAreCumulative(t *testing.T) {
	tr, err := NewTrack([]Note{{440, 0.25}, {880, 1}, {220, 0.5}})
	if err != nil {
		t.Fatalf("NewTrack: %v", err)
	}
	want := []float64{0, 0.25, 1.25}
	if got := tr.Offsets(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Offsets() = %v, want %v", got, want)
	}
}

func TestNewTrackRejectsBadNotes(t *testing.T) {
	cases := [][]Note{
		nil,
		{{0, 1}},
		{{440, 0}},
		{{440, 1}, {-1, 1}},
	}
	for i, notes := range cases {
		if _, err := NewTrack(notes); !errors.Is(err, ErrInvalidNote) {
			t.Fatalf("case %d: expected ErrInvalidNote, got %v", i, err)
		}
	}
}

func TestNotesReturnsCopy(t *testing.T) {
	tr, _ := NewTrack([]Note{{440, 1}})
	n := tr.Notes()
	n[0].Freq = 1
	if tr.Notes()[0].Freq != 440 {
		t.Fatalf("track mutated through Notes()")
	}
}

func TestParsePitch(t *testing.T) {
	cases := map[string]float64{
		"A4":  440,
		"C5":  523.25,
		"C6":  1046.5,
		"F#4": 369.99,
		"Bb3": 233.08,
	}
	for name, want := range cases {
		got, err := ParsePitch(name)
		if err != nil {
			t.Fatalf("ParsePitch(%q): %v", name, err)
		}
		if math.Abs(got-want) > 0.01 {
			t.Fatalf("ParsePitch(%q) = %v, want %v", name, got, want)
		}
	}
	for _, bad := range []string{"", "H4", "C", "Cx", "C99"} {
		if _, err := ParsePitch(bad); err == nil {
			t.Fatalf("ParsePitch(%q) should fail", bad)
		}
	}
}
