package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/ingyamilmolinar/retrofx/core/model"
	"github.com/ingyamilmolinar/retrofx/core/sequence"
	"github.com/ingyamilmolinar/retrofx/internal/audio"
)

func TestDefaultsMatchBuiltinConstants(t *testing.T) {
	c := Default()
	if err := c.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}

	tr, err := c.Track()
	if err != nil {
		t.Fatalf("Track: %v", err)
	}
	if !reflect.DeepEqual(tr.Notes(), model.ChiptuneNotes) {
		t.Fatalf("default melody %v", tr.Notes())
	}
	if tr.Total() != 8 {
		t.Fatalf("default pass length %v", tr.Total())
	}
	if c.Envelope() != audio.DefaultEnvelope {
		t.Fatalf("envelope %+v", c.Envelope())
	}
	if c.ClickSweep() != audio.DefaultClick {
		t.Fatalf("click %+v", c.ClickSweep())
	}
	if c.Audio.MelodyVolume != 0.05 || c.Audio.NoteVolume != 0.1 {
		t.Fatalf("volumes %+v", c.Audio)
	}
	if !reflect.DeepEqual(c.Konami.Sequence, sequence.Konami) {
		t.Fatalf("konami sequence %v", c.Konami.Sequence)
	}
	if c.Konami.Message != "🎉 KONAMI CODE ACTIVATED! 🎉" || c.Konami.Duration != 3*time.Second {
		t.Fatalf("konami %+v", c.Konami)
	}
	wantColors := []string{"#00FFFF", "#FF00FF", "#39FF14", "#FFFF00"}
	if !reflect.DeepEqual(c.Particles.Colors, wantColors) {
		t.Fatalf("colors %v", c.Particles.Colors)
	}
	if c.Particles.Lifetime != time.Second || c.Particles.Spread != 100 {
		t.Fatalf("particles %+v", c.Particles)
	}
	if c.Effects.TitleReset != 10*time.Millisecond || c.Effects.IntroDelay != 100*time.Millisecond {
		t.Fatalf("effects %+v", c.Effects)
	}
	if c.Selectors.Toggle != "#audioToggle" || c.Selectors.Iframe != ".game-frame iframe" {
		t.Fatalf("selectors %+v", c.Selectors)
	}
	if !reflect.DeepEqual(c.Keys.Toggle, []string{"m", " "}) {
		t.Fatalf("toggle keys %q", c.Keys.Toggle)
	}
}

func TestParseOverlaysDefaults(t *testing.T) {
	c, err := Parse([]byte(`
log_level: debug
audio:
  melody_volume: 0.2
melody:
  - {note: A4, duration: 0.25}
  - {freq: 880, duration: 0.75}
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if c.Audio.MelodyVolume != 0.2 {
		t.Fatalf("override lost: %v", c.Audio.MelodyVolume)
	}
	if c.Audio.NoteVolume != 0.1 || c.Audio.Click.Duration != 100*time.Millisecond {
		t.Fatalf("defaults lost: %+v", c.Audio)
	}
	tr, err := c.Track()
	if err != nil {
		t.Fatalf("Track: %v", err)
	}
	want := []model.Note{{Freq: 440, Duration: 0.25}, {Freq: 880, Duration: 0.75}}
	if !reflect.DeepEqual(tr.Notes(), want) {
		t.Fatalf("melody %v, want %v", tr.Notes(), want)
	}
}

func TestParseEmptyIsDefault(t *testing.T) {
	c, err := Parse([]byte("  \n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !reflect.DeepEqual(c, Default()) {
		t.Fatalf("empty document changed the defaults")
	}
}

func TestParseRejects(t *testing.T) {
	cases := map[string]string{
		"unknown key":    "audio:\n  volume: 1\n",
		"bad level":      "log_level: loud\n",
		"zero volume":    "audio:\n  melody_volume: 0\n",
		"zero floor":     "audio:\n  floor: 0\n",
		"bad duration":   "particles:\n  lifetime: soon\n",
		"bad colour":     "particles:\n  colors: ['#GG0000']\n",
		"no colours":     "particles:\n  colors: []\n",
		"empty melody":   "melody: []\n",
		"bad pitch":      "melody:\n  - {note: H2, duration: 1}\n",
		"zero length":    "melody:\n  - {freq: 440, duration: 0}\n",
		"no toggle":      "selectors:\n  toggle: ''\n",
		"empty sequence": "konami:\n  sequence: []\n",
	}
	for name, doc := range cases {
		if _, err := Parse([]byte(doc)); !errors.Is(err, ErrInvalid) {
			t.Errorf("%s: expected ErrInvalid, got %v", name, err)
		}
	}
}

func TestInvalidPitchKeepsNoteError(t *testing.T) {
	_, err := Parse([]byte("melody:\n  - {note: X9, duration: 1}\n"))
	if !errors.Is(err, model.ErrInvalidNote) {
		t.Fatalf("expected ErrInvalidNote in chain, got %v", err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "retrofx.yaml")
	if err := os.WriteFile(path, []byte("konami:\n  duration: 5s\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Konami.Duration != 5*time.Second {
		t.Fatalf("duration %v", c.Konami.Duration)
	}
	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
