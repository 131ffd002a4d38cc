package ui

import (
	"math/rand"
	"testing"

	"github.com/ingyamilmolinar/retrofx/internal/dom/domtest"
)

func TestParticleKeyframes(t *testing.T) {
	got, err := renderKeyframes("particleExplode", particleFrames{DX: 12.25, DY: -50})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := `@keyframes particleExplode {
  0% { transform: scale(1) translate(0, 0); opacity: 1; }
  100% { transform: scale(0) translate(12.25px, -50px); opacity: 0; }
}`
	if got != want {
		t.Fatalf("got\n%s\nwant\n%s", got, want)
	}
}

func TestRainbowKeyframes(t *testing.T) {
	got, err := renderKeyframes("rainbow", nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := `@keyframes rainbow {
  0% { filter: hue-rotate(0deg); }
  100% { filter: hue-rotate(360deg); }
}`
	if got != want {
		t.Fatalf("got\n%s\nwant\n%s", got, want)
	}
}

func TestInjectStyle(t *testing.T) {
	doc := domtest.NewDocument()
	injectStyle(doc, "a{}")
	styles := doc.FindAll("head style")
	if len(styles) != 1 || styles[0].Text() != "a{}" {
		t.Fatalf("unexpected head %v", styles)
	}
}

func TestPalette(t *testing.T) {
	p, err := NewPalette([]string{"#00FFFF", "#ff00ff"})
	if err != nil {
		t.Fatalf("NewPalette: %v", err)
	}
	if !p.Contains("#00ffff") || !p.Contains("#FF00FF") || p.Contains("#39FF14") {
		t.Fatalf("Contains mismatch")
	}
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		if c := p.Pick(r); c != "#00FFFF" && c != "#ff00ff" {
			t.Fatalf("Pick returned %q", c)
		}
	}
	if _, err := NewPalette([]string{"cyan"}); err == nil {
		t.Fatalf("expected error for non-hex colour")
	}
	if _, err := NewPalette(nil); err == nil {
		t.Fatalf("expected error for empty palette")
	}
}
