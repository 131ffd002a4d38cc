package utils

import (
	"math/rand"
	"testing"
	"time"
)

func TestSpreadStaysInRange(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		if v := Spread(r, 100); v < -100 || v > 100 {
			t.Fatalf("Spread = %v", v)
		}
	}
	if v := Spread(r, 0); v != 0 {
		t.Fatalf("zero spread = %v", v)
	}
}

func TestCSSFormatting(t *testing.T) {
	cases := []struct{ got, want string }{
		{Px(150), "150px"},
		{Px(12.5), "12.5px"},
		{Px(-3), "-3px"},
		{CSSSeconds(time.Second), "1s"},
		{CSSSeconds(300 * time.Millisecond), "0.3s"},
	}
	for _, c := range cases {
		if c.got != c.want {
			t.Errorf("got %q, want %q", c.got, c.want)
		}
	}
}
