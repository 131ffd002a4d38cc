package utils

import (
	"math/rand"
	"strconv"
	"time"
)

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Spread returns a uniform value in [-limit, limit].
func Spread(r *rand.Rand, limit float64) float64 {
	return Clamp(r.Float64()*2*limit-limit, -limit, limit)
}

// Px formats a CSS pixel length, "150px" or "12.5px".
func Px(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}

// CSSSeconds formats a CSS time, "1s" or "0.3s".
func CSSSeconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', -1, 64) + "s"
}
