package beat

import (
	"github.com/ingyamilmolinar/retrofx/core/model"
)

// Scheduler lays one pass of a track out on an audio timeline. Each note
// starts where the previous one ends, so consecutive passes started at
// start+Total() join without gap or overlap.
type Scheduler struct {
	Track  model.Track
	OnNote func(step int, n model.Note, at float64)
}

func NewScheduler(t model.Track) *Scheduler {
	return &Scheduler{Track: t}
}

// Pass schedules every note once starting at start and returns the pass
// length in seconds.
func (s *Scheduler) Pass(start float64) float64 {
	at := start
	for i, n := range s.Track.Notes() {
		if s.OnNote != nil {
			s.OnNote(i, n, at)
		}
		at += n.Duration
	}
	return s.Track.Total()
}
