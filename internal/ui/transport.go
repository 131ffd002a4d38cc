package ui

import (
	"github.com/ingyamilmolinar/retrofx/core/engine"
	"github.com/ingyamilmolinar/retrofx/internal/config"
	"github.com/ingyamilmolinar/retrofx/internal/dom"
)

// Indicator is the audio control button and its glyph.
type Indicator struct {
	toggle dom.Element
	icon   dom.Element
	cfg    config.Indicator
}

func NewIndicator(toggle, icon dom.Element, cfg config.Indicator) *Indicator {
	return &Indicator{toggle: toggle, icon: icon, cfg: cfg}
}

// Render shows the muted glyph unless music is playing and unmuted.
func (i *Indicator) Render(s engine.State) {
	if s.Muted || !s.Playing {
		i.icon.SetText(i.cfg.Muted)
		i.toggle.AddClass(i.cfg.MutedClass)
		return
	}
	i.icon.SetText(i.cfg.Playing)
	i.toggle.RemoveClass(i.cfg.MutedClass)
}

// Hide removes the control when there is no tone synthesis.
func (i *Indicator) Hide() {
	i.toggle.SetStyle("display", "none")
}
