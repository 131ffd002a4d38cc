package ui

import (
	"fmt"

	"github.com/ingyamilmolinar/retrofx/internal/dom"
	"github.com/ingyamilmolinar/retrofx/internal/utils"
)

// injectParticleKeyframes installs particleExplode with one random
// direction that every particle of this page shares.
func (c *Controller) injectParticleKeyframes() error {
	spread := c.cfg.Particles.Spread
	css, err := renderKeyframes("particleExplode", particleFrames{
		DX: utils.Spread(c.rnd, spread),
		DY: utils.Spread(c.rnd, spread),
	})
	if err != nil {
		return fmt.Errorf("particle keyframes: %w", err)
	}
	injectStyle(c.doc, css)
	return nil
}

func (c *Controller) onDocumentClick(e *dom.Event) {
	if t := e.Target; t != nil {
		if t.Same(c.toggle) {
			return
		}
		if sel := c.cfg.Selectors.Iframe; sel != "" {
			if _, inside := t.Closest(sel); inside {
				return
			}
		}
	}
	c.spawnParticle(e.ClientX, e.ClientY)
}

// spawnParticle drops a glowing dot at viewport x, y and removes it once its
// animation has run.
func (c *Controller) spawnParticle(x, y float64) {
	p := c.doc.Create("div")
	p.AddClass("particle")
	p.SetStyle("left", utils.Px(x))
	p.SetStyle("top", utils.Px(y))
	p.SetStyle("position", "fixed")
	p.SetStyle("pointer-events", "none")
	p.SetStyle("z-index", "1001")

	c.mu.Lock()
	color := c.palette.Pick(c.rnd)
	c.mu.Unlock()
	p.SetStyle("background", color)
	p.SetStyle("box-shadow", fmt.Sprintf("0 0 %s %s", c.cfg.Particles.Glow, color))

	c.doc.Body().AppendChild(p)

	lifetime := c.cfg.Particles.Lifetime
	p.SetStyle("animation", fmt.Sprintf("particleExplode %s ease-out forwards", utils.CSSSeconds(lifetime)))
	c.after(lifetime, p.Remove)
}
