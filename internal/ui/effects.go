package ui

import (
	"fmt"

	"github.com/ingyamilmolinar/retrofx/internal/dom"
)

func (c *Controller) onFrameEnter(*dom.Event) {
	c.frame.SetStyle("transform", c.cfg.Effects.HoverTransform)
	c.frame.SetStyle("transition", c.cfg.Effects.HoverTransition)
}

func (c *Controller) onFrameLeave(*dom.Event) {
	c.frame.SetStyle("transform", c.cfg.Effects.RestTransform)
}

// onTitleClick restarts the neon flicker and plays a click.
func (c *Controller) onTitleClick(*dom.Event) {
	c.title.SetStyle("animation", "none")
	c.after(c.cfg.Effects.TitleReset, func() {
		c.title.SetStyle("animation", c.cfg.Effects.TitleAnimation)
	})
	c.engine.PlayClick()
}

// intro fades the page container in.
func (c *Controller) intro() {
	container, ok := c.doc.Query(c.cfg.Selectors.Container)
	if !ok {
		return
	}
	fx := c.cfg.Effects
	container.SetStyle("opacity", "0")
	container.SetStyle("transform", fmt.Sprintf("translateY(%s)", fx.IntroOffset))
	c.after(fx.IntroDelay, func() {
		container.SetStyle("transition", fx.IntroTransition)
		container.SetStyle("opacity", "1")
		container.SetStyle("transform", "translateY(0)")
	})
}
