package ui

import (
	"github.com/ingyamilmolinar/retrofx/internal/dom"
)

func (c *Controller) onSequenceKey(e *dom.Event) {
	c.mu.Lock()
	hit := c.konami.Push(e.Code)
	c.mu.Unlock()
	if hit {
		c.activateBonus()
	}
}

// activateBonus cycles the page hue and flashes the banner for
// Konami.Duration.
func (c *Controller) activateBonus() {
	k := c.cfg.Konami
	body := c.doc.Body()
	body.SetStyle("animation", k.BodyAnimation)

	c.mu.Lock()
	inject := !c.rainbow
	c.rainbow = true
	c.mu.Unlock()
	if inject {
		if css, err := renderKeyframes("rainbow", nil); err != nil {
			c.log.Errorf("[UI] rainbow keyframes: %v", err)
		} else {
			injectStyle(c.doc, css)
		}
	}

	msg := c.doc.Create("div")
	msg.SetText(k.Message)
	msg.SetStyle("position", "fixed")
	msg.SetStyle("top", "50%")
	msg.SetStyle("left", "50%")
	msg.SetStyle("transform", "translate(-50%, -50%)")
	msg.SetStyle("font-size", "2rem")
	msg.SetStyle("color", k.Color)
	msg.SetStyle("text-shadow", "0 0 20px "+k.Color)
	msg.SetStyle("z-index", "10000")
	msg.SetStyle("animation", k.MessageAnimation)
	body.AppendChild(msg)

	c.after(k.Duration, func() {
		body.SetStyle("animation", "")
		msg.Remove()
	})
	c.log.Infof("[UI] 🎉 Konami Code activated! You found the easter egg!")
}
