//go:build js && wasm

package ui

import (
	"github.com/hack-pad/safejs"
)

// ExportJS publishes window.retrofx with toggle() and state() for
// browser-based tests. The returned function removes it.
func (c *Controller) ExportJS() (func(), error) {
	toggle, err := safejs.FuncOf(func(safejs.Value, []safejs.Value) any {
		c.Toggle()
		return nil
	})
	if err != nil {
		return nil, err
	}
	state, err := safejs.FuncOf(func(safejs.Value, []safejs.Value) any {
		s := c.State()
		return map[string]any{"playing": s.Playing, "muted": s.Muted}
	})
	if err != nil {
		toggle.Release()
		return nil, err
	}
	api := map[string]any{"toggle": toggle, "state": state}
	if err := safejs.Global().Set("retrofx", api); err != nil {
		toggle.Release()
		state.Release()
		return nil, err
	}
	return func() {
		_ = safejs.Global().Delete("retrofx")
		toggle.Release()
		state.Release()
	}, nil
}
