//go:build js && wasm

// Command retrofx attaches the retro page effects to the hosting document.
package main

import (
	"os"

	"github.com/ingyamilmolinar/retrofx/internal/audio"
	"github.com/ingyamilmolinar/retrofx/internal/config"
	"github.com/ingyamilmolinar/retrofx/internal/dom"
	game_log "github.com/ingyamilmolinar/retrofx/internal/log"
	"github.com/ingyamilmolinar/retrofx/internal/ui"
)

// configSelector is an optional <script type="application/yaml"> override.
const configSelector = "#retrofx-config"

func main() {
	<-dom.Ready()
	logger := game_log.New(os.Stdout, game_log.LevelInfo)

	doc, err := dom.Global()
	if err != nil {
		logger.Errorf("[MAIN] %v", err)
		return
	}
	cfg := loadConfig(doc, logger)
	logger.SetLevel(game_log.LevelFromString(cfg.LogLevel))

	c, err := ui.Attach(ui.Options{
		Document:   doc,
		Config:     cfg,
		NewContext: audio.NewWebContext,
		Logger:     logger,
	})
	if err != nil {
		logger.Errorf("[MAIN] attach: %v", err)
		return
	}
	if _, err := c.ExportJS(); err != nil {
		logger.Warnf("[MAIN] export js: %v", err)
	}
	select {}
}

func loadConfig(doc dom.Document, logger *game_log.Logger) config.Config {
	el, ok := doc.Query(configSelector)
	if !ok {
		return config.Default()
	}
	cfg, err := config.Parse([]byte(el.Text()))
	if err != nil {
		logger.Errorf("[MAIN] %s: %v, using defaults", configSelector, err)
		return config.Default()
	}
	return cfg
}
