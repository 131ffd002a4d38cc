//go:build !js

// Command chiptune plays the arcade melody through the software renderer,
// either live on the sound card or rendered offline to a WAV file.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"

	"github.com/ingyamilmolinar/retrofx/core/engine"
	"github.com/ingyamilmolinar/retrofx/internal/audio"
	"github.com/ingyamilmolinar/retrofx/internal/audio/device"
	"github.com/ingyamilmolinar/retrofx/internal/clock"
	"github.com/ingyamilmolinar/retrofx/internal/config"
	game_log "github.com/ingyamilmolinar/retrofx/internal/log"
)

func main() {
	var (
		cfgPath  = flag.String("config", "", "YAML config overriding the defaults")
		loops    = flag.Int("loops", 1, "number of melody passes")
		out      = flag.String("out", "", "render to this WAV file instead of the sound card")
		click    = flag.Bool("click", false, "play the UI click before the melody")
		logLevel = flag.String("log-level", "", "DEBUG, INFO, ERROR or NONE")
	)
	flag.Parse()

	logger := game_log.New(os.Stderr, game_log.LevelInfo)
	if err := run(*cfgPath, *loops, *out, *click, *logLevel, logger); err != nil {
		logger.Errorf("[MAIN] %v", err)
		os.Exit(1)
	}
}

func run(cfgPath string, loops int, out string, click bool, logLevel string, logger *game_log.Logger) error {
	cfg := config.Default()
	if cfgPath != "" {
		var err error
		if cfg, err = config.Load(cfgPath); err != nil {
			return err
		}
	}
	if logLevel == "" {
		logLevel = cfg.LogLevel
	}
	logger.SetLevel(game_log.LevelFromString(logLevel))
	if loops < 1 {
		return fmt.Errorf("-loops must be at least 1, got %d", loops)
	}
	track, err := cfg.Track()
	if err != nil {
		return err
	}

	sr := beep.SampleRate(cfg.Audio.SampleRate)
	r := audio.NewRenderer(sr)
	opts := engine.Options{
		NewContext:   func() (audio.Context, error) { return r, nil },
		Track:        track,
		MelodyVolume: cfg.Audio.MelodyVolume,
		NoteVolume:   cfg.Audio.NoteVolume,
		Envelope:     cfg.Envelope(),
		Click:        cfg.ClickSweep(),
		Logger:       logger,
	}
	pass := clock.Seconds(track.Total())

	if out != "" {
		fake := clock.NewFake()
		opts.Clock = fake
		return render(out, r, engine.New(opts), fake, pass, loops, click, cfg, logger)
	}
	return play(r, engine.New(opts), pass, loops, click, cfg, logger)
}

func playClick(r *audio.Renderer, cfg config.Config, logger *game_log.Logger) {
	if _, err := r.Schedule(audio.SweepTone(r.CurrentTime(), cfg.ClickSweep())); err != nil {
		logger.Warnf("[MAIN] click: %v", err)
	}
}

// render drives the engine with a fake clock, pulling exactly one pass of
// samples between timer advances so passes join sample-accurately.
func render(path string, r *audio.Renderer, eng *engine.Engine, fake *clock.Fake, pass time.Duration, loops int, click bool, cfg config.Config, logger *game_log.Logger) error {
	format := beep.Format{SampleRate: r.SampleRate(), NumChannels: 2, Precision: 2}
	buf := beep.NewBuffer(format)

	eng.Toggle()
	if !eng.State().On() {
		return fmt.Errorf("engine did not start")
	}
	if click {
		playClick(r, cfg, logger)
	}
	n := r.SampleRate().N(pass)
	for i := 0; i < loops; i++ {
		buf.Append(beep.Take(n, r))
		fake.Advance(pass)
		logger.Debugf("[MAIN] rendered pass %d at %.3fs", i+1, r.CurrentTime())
	}
	eng.Close()

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := wav.Encode(f, buf.Streamer(0, buf.Len()), format); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	logger.Infof("[MAIN] wrote %d passes (%v) to %s", loops, format.SampleRate.D(buf.Len()), path)
	return nil
}

func play(r *audio.Renderer, eng *engine.Engine, pass time.Duration, loops int, click bool, cfg config.Config, logger *game_log.Logger) error {
	o, err := device.Open(r, int(r.SampleRate()))
	if err != nil {
		return err
	}
	defer o.Close()

	eng.Toggle()
	if click {
		playClick(r, cfg, logger)
	}
	logger.Infof("[MAIN] playing %d passes, ctrl-c to stop", loops)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	select {
	case <-time.After(time.Duration(loops) * pass):
	case <-sig:
	}
	eng.Close()
	return nil
}
