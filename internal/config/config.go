// Package config holds every tunable of the page effects. Defaults are
// embedded; a YAML document supplied by the page or a file is decoded on top
// of them, so it only needs the keys it changes.
package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/ingyamilmolinar/retrofx/core/model"
	"github.com/ingyamilmolinar/retrofx/internal/audio"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

//go:embed default.yaml
var defaultConfig []byte

type (
	Config struct {
		LogLevel  string     `yaml:"log_level"`
		Audio     Audio      `yaml:"audio"`
		Melody    []NoteSpec `yaml:"melody"`
		Selectors Selectors  `yaml:"selectors"`
		Indicator Indicator  `yaml:"indicator"`
		Keys      Keys       `yaml:"keys"`
		Particles Particles  `yaml:"particles"`
		Effects   Effects    `yaml:"effects"`
		Konami    Konami     `yaml:"konami"`
	}

	Audio struct {
		MelodyVolume float64       `yaml:"melody_volume"`
		NoteVolume   float64       `yaml:"note_volume"`
		Attack       time.Duration `yaml:"attack"`
		Floor        float64       `yaml:"floor"`
		SampleRate   int           `yaml:"sample_rate"`
		Click        Click         `yaml:"click"`
	}

	Click struct {
		From      float64       `yaml:"from"`
		To        float64       `yaml:"to"`
		Gain      float64       `yaml:"gain"`
		FinalGain float64       `yaml:"final_gain"`
		Duration  time.Duration `yaml:"duration"`
	}

	// NoteSpec is one melody step, given either as a frequency in Hz or as a
	// pitch name such as "C5" or "F#4".
	NoteSpec struct {
		Note     string  `yaml:"note,omitempty"`
		Freq     float64 `yaml:"freq,omitempty"`
		Duration float64 `yaml:"duration"`
	}

	Selectors struct {
		Toggle    string `yaml:"toggle"`
		Icon      string `yaml:"icon"`
		GameFrame string `yaml:"game_frame"`
		Title     string `yaml:"title"`
		Container string `yaml:"container"`
		Iframe    string `yaml:"iframe"`
	}

	Indicator struct {
		Muted      string `yaml:"muted"`
		Playing    string `yaml:"playing"`
		MutedClass string `yaml:"muted_class"`
	}

	// Keys lists KeyboardEvent.key values, compared case-insensitively.
	Keys struct {
		Toggle         []string `yaml:"toggle"`
		PreventDefault []string `yaml:"prevent_default"`
	}

	Particles struct {
		Colors   []string      `yaml:"colors"`
		Lifetime time.Duration `yaml:"lifetime"`
		Spread   float64       `yaml:"spread"`
		Glow     string        `yaml:"glow"`
	}

	Effects struct {
		HoverTransform  string        `yaml:"hover_transform"`
		RestTransform   string        `yaml:"rest_transform"`
		HoverTransition string        `yaml:"hover_transition"`
		TitleAnimation  string        `yaml:"title_animation"`
		TitleReset      time.Duration `yaml:"title_reset"`
		IntroDelay      time.Duration `yaml:"intro_delay"`
		IntroOffset     string        `yaml:"intro_offset"`
		IntroTransition string        `yaml:"intro_transition"`
	}

	Konami struct {
		Sequence         []string      `yaml:"sequence"`
		Message          string        `yaml:"message"`
		Color            string        `yaml:"color"`
		BodyAnimation    string        `yaml:"body_animation"`
		MessageAnimation string        `yaml:"message_animation"`
		Duration         time.Duration `yaml:"duration"`
	}
)

// Default returns the embedded configuration.
func Default() Config {
	var c Config
	if err := decode(defaultConfig, &c); err != nil {
		panic(fmt.Errorf("failed to unmarshal default config: %w", err))
	}
	return c
}

// Parse decodes data over the defaults and validates the result. Lists
// replace their default entirely.
func Parse(data []byte) (Config, error) {
	c := Default()
	if len(bytes.TrimSpace(data)) > 0 {
		if err := decode(data, &c); err != nil {
			return Config{}, fmt.Errorf("%w: %v", ErrInvalid, err)
		}
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Load reads and parses a YAML file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

func decode(data []byte, c *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	return dec.Decode(c)
}

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

// Validate checks ranges, colours and the melody.
func (c Config) Validate() error {
	switch strings.ToUpper(strings.TrimSpace(c.LogLevel)) {
	case "DEBUG", "INFO", "ERROR", "NONE":
	default:
		return invalid("log_level %q", c.LogLevel)
	}

	a := c.Audio
	if a.MelodyVolume <= 0 || a.MelodyVolume > 1 {
		return invalid("audio.melody_volume %v outside (0,1]", a.MelodyVolume)
	}
	if a.NoteVolume <= 0 || a.NoteVolume > 1 {
		return invalid("audio.note_volume %v outside (0,1]", a.NoteVolume)
	}
	if a.Attack < 0 {
		return invalid("audio.attack %v is negative", a.Attack)
	}
	// exponential ramps need strictly positive endpoints
	if a.Floor <= 0 {
		return invalid("audio.floor %v must be positive", a.Floor)
	}
	if a.SampleRate <= 0 {
		return invalid("audio.sample_rate %d", a.SampleRate)
	}
	k := a.Click
	if k.From <= 0 || k.To <= 0 || k.Gain <= 0 || k.FinalGain <= 0 {
		return invalid("audio.click frequencies and gains must be positive")
	}
	if k.Duration <= 0 {
		return invalid("audio.click.duration %v", k.Duration)
	}

	if _, err := c.Track(); err != nil {
		return err
	}

	if c.Selectors.Toggle == "" || c.Selectors.Icon == "" {
		return invalid("selectors.toggle and selectors.icon are required")
	}
	if len(c.Particles.Colors) == 0 {
		return invalid("particles.colors is empty")
	}
	for i, col := range c.Particles.Colors {
		if _, err := colorful.Hex(col); err != nil {
			return invalid("particles.colors[%d] %q: %v", i, col, err)
		}
	}
	if c.Particles.Lifetime <= 0 {
		return invalid("particles.lifetime %v", c.Particles.Lifetime)
	}
	if c.Particles.Spread < 0 {
		return invalid("particles.spread %v", c.Particles.Spread)
	}
	if c.Effects.TitleReset < 0 || c.Effects.IntroDelay < 0 {
		return invalid("effects delays must not be negative")
	}

	if len(c.Konami.Sequence) == 0 {
		return invalid("konami.sequence is empty")
	}
	if _, err := colorful.Hex(c.Konami.Color); err != nil {
		return invalid("konami.color %q: %v", c.Konami.Color, err)
	}
	if c.Konami.Duration <= 0 {
		return invalid("konami.duration %v", c.Konami.Duration)
	}
	return nil
}

// Track builds the melody.
func (c Config) Track() (model.Track, error) {
	notes := make([]model.Note, len(c.Melody))
	for i, n := range c.Melody {
		freq := n.Freq
		if n.Note != "" {
			f, err := model.ParsePitch(n.Note)
			if err != nil {
				return model.Track{}, fmt.Errorf("%w: melody[%d]: %w", ErrInvalid, i, err)
			}
			freq = f
		}
		notes[i] = model.Note{Freq: freq, Duration: n.Duration}
	}
	t, err := model.NewTrack(notes)
	if err != nil {
		return model.Track{}, fmt.Errorf("%w: melody: %w", ErrInvalid, err)
	}
	return t, nil
}

func (c Config) Envelope() audio.Envelope {
	return audio.Envelope{Attack: c.Audio.Attack, Floor: c.Audio.Floor}
}

func (c Config) ClickSweep() audio.Sweep {
	k := c.Audio.Click
	return audio.Sweep{From: k.From, To: k.To, Gain: k.Gain, FinalGain: k.FinalGain, Duration: k.Duration}
}
