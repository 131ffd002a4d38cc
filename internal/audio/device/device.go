//go:build !js

// Package device plays rendered PCM on the host sound card.
package device

import (
	"fmt"
	"io"

	"github.com/ebitengine/oto/v3"
)

// Output keeps the oto context and player alive for the life of playback.
type Output struct {
	ctx    *oto.Context
	player *oto.Player
}

// Open starts streaming r, interleaved stereo int16 LE frames at sampleRate,
// to the default output device.
func Open(r io.Reader, sampleRate int) (*Output, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 2,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		return nil, fmt.Errorf("open audio device: %w", err)
	}
	<-ready
	p := ctx.NewPlayer(r)
	p.Play()
	return &Output{ctx: ctx, player: p}, nil
}

// Close stops playback.
func (o *Output) Close() error {
	if err := o.player.Close(); err != nil {
		return err
	}
	return o.ctx.Suspend()
}
