package main

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const chimeSampleRate = beep.SampleRate(44100)

// chime plays a short tone on effect switches. Audio is strictly
// optional: init failure leaves a nil chime and every method is a no-op.
type chime struct{}

func initChime() *chime {
	if err := speaker.Init(chimeSampleRate, chimeSampleRate.N(time.Second/10)); err != nil {
		log.Debug().Err(err).Msg("audio unavailable, chime disabled")
		return nil
	}
	return &chime{}
}

func (c *chime) play() {
	if c == nil {
		return
	}
	sine, err := generators.SineTone(chimeSampleRate, 660)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(chimeSampleRate.N(60*time.Millisecond), sine))
}

func (c *chime) close() {
	if c == nil {
		return
	}
	speaker.Close()
}
