package main

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Sounds plays short tones for game events. A nil *Sounds is silent.
type Sounds struct {
	mixer *beep.Mixer
}

// NewSounds initialises the speaker.
func NewSounds() (*Sounds, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return nil, err
	}
	s := &Sounds{mixer: &beep.Mixer{}}
	speaker.Play(s.mixer)
	return s, nil
}

// Cleared plays a rising chirp, one note per cleared row.
func (s *Sounds) Cleared(rows int) {
	for i := range min(rows, 4) {
		s.tone(660*float64(i+2)/2, 70*time.Millisecond, time.Duration(i)*70*time.Millisecond)
	}
}

// GameOver plays a low falling pair.
func (s *Sounds) GameOver() {
	s.tone(220, 200*time.Millisecond, 0)
	s.tone(165, 400*time.Millisecond, 200*time.Millisecond)
}

func (s *Sounds) tone(freq float64, d, delay time.Duration) {
	if s == nil {
		return
	}
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	note := beep.Seq(
		beep.Silence(sampleRate.N(delay)),
		beep.Take(sampleRate.N(d), &effects.Volume{Streamer: sine, Base: 2, Volume: -3}),
	)

	speaker.Lock()
	s.mixer.Add(note)
	speaker.Unlock()
}

// Close stops playback.
func (s *Sounds) Close() {
	if s == nil {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
}
