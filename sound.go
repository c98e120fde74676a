package main

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// sfxKind enumerates the synthesized effect cues.
type sfxKind int

const (
	sfxMunch sfxKind = iota
	sfxPill
	sfxEatGhost
	sfxFruit
	sfxDeath
	numSfxKinds
)

// effectStream is the pull-based PCM stream behind Ebiten's audio player.
// Queued cue samples are drained as stereo 16-bit frames; when the queue is
// empty the stream produces silence instead of blocking the player.
type effectStream struct {
	mu  sync.Mutex
	buf []float32
}

// push appends cue samples, keeping only the most recent window when effects
// pile up faster than the player drains them.
func (s *effectStream) push(samples []float32) {
	if len(samples) == 0 {
		return
	}
	s.mu.Lock()
	s.buf = append(s.buf, samples...)
	if len(s.buf) > maxQueuedSamples {
		s.buf = s.buf[len(s.buf)-maxQueuedSamples:]
	}
	s.mu.Unlock()
}

// Read fills p with whole stereo frames from the queue, zero-padding once the
// queue is exhausted.
func (s *effectStream) Read(p []byte) (int, error) {
	frameBytes := len(p) - len(p)%audioFrameBytes
	if frameBytes == 0 {
		return 0, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	frameCount := frameBytes / audioFrameBytes
	for i := 0; i < frameCount; i++ {
		var v int16
		if i < len(s.buf) {
			v = int16(s.buf[i] * 32000)
		}
		base := i * audioFrameBytes
		p[base] = byte(v)
		p[base+1] = byte(v >> 8)
		p[base+2] = p[base]
		p[base+3] = p[base+1]
	}
	if frameCount < len(s.buf) {
		s.buf = s.buf[frameCount:]
	} else {
		s.buf = s.buf[:0]
	}
	return frameBytes, nil
}

func (s *effectStream) Close() error { return nil }

// soundBank holds the pre-synthesized cue waveforms and the audio player that
// consumes them. A nil soundBank is valid and silently drops every cue, so the
// game runs unchanged with audio disabled.
type soundBank struct {
	stream *effectStream
	player *audio.Player
	cues   [numSfxKinds][]float32
}

// newSoundBank synthesizes all cues and starts the streaming player.
func newSoundBank(ctx *audio.Context) (*soundBank, error) {
	b := &soundBank{stream: &effectStream{}}
	b.cues[sfxMunch] = synthSweep(300, 150, 0.06, 0.25)
	b.cues[sfxPill] = synthSweep(400, 800, 0.25, 0.3)
	b.cues[sfxEatGhost] = synthSweep(200, 900, 0.3, 0.3)
	b.cues[sfxFruit] = synthSweep(800, 1200, 0.12, 0.3)
	b.cues[sfxDeath] = synthSweep(900, 80, 0.8, 0.35)

	player, err := ctx.NewPlayer(b.stream)
	if err != nil {
		return nil, fmt.Errorf("creating audio player: %w", err)
	}
	player.SetBufferSize(50 * time.Millisecond)
	player.Play()
	b.player = player
	return b, nil
}

// play queues one cue for output.
func (b *soundBank) play(kind sfxKind) {
	if b == nil {
		return
	}
	b.stream.push(b.cues[kind])
}

// synthSweep renders a square wave whose frequency glides from f0 to f1 over
// dur seconds, with a linear fade-out envelope.
func synthSweep(f0, f1, dur, amp float64) []float32 {
	n := int(dur * audioSampleRate)
	out := make([]float32, n)
	phase := 0.0
	for i := range out {
		t := float64(i) / float64(n)
		f := f0 + (f1-f0)*t
		phase += f / audioSampleRate
		v := amp
		if math.Mod(phase, 1) >= 0.5 {
			v = -amp
		}
		out[i] = float32(v * (1 - t))
	}
	return out
}
