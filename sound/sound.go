// Package sound plays one-shot clips through ebiten's audio context.
package sound

import (
	"encoding/binary"
	"fmt"
	"math"
	"os"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/milk9111/shapedrop/assets"
)

const SampleRate = 44100

// Context returns the process audio context, creating it on first use.
func Context() *audio.Context {
	if ctx := audio.CurrentContext(); ctx != nil {
		return ctx
	}
	return audio.NewContext(SampleRate)
}

// Clip implements engine.Sound over an ebiten audio player. A nil Clip or a
// Clip without a player is silent.
type Clip struct {
	player *audio.Player
}

func NewClip(player *audio.Player) *Clip {
	return &Clip{player: player}
}

func (c *Clip) Play() {
	if c == nil || c.player == nil {
		return
	}
	c.player.Play()
}

// Reset moves playback back to the start.
func (c *Clip) Reset() {
	if c == nil || c.player == nil {
		return
	}
	c.player.Rewind()
}

func (c *Clip) SetVolume(v float64) {
	if c == nil || c.player == nil {
		return
	}
	c.player.SetVolume(v)
}

func (c *Clip) IsPlaying() bool {
	return c != nil && c.player != nil && c.player.IsPlaying()
}

// LoadClip decodes a wav file from disk.
func LoadClip(ctx *audio.Context, path string) (*Clip, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("sound: read %q: %w", path, err)
	}
	p, err := assets.NewAudioPlayer(ctx, path, b)
	if err != nil {
		return nil, fmt.Errorf("sound: %w", err)
	}
	return NewClip(p), nil
}

// EmbeddedClip loads the built-in impact sound.
func EmbeddedClip(ctx *audio.Context) (*Clip, error) {
	p, err := assets.LoadAudioPlayer(ctx, assets.ImpactSound)
	if err != nil {
		return nil, fmt.Errorf("sound: %w", err)
	}
	return NewClip(p), nil
}

// SynthClip builds a clip from a synthesized thud.
func SynthClip(ctx *audio.Context) *Clip {
	return NewClip(ctx.NewPlayerFromBytes(Thud(ctx.SampleRate(), 0.25)))
}

// Thud renders a decaying low sine sweep as 16-bit little-endian stereo PCM.
func Thud(sampleRate int, seconds float64) []byte {
	n := int(float64(sampleRate) * seconds)
	if n <= 0 {
		return nil
	}
	out := make([]byte, n*4)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(sampleRate)
		freq := 110 - 70*t/seconds
		v := math.Sin(2*math.Pi*freq*t) * math.Exp(-t*16) * 0.7
		s := uint16(int16(v * math.MaxInt16))
		binary.LittleEndian.PutUint16(out[i*4:], s)
		binary.LittleEndian.PutUint16(out[i*4+2:], s)
	}
	return out
}
