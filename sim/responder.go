package sim

import (
	"math"

	"github.com/milk9111/shapedrop/engine"
)

const DefaultImpactThreshold = 1.5

// Responder plays its sound for collisions whose impact speed along the
// contact normal exceeds Threshold. Playback restarts from the beginning.
type Responder struct {
	Sound     engine.Sound
	Threshold float64

	hits int
}

func NewResponder(sound engine.Sound, threshold float64) *Responder {
	return &Responder{Sound: sound, Threshold: threshold}
}

func (r *Responder) OnCollision(evt engine.CollisionEvent) {
	if r == nil || math.Abs(evt.ImpactSpeed) <= r.Threshold {
		return
	}
	r.hits++
	if r.Sound == nil {
		return
	}
	r.Sound.Reset()
	r.Sound.Play()
}

// Hits returns how many collisions passed the threshold.
func (r *Responder) Hits() int {
	if r == nil {
		return 0
	}
	return r.hits
}
