package sim

import (
	"testing"

	"github.com/milk9111/shapedrop/engine"
)

func TestResponderGating(t *testing.T) {
	cases := []struct {
		speed     float64
		wantPlays int
	}{
		{1.4, 0},
		{1.5, 0},
		{1.6, 1},
		{-1.6, 1},
		{0, 0},
		{12, 1},
	}
	for _, c := range cases {
		snd := &recordingSound{}
		r := NewResponder(snd, DefaultImpactThreshold)
		r.OnCollision(engine.CollisionEvent{ImpactSpeed: c.speed})

		if got := snd.plays(); got != c.wantPlays {
			t.Errorf("speed %v: expected %d plays, got %d", c.speed, c.wantPlays, got)
		}
		if r.Hits() != c.wantPlays {
			t.Errorf("speed %v: expected %d hits, got %d", c.speed, c.wantPlays, r.Hits())
		}
		if c.wantPlays > 0 && (len(snd.calls) != 2 || snd.calls[0] != "reset" || snd.calls[1] != "play") {
			t.Errorf("speed %v: expected reset then play, got %v", c.speed, snd.calls)
		}
	}
}

func TestResponderWithoutSound(t *testing.T) {
	r := NewResponder(nil, 1)
	r.OnCollision(engine.CollisionEvent{ImpactSpeed: 5})
	if r.Hits() != 1 {
		t.Fatalf("expected the hit to be counted, got %d", r.Hits())
	}

	var nilResponder *Responder
	nilResponder.OnCollision(engine.CollisionEvent{ImpactSpeed: 5})
	if nilResponder.Hits() != 0 {
		t.Fatalf("nil responder reported hits")
	}
}
