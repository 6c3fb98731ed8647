package runner

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// shakeDecay is how long a full-strength shake takes to settle, in seconds.
const shakeDecay = 0.5

// shakeVisible is the intensity below which the camera stops jittering.
const shakeVisible = 0.1

var jitter = [...][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// shaker decays camera shake intensity toward zero with an ease-out curve.
// A kick weaker than the current intensity is ignored.
type shaker struct {
	tween *gween.Tween
	value float32
}

func (s *shaker) kick(intensity float64) {
	v := float32(min(intensity, 1))
	if v <= s.value {
		return
	}
	s.value = v
	s.tween = gween.New(v, 0, shakeDecay, ease.OutQuad)
}

func (s *shaker) update(dt float64) {
	if s.tween == nil || dt <= 0 {
		return
	}
	v, done := s.tween.Update(float32(dt))
	s.value = v
	if done {
		s.tween = nil
		s.value = 0
	}
}

// offset returns the camera jitter in cells for the given frame.
func (s shaker) offset(frame int) (dx, dy int) {
	if s.value < shakeVisible {
		return 0, 0
	}
	j := jitter[frame%len(jitter)]
	return j[0], j[1]
}
