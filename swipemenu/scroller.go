package swipemenu

import (
	"math"
	"time"
)

// DefaultSettleDuration is the duration of a settle animation.
var DefaultSettleDuration = 250 * time.Millisecond

// Interpolator maps the elapsed fraction of an animation, in [0, 1], to the
// covered fraction of its distance. It must map 0 to 0 and 1 to 1.
type Interpolator func(input float64) float64

const viscousFluidScale = 8.0

var (
	viscousFluidNormalize = 1.0 / viscousFluid(1.0)
	viscousFluidOffset    = 1.0 - viscousFluidNormalize*viscousFluid(1.0)
)

// viscousFluid models a body that accelerates quickly and then decays
// exponentially, like something pushed through a viscous fluid.
func viscousFluid(x float64) float64 {
	x *= viscousFluidScale
	if x < 1.0 {
		return x - (1.0 - math.Exp(-x))
	}
	start := 0.36787944117 // 1/e == exp(-1)
	x = 1.0 - math.Exp(1.0-x)
	return start + x*(1.0-start)
}

// ViscousFluid is the default deceleration curve of a settle.
func ViscousFluid(input float64) float64 {
	switch {
	case input <= 0:
		return 0
	case input >= 1:
		return 1
	}
	interpolated := viscousFluidNormalize * viscousFluid(input)
	if interpolated > 0 {
		interpolated += viscousFluidOffset
	}
	return min(interpolated, 1)
}

// Scroller computes the horizontal offset of a settle animation at a given
// time. It does not drive anything itself: the owner arms it with
// StartScroll and then asks for the offset once per frame with
// ComputeOffset. The zero value is finished.
type Scroller struct {
	startX int
	finalX int
	currX  int
	dx     int

	startTime time.Time
	duration  time.Duration

	running bool

	interpolator Interpolator
}

// NewScroller returns a finished scroller using interpolator, or the
// viscous fluid curve when interpolator is nil.
func NewScroller(interpolator Interpolator) *Scroller {
	return &Scroller{interpolator: interpolator}
}

// StartScroll arms the scroller to move from startX by dx within duration,
// starting at now. A running animation is replaced.
func (s *Scroller) StartScroll(now time.Time, startX, dx int, duration time.Duration) {
	s.startX = startX
	s.currX = startX
	s.dx = dx
	s.finalX = startX + dx
	s.startTime = now
	s.duration = max(duration, 0)
	s.running = true
}

// ComputeOffset advances the animation to now. It returns false if the
// scroller had already finished; otherwise CurrX holds the new offset. The
// call that reaches the end of the animation returns true with CurrX equal
// to FinalX and finishes the scroller.
func (s *Scroller) ComputeOffset(now time.Time) bool {
	if !s.running {
		return false
	}

	elapsed := now.Sub(s.startTime)
	if elapsed < s.duration {
		fraction := max(float64(elapsed)/float64(s.duration), 0)
		value := s.interpolate(fraction)
		if math.IsNaN(value) || math.IsInf(value, 0) {
			value = 1
		}
		s.currX = s.startX + int(math.Round(value*float64(s.dx)))
		return true
	}

	s.currX = s.finalX
	s.running = false
	return true
}

func (s *Scroller) interpolate(fraction float64) float64 {
	if s.interpolator == nil {
		return ViscousFluid(fraction)
	}
	return s.interpolator(fraction)
}

// ForceFinished stops the animation where it currently is.
func (s *Scroller) ForceFinished() {
	s.running = false
}

// AbortAnimation stops the animation and moves CurrX to FinalX.
func (s *Scroller) AbortAnimation() {
	s.currX = s.finalX
	s.running = false
}

// IsFinished returns whether no animation is in progress.
func (s *Scroller) IsFinished() bool {
	return !s.running
}

// CurrX returns the offset computed by the last ComputeOffset call.
func (s *Scroller) CurrX() int {
	return s.currX
}

// StartX returns the offset the animation started from.
func (s *Scroller) StartX() int {
	return s.startX
}

// FinalX returns the offset the animation ends at.
func (s *Scroller) FinalX() int {
	return s.finalX
}

// Duration returns the duration of the animation.
func (s *Scroller) Duration() time.Duration {
	return s.duration
}
