package window

import "time"

// maxSteps bounds the updates run for one frame so a stall cannot snowball.
const maxSteps = 10

// stepper converts variable frame times into whole fixed-length update ticks.
type stepper struct {
	tick  time.Duration
	accum time.Duration
}

func newStepper(tick time.Duration) *stepper { return &stepper{tick: tick} }

// advance adds a frame's duration and returns how many ticks to run.
// Time owed beyond maxSteps ticks is dropped.
func (s *stepper) advance(frame time.Duration) int {
	s.accum += frame
	n := int(s.accum / s.tick)
	if n > maxSteps {
		s.accum = 0
		return maxSteps
	}
	s.accum -= time.Duration(n) * s.tick
	return n
}
