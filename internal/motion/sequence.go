// Package motion implements waypoint-sequence following: an ordered list of
// target points an agent visits in turn, with an arrive radius deciding when
// a waypoint counts as reached.
package motion

import "fieldsim/server/internal/geometry"

// DefaultArriveRadius is the fallback arrival radius, in world units.
const DefaultArriveRadius = 0.1

// Sequence walks an agent through a fixed list of waypoints. A continuous
// sequence restarts from the first waypoint after finishing the last one.
type Sequence struct {
	waypoints    []geometry.Point
	index        int
	arriveRadius float32
	continuous   bool
}

// NewSequence builds a sequence over a copy of waypoints. A non-positive
// arriveRadius falls back to DefaultArriveRadius.
func NewSequence(waypoints []geometry.Point, arriveRadius float32, continuous bool) *Sequence {
	if arriveRadius <= 0 {
		arriveRadius = DefaultArriveRadius
	}
	return &Sequence{
		waypoints:    append([]geometry.Point(nil), waypoints...),
		arriveRadius: arriveRadius,
		continuous:   continuous,
	}
}

// Target returns the current waypoint. ok is false once the sequence has
// finished; a continuous sequence never finishes.
func (s *Sequence) Target() (target geometry.Point, ok bool) {
	if s.index >= len(s.waypoints) {
		return geometry.Point{}, false
	}
	return s.waypoints[s.index], true
}

// Observe advances past every waypoint within the arrive radius of pos and
// reports whether the sequence finished a full pass on this call.
func (s *Sequence) Observe(pos geometry.Point) bool {
	finished := false
	for s.index < len(s.waypoints) {
		if !pos.Near(s.waypoints[s.index], s.arriveRadius) {
			break
		}
		s.index++
		if s.index == len(s.waypoints) {
			finished = true
			if s.continuous {
				s.index = 0
			}
			break
		}
	}
	return finished
}

// Done reports whether every waypoint has been visited. Continuous sequences
// are never done.
func (s *Sequence) Done() bool {
	return s.index >= len(s.waypoints)
}

// Restart rewinds the sequence to its first waypoint.
func (s *Sequence) Restart() {
	s.index = 0
}

// Remaining returns how many waypoints are still ahead, including the
// current target.
func (s *Sequence) Remaining() int {
	if s.index >= len(s.waypoints) {
		return 0
	}
	return len(s.waypoints) - s.index
}

// Steer returns the velocity that moves an agent at pos toward target at up
// to maxSpeed. On the final approach the velocity is shortened so that one
// step of dt lands on the target instead of overshooting it.
func Steer(pos, target geometry.Point, maxSpeed, dt float32) geometry.Point {
	if dt <= 0 {
		return geometry.Point{}
	}
	vel := target.Sub(pos).Div(dt)
	vel.ClampMag(maxSpeed)
	return vel
}
