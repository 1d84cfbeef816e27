package modeling

import "math"

// positiveInfinity is the sentinel tNext value meaning "no internal
// event scheduled".
var positiveInfinity = math.Inf(1)

// PositiveInfinity returns the sentinel tNext value meaning "no
// internal event scheduled". Exported so callers (the root coordinator,
// DEVStone fixtures, tests) can compare against it without importing
// math themselves.
func PositiveInfinity() float64 {
	return positiveInfinity
}
