package geom

import "math"

// NormalizeRadCn folds angle into the canonical range for a shape with
// n-fold rotational symmetry, whose appearance repeats every 2π/n.
//
// The angle is first wrapped into [-π, π) and then folded into
// (-π/n, π/n]. n = 1 gives the plain [-π, π) wrap; a rectangle uses n = 2.
// Values of n below 1 are treated as 1. Non-finite angles are returned
// unchanged.
func NormalizeRadCn(angle float64, n int) float64 {
	if math.IsNaN(angle) || math.IsInf(angle, 0) {
		return angle
	}
	if n < 1 {
		n = 1
	}

	// Bring far-away angles near the range in one step so the
	// adjustment loops below run a bounded number of times.
	if math.Abs(angle) > 4*math.Pi {
		angle = math.Remainder(angle, 2*math.Pi)
	}
	for angle >= math.Pi {
		angle -= 2 * math.Pi
	}
	for angle < -math.Pi {
		angle += 2 * math.Pi
	}
	if n == 1 {
		return angle
	}

	period := 2 * math.Pi / float64(n)
	half := math.Pi / float64(n)
	for angle > half {
		angle -= period
	}
	for angle <= -half {
		angle += period
	}
	return angle
}
