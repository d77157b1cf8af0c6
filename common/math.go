package common

import "math"

const (
	BaseWidth  = 1280
	BaseHeight = 720

	// Gravity is the world gravity in units per second squared along -Y.
	Gravity = -9.81

	// GridStep is the horizontal spacing the cuboid snaps to when idle.
	GridStep = 0.5
)

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// RoundToStep rounds v to the nearest multiple of step.
func RoundToStep(v, step float64) float64 {
	if step <= 0 {
		return v
	}
	return math.Round(v/step) * step
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// SmoothStep eases t in [0,1] with zero slope at both ends.
func SmoothStep(t float64) float64 {
	t = Clamp(t, 0, 1)
	return t * t * (3 - 2*t)
}
