package trigo

import (
	"math"

	"github.com/gobots/gobots/common/utils/vector"
)

// http://devmag.org.za/2009/04/17/basic-collision-detection-in-2d-part-2/
func LineCircleIntersectionPoints(LineP1 vector.Vector2, LineP2 vector.Vector2, CircleCentre vector.Vector2, Radius float64) []vector.Vector2 {

	LocalP1 := LineP1.Sub(CircleCentre)
	LocalP2 := LineP2.Sub(CircleCentre)
	// Precalculate this value. We use it often
	P2MinusP1 := LocalP2.Sub(LocalP1)

	p2minusp1x, p2minusp1y := P2MinusP1.Get()
	localp1x, localp1y := LocalP1.Get()

	a := P2MinusP1.MagSq()
	b := 2 * ((p2minusp1x * localp1x) + (p2minusp1y * localp1y))
	c := LocalP1.MagSq() - (Radius * Radius)

	if a == 0 {
		// Degenerate segment (no displacement)
		return make([]vector.Vector2, 0)
	}

	delta := b*b - (4 * a * c)
	if delta < 0 {
		// No intersection
		return make([]vector.Vector2, 0)
	}

	if delta == 0 {
		u := -b / (2.0 * a)

		// Use LineP1 instead of LocalP1 because we want our answer in global space, not the circle's local space
		res := make([]vector.Vector2, 1)
		res[0] = LineP1.Add(P2MinusP1.MultScalar(u))
		return res
	}

	// (delta > 0) // Two intersections
	SquareRootDelta := math.Sqrt(delta)

	u1 := (-b + SquareRootDelta) / (2 * a)
	u2 := (-b - SquareRootDelta) / (2 * a)

	res := make([]vector.Vector2, 2)
	res[0] = LineP1.Add(P2MinusP1.MultScalar(u1))
	res[1] = LineP1.Add(P2MinusP1.MultScalar(u2))

	return res
}

func PointOnLineSegment(p vector.Vector2, a vector.Vector2, b vector.Vector2) bool {
	t := 0.0001

	px, py := p.Get()
	ax, ay := a.Get()
	bx, by := b.Get()

	// ensure points are collinear
	zero := (bx-ax)*(py-ay) - (px-ax)*(by-ay)
	if zero > t || zero < -t {
		return false
	}

	// check if x-coordinates are not equal
	if ax-bx > t || bx-ax > t {
		// ensure x is between a.x & b.x (use tolerance)
		if ax > bx {
			return px+t > bx && px-t < ax
		}
		return px+t > ax && px-t < bx
	}

	// ensure y is between a.y & b.y (use tolerance)
	if ay > by {
		return py+t > by && py-t < ay
	}

	return py+t > ay && py-t < by
}

// FullCircleAngleToSignedHalfCircleAngle maps any angle to [-Pi, Pi]
func FullCircleAngleToSignedHalfCircleAngle(rad float64) float64 {
	rad = math.Mod(rad, math.Pi*2)

	if rad > math.Pi { // 180° en radians
		rad -= math.Pi * 2 // 360° en radian
	} else if rad < -math.Pi {
		rad += math.Pi * 2 // 360° en radian
	}

	return rad
}
