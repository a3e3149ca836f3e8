package sundial

import "math"

// Vec2 is a 2D point or displacement in screen coordinates. The
// coordinate system has its origin at the top-left, with Y increasing
// downward.
type Vec2 struct {
	X, Y float64
}

// Add returns the sum of two vectors.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(w Vec2) Vec2 {
	return Vec2{X: v.X - w.X, Y: v.Y - w.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vec2) Mul(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Length returns the magnitude of the vector.
func (v Vec2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Distance returns the Euclidean distance between two points.
func (v Vec2) Distance(w Vec2) float64 {
	return v.Sub(w).Length()
}

// PolarAngle returns the direction of v in menu convention: degrees,
// 0° pointing up, increasing clockwise, normalized to [0, 360).
// The zero vector maps to 0°.
func PolarAngle(v Vec2) float64 {
	if v.X == 0 && v.Y == 0 {
		return 0
	}
	// atan2 with swapped, Y-flipped arguments rotates math convention
	// (0 = right, counter-clockwise) into menu convention.
	return normalizeAngle(math.Atan2(v.X, -v.Y) * 180 / math.Pi)
}

// Direction returns the displacement of the given length along an
// angle in standard math convention (degrees, 0° = right, increasing
// clockwise in screen coordinates). Callers working in menu convention
// pass angle−90 to correct for the 0°-is-up origin.
func Direction(angleDeg, dist float64) Vec2 {
	rad := angleDeg * math.Pi / 180
	sin, cos := math.Sincos(rad)
	return Vec2{X: cos * dist, Y: sin * dist}
}

// normalizeAngle wraps an angle into [0, 360).
func normalizeAngle(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}

// angularDistance returns the shortest arc between two angles, in
// [0, 180].
func angularDistance(a, b float64) float64 {
	d := math.Abs(normalizeAngle(a) - normalizeAngle(b))
	if d > 180 {
		d = 360 - d
	}
	return d
}

// arcContains reports whether angle a (mod 360) falls strictly inside
// the unwrapped open arc (from, to), where from < to <= from+360.
func arcContains(from, to, a float64) bool {
	for _, s := range [3]float64{a - 360, a, a + 360} {
		if s > from && s < to {
			return true
		}
	}
	return false
}

// unwrapInto shifts angle a by a multiple of 360 so it lands inside
// (from, to]. Callers must ensure such a shift exists.
func unwrapInto(from, to, a float64) float64 {
	for _, s := range [3]float64{a - 360, a, a + 360} {
		if s > from && s <= to {
			return s
		}
	}
	return a
}

// inWedge reports whether the mouse angle falls inside the half-open
// wedge (start, end]. Testing the angle and its ±360° shifts makes the
// comparison correct across the 0°/360° seam, where wedges are stored
// unwrapped (start may be negative, end may exceed 360).
func inWedge(start, end, angle float64) bool {
	for _, s := range [3]float64{angle, angle - 360, angle + 360} {
		if s > start && s <= end {
			return true
		}
	}
	return false
}
