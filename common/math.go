package common

import "math"

// Gravity is the vertical acceleration applied to projectiles, in units/s².
const Gravity = -9.81

func Lerp(a, b, t float32) float32 {
	return a + t*(b-a)
}

// Vec3 is a world-space vector. Y is up; the ground plane is XZ.
type Vec3 struct {
	X, Y, Z float64
}

var (
	Up      = Vec3{Y: 1}
	Down    = Vec3{Y: -1}
	Forward = Vec3{Z: 1}
)

func V3(x, y, z float64) Vec3 { return Vec3{X: x, Y: y, Z: z} }

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

func (v Vec3) Len() float64 { return math.Sqrt(v.Dot(v)) }

// Normalize returns the unit vector, or the zero vector for zero input.
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l < 1e-9 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// Flat drops the vertical component.
func (v Vec3) Flat() Vec3 { return Vec3{X: v.X, Z: v.Z} }

func Distance(a, b Vec3) float64 { return a.Sub(b).Len() }

// PlanarDistance is the distance between a and b on the ground plane.
func PlanarDistance(a, b Vec3) float64 { return math.Hypot(a.X-b.X, a.Z-b.Z) }

// YawTowards returns the heading (radians, 0 = +Z) that looks from `from`
// at `to` ignoring height.
func YawTowards(from, to Vec3) float64 {
	return math.Atan2(to.X-from.X, to.Z-from.Z)
}

// YawForward is the unit forward vector for a heading.
func YawForward(yaw float64) Vec3 {
	return Vec3{X: math.Sin(yaw), Z: math.Cos(yaw)}
}
