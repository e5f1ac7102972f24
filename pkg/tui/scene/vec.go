package scene

import "math"

// vec3 is a point or direction in scene space.
type vec3 struct{ x, y, z float64 }

func (a vec3) add(b vec3) vec3      { return vec3{a.x + b.x, a.y + b.y, a.z + b.z} }
func (a vec3) sub(b vec3) vec3      { return vec3{a.x - b.x, a.y - b.y, a.z - b.z} }
func (a vec3) scale(k float64) vec3 { return vec3{a.x * k, a.y * k, a.z * k} }
func (a vec3) dot(b vec3) float64   { return a.x*b.x + a.y*b.y + a.z*b.z }
func (a vec3) length() float64      { return math.Sqrt(a.dot(a)) }

func (a vec3) normalize() vec3 {
	l := a.length()
	if l == 0 {
		return a
	}
	return a.scale(1 / l)
}

// unrotate maps a world point into the sphere's local frame for an XYZ Euler
// rotation (rx, ry, 0): the inverse is Ry(-ry) applied after Rx(-rx).
func unrotate(p vec3, rx, ry float64) vec3 {
	sa, ca := math.Sincos(rx)
	y := ca*p.y + sa*p.z
	z := -sa*p.y + ca*p.z
	sb, cb := math.Sincos(ry)
	return vec3{
		x: cb*p.x - sb*z,
		y: y,
		z: sb*p.x + cb*z,
	}
}
