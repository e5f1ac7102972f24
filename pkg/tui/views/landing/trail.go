package landing

import "math"

const (
	// Stiffness and Damping shape the cursor trail's spring.
	Stiffness = 500.0
	Damping   = 28.0

	substeps = 4
)

// Spring moves a point towards a target with unit mass spring dynamics.
type Spring struct {
	X, Y   float64
	VX, VY float64
	TX, TY float64
}

// Target sets the point the spring pulls towards.
func (s *Spring) Target(x, y float64) {
	s.TX, s.TY = x, y
}

// Jump places the spring at rest on (x, y).
func (s *Spring) Jump(x, y float64) {
	s.X, s.Y, s.TX, s.TY = x, y, x, y
	s.VX, s.VY = 0, 0
}

// Step advances the spring by dt seconds using semi-implicit Euler.
func (s *Spring) Step(dt float64) {
	h := dt / substeps
	for range substeps {
		ax := Stiffness*(s.TX-s.X) - Damping*s.VX
		ay := Stiffness*(s.TY-s.Y) - Damping*s.VY
		s.VX += ax * h
		s.VY += ay * h
		s.X += s.VX * h
		s.Y += s.VY * h
	}
}

// Cell returns the spring position rounded to a cell.
func (s *Spring) Cell() (int, int) {
	return int(math.Round(s.X)), int(math.Round(s.Y))
}

// Settled reports whether the spring is at rest on its target.
func (s *Spring) Settled() bool {
	const eps = 1e-3
	return math.Abs(s.TX-s.X) < eps && math.Abs(s.TY-s.Y) < eps &&
		math.Abs(s.VX) < eps && math.Abs(s.VY) < eps
}
