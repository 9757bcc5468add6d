package geometry

// In-place counterparts to the pure operations in point.go. Each mutates the
// receiver and returns nothing; result values are identical to the pure
// forms. They exist for hot loops that update an owned value every tick.

// AddInPlace adds q to the receiver.
func (p *Point) AddInPlace(q Point) {
	p.X += q.X
	p.Y += q.Y
}

// SubInPlace subtracts q from the receiver.
func (p *Point) SubInPlace(q Point) {
	p.X -= q.X
	p.Y -= q.Y
}

// MulInPlace scales the receiver by s.
func (p *Point) MulInPlace(s float32) {
	p.X *= s
	p.Y *= s
}

// DivInPlace scales the receiver by 1/s.
func (p *Point) DivInPlace(s float32) {
	p.X /= s
	p.Y /= s
}

// Rotate rotates the receiver counter-clockwise about the origin by angle
// radians.
func (p *Point) Rotate(angle float32) {
	*p = p.Rotated(angle)
}

// RotateAbout rotates the receiver counter-clockwise about origin by angle
// radians.
func (p *Point) RotateAbout(origin Point, angle float32) {
	*p = p.RotatedAbout(origin, angle)
}

// ClampMag restricts the receiver's magnitude to at most max, preserving
// direction. Receivers already within the bound are left untouched.
func (p *Point) ClampMag(max float32) {
	*p = p.ClampedMag(max)
}
