package game

import "math"

// Donut is a thrown projectile travelling in a straight line.
type Donut struct {
	X, Y     float64 // Position
	VX, VY   float64 // Velocity per tick
	Radius   float64
	Rotation float64

	spent bool // consumed by a hit
	out   bool // left the field
}

// NewDonut aims a donut from (x, y) at (targetX, targetY) at the standard speed.
// A target equal to the origin sends it along the positive x axis.
func NewDonut(x, y, targetX, targetY float64) *Donut {
	angle := math.Atan2(targetY-y, targetX-x)
	return &Donut{
		X:      x,
		Y:      y,
		VX:     math.Cos(angle) * DonutSpeed,
		VY:     math.Sin(angle) * DonutSpeed,
		Radius: DonutRadius,
	}
}

// GetPosition implements Collidable interface.
func (d *Donut) GetPosition() (x, y float64) {
	return d.X, d.Y
}

// GetRadius implements Collidable interface.
func (d *Donut) GetRadius() float64 {
	return d.Radius
}

// Advance implements Entity.
func (d *Donut) Advance(field Field) {
	d.X += d.VX
	d.Y += d.VY
	d.Rotation += DonutSpin

	if d.X < -DonutExitMargin || d.X > field.Width+DonutExitMargin ||
		d.Y < -DonutExitMargin || d.Y > field.Height+DonutExitMargin {
		d.out = true
	}
}

// Done implements Entity.
func (d *Donut) Done() bool {
	return d.spent || d.out
}

// Overlaps reports whether the donut touches c. The hit test is a circle
// against the target's half width.
func (d *Donut) Overlaps(c Collidable) bool {
	cx, cy := c.GetPosition()
	dx := d.X - cx
	dy := d.Y - cy
	reach := d.Radius + c.GetRadius()
	return math.Sqrt(dx*dx+dy*dy) < reach
}
