package web

import "github.com/simukka/feed-the-freddies/game"

// Rect is an element's bounding box in CSS pixels.
type Rect struct {
	Left, Top, Width, Height float64
}

// ToField maps a pointer position in client coordinates onto the field,
// compensating for any CSS scaling of the canvas.
func ToField(clientX, clientY float64, rect Rect, field game.Field) (x, y float64) {
	if rect.Width <= 0 || rect.Height <= 0 {
		return clientX, clientY
	}
	x = (clientX - rect.Left) * field.Width / rect.Width
	y = (clientY - rect.Top) * field.Height / rect.Height
	return x, y
}
