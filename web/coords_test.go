package web

import (
	"testing"

	"github.com/simukka/feed-the-freddies/game"
)

func TestToField(t *testing.T) {
	field := game.Field{Width: 800, Height: 600}

	tests := []struct {
		name         string
		cx, cy       float64
		rect         Rect
		wantX, wantY float64
	}{
		{"unscaled", 100, 50, Rect{0, 0, 800, 600}, 100, 50},
		{"offset", 110, 70, Rect{10, 20, 800, 600}, 100, 50},
		{"half size", 200, 150, Rect{0, 0, 400, 300}, 400, 300},
		{"double size", 800, 600, Rect{0, 0, 1600, 1200}, 400, 300},
		{"zero rect passes through", 5, 6, Rect{}, 5, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := ToField(tt.cx, tt.cy, tt.rect, field)
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("ToField = (%v,%v), want (%v,%v)", x, y, tt.wantX, tt.wantY)
			}
		})
	}
}
