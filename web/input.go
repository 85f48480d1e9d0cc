//go:build js
// +build js

package web

import (
	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/feed-the-freddies/game"
)

// canvasRect reads the canvas bounding box in CSS pixels.
func canvasRect(canvas *js.Object) Rect {
	r := canvas.Call("getBoundingClientRect")
	return Rect{
		Left:   r.Get("left").Float(),
		Top:    r.Get("top").Float(),
		Width:  r.Get("width").Float(),
		Height: r.Get("height").Float(),
	}
}

// SetupInputHandlers wires keyboard, pointer and button events.
func (a *App) SetupInputHandlers() {
	document := js.Global.Get("document")

	document.Call("addEventListener", "keydown", func(event *js.Object) {
		a.Audio.Init()

		switch game.TranslateKeyCode(event.Get("keyCode").Int()) {
		case game.ActionStats:
			a.Stats.Toggle()
			event.Call("preventDefault")
		case game.ActionTexas:
			a.Session.Apply(game.ActionTexas)
			event.Call("preventDefault")
		case game.ActionStart:
			if a.Session.Apply(game.ActionStart) {
				a.HUD.ShowPlaying()
			}
			event.Call("preventDefault")
		}
	})

	// Pointer handler for throwing donuts
	launch := func(clientX, clientY float64) {
		a.Audio.Init()
		x, y := ToField(clientX, clientY, canvasRect(a.Canvas), a.Session.Field())
		a.Session.Launch(x, y)
	}

	a.Canvas.Call("addEventListener", "mousedown", func(event *js.Object) {
		launch(event.Get("clientX").Float(), event.Get("clientY").Float())
	})

	a.Canvas.Call("addEventListener", "touchstart", func(event *js.Object) {
		event.Call("preventDefault")
		touches := event.Get("changedTouches")
		for i := 0; i < touches.Length(); i++ {
			t := touches.Index(i)
			launch(t.Get("clientX").Float(), t.Get("clientY").Float())
		}
	}, map[string]interface{}{"passive": false})

	onClick := func(id string, fn func()) {
		el := document.Call("getElementById", id)
		if el == nil || el == js.Undefined {
			game.DebugWarn("missing element", id)
			return
		}
		el.Call("addEventListener", "click", func(event *js.Object) {
			event.Call("stopPropagation")
			a.Audio.Init()
			fn()
		})
	}

	start := func() {
		if a.Session.Apply(game.ActionStart) {
			a.HUD.ShowPlaying()
		}
	}
	onClick("start-button", start)
	onClick("restart-button", start)
	onClick("texas-button", func() {
		a.Session.Apply(game.ActionTexas)
	})
}
