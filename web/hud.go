//go:build js
// +build js

package web

import (
	"strconv"

	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/feed-the-freddies/game"
)

// HUDBinding mirrors game.HUD into DOM elements. Only changed values touch
// the DOM.
type HUDBinding struct {
	elements map[string]*js.Object
	last     game.HUD
	primed   bool
}

// hudElementIDs are looked up once; missing ones are skipped.
var hudElementIDs = []string{
	"lives", "donuts", "wave", "score",
	"texas-meter", "texas-count", "texas-button",
	"start-screen", "game-over-screen",
	"final-score", "final-wave", "game-over-message", "session-id",
}

// NewHUDBinding resolves the HUD elements from the document.
func NewHUDBinding() *HUDBinding {
	document := js.Global.Get("document")
	h := &HUDBinding{elements: make(map[string]*js.Object, len(hudElementIDs))}
	for _, id := range hudElementIDs {
		el := document.Call("getElementById", id)
		if el == nil || el == js.Undefined {
			continue
		}
		h.elements[id] = el
	}
	return h
}

func (h *HUDBinding) setText(id, text string) {
	if el, ok := h.elements[id]; ok {
		el.Set("textContent", text)
	}
}

func (h *HUDBinding) setVisible(id string, visible bool) {
	el, ok := h.elements[id]
	if !ok {
		return
	}
	if visible {
		el.Get("classList").Call("remove", "hidden")
	} else {
		el.Get("classList").Call("add", "hidden")
	}
}

// ShowPlaying hides both overlay screens.
func (h *HUDBinding) ShowPlaying() {
	h.setVisible("start-screen", false)
	h.setVisible("game-over-screen", false)
}

// Update pushes the status values that changed since the last call.
func (h *HUDBinding) Update(hud game.HUD) {
	prev := h.last
	first := !h.primed
	h.last = hud
	h.primed = true

	if first || hud.Lives != prev.Lives {
		h.setText("lives", strconv.Itoa(hud.Lives))
	}
	if first || hud.Donuts != prev.Donuts {
		h.setText("donuts", strconv.Itoa(hud.Donuts))
	}
	if first || hud.Wave != prev.Wave {
		h.setText("wave", strconv.Itoa(hud.Wave))
	}
	if first || hud.Score != prev.Score {
		h.setText("score", strconv.Itoa(hud.Score))
	}

	if first || hud.TexasProgress != prev.TexasProgress || hud.TexasRequired != prev.TexasRequired {
		pct := 0.0
		if hud.TexasRequired > 0 {
			pct = float64(hud.TexasProgress) / float64(hud.TexasRequired) * 100
		}
		if el, ok := h.elements["texas-meter"]; ok {
			el.Get("style").Set("width", strconv.FormatFloat(pct, 'f', 1, 64)+"%")
		}
	}
	if first || hud.TexasStock != prev.TexasStock {
		h.setText("texas-count", strconv.Itoa(hud.TexasStock))
	}
	if first || hud.TexasReady != prev.TexasReady {
		if el, ok := h.elements["texas-button"]; ok {
			el.Set("disabled", !hud.TexasReady)
			if hud.TexasReady {
				el.Get("classList").Call("add", "ready")
			} else {
				el.Get("classList").Call("remove", "ready")
			}
		}
	}

	if first || hud.SessionID != prev.SessionID {
		h.setText("session-id", hud.SessionID)
	}

	if first || hud.State != prev.State {
		switch hud.State {
		case game.StateStart:
			h.setVisible("start-screen", true)
			h.setVisible("game-over-screen", false)
		case game.StatePlaying:
			h.ShowPlaying()
		case game.StateGameOver:
			h.setText("final-score", strconv.Itoa(hud.Score))
			h.setText("final-wave", strconv.Itoa(hud.Wave))
			h.setText("game-over-message", game.GameOverMessage(hud.Wave))
			h.setVisible("game-over-screen", true)
		}
	}
}
