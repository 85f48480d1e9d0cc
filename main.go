//go:build js
// +build js

package main

import (
	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/feed-the-freddies/common"
	"github.com/simukka/feed-the-freddies/game"
	"github.com/simukka/feed-the-freddies/web"
)

func main() {
	// Get the canvas element
	doc := js.Global.Get("document")
	canvas := doc.Call("getElementById", "c")
	if canvas == nil || canvas == js.Undefined {
		panic("canvas element not found")
	}

	web.UseConsole()
	query := js.Global.Get("location").Get("search").String()
	game.EnableDebug = web.QueryFlag(query, "debug")

	// Narrow screens get the tall compact field
	cfg := game.ConfigForViewport(
		js.Global.Get("innerWidth").Int(),
		js.Global.Get("innerHeight").Int(),
	)

	seed := common.EntropySeed()
	if v, ok := web.QueryUint(query, "seed"); ok {
		seed = uint32(v)
	}
	s := game.NewSession(cfg, common.NewSeededRNG(seed))

	app := web.NewApp(canvas, s)

	// Expose a small API for the page and for debugging
	js.Global.Set("Freddies", map[string]interface{}{
		"start": func() {
			s.Apply(game.ActionStart)
		},
		"seed": func() uint32 {
			return s.Seed()
		},
		"session": func() string {
			return s.ID.String()
		},
		"mute": func(muted bool) {
			app.Audio.SetMuted(muted)
		},
	})

	app.Run()

	select {}
}
