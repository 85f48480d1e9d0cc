//go:build js
// +build js

package web

import (
	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/feed-the-freddies/game"
)

// UseConsole routes game debug output to the browser console.
func UseConsole() {
	game.SetDebugSink(func(level game.DebugLevel, args ...interface{}) {
		console := js.Global.Get("console")
		switch level {
		case game.LevelWarn:
			console.Call("warn", args...)
		case game.LevelError:
			console.Call("error", args...)
		default:
			console.Call("log", args...)
		}
	})
}
