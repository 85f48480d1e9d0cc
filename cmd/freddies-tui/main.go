//go:build !js
// +build !js

package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/simukka/feed-the-freddies/audio"
	"github.com/simukka/feed-the-freddies/common"
	"github.com/simukka/feed-the-freddies/game"
	"github.com/simukka/feed-the-freddies/tui"
)

func main() {
	seed := flag.Uint("seed", 0, "Gameplay seed (0 picks one at random)")
	compact := flag.Bool("compact", false, "Use the tall compact field")
	debugPath := flag.String("debug", "", "Write debug log to this file")
	mute := flag.Bool("mute", false, "Disable sound")
	flag.Parse()

	if err := run(uint32(*seed), *compact, *debugPath, *mute); err != nil {
		fmt.Fprintf(os.Stderr, "freddies: %v\n", err)
		os.Exit(1)
	}
}

func run(seed uint32, compact bool, debugPath string, mute bool) (err error) {
	if debugPath != "" {
		f, err := os.OpenFile(debugPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open debug log: %w", err)
		}
		defer f.Close()
		game.SetDebugOutput(f)
		game.EnableDebug = true
	} else {
		// Never write to the terminal while tcell owns it
		game.SetDebugOutput(io.Discard)
	}

	cfg := game.DefaultConfig()
	if compact {
		cfg = game.CompactConfig()
	}
	if seed == 0 {
		seed = common.EntropySeed()
	}
	s := game.NewSession(cfg, common.NewSeededRNG(seed))

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	screen.SetStyle(tcell.StyleDefault.
		Background(tcell.ColorDefault).
		Foreground(tcell.ColorWhite))
	screen.Clear()

	// Restore the terminal before reporting a crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	var sound *tui.Sound
	audio.AudioConfig.Muted = mute
	if !mute {
		sound = tui.NewSound(cfg.Width)
		if err := sound.Init(); err != nil {
			// Non-fatal, game can run without sound
			game.DebugWarn("audio disabled:", err)
			sound = nil
		} else {
			defer sound.Close()
		}
	}

	app := tui.NewApp(screen, s, sound)
	app.Run()
	screen.Fini()

	fmt.Printf("Session %s seed %d: wave %d, score %d\n", s.ID, s.Seed(), s.Wave, s.Score)
	return nil
}
