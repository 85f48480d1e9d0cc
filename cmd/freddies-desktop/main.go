//go:build !js
// +build !js

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/simukka/feed-the-freddies/audio"
	"github.com/simukka/feed-the-freddies/common"
	"github.com/simukka/feed-the-freddies/desktop"
	"github.com/simukka/feed-the-freddies/game"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
)

func main() {
	seed := flag.Uint("seed", 0, "Gameplay seed (0 picks one at random)")
	compact := flag.Bool("compact", false, "Use the tall compact field")
	scale := flag.Float64("scale", 1, "Window scale factor")
	debug := flag.Bool("debug", false, "Log debug output to stderr")
	mute := flag.Bool("mute", false, "Disable sound")
	flag.Parse()

	game.EnableDebug = *debug

	cfg := game.DefaultConfig()
	if *compact {
		cfg = game.CompactConfig()
	}
	s := uint32(*seed)
	if s == 0 {
		s = common.EntropySeed()
	}
	session := game.NewSession(cfg, common.NewSeededRNG(s))

	face, err := loadBannerFace(36)
	if err != nil {
		log.Fatal(err)
	}

	var sound *desktop.Sound
	audio.AudioConfig.Muted = *mute
	if !*mute {
		sound = desktop.NewSound(cfg.Width)
	}

	g := desktop.NewGame(session, sound, face)

	ebiten.SetWindowSize(int(cfg.Width**scale), int(cfg.Height**scale))
	ebiten.SetWindowTitle("Feed the Freddies")
	ebiten.SetTPS(desktop.PollTPS)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, desktop.ErrQuit) {
		log.Fatal(err)
	}
	log.Printf("Session %s seed %d: wave %d, score %d", session.ID, session.Seed(), session.Wave, session.Score)
}

func loadBannerFace(size float64) (font.Face, error) {
	tt, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create face: %w", err)
	}
	return face, nil
}
