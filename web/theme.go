//go:build js
// +build js

package web

import "github.com/simukka/feed-the-freddies/game"

// Theme holds all visual styling constants for easy customization.
var Theme = struct {
	// Sky gradient
	SkyTop    string
	SkyBottom string
	Cloud     string

	// Danger zone
	DangerFill   string
	DangerStroke string

	// Donut colors
	DonutDough    string
	DonutFrosting string
	DonutHole     string
	Sprinkles     []string

	// Freddie colors
	FreddieBody      string
	FreddieBelly     string
	FreddieHungry    string
	FreddieSatisfied string

	// Powerup colors
	DonutBoxColor string
	TexasBoxColor string
	LifeBoxColor  string
	BoxLabel      string

	// Texas Donut animation
	TexasGlow string
	TexasRing string

	// Launch marker
	LauncherColor string

	// Text
	TextPrimaryColor   string
	TextSecondaryColor string
	BannerFont         string
	LabelFont          string
	InstructFont       string

	// Tint palette for effects, indexed by game.Tint
	Tints map[game.Tint]string
}{
	SkyTop:    "#87CEEB",
	SkyBottom: "#E0F6FF",
	Cloud:     "rgba(255, 255, 255, 0.8)",

	DangerFill:   "rgba(255, 0, 0, 0.15)",
	DangerStroke: "rgba(255, 0, 0, 0.5)",

	DonutDough:    "#D2691E",
	DonutFrosting: "#FF69B4",
	DonutHole:     "#87CEEB",
	Sprinkles:     []string{"#FF0000", "#00FF00", "#0000FF", "#FFFF00", "#FF00FF"},

	FreddieBody:      "#8B5A2B",
	FreddieBelly:     "#DEB887",
	FreddieHungry:    "#FF4444",
	FreddieSatisfied: "#44DD44",

	DonutBoxColor: "#FFB347",
	TexasBoxColor: "#FF8C00",
	LifeBoxColor:  "#FF6B6B",
	BoxLabel:      "#FFFFFF",

	TexasGlow: "rgba(255, 200, 0, ",
	TexasRing: "#FFD700",

	LauncherColor: "rgba(255, 105, 180, 0.6)",

	TextPrimaryColor:   "#FF1493",
	TextSecondaryColor: "#FFFFFF",
	BannerFont:         "bold 48px 'Comic Sans MS', cursive, sans-serif",
	LabelFont:          "bold 14px sans-serif",
	InstructFont:       "16px sans-serif",

	Tints: map[game.Tint]string{
		game.TintGold:   "#FFD700",
		game.TintPink:   "#FF69B4",
		game.TintRed:    "#FF0000",
		game.TintBrown:  "#8B4513",
		game.TintOrange: "#FF8C00",
		game.TintWhite:  "#FFFFFF",
	},
}
