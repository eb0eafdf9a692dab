package render

import "github.com/vovakirdan/centipede-arcade/internal/core"

// Theme is the per-level palette.
type Theme struct {
	Name       string
	Background core.Color
	// MushroomCaps is indexed by health-1.
	MushroomCaps [4]core.Color
	Stem         core.Color
	Poison       core.Color
	Head         core.Color
	Body         core.Color
	Player       core.Color
	Bullet       core.Color
}

// Themes cycle with the level: level 1 uses Themes[0].
var Themes = [5]Theme{
	{
		Name:         "forest",
		Background:   core.ParseHex("#001100"),
		MushroomCaps: [4]core.Color{core.ParseHex("#ff0000"), core.ParseHex("#ff4444"), core.ParseHex("#ff8888"), core.ParseHex("#ffaaaa")},
		Stem:         core.ColorBrown,
		Poison:       core.ColorPurple,
		Head:         core.ColorYellow,
		Body:         core.ColorOrange,
		Player:       core.ColorGreen,
		Bullet:       core.ColorYellow,
	},
	{
		Name:         "dusk",
		Background:   core.ParseHex("#0a0022"),
		MushroomCaps: [4]core.Color{core.ParseHex("#ff00aa"), core.ParseHex("#ff44bb"), core.ParseHex("#ff88cc"), core.ParseHex("#ffbbdd")},
		Stem:         core.ParseHex("#aa66ff"),
		Poison:       core.ParseHex("#44ff44"),
		Head:         core.ParseHex("#00ffff"),
		Body:         core.ParseHex("#3388ff"),
		Player:       core.ColorGreen,
		Bullet:       core.ColorYellow,
	},
	{
		Name:         "desert",
		Background:   core.ParseHex("#1a1000"),
		MushroomCaps: [4]core.Color{core.ParseHex("#ffaa00"), core.ParseHex("#ffbb33"), core.ParseHex("#ffcc66"), core.ParseHex("#ffdd99")},
		Stem:         core.ParseHex("#996633"),
		Poison:       core.ColorPurple,
		Head:         core.ColorRed,
		Body:         core.ParseHex("#cc3300"),
		Player:       core.ColorCyan,
		Bullet:       core.ColorWhite,
	},
	{
		Name:         "ice",
		Background:   core.ParseHex("#001122"),
		MushroomCaps: [4]core.Color{core.ParseHex("#00aaff"), core.ParseHex("#33bbff"), core.ParseHex("#66ccff"), core.ParseHex("#99ddff")},
		Stem:         core.ParseHex("#cccccc"),
		Poison:       core.ColorMagenta,
		Head:         core.ColorWhite,
		Body:         core.ParseHex("#88ffff"),
		Player:       core.ColorYellow,
		Bullet:       core.ColorYellow,
	},
	{
		Name:         "ember",
		Background:   core.ParseHex("#110000"),
		MushroomCaps: [4]core.Color{core.ParseHex("#ffff00"), core.ParseHex("#ffff44"), core.ParseHex("#ffff88"), core.ParseHex("#ffffbb")},
		Stem:         core.ParseHex("#aa4400"),
		Poison:       core.ColorCyan,
		Head:         core.ColorGreen,
		Body:         core.ParseHex("#66cc00"),
		Player:       core.ColorWhite,
		Bullet:       core.ColorRed,
	},
}

// ThemeFor returns the palette for level n (1-based).
func ThemeFor(level int) Theme {
	if level < 1 {
		level = 1
	}
	return Themes[(level-1)%len(Themes)]
}

// MushroomColor picks the cap color for a health value.
func (t Theme) MushroomColor(health int) core.Color {
	i := health - 1
	if i < 0 || i >= len(t.MushroomCaps) {
		return t.MushroomCaps[0]
	}
	return t.MushroomCaps[i]
}
