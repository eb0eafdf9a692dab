package render

import (
	"fmt"
	"math"

	"github.com/vovakirdan/centipede-arcade/internal/centipede"
	"github.com/vovakirdan/centipede-arcade/internal/core"
	"github.com/vovakirdan/centipede-arcade/internal/enemy"
	"github.com/vovakirdan/centipede-arcade/internal/field"
	"github.com/vovakirdan/centipede-arcade/internal/player"
	"github.com/vovakirdan/centipede-arcade/internal/scoring"
)

// Fixed colors shared by every theme.
var (
	spiderColor   = core.ParseHex("#800080")
	fleaColor     = core.ColorCyan
	scorpionColor = core.ParseHex("#ffaa00")
	eyeColor      = core.ColorBlack
	hudColor      = core.ColorWhite
	bannerColor   = core.ColorGreen
	debugColor    = core.ColorYellow
	alertColor    = core.ColorRed
)

// Phase selects the full-screen overlay.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseTitle
	PhasePaused
	PhaseGameOver
)

// HUD is the status line.
type HUD struct {
	Score     int
	Lives     int
	Level     int
	HighScore int
}

// Scene is everything one frame shows. Builders must treat it as
// read-only.
type Scene struct {
	Level     int
	Phase     Phase
	Mushrooms []*field.Mushroom
	Player    *player.Player
	Segments  []centipede.Segment
	Enemies   []*enemy.Enemy
	Texts     []scoring.Text
	HUD       HUD

	// Banner is the level-complete countdown, empty when not shown.
	Banner string
	// Debug lines are drawn top-left when non-empty.
	Debug []string

	// Alpha is the fraction of a fixed step elapsed since the last update;
	// bullets are extrapolated by Alpha*StepDT.
	Alpha  float64
	StepDT float64
}

// BuildFrame produces the draw list for s in a fixed order: background,
// mushrooms, player, bullets, segments, enemies, floating texts, HUD and
// overlays.
func BuildFrame(s Scene) DrawList {
	var d DrawList
	t := ThemeFor(s.Level)

	d.Rect(0, 0, core.WorldW, core.WorldH, t.Background, ' ')

	for _, m := range s.Mushrooms {
		if m.Active {
			drawMushroom(&d, t, m)
		}
	}
	if s.Player != nil {
		if s.Player.Visible() {
			drawPlayer(&d, t, s.Player)
		}
		for _, b := range s.Player.Bullets {
			if !b.Active {
				continue
			}
			pos := b.Pos.Add(b.Vel.Scale(s.Alpha * s.StepDT))
			d.Rect(pos.X-b.Size/2, pos.Y-b.Size/2, b.Size, b.Size, t.Bullet, '|')
		}
	}
	for _, seg := range s.Segments {
		if seg.Active {
			drawSegment(&d, t, seg)
		}
	}
	for _, e := range s.Enemies {
		if e.Active {
			drawEnemy(&d, e)
		}
	}
	for _, tx := range s.Texts {
		d.Text(tx.Pos.X, tx.Pos.Y, tx.Text, AlignCenter, tx.Color.Fade(tx.Alpha()))
	}

	drawHUD(&d, s.HUD)
	if s.Banner != "" {
		d.Text(core.WorldW/2, core.WorldH/2, s.Banner, AlignCenter, bannerColor)
	}
	drawOverlay(&d, s)
	for i, line := range s.Debug {
		d.Text(10, 40+float64(i)*20, line, AlignLeft, debugColor)
	}
	return d
}

func drawMushroom(d *DrawList, t Theme, m *field.Mushroom) {
	size := field.MushroomSize
	capColor := t.MushroomColor(m.Health)
	glyph := '♣'
	if m.Poisoned {
		capColor = t.Poison
		glyph = '♠'
	}
	d.Circle(m.Pos.X, m.Pos.Y-size/4, size/2, capColor, glyph)
	d.Rect(m.Pos.X-size/6, m.Pos.Y, size/3, size/2, t.Stem, 0)
}

func drawPlayer(d *DrawList, t Theme, p *player.Player) {
	half := p.Size / 2
	top := core.V(p.Pos.X, p.Pos.Y-half)
	left := core.V(p.Pos.X-half, p.Pos.Y+half)
	right := core.V(p.Pos.X+half, p.Pos.Y+half)
	d.Rect(p.Pos.X-half/2, p.Pos.Y-half/2, half, p.Size*0.75, t.Player, 'A')
	d.Line(top.X, top.Y, left.X, left.Y, 2, t.Player)
	d.Line(left.X, left.Y, right.X, right.Y, 2, t.Player)
	d.Line(right.X, right.Y, top.X, top.Y, 2, t.Player)
}

func drawSegment(d *DrawList, t Theme, s centipede.Segment) {
	size := centipede.SegmentSize
	if !s.IsHead {
		d.Circle(s.Pos.X, s.Pos.Y, size/2, t.Body, 'o')
		return
	}
	d.Circle(s.Pos.X, s.Pos.Y, size/2, t.Head, '@')
	d.Circle(s.Pos.X-size/4, s.Pos.Y-size/6, 2, eyeColor, 0)
	d.Circle(s.Pos.X+size/4, s.Pos.Y-size/6, 2, eyeColor, 0)
}

func drawEnemy(d *DrawList, e *enemy.Enemy) {
	x, y, size := e.Pos.X, e.Pos.Y, e.Size
	switch e.Kind {
	case enemy.Spider:
		d.Circle(x, y, size/2, spiderColor, 'X')
		for i := 0; i < 8; i++ {
			a := float64(i) / 8 * 2 * math.Pi
			d.Line(x, y, x+math.Cos(a)*size/2, y+math.Sin(a)*size/2, 2, spiderColor)
		}
	case enemy.Flea:
		d.Circle(x, y, size/2, fleaColor, 'v')
		d.Line(x, y-size/2, x, y-size, 1, fleaColor)
	case enemy.Scorpion:
		d.Rect(x-size/2, y-size/4, size, size/2, scorpionColor, 'S')
		d.Rect(x+size/2, y-size/6, size/4, size/3, scorpionColor, 0)
		d.Rect(x-size/2-size/4, y-size/6, size/4, size/3, scorpionColor, 0)
	}
}

func drawHUD(d *DrawList, h HUD) {
	line := fmt.Sprintf("SCORE %d   LIVES %d   LEVEL %d", h.Score, h.Lives, h.Level)
	if h.HighScore > 0 {
		line += fmt.Sprintf("   HI %d", h.HighScore)
	}
	d.Text(10, 16, line, AlignLeft, hudColor)
}

func drawOverlay(d *DrawList, s Scene) {
	cx, cy := core.WorldW/2, core.WorldH/2
	switch s.Phase {
	case PhaseTitle:
		d.Text(cx, cy-40, "CENTIPEDE", AlignCenter, bannerColor)
		d.Text(cx, cy, "Press Enter to start", AlignCenter, hudColor)
		d.Text(cx, cy+30, "Move: WASD/Arrows   Fire: Space   Pause: P", AlignCenter, hudColor)
	case PhasePaused:
		d.Text(cx, cy, "PAUSED", AlignCenter, debugColor)
		d.Text(cx, cy+30, "Press P to resume", AlignCenter, hudColor)
	case PhaseGameOver:
		d.Text(cx, cy-20, "GAME OVER", AlignCenter, alertColor)
		d.Text(cx, cy+10, fmt.Sprintf("Final score: %d", s.HUD.Score), AlignCenter, hudColor)
		d.Text(cx, cy+40, "Press R to restart", AlignCenter, hudColor)
	}
}
