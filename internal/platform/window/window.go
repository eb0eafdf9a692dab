// Package window runs the game in a desktop or browser window through
// Ebitengine, drawing the same DrawList the terminal rasterizes.
package window

import (
	"errors"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/centipede-arcade/internal/core"
	"github.com/vovakirdan/centipede-arcade/internal/game"
	"github.com/vovakirdan/centipede-arcade/internal/input"
	"github.com/vovakirdan/centipede-arcade/internal/loop"
	"github.com/vovakirdan/centipede-arcade/internal/render"
)

// Debug font cell size of ebitenutil.DebugPrint.
const (
	glyphW = 6
	glyphH = 16
)

var (
	buttonColor = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x30}
	stickColor  = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x50}
)

// keyBindings maps held keys to directions.
var keyBindings = map[input.Direction][]ebiten.Key{
	input.Left:  {ebiten.KeyArrowLeft, ebiten.KeyA},
	input.Right: {ebiten.KeyArrowRight, ebiten.KeyD},
	input.Up:    {ebiten.KeyArrowUp, ebiten.KeyW},
	input.Down:  {ebiten.KeyArrowDown, ebiten.KeyS},
}

// actionKeys maps just-pressed keys to one-shot actions.
var actionKeys = []struct {
	key    ebiten.Key
	action core.Action
}{
	{ebiten.KeyEnter, core.ActionConfirm},
	{ebiten.KeyP, core.ActionPause},
	{ebiten.KeyEscape, core.ActionPause},
	{ebiten.KeyR, core.ActionRestart},
	{ebiten.KeyF3, core.ActionDebug},
	{ebiten.KeyBackquote, core.ActionDebug},
}

// Options configures the window.
type Options struct {
	Title string
	// Scale multiplies the 800x600 world for the initial window size.
	Scale  float64
	Logger *log.Logger
}

// Window implements ebiten.Game around a Runner.
type Window struct {
	game     *game.Game
	runner   *game.Runner
	input    *input.Manager
	pad      *input.TouchPad
	touches  []ebiten.TouchID
	contacts []input.Touch
	showPad  bool
	logger   *log.Logger
}

// New creates a window driving g.
func New(g *game.Game, logger *log.Logger) *Window {
	if logger == nil {
		logger = log.Default()
	}
	return &Window{
		game:   g,
		runner: game.NewRunner(g, loop.SystemClock{}),
		input:  input.NewManager(),
		pad:    input.NewTouchPad(),
		logger: logger,
	}
}

// Update samples input and runs the simulation steps due.
func (w *Window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	for d, keys := range keyBindings {
		down := false
		for _, k := range keys {
			down = down || ebiten.IsKeyPressed(k)
		}
		w.input.SetKey(d, down)
	}
	w.input.SetFireKey(ebiten.IsKeyPressed(ebiten.KeySpace))
	for _, b := range actionKeys {
		if inpututil.IsKeyJustPressed(b.key) {
			w.input.Trigger(b.action)
		}
	}

	w.touches = ebiten.AppendTouchIDs(w.touches[:0])
	w.contacts = w.contacts[:0]
	for _, id := range w.touches {
		x, y := ebiten.TouchPosition(id)
		w.contacts = append(w.contacts, input.Touch{ID: int(id), Pos: core.V(float64(x), float64(y))})
	}
	if len(w.contacts) > 0 {
		w.showPad = true
	}
	touchFire := w.pad.Update(w.contacts, w.input)
	w.input.SetPointer(touchFire || ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))

	w.runner.Frame(w.input.Frame())
	return nil
}

// Draw paints the current frame.
func (w *Window) Draw(screen *ebiten.Image) {
	Paint(screen, w.runner.DrawList())
	if w.showPad {
		w.drawPad(screen)
	}
}

func (w *Window) drawPad(screen *ebiten.Image) {
	for _, b := range w.pad.Buttons() {
		vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), buttonColor, false)
	}
	if w.input.JoystickActive() {
		origin, cur := w.input.Joystick()
		vector.StrokeCircle(screen, float32(origin.X), float32(origin.Y), input.JoystickMaxThrow, 2, stickColor, true)
		vector.DrawFilledCircle(screen, float32(cur.X), float32(cur.Y), 20, stickColor, true)
	}
}

// Layout keeps the logical screen at world size; Ebitengine scales it to
// the window.
func (w *Window) Layout(_, _ int) (int, int) {
	return int(core.WorldW), int(core.WorldH)
}

// Paint draws a DrawList with vector shapes and the debug font.
func Paint(screen *ebiten.Image, d render.DrawList) {
	for _, p := range d.Prims {
		if p.Color.IsDefault() && p.Kind != render.Text {
			continue
		}
		c := p.Color.RGBA()
		switch p.Kind {
		case render.Rect:
			vector.DrawFilledRect(screen, float32(p.X), float32(p.Y), float32(p.W), float32(p.H), c, false)
		case render.Circle:
			vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(p.R), c, true)
		case render.Line:
			vector.StrokeLine(screen, float32(p.X), float32(p.Y), float32(p.X2), float32(p.Y2), float32(p.Width), c, true)
		case render.Text:
			x := int(p.X)
			if p.Align == render.AlignCenter {
				x -= len([]rune(p.Text)) * glyphW / 2
			}
			ebitenutil.DebugPrintAt(screen, p.Text, x, int(p.Y)-glyphH/2)
		}
	}
}

// Run opens the window and blocks until it is closed.
func Run(g *game.Game, opts Options) error {
	if opts.Title == "" {
		opts.Title = "Centipede"
	}
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	ebiten.SetWindowSize(int(core.WorldW*opts.Scale), int(core.WorldH*opts.Scale))
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(loop.DefaultRate)

	w := New(g, opts.Logger)
	w.logger.Info("window opened", "seed", g.Seed())
	err := ebiten.RunGame(w)
	if errors.Is(err, ebiten.Termination) {
		err = nil
	}
	g.Close()
	return err
}
