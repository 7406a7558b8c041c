// Package viewer is the interactive ebiten front end: it frames the board on
// the window, redraws the visible mesh every frame and moves the cursor from
// the keyboard.
package viewer

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/Mesh-Sight/internal/board"
	"github.com/Garsondee/Mesh-Sight/internal/config"
	"github.com/Garsondee/Mesh-Sight/internal/logging"
	"github.com/Garsondee/Mesh-Sight/internal/mesh"
	"github.com/Garsondee/Mesh-Sight/internal/render"
)

// highlight marks the viewer's own cell (coral at 40%).
var highlight = color.NRGBA{R: 255, G: 127, B: 80, A: 102}

type action int

const (
	actNone action = iota
	actEast
	actWest
	actSouth
	actNorth
	actReset
	actOutline
	actCopy
)

// keyActions lists the keys Update watches, edge-triggered.
var keyActions = []struct {
	key ebiten.Key
	act action
}{
	{ebiten.KeyArrowRight, actEast},
	{ebiten.KeyD, actEast},
	{ebiten.KeyArrowLeft, actWest},
	{ebiten.KeyA, actWest},
	{ebiten.KeyArrowDown, actSouth},
	{ebiten.KeyS, actSouth},
	{ebiten.KeyArrowUp, actNorth},
	{ebiten.KeyW, actNorth},
	{ebiten.KeyEscape, actReset},
	{ebiten.KeyO, actOutline},
	{ebiten.KeyC, actCopy},
}

// Game implements ebiten.Game for one board.
type Game struct {
	board  *board.Board
	cursor *board.Cursor
	frame  board.Frame

	width, height int
	margin        float64
	bound         int
	background    color.Color
	opts          render.Options

	prevKeys map[ebiten.Key]bool
	stats    render.Stats
	message  string

	copyText func(string) error
}

// New builds a viewer for b using the render and window settings in cfg.
func New(cfg *config.Config, b *board.Board) (*Game, error) {
	bg, err := render.ParseFill(cfg.Render.Background)
	if err != nil {
		return nil, err
	}
	g := &Game{
		board:      b,
		cursor:     board.NewCursor(b),
		margin:     cfg.Render.Margin,
		bound:      cfg.Render.DrawBound,
		background: bg,
		opts: render.Options{
			Outline:      cfg.Render.Outline,
			OutlineWidth: cfg.Render.OutlineWidth,
		},
		prevKeys: make(map[ebiten.Key]bool),
		copyText: clipboard.WriteAll,
	}
	if err := g.resize(cfg.Window.Width, cfg.Window.Height); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) resize(w, h int) error {
	f, err := board.NewFrame(g.board, float64(w), float64(h), g.margin, g.bound)
	if err != nil {
		return err
	}
	g.frame, g.width, g.height = f, w, h
	return nil
}

func (g *Game) Update() error {
	g.handleInput()
	return nil
}

// handleInput applies keypresses (edge-triggered).
func (g *Game) handleInput() {
	currentKeys := map[ebiten.Key]bool{}
	for _, ka := range keyActions {
		currentKeys[ka.key] = ebiten.IsKeyPressed(ka.key)
		if currentKeys[ka.key] && !g.prevKeys[ka.key] {
			g.apply(ka.act)
		}
	}
	g.prevKeys = currentKeys
}

func (g *Game) apply(a action) {
	switch a {
	case actEast:
		g.step(mesh.East)
	case actWest:
		g.step(mesh.West)
	case actSouth:
		g.step(mesh.South)
	case actNorth:
		g.step(mesh.North)
	case actReset:
		g.cursor.Reset()
		g.message = "reset"
	case actOutline:
		g.opts.Outline = !g.opts.Outline
	case actCopy:
		if err := g.copyText(g.stateText()); err != nil {
			logging.L().Warn("clipboard copy failed", "err", err)
			g.message = "copy failed"
			return
		}
		g.message = "copied"
	}
}

func (g *Game) step(d mesh.Cardinal) {
	g.message = ""
	if !g.cursor.Step(d) {
		g.message = "wall " + d.String()
	}
}

// stateText is what the copy key puts on the clipboard.
func (g *Game) stateText() string {
	m := g.cursor.Matrix()
	return fmt.Sprintf("board: %s\ncursor: %s\ncell: %d\nlevel:\n%s\n",
		g.board.Name, g.cursor, g.cursor.CellIndex(), strings.Join(m[:], "\n"))
}

// statusLine is printed in the top-left corner every frame.
func (g *Game) statusLine() string {
	s := fmt.Sprintf("%s  %s  cell %d  tiles %d  pruned %d",
		g.board.Name, g.cursor, g.cursor.CellIndex(), g.stats.Tiles, g.stats.Pruned)
	if g.opts.Outline {
		s += "  [outline]"
	}
	if g.message != "" {
		s += "  " + g.message
	}
	return s
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.background)

	stats, err := g.frame.Draw(g.cursor, newVectorSink(screen), g.opts)
	if err != nil {
		logging.L().Error("draw failed", "err", err)
	}
	g.stats = stats

	p := g.frame.CellCorner(g.cursor)
	cell := float32(g.frame.Cell)
	vector.FillRect(screen, float32(p.X), float32(p.Y), cell, cell, highlight, true)

	ebitenutil.DebugPrintAt(screen, g.statusLine(), 6, 6)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		if err := g.resize(outsideWidth, outsideHeight); err != nil {
			logging.L().Warn("window too small to frame the board", "err", err)
			return g.width, g.height
		}
		logging.L().Debug("reframed", "width", outsideWidth, "height", outsideHeight, "cell", g.frame.Cell)
	}
	return g.width, g.height
}
