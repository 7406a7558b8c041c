package viewer

import (
	"errors"
	"strings"
	"testing"

	"github.com/Garsondee/Mesh-Sight/internal/board"
	"github.com/Garsondee/Mesh-Sight/internal/config"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	b, err := board.Build(&board.File{
		Name:  "lone",
		Order: 2,
		Table: board.TableSpec{Width: 1, Height: 1},
		Tiles: []board.TileSpec{{Name: "L", Base: "white"}},
	})
	if err != nil {
		t.Fatal(err)
	}
	g, err := New(config.Default(), b)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestNew_RejectsBadBackground(t *testing.T) {
	b, err := board.Build(&board.File{
		Name:  "x",
		Order: 1,
		Table: board.TableSpec{Width: 1, Height: 1},
		Tiles: []board.TileSpec{{Name: "X"}},
	})
	if err != nil {
		t.Fatal(err)
	}
	cfg := config.Default()
	cfg.Render.Background = "not-a-colour"
	if _, err := New(cfg, b); err == nil {
		t.Fatal("expected an error for an unknown background")
	}
}

func TestApply_MovesAndHitsWalls(t *testing.T) {
	g := newTestGame(t)
	g.apply(actEast)
	if g.cursor.X != 1 || g.message != "" {
		t.Fatalf("east step: %s msg=%q", g.cursor, g.message)
	}
	g.apply(actEast)
	if g.cursor.X != 1 || !strings.HasPrefix(g.message, "wall") {
		t.Fatalf("second east step should hit the wall: %s msg=%q", g.cursor, g.message)
	}
	g.apply(actSouth)
	g.apply(actReset)
	if g.cursor.X != 0 || g.cursor.Y != 0 || g.message != "reset" {
		t.Fatalf("reset: %s msg=%q", g.cursor, g.message)
	}
}

func TestApply_OutlineToggles(t *testing.T) {
	g := newTestGame(t)
	before := g.opts.Outline
	g.apply(actOutline)
	if g.opts.Outline == before {
		t.Fatal("outline did not toggle")
	}
	if strings.Contains(g.statusLine(), "[outline]") != g.opts.Outline {
		t.Fatalf("status line out of step with outline: %q", g.statusLine())
	}
}

func TestApply_Copy(t *testing.T) {
	g := newTestGame(t)
	var got string
	g.copyText = func(s string) error { got = s; return nil }
	g.apply(actEast)
	g.apply(actCopy)
	if g.message != "copied" {
		t.Fatalf("message=%q", g.message)
	}
	for _, want := range []string{"board: lone", "cursor: L0 (1, 0)", "cell: 1", "[[  1   0   1]"} {
		if !strings.Contains(got, want) {
			t.Fatalf("clipboard text %q missing %q", got, want)
		}
	}

	g.copyText = func(string) error { return errors.New("no clipboard") }
	g.apply(actCopy)
	if g.message != "copy failed" {
		t.Fatalf("message=%q", g.message)
	}
}

func TestLayout_Reframes(t *testing.T) {
	g := newTestGame(t)
	cell := g.frame.Cell
	w, h := g.Layout(640, 360)
	if w != 640 || h != 360 {
		t.Fatalf("Layout=%dx%d", w, h)
	}
	if g.frame.Cell >= cell {
		t.Fatalf("smaller window should shrink cells: %v -> %v", cell, g.frame.Cell)
	}

	// too small to fit the margins: keep the previous frame
	w, h = g.Layout(10, 10)
	if w != 640 || h != 360 {
		t.Fatalf("Layout kept %dx%d, want 640x360", w, h)
	}
}
