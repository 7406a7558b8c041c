package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/Garsondee/Mesh-Sight/internal/board"
	"github.com/Garsondee/Mesh-Sight/internal/clip"
	"github.com/Garsondee/Mesh-Sight/internal/config"
	"github.com/Garsondee/Mesh-Sight/internal/logging"
	"github.com/Garsondee/Mesh-Sight/internal/mesh"
	"github.com/Garsondee/Mesh-Sight/internal/render"
)

type stepStats struct {
	index  int
	move   byte
	moved  bool
	cursor string
	cell   int
	limits render.Limits
	fills  int
	stats  render.Stats
}

func main() {
	err := run(os.Args[1:], os.Stdout, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	cfg, cfgPath, err := config.FromEnv()
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("meshrender", flag.ContinueOnError)
	fs.SetOutput(stderr)
	boardPath := fs.String("board", cfg.Board.Path, "board YAML file")
	out := fs.String("out", "", "write the final view to this PNG")
	width := fs.Int("width", cfg.Window.Width, "canvas width in pixels")
	height := fs.Int("height", cfg.Window.Height, "canvas height in pixels")
	bound := fs.Int("bound", cfg.Render.DrawBound, "max regions walked in any direction")
	outline := fs.Bool("outline", cfg.Render.Outline, "stroke every filled polygon")
	moves := fs.String("moves", "", "cursor moves before the final view (R, L, U, D)")
	verbose := fs.Bool("v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}

	level := cfg.Log.Level
	if *verbose {
		level = "debug"
	}
	logging.Stderr(level).Debug("config loaded", "path", cfgPath)

	if *width <= 0 || *height <= 0 {
		return fmt.Errorf("-width and -height must be > 0, got %dx%d", *width, *height)
	}
	dirs, err := parseMoves(*moves)
	if err != nil {
		return err
	}

	b, err := board.Load(*boardPath)
	if err != nil {
		return err
	}
	frame, err := board.NewFrame(b, float64(*width), float64(*height), cfg.Render.Margin, *bound)
	if err != nil {
		return err
	}
	opts := render.Options{Outline: *outline, OutlineWidth: cfg.Render.OutlineWidth}

	fmt.Fprintf(stdout, "=== Mesh Render Report ===\n")
	fmt.Fprintf(stdout, "board=%s order=%d table=%dx%d regions=%d canvas=%dx%d cell=%.1f bound=%d moves=%q\n\n",
		b.Name, b.Order, b.Width, b.Height, len(b.Regions), *width, *height, frame.Cell, frame.Bound, *moves)

	cursor := board.NewCursor(b)
	rec := clip.NewRecorder()
	all := make([]stepStats, 0, len(dirs)+1)
	for i := 0; i <= len(dirs); i++ {
		st := stepStats{index: i, moved: true}
		if i > 0 {
			st.move = (*moves)[i-1]
			st.moved = cursor.Step(dirs[i-1])
		}
		rec.Reset()
		stats, err := frame.Draw(cursor, rec, opts)
		if err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
		st.cursor = cursor.String()
		st.cell = cursor.CellIndex()
		st.limits = frame.View(cursor).Limits
		st.fills = len(rec.Fills)
		st.stats = stats
		all = append(all, st)
		printStep(stdout, st)
	}
	printAggregate(stdout, all)

	if *out == "" {
		return nil
	}
	return writePNG(*out, frame, cursor, cfg.Render.Background, *width, *height, opts, stdout)
}

func writePNG(path string, frame board.Frame, cursor *board.Cursor, bg string, w, h int, opts render.Options, stdout io.Writer) (err error) {
	sink := render.NewRasterSink(w, h, bg)
	defer func() {
		err = errors.Join(err, sink.Close())
	}()
	if _, err := frame.Draw(cursor, sink, opts); err != nil {
		return err
	}
	if err := sink.Err(); err != nil {
		return err
	}
	if err := sink.SavePNG(path); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "wrote %s\n", path)
	return nil
}

// parseMoves reads a string of R/L/D/U moves (either case; spaces ignored).
func parseMoves(s string) ([]mesh.Cardinal, error) {
	dirs := make([]mesh.Cardinal, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'R', 'r':
			dirs = append(dirs, mesh.East)
		case 'L', 'l':
			dirs = append(dirs, mesh.West)
		case 'D', 'd':
			dirs = append(dirs, mesh.South)
		case 'U', 'u':
			dirs = append(dirs, mesh.North)
		case ' ', ',':
		default:
			return nil, fmt.Errorf("unsupported move %q at %d (supported: R L U D)", s[i], i)
		}
	}
	return dirs, nil
}

func printStep(w io.Writer, st stepStats) {
	if st.index == 0 {
		fmt.Fprintf(w, "--- Step 0 (start) ---\n")
	} else {
		fmt.Fprintf(w, "--- Step %d (%c) ---\n", st.index, st.move)
	}
	if !st.moved {
		fmt.Fprintf(w, "blocked: wall\n")
	}
	fmt.Fprintf(w, "cursor=%s cell=%d limits=%s\n", st.cursor, st.cell, st.limits)
	fmt.Fprintf(w, "draw: tiles=%d polygons=%d fills=%d branches=%d pruned=%d max_depth=%d\n\n",
		st.stats.Tiles, st.stats.Polygons, st.fills, st.stats.Branches, st.stats.Pruned, st.stats.MaxDepth)
}

func printAggregate(w io.Writer, all []stepStats) {
	walls := 0
	totalTiles := 0
	maxTiles := 0
	maxDepth := 0
	for _, st := range all {
		if !st.moved {
			walls++
		}
		totalTiles += st.stats.Tiles
		maxTiles = max(maxTiles, st.stats.Tiles)
		maxDepth = max(maxDepth, st.stats.MaxDepth)
	}
	fmt.Fprintln(w, "=== Aggregate ===")
	fmt.Fprintf(w, "views=%d walls=%d avg_tiles=%.1f max_tiles=%d max_depth=%d\n",
		len(all), walls, avg(totalTiles, len(all)), maxTiles, maxDepth)
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}
