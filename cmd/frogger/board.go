package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/games/frogger"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Show the board a seed produces",
	Long: `Rolls the board for --seed and prints each row's parameters.
Speeds are in tiles per second, distances in tiles.`,
	Args: cobra.NoArgs,
	RunE: runBoard,
}

func runBoard(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadFrogger(flagConfig)
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	w, err := frogger.NewWorld(cfg, seed)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	board := w.Board()
	fmt.Fprintf(out, "Board %.0fx%.0f px, tile %.0f, seed %d\n\n", board.Width, board.Height, board.Tile, seed)

	rows := boardRows(w)

	// Calculate column widths
	maxKindLen := 4 // "Kind" header
	for _, r := range rows {
		if len(r.kind) > maxKindLen {
			maxKindLen = len(r.kind)
		}
	}

	// Print header
	fmt.Fprintf(out, "  %3s  %-*s  %4s  %5s  %7s  %7s  %5s  %8s  %6s\n",
		"Row", maxKindLen, "Kind", "Dir", "Speed", "Spacing", "Pattern", "Count", "Patterns", "Length")
	fmt.Fprintf(out, "  %3s  %-*s  %4s  %5s  %7s  %7s  %5s  %8s  %6s\n",
		"---", maxKindLen, "----", "---", "-----", "-------", "-------", "-----", "--------", "------")

	for _, r := range rows {
		if r.tiler == nil {
			fmt.Fprintf(out, "  %3d  %-*s\n", r.index, maxKindLen, r.kind)
			continue
		}
		t := r.tiler
		fmt.Fprintf(out, "  %3d  %-*s  %4s  %5.0f  %7.0f  %7.0f  %5d  %8d  %6s\n",
			r.index, maxKindLen, r.kind, direction(r.direction), r.speed/board.Tile,
			t.Spacing/board.Tile, t.PatternSpacing/board.Tile, t.Count, len(t.Patterns), r.length)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'frogger play --seed <seed>' to play this board.")
	return nil
}

type boardRow struct {
	index     int
	kind      string
	direction int
	speed     float64
	length    string
	tiler     *frogger.Tiler
}

// boardRows lists the rows top to bottom.
func boardRows(w *frogger.World) []boardRow {
	tile := w.Board().Tile
	rows := make([]boardRow, int(w.Board().Height/tile))

	for i := range rows {
		rows[i] = boardRow{index: i, kind: "sidewalk"}
	}
	if b := w.Bridge(); b != nil {
		i := int(b.Box.Pos.Y / tile)
		rows[i].kind = fmt.Sprintf("bridge (%d slots)", len(b.Targets))
	}
	for _, l := range w.Lanes() {
		i := int(l.Box.Pos.Y / tile)
		rows[i] = boardRow{index: i, kind: "lane", direction: l.Direction, speed: l.Speed, length: "-", tiler: l.Tiler()}
	}
	for _, r := range w.Rivers() {
		i := int(r.Box.Pos.Y / tile)
		rows[i] = boardRow{
			index:     i,
			kind:      r.Class.String(),
			direction: r.Direction,
			speed:     r.Speed,
			length:    fmt.Sprintf("%.0f", r.FloatLength/tile),
			tiler:     r.Tiler(),
		}
	}
	return rows
}

func direction(d int) string {
	if d < 0 {
		return "←"
	}
	return "→"
}
