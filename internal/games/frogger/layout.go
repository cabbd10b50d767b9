package frogger

import (
	"errors"
	"fmt"
	"strings"
)

// RowKind is the type of a board row.
type RowKind int

const (
	RowSidewalk RowKind = iota
	RowLane
	RowRiver
	RowBridge
)

// String returns the row kind name.
func (k RowKind) String() string {
	switch k {
	case RowSidewalk:
		return "sidewalk"
	case RowLane:
		return "lane"
	case RowRiver:
		return "river"
	case RowBridge:
		return "bridge"
	default:
		return "unknown"
	}
}

// RowSpec is one parsed layout row.
type RowSpec struct {
	Kind      RowKind
	Class     FloatClass // Rivers only
	Direction int        // Rivers only; lanes alternate on their own
}

// Layout errors.
var (
	ErrUnknownRow = errors.New("unknown row")
	ErrBridge     = errors.New("layout needs exactly one bridge")
)

// ParseLayout turns layout tokens into row specs, top to bottom.
// Recognized tokens are "sidewalk", "lane", "bridge" and "<log|turtle> <left|right>".
func ParseLayout(tokens []string) ([]RowSpec, error) {
	rows := make([]RowSpec, 0, len(tokens))
	bridges := 0

	for i, tok := range tokens {
		row, err := parseRow(tok)
		if err != nil {
			return nil, fmt.Errorf("frogger: layout row %d %q: %w", i, tok, err)
		}
		if row.Kind == RowBridge {
			bridges++
		}
		rows = append(rows, row)
	}

	if bridges != 1 {
		return nil, fmt.Errorf("frogger: found %d: %w", bridges, ErrBridge)
	}
	return rows, nil
}

func parseRow(tok string) (RowSpec, error) {
	fields := strings.Fields(strings.ToLower(tok))

	switch {
	case len(fields) == 1 && fields[0] == "sidewalk":
		return RowSpec{Kind: RowSidewalk}, nil
	case len(fields) == 1 && fields[0] == "lane":
		return RowSpec{Kind: RowLane}, nil
	case len(fields) == 1 && fields[0] == "bridge":
		return RowSpec{Kind: RowBridge}, nil
	case len(fields) == 2:
		row := RowSpec{Kind: RowRiver}

		switch fields[0] {
		case "log":
			row.Class = FloatLog
		case "turtle":
			row.Class = FloatTurtle
		default:
			return RowSpec{}, ErrUnknownRow
		}

		switch fields[1] {
		case "left":
			row.Direction = -1
		case "right":
			row.Direction = 1
		default:
			return RowSpec{}, ErrUnknownRow
		}
		return row, nil
	default:
		return RowSpec{}, ErrUnknownRow
	}
}
