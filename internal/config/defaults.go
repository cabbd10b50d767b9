package config

import (
	_ "embed"
)

//go:embed defaults/frogger.yaml
var defaultFroggerYAML []byte

// DefaultLayout is the classic board: a bridge of goal slots, five river rows,
// a sidewalk, four road lanes and the starting sidewalk.
var DefaultLayout = []string{
	"bridge",
	"log right",
	"turtle left",
	"log right",
	"log right",
	"turtle left",
	"sidewalk",
	"lane",
	"lane",
	"lane",
	"lane",
	"sidewalk",
}

// DefaultFroggerConfig returns the default game configuration.
func DefaultFroggerConfig() FroggerConfig {
	layout := make([]string, len(DefaultLayout))
	copy(layout, DefaultLayout)

	return FroggerConfig{
		Board: BoardConfig{
			TileSize:   50,
			WidthTiles: 17,
			Layout:     layout,
		},
		Frog: FrogConfig{
			Size:          30,
			SpeedTiles:    6,
			RotationSpeed: 1080,
			SquashOffset:  10,
			SquashFade:    1.0,
		},
		Gameplay: GameplayConfig{
			Lives: 3,
		},
		Lanes: LaneConfig{
			Speed:          IntRange{Min: 2, Max: 6},
			Spacing:        IntRange{Min: 5, Max: 11},
			PatternSpacing: IntRange{Min: 4, Max: 12},
			PatternCount:   IntRange{Min: 2, Max: 7},
		},
		Rivers: RiverConfig{
			Speed:          FloatRange{Min: 0.5, Max: 2.5},
			FloatLength:    IntRange{Min: 1, Max: 5},
			Spacing:        IntRange{Min: 5, Max: 11},
			PatternSpacing: IntRange{Min: 4, Max: 12},
			PatternCount:   IntRange{Min: 1, Max: 4},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultFroggerYAML
}
