// Package config provides YAML-based configuration loading for the game.
package config

import (
	"errors"
	"fmt"
)

// FroggerConfig contains all configuration for the game.
type FroggerConfig struct {
	Board    BoardConfig    `yaml:"board"`
	Frog     FrogConfig     `yaml:"frog"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	Lanes    LaneConfig     `yaml:"lanes"`
	Rivers   RiverConfig    `yaml:"rivers"`
}

// BoardConfig defines the board geometry and its row layout.
type BoardConfig struct {
	TileSize   float64  `yaml:"tile_size"`   // Row height and hop distance in pixels
	WidthTiles int      `yaml:"width_tiles"` // Board width as a multiple of the tile size
	Layout     []string `yaml:"layout"`      // Row tokens, top to bottom
}

// FrogConfig defines the player's frog.
type FrogConfig struct {
	Size          float64 `yaml:"size"`           // Square hitbox side in pixels
	SpeedTiles    float64 `yaml:"speed_tiles"`    // Hop speed in tiles per second
	RotationSpeed float64 `yaml:"rotation_speed"` // Turn speed in degrees per second
	SquashOffset  float64 `yaml:"squash_offset"`  // Pixels a squashed frog is shifted up-left
	SquashFade    float64 `yaml:"squash_fade"`    // Seconds a squashed frog stays on the board
}

// GameplayConfig defines lives.
type GameplayConfig struct {
	Lives int `yaml:"lives"`
}

// IntRange is an inclusive integer range.
type IntRange struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// FloatRange is a half-open float range [Min, Max).
type FloatRange struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// LaneConfig defines the randomized parameters of road lanes, in tiles.
type LaneConfig struct {
	Speed          IntRange `yaml:"speed"`
	Spacing        IntRange `yaml:"spacing"`
	PatternSpacing IntRange `yaml:"pattern_spacing"`
	PatternCount   IntRange `yaml:"pattern_count"`
}

// RiverConfig defines the randomized parameters of river rows, in tiles.
// Speed is drawn from a float range and rounded to whole tiles per second.
type RiverConfig struct {
	Speed          FloatRange `yaml:"speed"`
	FloatLength    IntRange   `yaml:"float_length"`
	Spacing        IntRange   `yaml:"spacing"`
	PatternSpacing IntRange   `yaml:"pattern_spacing"`
	PatternCount   IntRange   `yaml:"pattern_count"`
}

// BoardWidth returns the board width in pixels.
func (c FroggerConfig) BoardWidth() float64 {
	return c.Board.TileSize * float64(c.Board.WidthTiles)
}

// BoardHeight returns the board height in pixels.
func (c FroggerConfig) BoardHeight() float64 {
	return c.Board.TileSize * float64(len(c.Board.Layout))
}

// Validate rejects configurations that cannot build a playable board.
func (c FroggerConfig) Validate() error {
	var errs []error

	if c.Board.TileSize <= 0 {
		errs = append(errs, fmt.Errorf("board.tile_size must be positive, got %v", c.Board.TileSize))
	}
	if c.Board.WidthTiles < 3 {
		errs = append(errs, fmt.Errorf("board.width_tiles must be at least 3, got %d", c.Board.WidthTiles))
	}
	if len(c.Board.Layout) == 0 {
		errs = append(errs, errors.New("board.layout must not be empty"))
	}
	if c.Frog.Size <= 0 || c.Frog.Size > c.Board.TileSize {
		errs = append(errs, fmt.Errorf("frog.size must be in (0, tile_size], got %v", c.Frog.Size))
	}
	if c.Frog.SpeedTiles <= 0 {
		errs = append(errs, fmt.Errorf("frog.speed_tiles must be positive, got %v", c.Frog.SpeedTiles))
	}
	if c.Frog.RotationSpeed <= 0 {
		errs = append(errs, fmt.Errorf("frog.rotation_speed must be positive, got %v", c.Frog.RotationSpeed))
	}
	if c.Gameplay.Lives < 1 {
		errs = append(errs, fmt.Errorf("gameplay.lives must be at least 1, got %d", c.Gameplay.Lives))
	}

	errs = append(errs,
		checkRange("lanes.speed", c.Lanes.Speed),
		checkRange("lanes.spacing", c.Lanes.Spacing),
		checkRange("lanes.pattern_spacing", c.Lanes.PatternSpacing),
		checkRange("lanes.pattern_count", c.Lanes.PatternCount),
		checkRange("rivers.float_length", c.Rivers.FloatLength),
		checkRange("rivers.spacing", c.Rivers.Spacing),
		checkRange("rivers.pattern_spacing", c.Rivers.PatternSpacing),
		checkRange("rivers.pattern_count", c.Rivers.PatternCount),
	)
	if c.Rivers.Speed.Min <= 0 || c.Rivers.Speed.Max < c.Rivers.Speed.Min {
		errs = append(errs, fmt.Errorf("rivers.speed must satisfy 0 < min <= max, got [%v, %v)",
			c.Rivers.Speed.Min, c.Rivers.Speed.Max))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid frogger config: %w", err)
	}
	return nil
}

// checkRange returns an error when r is empty or includes values below one tile.
func checkRange(name string, r IntRange) error {
	if r.Min < 1 || r.Max < r.Min {
		return fmt.Errorf("%s must satisfy 1 <= min <= max, got [%d, %d]", name, r.Min, r.Max)
	}
	return nil
}
