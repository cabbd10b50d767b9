package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := ParseFrogger(DefaultYAML())
	if err != nil {
		t.Fatalf("ParseFrogger(embedded) failed: %v", err)
	}

	if !reflect.DeepEqual(cfg, DefaultFroggerConfig()) {
		t.Errorf("embedded YAML and DefaultFroggerConfig differ:\n%+v\n%+v", cfg, DefaultFroggerConfig())
	}
}

func TestDefaultBoardSize(t *testing.T) {
	cfg := DefaultFroggerConfig()

	if cfg.BoardWidth() != 850 {
		t.Errorf("BoardWidth() = %v, expected 850", cfg.BoardWidth())
	}
	if cfg.BoardHeight() != 600 {
		t.Errorf("BoardHeight() = %v, expected 600", cfg.BoardHeight())
	}
}

func TestLoadFroggerCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "frogger.yaml")

	data := []byte("gameplay:\n  lives: 5\nboard:\n  layout: [bridge, \"log left\", sidewalk]\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := LoadFrogger(path)
	if err != nil {
		t.Fatalf("LoadFrogger() failed: %v", err)
	}

	if cfg.Gameplay.Lives != 5 {
		t.Errorf("Lives = %d, expected 5", cfg.Gameplay.Lives)
	}
	if len(cfg.Board.Layout) != 3 || cfg.Board.Layout[1] != "log left" {
		t.Errorf("Layout = %v, expected override", cfg.Board.Layout)
	}
	// Unset keys keep their defaults
	if cfg.Board.TileSize != 50 {
		t.Errorf("TileSize = %v, expected default 50", cfg.Board.TileSize)
	}
}

func TestLoadFroggerMissingFile(t *testing.T) {
	_, err := LoadFrogger(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("LoadFrogger() with missing file should fail")
	}
}

func TestParseFroggerRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"zero tile", "board:\n  tile_size: 0\n", "tile_size"},
		{"empty layout", "board:\n  layout: []\n", "layout"},
		{"no lives", "gameplay:\n  lives: 0\n", "lives"},
		{"inverted range", "lanes:\n  speed: {min: 6, max: 2}\n", "lanes.speed"},
		{"zero spacing", "rivers:\n  spacing: {min: 0, max: 3}\n", "rivers.spacing"},
		{"frog bigger than tile", "frog:\n  size: 80\n", "frog.size"},
		{"bad yaml", "board: [", "parse"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseFrogger([]byte(tc.yaml))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q does not mention %q", err, tc.wantErr)
			}
		})
	}
}
