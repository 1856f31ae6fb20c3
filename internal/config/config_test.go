package config

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestDefaultsAreValid(t *testing.T) {
	if err := DefaultThreesConfig().Validate(); err != nil {
		t.Errorf("DefaultThreesConfig().Validate() = %v", err)
	}

	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	want := DefaultThreesConfig()
	if !slices.Equal(cfg.Board.BaseCounts, want.Board.BaseCounts) || cfg.Tile != want.Tile || cfg.Controls != want.Controls {
		t.Errorf("embedded defaults = %+v, want %+v", cfg, want)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*ThreesConfig)
		valid  bool
	}{
		{"defaults", func(*ThreesConfig) {}, true},
		{"full board", func(c *ThreesConfig) { c.Board.BaseCounts = []int{0, 8, 8} }, true},
		{"no categories", func(c *ThreesConfig) { c.Board.BaseCounts = nil }, false},
		{"negative count", func(c *ThreesConfig) { c.Board.BaseCounts = []int{4, -1} }, false},
		{"value above three", func(c *ThreesConfig) { c.Board.BaseCounts = []int{4, 4, 4, 2, 2} }, false},
		{"too many cells", func(c *ThreesConfig) { c.Board.BaseCounts = []int{10, 4, 4} }, false},
		{"zero bias", func(c *ThreesConfig) { c.Tile.Bias = 0 }, false},
		{"bias above one", func(c *ThreesConfig) { c.Tile.Bias = 1.5 }, false},
		{"certain bias", func(c *ThreesConfig) { c.Tile.Bias = 1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultThreesConfig()
			tt.modify(&cfg)
			err := cfg.Validate()
			if tt.valid && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if !tt.valid && !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestLoadThreesCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "threes.yaml")
	data := []byte("board:\n  base_counts: [8, 4, 4]\ntile:\n  bias: 0.25\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, src, err := LoadThrees(path)
	if err != nil {
		t.Fatalf("LoadThrees() failed: %v", err)
	}
	if src != SourceCustom {
		t.Errorf("source = %s, want %s", src, SourceCustom)
	}
	if !slices.Equal(cfg.Board.BaseCounts, []int{8, 4, 4}) {
		t.Errorf("base_counts = %v, want [8 4 4]", cfg.Board.BaseCounts)
	}
	if cfg.Tile.Bias != 0.25 {
		t.Errorf("bias = %v, want 0.25", cfg.Tile.Bias)
	}
	// Omitted keys keep their defaults.
	if !cfg.Controls.Undo {
		t.Error("controls.undo should default to true")
	}
}

func TestLoadThreesRejectsInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "threes.yaml")
	if err := os.WriteFile(path, []byte("tile:\n  bias: 2\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, _, err := LoadThrees(path); !errors.Is(err, ErrInvalid) {
		t.Errorf("LoadThrees() = %v, want ErrInvalid", err)
	}
}

func TestLoadThreesMissingFile(t *testing.T) {
	if _, _, err := LoadThrees(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("LoadThrees() with a missing custom path should fail")
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		bias   float64
		empty  int
	}{
		{"", 0.5, 6},
		{DifficultyEasy, 0.7, 6},
		{DifficultyNormal, 0.5, 6},
		{DifficultyHard, 0.3, 4},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultThreesConfig()
			ApplyThreesPreset(&cfg, tt.preset)
			if cfg.Tile.Bias != tt.bias {
				t.Errorf("bias = %v, want %v", cfg.Tile.Bias, tt.bias)
			}
			if cfg.Board.BaseCounts[0] != tt.empty {
				t.Errorf("base_counts[0] = %d, want %d", cfg.Board.BaseCounts[0], tt.empty)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset produced invalid config: %v", err)
			}
		})
	}
}

func TestApplyPresetDoesNotAliasDefaults(t *testing.T) {
	base := DefaultThreesConfig()
	cfg := base
	ApplyThreesPreset(&cfg, DifficultyHard)

	if base.Board.BaseCounts[0] != 6 {
		t.Errorf("preset mutated the original base counts: %v", base.Board.BaseCounts)
	}
}

func TestParsePreset(t *testing.T) {
	for _, name := range []string{"", "easy", "normal", "hard"} {
		if _, err := ParsePreset(name); err != nil {
			t.Errorf("ParsePreset(%q) = %v", name, err)
		}
	}
	if _, err := ParsePreset("fixed"); !errors.Is(err, ErrInvalid) {
		t.Errorf("ParsePreset(\"fixed\") = %v, want ErrInvalid", err)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultThreesConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	cfg, err := parse(data)
	if err != nil {
		t.Fatalf("parse(Marshal()) failed: %v", err)
	}
	if !slices.Equal(cfg.Board.BaseCounts, DefaultThreesConfig().Board.BaseCounts) {
		t.Errorf("round trip base_counts = %v", cfg.Board.BaseCounts)
	}
}
