// Package config provides YAML-based game configuration loading and
// difficulty presets.
package config

import (
	"errors"
	"fmt"
)

// BoardCells is the number of cells base counts are padded to.
const BoardCells = 16

// MaxBaseValues bounds base_counts: cells start as 0 (empty), 1, 2 or 3.
const MaxBaseValues = 4

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// ThreesConfig contains all configuration for the Threes game.
type ThreesConfig struct {
	Board    BoardConfig    `yaml:"board"`
	Tile     TileConfig     `yaml:"tile"`
	Controls ControlsConfig `yaml:"controls"`
}

// BoardConfig defines how the starting grid is populated.
type BoardConfig struct {
	// BaseCounts[i] is the minimum number of cells starting with value i.
	BaseCounts []int `yaml:"base_counts"`
}

// TileConfig defines next-tile generation.
type TileConfig struct {
	Bias float64 `yaml:"bias"` // Geometric p in (0, 1]
}

// ControlsConfig toggles optional controls.
type ControlsConfig struct {
	Undo bool `yaml:"undo"`
}

// Validate checks the config against what the engine accepts.
func (c ThreesConfig) Validate() error {
	if len(c.Board.BaseCounts) == 0 {
		return fmt.Errorf("config: board.base_counts is empty: %w", ErrInvalid)
	}

	if len(c.Board.BaseCounts) > MaxBaseValues {
		return fmt.Errorf("config: board.base_counts has %d entries, max %d: %w", len(c.Board.BaseCounts), MaxBaseValues, ErrInvalid)
	}

	sum := 0
	for i, n := range c.Board.BaseCounts {
		if n < 0 {
			return fmt.Errorf("config: board.base_counts[%d] = %d is negative: %w", i, n, ErrInvalid)
		}
		sum += n
	}
	if sum > BoardCells {
		return fmt.Errorf("config: board.base_counts sum to %d, max %d: %w", sum, BoardCells, ErrInvalid)
	}

	if c.Tile.Bias <= 0 || c.Tile.Bias > 1 {
		return fmt.Errorf("config: tile.bias = %v, want (0, 1]: %w", c.Tile.Bias, ErrInvalid)
	}
	return nil
}
