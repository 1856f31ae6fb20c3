package config

import (
	_ "embed"
)

//go:embed defaults/threes.yaml
var defaultThreesYAML []byte

// DefaultThreesConfig returns the default Threes configuration.
func DefaultThreesConfig() ThreesConfig {
	return ThreesConfig{
		Board: BoardConfig{
			BaseCounts: []int{6, 4, 4, 2},
		},
		Tile: TileConfig{
			Bias: 0.5,
		},
		Controls: ControlsConfig{
			Undo: true,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultThreesYAML
}
