package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset validates a preset name. The empty string is allowed and
// means "leave the config alone".
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard): %w", name, ErrInvalid)
}

// BiasForPreset returns the next-tile bias for a difficulty preset.
// Lower bias lets big tiles show up as the pending tile more often.
func BiasForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.7
	case DifficultyHard:
		return 0.3
	default:
		return 0.5
	}
}

// ApplyThreesPreset modifies the config based on a difficulty preset.
func ApplyThreesPreset(cfg *ThreesConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	cfg.Tile.Bias = BiasForPreset(preset)

	// Hard games start with fewer free cells.
	if preset == DifficultyHard && len(cfg.Board.BaseCounts) > 0 && cfg.Board.BaseCounts[0] > 2 {
		counts := make([]int, len(cfg.Board.BaseCounts))
		copy(counts, cfg.Board.BaseCounts)
		counts[0] -= 2
		cfg.Board.BaseCounts = counts
	}
}
