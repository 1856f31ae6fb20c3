package threes

import (
	"fmt"
	"unicode"

	"github.com/vovakirdan/tui-threes/internal/core"
)

// moveLetters maps the replay alphabet to actions. B (back) is undo.
var moveLetters = map[rune]core.Action{
	'U': core.ActionUp,
	'D': core.ActionDown,
	'L': core.ActionLeft,
	'R': core.ActionRight,
	'B': core.ActionUndo,
}

// ParseMoves turns a move string such as "LLUR B D" into actions.
// Letters are case-insensitive; spaces and commas are ignored.
func ParseMoves(s string) ([]core.Action, error) {
	var actions []core.Action
	for i, r := range s {
		if unicode.IsSpace(r) || r == ',' {
			continue
		}
		a, ok := moveLetters[unicode.ToUpper(r)]
		if !ok {
			return nil, fmt.Errorf("threes: unknown move %q at offset %d", r, i)
		}
		actions = append(actions, a)
	}
	return actions, nil
}
