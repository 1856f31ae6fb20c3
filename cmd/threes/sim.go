package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-threes/internal/core"
	"github.com/vovakirdan/tui-threes/internal/games/threes"
	"github.com/vovakirdan/tui-threes/internal/games/threes/engine"
	"github.com/vovakirdan/tui-threes/internal/platform/tui"
)

var flagSimSteps bool

var simCmd = &cobra.Command{
	Use:   "sim [moves]",
	Short: "Replay moves without the terminal UI",
	Long: `Deal a board, apply a move string and print the result.

Moves are U, D, L and R; B undoes the last move. Case, spaces and commas
are ignored. Replay stops early if the board is stuck.

Examples:
  threes sim --seed 7 LLURD
  threes sim --seed 7 --steps "L L B R"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSim,
}

func init() {
	simCmd.Flags().BoolVar(&flagSimSteps, "steps", false, "Print the board after every move")
}

func runSim(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	gameCfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	actions, err := threes.ParseMoves(strings.Join(args, " "))
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	rc := core.DefaultConfig()
	rc.Seed = seed
	g := threes.New(gameCfg)
	g.Reset(rc)
	logger.Info("sim started", "seed", seed, "moves", len(actions))

	out := cmd.OutOrStdout()
	for i, a := range actions {
		res := g.Step(core.Frame(a))
		logger.Debug("step", "n", i+1, "action", a, "changed", res.Changed, "score", res.State.Score)

		if flagSimSteps {
			fmt.Fprintf(out, "%d. %s\n%s\n", i+1, a, boardTable(g.Board()))
		}
		if res.State.GameOver {
			logger.Info("game over", "after", i+1, "score", res.State.Score)
			break
		}
	}

	printSummary(out, g)
	return nil
}

// printSummary writes the final board and counters.
func printSummary(w io.Writer, g *threes.Game) {
	snap := g.Snapshot()
	fmt.Fprintln(w, boardTable(snap.Board))
	fmt.Fprintf(w, "Seed: %d\nScore: %d\nMoves: %d\nNext: %d\n", snap.Seed, snap.Score, snap.Moves, snap.Next)
	if snap.State == threes.StateGameOver {
		fmt.Fprintln(w, "Game over")
	}
}

// boardTable renders a grid as a bordered table with tile colors.
func boardTable(grid engine.Grid) *table.Table {
	rows := make([][]string, engine.Size)
	for r := range engine.Size {
		rows[r] = make([]string, engine.Size)
		for c := range engine.Size {
			if v := grid[r][c]; v != 0 {
				rows[r][c] = strconv.Itoa(v)
			}
		}
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderRow(true).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := lipgloss.NewStyle().Width(4).Align(lipgloss.Center)
			if row < 0 || row >= engine.Size || col < 0 || col >= engine.Size {
				return style
			}
			return style.Inherit(tui.Style(threes.TileColor(grid[row][col])))
		}).
		Rows(rows...)
}
