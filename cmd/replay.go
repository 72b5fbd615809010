package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"floorplan/core/logger"
	"floorplan/feature/editor"
	"floorplan/feature/floor/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	replayFloorFile  string
	replayEventsFile string
	replayBooking    bool
	replayOutFile    string
)

// replayCmd feeds a recorded event stream through an editing engine offline.
var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Replay recorded pointer and key events against a floor",
	Long: `Replay runs a recorded event stream through the interaction engine and
prints the resulting host intents, the final interaction state and the edited floor.

Examples:
  # Replay a drag session
  floorplan replay --floor floor.json --events drag.json

  # Replay in booking mode and write the result to a file
  floorplan replay --floor floor.json --events clicks.json --booking --out result.json`,
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().StringVar(&replayFloorFile, "floor", "", "Floor JSON file (required)")
	replayCmd.Flags().StringVar(&replayEventsFile, "events", "", "Event stream JSON file (required)")
	replayCmd.Flags().BoolVar(&replayBooking, "booking", false, "Replay with editing disabled")
	replayCmd.Flags().StringVar(&replayOutFile, "out", "", "Write the result to a file instead of stdout")
	_ = replayCmd.MarkFlagRequired("floor")
	_ = replayCmd.MarkFlagRequired("events")

	RootCmd.AddCommand(replayCmd)
}

type replayResult struct {
	Intents []editor.Intent `json:"intents"`
	State   editor.State    `json:"state"`
	Floor   models.Floor    `json:"floor"`
}

func runReplay(cmd *cobra.Command, args []string) error {
	l, err := logger.New(&logger.Config{Level: "info", Format: "console"})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	f, err := readFloorFile(replayFloorFile)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(replayEventsFile)
	if err != nil {
		return fmt.Errorf("failed to read events: %w", err)
	}
	events, err := editor.ParseEvents(data)
	if err != nil {
		return fmt.Errorf("failed to parse events: %w", err)
	}

	result, err := replay(f, events, !replayBooking, l)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	if replayOutFile != "" {
		return os.WriteFile(replayOutFile, out, 0o644)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return err
}

// replay dispatches events in order. A wall undo request pops the most recent
// wall the way a host would.
func replay(f models.Floor, events []editor.Event, allowEdit bool, l *zap.Logger) (*replayResult, error) {
	host := editor.HostFuncs{
		Persist: func(kind models.ElementKind, id string, p models.Placement) {
			l.Debug("Persist requested", zap.String("kind", string(kind)), zap.String("id", id),
				zap.Float64("x", p.XAxis), zap.Float64("y", p.YAxis))
		},
		DeleteElement: func(id string) {
			l.Debug("Delete requested", zap.String("id", id))
		},
		AddWalls: func(walls []models.Wall) {
			l.Debug("Walls added", zap.Int("count", len(walls)))
		},
	}

	engine := editor.NewEngine(f,
		editor.WithHost(host),
		editor.WithAllowEdit(allowEdit),
		editor.WithLogger(l),
	)

	var intents []editor.Intent
	for _, ev := range events {
		effects := engine.Dispatch(ev)
		intents = append(intents, editor.Intents(effects)...)
		for _, eff := range effects {
			if _, ok := eff.(editor.WallUndoRequested); !ok {
				continue
			}
			if wall, popped, ok := engine.PopWall(); ok {
				l.Debug("Wall undone", zap.String("id", wall.ID))
				undone := append([]editor.Effect{editor.ElementDeleted{ID: wall.ID, Kind: models.KindWall}}, popped...)
				intents = append(intents, editor.Intents(undone)...)
			}
			break
		}
	}
	intents = append(intents, editor.Intents(engine.Close())...)

	l.Info("Replay finished", zap.Int("events", len(events)), zap.Int("intents", len(intents)))
	return &replayResult{Intents: intents, State: engine.State(), Floor: engine.Floor()}, nil
}
