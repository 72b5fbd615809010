package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"floorplan/core/config"
	"floorplan/core/logger"
	"floorplan/core/reconcile"
	"floorplan/feature/editor"
	"floorplan/feature/floor/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for reconcile floor command
	floorFile       string
	strategyFlag    string
	dryRunReconcile bool
	yesConfirm      bool
)

// reconcileCmd is the parent command for all reconcile operations.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Reconcile local floor copies with the database",
	Long: `Reconcile compares an offline floor document with the stored floor to detect
elements only one side has and elements whose placement or attributes differ.`,
}

// floorReconcileCmd compares a floor file with the stored floor.
var floorReconcileCmd = &cobra.Command{
	Use:   "floor <id>",
	Short: "Reconcile a floor file with the stored floor (report + optionally persist/revert)",
	Long: `Reconcile a floor document against the stored floor with the same id.

Reports missing elements and field mismatches.
With --strategy persist the stored floor is overwritten with the file.
With --strategy revert the file is overwritten with the stored floor.

Examples:
  # Report only
  reconcile floor main-hall --file hall.json

  # Push the file to the database (with interactive confirmation)
  reconcile floor main-hall --file hall.json --strategy persist

  # Pull the stored floor into the file without prompting
  reconcile floor main-hall --file hall.json --strategy revert --yes`,
	Args: cobra.ExactArgs(1),
	RunE: runFloorReconcile,
}

func init() {
	reconcileCmd.AddCommand(floorReconcileCmd)

	floorReconcileCmd.Flags().StringVar(&floorFile, "file", "", "Floor JSON file (required)")
	floorReconcileCmd.Flags().StringVar(&strategyFlag, "strategy", "", "Repair strategy: persist or revert (report only if empty)")
	floorReconcileCmd.Flags().BoolVar(&dryRunReconcile, "dry-run", false, "Force dry-run (no mutations even with --yes)")
	floorReconcileCmd.Flags().BoolVar(&yesConfirm, "yes", false, "Auto-confirm destructive actions (non-interactive)")
	_ = floorReconcileCmd.MarkFlagRequired("file")

	RootCmd.AddCommand(reconcileCmd)
}

func runFloorReconcile(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	floorID := args[0]

	strategy := reconcile.Strategy(strategyFlag)
	if !strategy.Valid() {
		return fmt.Errorf("unknown strategy %q", strategyFlag)
	}

	// Load configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	l.Info("Starting floor reconciliation", zap.String("floor_id", floorID))

	local, err := readFloorFile(floorFile)
	if err != nil {
		return err
	}

	floors, _, err := openFloors(cfg, l)
	if err != nil {
		return err
	}

	var revertErr error
	adapter := editor.NewFloorAdapter(floorID, floors, floors,
		func() models.Floor { return local },
		func(f models.Floor) { revertErr = writeFloorFile(floorFile, f) },
	)
	spec := &reconcile.Spec{Adapter: adapter, Scope: floorFile}
	opts := reconcile.Options{
		Strategy:  strategy,
		DryRun:    dryRunReconcile,
		Confirmed: false, // Set after the confirmation prompt
	}

	// Step 1: Plan (always runs)
	l.Info("Planning reconciliation...")
	plan, err := reconcile.ReconcileWithPlan(ctx, spec, opts)
	if err != nil {
		return fmt.Errorf("failed to plan reconciliation: %w", err)
	}

	// Step 2: Print report
	printReconcileReport(l, plan)

	// Step 3: Check if actions are requested
	if strategy == reconcile.StrategyReport {
		l.Info("No actions requested. Use --strategy persist or --strategy revert to repair differences.")
		return nil
	}

	if dryRunReconcile {
		l.Info("Dry-run mode: No changes were made.")
		return nil
	}

	// Step 4: Apply (if confirmed)
	if len(plan.Actions) == 0 {
		l.Info("No actions required, floor is in sync.")
		return nil
	}
	if !confirmDestructiveAction() {
		l.Warn("Operation cancelled by user. No changes were made.")
		return nil
	}
	opts.Confirmed = true

	l.Info("Applying actions...")
	executed, err := reconcile.ApplyPlan(ctx, spec, plan, opts)
	if err != nil {
		return fmt.Errorf("failed to apply plan: %w", err)
	}
	if revertErr != nil {
		return revertErr
	}

	l.Info("Successfully executed actions", zap.Int("count", executed))
	return nil
}

// printReconcileReport prints a formatted reconciliation report using logger.
func printReconcileReport(l *zap.Logger, plan *reconcile.Plan) {
	s := plan.Summary

	l.Info("Reconciliation report",
		zap.Int("total_items", s.TotalItems),
		zap.Int("missing_persisted", s.MissingPersisted),
		zap.Int("missing_local", s.MissingLocal),
		zap.Int("mismatches", s.Mismatches),
		zap.Bool("in_sync", s.InSync()),
	)

	if len(plan.Actions) == 0 {
		return
	}

	l.Info("Planned actions",
		zap.Int("persist_actions", s.PersistActions),
		zap.Int("delete_actions", s.DeleteActions),
		zap.Int("revert_actions", s.RevertActions),
		zap.Int("total_actions", len(plan.Actions)),
	)

	// Show sample of actions (max 5 for logger)
	maxShow := min(len(plan.Actions), 5)
	for _, action := range plan.Actions[:maxShow] {
		l.Info("Sample action",
			zap.String("type", string(action.Type)),
			zap.String("key", action.Key),
			zap.String("reason", action.Reason),
		)
	}
	if len(plan.Actions) > maxShow {
		l.Info("Additional actions not shown", zap.Int("count", len(plan.Actions)-maxShow))
	}
}

// confirmDestructiveAction prompts the user for confirmation or uses --yes flag.
func confirmDestructiveAction() bool {
	if yesConfirm {
		fmt.Println("\n✓ Auto-confirmed via --yes flag")
		return true
	}

	fmt.Print("\n⚠️  Type 'yes' to confirm destructive actions: ")
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	return strings.TrimSpace(response) == "yes"
}
