package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"floorplan/core/config"
	"floorplan/core/database"
	"floorplan/core/logger"
	"floorplan/core/storage"
	"floorplan/feature/floor"
	"floorplan/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var fixFlag bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Perform integrity checks on storage, schema and floors",
	Long:  `Checks the storage folder structure, the floor schema and every stored floor.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) > 0 {
			cmd.Help()
			return
		}
		runIntegrityChecks(cmd.Context(), true, true, true, false)
	},
}

// structureCmd represents the integrity structure command
var structureCmd = &cobra.Command{
	Use:   "structure",
	Short: "Check and fix folder structure",
	Run: func(cmd *cobra.Command, args []string) {
		runIntegrityChecks(cmd.Context(), true, false, false, true)
	},
}

// schemaCmd represents the integrity schema command
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Check the floor database schema",
	Run: func(cmd *cobra.Command, args []string) {
		runIntegrityChecks(cmd.Context(), false, true, false, true)
	},
}

// floorsCmd represents the integrity floors command
var floorsCmd = &cobra.Command{
	Use:   "floors",
	Short: "Validate every stored floor",
	Long:  `Reports duplicate element ids, invalid placements or walls and missing background images. Outputs a summary by default or detailed JSON with --json flag.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		jsonOutput, _ := cmd.Flags().GetBool("json")

		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}

		floors, client, err := openFloors(cfg, logg)
		if err != nil {
			return err
		}

		svc := integrity.NewService(client, cfg.Storage.Bucket, logg, nil, floors, nil)
		reports, err := svc.CheckFloors(ctx)
		if err != nil {
			return fmt.Errorf("floor integrity check failed: %w", err)
		}

		if jsonOutput {
			data, err := json.MarshalIndent(reports, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		}

		if len(reports) == 0 {
			logg.Info("All floors are valid.")
			return nil
		}
		for _, r := range reports {
			logg.Warn("Floor has problems",
				zap.String("id", r.ID),
				zap.String("name", r.Name),
				zap.Strings("problems", r.Problems),
			)
		}
		return fmt.Errorf("%d floors have problems", len(reports))
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(structureCmd, schemaCmd, floorsCmd)

	structureCmd.Flags().BoolVar(&fixFlag, "fix", false, "Fix missing folders")
	floorsCmd.Flags().Bool("json", false, "Output detailed JSON format")
}

func runIntegrityChecks(ctx context.Context, runStructure, runSchema, runFloors, only bool) {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.LoadConfig(".")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}

	// Create Storage Client
	store, err := storage.NewClient(cfg.Storage)
	if err != nil {
		logg.Fatal("Failed to create storage client", zap.Error(err))
	}

	// Connect to Database (Optional for the structure check)
	var db *gorm.DB
	var floors *floor.Service
	if conn, err := database.Connect(cfg.Database); err != nil {
		logg.Warn("Optional database connection failed", zap.Error(err))
		runSchema, runFloors = false, false
	} else {
		db = conn
		floors = floor.NewService(floor.NewRepository(db), store, cfg.Storage.Bucket, logg)
		logg = logg.With(zap.String("driver", cfg.Database.Driver))
	}

	folders := []string{"floors", cfg.Render.Prefix}
	svc := integrity.NewService(store, cfg.Storage.Bucket, logg, db, floors, folders)

	if runStructure {
		logg.Info("Checking folder structure...")
		missingStructure, err := svc.CheckStructure(ctx)
		if err != nil {
			logg.Fatal("Structure check failed", zap.Error(err))
		}

		if len(missingStructure) == 0 {
			logg.Info("Structure is intact.")
		} else {
			logg.Warn("Missing folders detected", zap.Strings("missing", missingStructure))

			if only && fixFlag {
				logg.Info("Fixing missing folders...")
				if err := svc.FixStructure(ctx, missingStructure); err != nil {
					logg.Fatal("Failed to fix structure", zap.Error(err))
				}
				logg.Info("Structure fixed successfully.")
			} else if only {
				logg.Info("Run with --fix to create missing folders.")
			}
		}
	}

	if runSchema {
		logg.Info("Checking floor schema...")
		report, err := svc.CheckSchema()
		if err != nil {
			logg.Error("Schema check failed", zap.Error(err))
		} else if report.Matched {
			logg.Info("Floor schema matches the row models.")
		} else {
			logg.Warn("Floor schema mismatches found")
			for table, tblReport := range report.Tables {
				if tblReport.Status != "ok" {
					logg.Warn("Missing Columns", zap.String("table", table), zap.Strings("columns", tblReport.MissingColumns))
				}
			}
			for _, e := range report.Errors {
				logg.Error("Inspection Error", zap.String("error", e))
			}
		}
	}

	if runFloors {
		logg.Info("Checking stored floors...")
		reports, err := svc.CheckFloors(ctx)
		if err != nil {
			logg.Error("Floor check failed", zap.Error(err))
		} else if len(reports) == 0 {
			logg.Info("All floors are valid.")
		} else {
			logg.Warn("Floors with problems detected", zap.Int("count", len(reports)))
		}
	}
}
