package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"floorplan/core/config"
	"floorplan/core/database"
	"floorplan/core/storage"
	"floorplan/feature/editor"
	"floorplan/feature/floor"

	"go.uber.org/zap"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: debug_floor <floor-id>")
	}
	floorID := os.Args[1]

	// Load config
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatal(err)
	}

	// Create storage client
	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		log.Fatal(err)
	}

	// Connect to DB
	db, err := database.Connect(cfg.Database)
	if err != nil {
		log.Fatal(err)
	}

	repo := floor.NewRepository(db)
	svc := floor.NewService(repo, client, cfg.Storage.Bucket, zap.NewNop())
	ctx := context.Background()

	// Test 1: Schema
	fmt.Println("=== TEST 1: Schema ===")
	if err := repo.Verify(); err != nil {
		fmt.Printf("Schema problem: %v\n", err)
	} else {
		fmt.Println("All floor tables have their expected columns")
	}

	// Test 2: Load the floor
	fmt.Println("\n=== TEST 2: Floor Loading ===")
	f, err := svc.GetFloor(ctx, floorID)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Floor %q: %d tables, %d points of interest, %d walls\n",
		f.Name, len(f.Tables), len(f.PointsOfInterest), len(f.Walls))

	// Test 3: Element index as the reconciler sees it
	fmt.Println("\n=== TEST 3: Element Index ===")
	index := editor.IndexFloor(*f)
	fmt.Printf("Indexed elements: %d\n", len(index))
	if dups := f.DuplicateIDs(); len(dups) > 0 {
		fmt.Printf("Duplicate ids across collections: %v\n", dups)
	}

	// Test 4: Objects in storage
	fmt.Println("\n=== TEST 4: Storage Objects ===")
	keys, err := storage.ListKeys(ctx, client, cfg.Storage.Bucket, "floors/"+floorID+"/")
	if err != nil {
		fmt.Printf("Listing failed: %v\n", err)
	}
	for _, k := range keys {
		fmt.Printf("  %s\n", k)
	}

	// Save detailed output
	output := map[string]interface{}{
		"floor_id":      floorID,
		"element_count": len(index),
		"wall_count":    len(f.Walls),
		"storage_keys":  keys,
	}
	data, _ := json.MarshalIndent(output, "", "  ")
	os.WriteFile("debug_floor.json", data, 0644)

	fmt.Println("\nDebug complete. Check debug_floor.json for details.")
}
