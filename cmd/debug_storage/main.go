package main

import (
	"context"
	"fmt"
	"log"
	"strings"

	"floorplan/core/config"
	"floorplan/core/storage"
	"floorplan/feature/floor"

	"github.com/minio/minio-go/v7"
)

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatal(err)
	}

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	// Check every object under floors/ against the background key layout
	fmt.Println("=== Checking storage for floor backgrounds ===")

	opts := minio.ListObjectsOptions{
		Prefix:    "floors/",
		Recursive: true,
	}

	count, stray := 0, 0
	for obj := range client.ListObjects(ctx, cfg.Storage.Bucket, opts) {
		if obj.Err != nil {
			log.Fatal(obj.Err)
		}
		count++

		parts := strings.Split(obj.Key, "/")
		if len(parts) != 3 {
			stray++
			fmt.Printf("File: %s\n  ⚠️  Unexpected depth\n", obj.Key)
			continue
		}

		expected := floor.BackgroundKey(parts[1], parts[2])
		if expected == obj.Key {
			fmt.Printf("File: %s\n  ✅ Background of floor %s\n", obj.Key, parts[1])
		} else {
			stray++
			fmt.Printf("File: %s\n  ⚠️  Expected %s\n", obj.Key, expected)
		}
	}

	fmt.Printf("\nTotal objects: %d, unexpected: %d\n", count, stray)
}
