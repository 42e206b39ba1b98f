package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"babyheaven-storefront/internal/config"
	"babyheaven-storefront/internal/content"
	"babyheaven-storefront/internal/importer"
)

func main() {
	var filePath string
	flag.StringVar(&filePath, "file", "", "Path to Shopify product CSV export")
	flag.Parse()

	if filePath == "" {
		flag.Usage()
		os.Exit(2)
	}

	_ = godotenv.Load()
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[importer] ", log.LstdFlags|log.LUTC)

	if cfg.ContentProjectID == "" || cfg.ContentToken == "" {
		logger.Fatal("CONTENT_PROJECT_ID and CONTENT_API_TOKEN are required")
	}

	store := content.NewClient(content.Config{
		ProjectID:  cfg.ContentProjectID,
		Dataset:    cfg.ContentDataset,
		APIVersion: cfg.ContentAPIVersion,
		Token:      cfg.ContentToken,
	}, logger)

	f, err := os.Open(filePath)
	if err != nil {
		logger.Fatalf("open file: %v", err)
	}
	defer f.Close()

	imp := importer.NewCSVImporter(f, store, logger)

	start := time.Now()
	count, err := imp.Run(context.Background())
	if err != nil {
		logger.Fatalf("import failed: %v", err)
	}

	fmt.Printf("Imported %d products into dataset %s in %s\n", count, cfg.ContentDataset, time.Since(start).Truncate(time.Millisecond))
}
