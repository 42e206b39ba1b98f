// Command slugfix repairs product slugs that exceed the document id limit.
// Overlong slugs come from imported Shopify handles; the fix recreates the
// document under a truncated id and removes the old one.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"babyheaven-storefront/internal/config"
	"babyheaven-storefront/internal/content"
)

const maxSlugLength = 110

func main() {
	dryRun := flag.Bool("dry-run", false, "report overlong slugs without fixing them")
	flag.Parse()

	_ = godotenv.Load()
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[slugfix] ", log.LstdFlags|log.LUTC)

	if cfg.ContentProjectID == "" || cfg.ContentToken == "" {
		logger.Fatal("CONTENT_PROJECT_ID and CONTENT_API_TOKEN are required")
	}

	store := content.NewClient(content.Config{
		ProjectID:  cfg.ContentProjectID,
		Dataset:    cfg.ContentDataset,
		APIVersion: cfg.ContentAPIVersion,
		Token:      cfg.ContentToken,
	}, logger)

	ctx := context.Background()
	entries, err := store.ProductSlugs(ctx)
	if err != nil {
		logger.Fatalf("list product slugs: %v", err)
	}

	fixed := 0
	for _, entry := range entries {
		if len(entry.Slug) <= maxSlugLength {
			continue
		}
		trimmed := strings.TrimRight(entry.Slug[:maxSlugLength], "-")
		logger.Printf("%s: slug is %d chars, trimming to %q", entry.ID, len(entry.Slug), trimmed)
		if *dryRun {
			continue
		}

		var doc map[string]interface{}
		if err := store.Query(ctx, "*[_id == $id][0]", map[string]string{"id": entry.ID}, &doc); err != nil {
			logger.Fatalf("fetch %s: %v", entry.ID, err)
		}
		if doc == nil {
			continue
		}
		// System fields are rejected on create.
		delete(doc, "_rev")
		delete(doc, "_createdAt")
		delete(doc, "_updatedAt")

		newID := "product." + trimmed
		doc["_id"] = newID
		doc["slug"] = map[string]interface{}{"_type": "slug", "current": trimmed}

		mutations := []content.Mutation{content.CreateOrReplace(doc)}
		if newID != entry.ID {
			mutations = append(mutations, content.Delete(entry.ID))
		}
		if err := store.Mutate(ctx, mutations); err != nil {
			logger.Fatalf("rewrite %s: %v", entry.ID, err)
		}
		fixed++
	}

	fmt.Printf("Fixed %d slugs\n", fixed)
}
