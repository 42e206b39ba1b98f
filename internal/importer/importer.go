// Package importer converts Shopify CSV product exports into content-store
// documents.
package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"regexp"
	"strconv"
	"strings"

	"babyheaven-storefront/internal/content"
)

// DocumentWriter is the slice of the content client the importer needs.
type DocumentWriter interface {
	Mutate(ctx context.Context, mutations []content.Mutation) error
}

// CSVImporter reads a Shopify product export and upserts one product
// document per handle. Images are not imported; they get attached later in
// the studio.
type CSVImporter struct {
	reader *csv.Reader
	store  DocumentWriter
	logger *log.Logger
}

func NewCSVImporter(r io.Reader, store DocumentWriter, logger *log.Logger) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	return &CSVImporter{reader: csvr, store: store, logger: logger}
}

// Draft copies prefix the document id with "drafts.", so slugs stay well
// under the 128-char id limit.
const maxSlugLength = 110

var htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

// Run parses CSV rows grouped by handle and upserts products. Returns the
// number of products imported.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)

	var (
		handle   string
		group    [][]string
		imported int
	)

	flush := func() error {
		if len(group) == 0 {
			return nil
		}
		doc := buildDocument(handle, group, index)
		group = nil
		if doc == nil {
			return nil
		}
		if err := i.store.Mutate(ctx, []content.Mutation{content.CreateOrReplace(doc)}); err != nil {
			return fmt.Errorf("upsert product %q: %w", handle, err)
		}
		imported++
		if i.logger != nil {
			i.logger.Printf("imported %q", handle)
		}
		return nil
	}

	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("read row: %w", err)
		}

		rowHandle := pick(record, index, "Handle")
		if rowHandle == "" {
			continue
		}
		if rowHandle != handle {
			if err := flush(); err != nil {
				return imported, err
			}
			handle = rowHandle
		}
		group = append(group, record)
	}

	if err := flush(); err != nil {
		return imported, err
	}
	return imported, nil
}

// buildDocument assembles one product document from a handle's row group.
// Groups with no titled row are skipped.
func buildDocument(handle string, group [][]string, index map[string]int) map[string]interface{} {
	var title, bodyHTML string
	for _, row := range group {
		if t := pick(row, index, "Title"); t != "" {
			title = t
			bodyHTML = pick(row, index, "Body (HTML)")
			break
		}
	}
	if title == "" {
		return nil
	}

	basePrice, _ := strconv.ParseFloat(pick(group[0], index, "Variant Price"), 64)
	description := stripHTML(bodyHTML)
	slug := handle
	if len(slug) > maxSlugLength {
		slug = slug[:maxSlugLength]
	}

	doc := map[string]interface{}{
		"_type":    "product",
		"_id":      "product." + slug,
		"name":     title,
		"slug":     map[string]interface{}{"_type": "slug", "current": slug},
		"price":    basePrice,
		"currency": "HNL",
		"inStock":  true,
		"stock":    10,
	}

	if description != "" {
		doc["description"] = description
		doc["detailedDescription"] = []map[string]interface{}{{
			"_type":    "block",
			"style":    "normal",
			"markDefs": []interface{}{},
			"children": []map[string]interface{}{{
				"_type": "span",
				"marks": []interface{}{},
				"text":  description,
			}},
		}}
	} else {
		doc["description"] = "Sin descripción"
	}

	if options := buildOptions(handle, group, index, basePrice); len(options) > 0 {
		doc["options"] = options
	}
	return doc
}

// buildOptions maps the export's OptionN Name/Value columns onto option
// groups. Each distinct value becomes a choice; a value whose variant price
// exceeds the base price carries the difference as its surcharge.
func buildOptions(handle string, group [][]string, index map[string]int, basePrice float64) []map[string]interface{} {
	var options []map[string]interface{}
	for n := 1; n <= 3; n++ {
		nameCol := fmt.Sprintf("Option%d Name", n)
		valueCol := fmt.Sprintf("Option%d Value", n)

		name := pick(group[0], index, nameCol)
		if name == "" {
			continue
		}
		// Shopify emits a placeholder option for single-variant products.
		if name == "Title" && pick(group[0], index, valueCol) == "Default Title" {
			continue
		}

		seen := make(map[string]bool)
		var choices []map[string]interface{}
		for _, row := range group {
			value := pick(row, index, valueCol)
			if value == "" || seen[value] {
				continue
			}
			seen[value] = true

			extra := 0.0
			if variantPrice, err := strconv.ParseFloat(pick(row, index, "Variant Price"), 64); err == nil {
				if diff := variantPrice - basePrice; diff > 0 {
					extra = diff
				}
			}
			choices = append(choices, map[string]interface{}{
				"label":      value,
				"extraPrice": extra,
			})
		}

		if len(choices) > 0 {
			options = append(options, map[string]interface{}{
				"_key":     handle + "-" + name,
				"name":     name,
				"required": true,
				"multiple": false,
				"choices":  choices,
			})
		}
	}
	return options
}

func stripHTML(raw string) string {
	return strings.TrimSpace(htmlTagPattern.ReplaceAllString(raw, ""))
}

func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[h] = i
	}
	return idx
}

func pick(record []string, index map[string]int, key string) string {
	pos, ok := index[key]
	if !ok || pos >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[pos])
}
