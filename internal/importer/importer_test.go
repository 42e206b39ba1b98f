package importer

import (
	"context"
	"strings"
	"testing"

	"babyheaven-storefront/internal/content"
)

type stubStore struct {
	docs []map[string]interface{}
}

func (s *stubStore) Mutate(_ context.Context, mutations []content.Mutation) error {
	for _, m := range mutations {
		if doc, ok := m["createOrReplace"].(map[string]interface{}); ok {
			s.docs = append(s.docs, doc)
		}
	}
	return nil
}

func TestCSVImporter_Run(t *testing.T) {
	csvData := `Handle,Title,Body (HTML),Option1 Name,Option1 Value,Option2 Name,Option2 Value,Variant Price
pijama-algodon,Pijama de Algodón,<p>Pijama <strong>suave</strong> para bebé</p>,Talla,0-3 meses,Color,Rosa,350.00
pijama-algodon,,,Talla,3-6 meses,Color,Rosa,350.00
pijama-algodon,,,Talla,6-12 meses,Color,Azul,380.00
sonajero-madera,Sonajero de Madera,,Title,Default Title,,,120.00`

	store := &stubStore{}
	imp := NewCSVImporter(strings.NewReader(csvData), store, nil)

	count, err := imp.Run(context.Background())
	if err != nil {
		t.Fatalf("import run: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 products imported, got %d", count)
	}

	first := store.docs[0]
	if first["_id"] != "product.pijama-algodon" || first["name"] != "Pijama de Algodón" {
		t.Fatalf("unexpected product doc: %+v", first)
	}
	if first["price"] != 350.00 || first["currency"] != "HNL" {
		t.Fatalf("unexpected pricing: %+v", first)
	}
	if first["description"] != "Pijama suave para bebé" {
		t.Fatalf("expected markup stripped, got %q", first["description"])
	}

	options := first["options"].([]map[string]interface{})
	if len(options) != 2 {
		t.Fatalf("expected 2 option groups, got %d", len(options))
	}
	tallas := options[0]["choices"].([]map[string]interface{})
	if len(tallas) != 3 {
		t.Fatalf("expected 3 size choices, got %d", len(tallas))
	}
	if tallas[0]["extraPrice"] != 0.0 {
		t.Fatalf("base-priced choice must carry no surcharge, got %v", tallas[0]["extraPrice"])
	}
	if tallas[2]["label"] != "6-12 meses" || tallas[2]["extraPrice"] != 30.0 {
		t.Fatalf("expected surcharge from variant price delta, got %+v", tallas[2])
	}
	colores := options[1]["choices"].([]map[string]interface{})
	if len(colores) != 2 {
		t.Fatalf("expected deduplicated colors, got %d", len(colores))
	}

	second := store.docs[1]
	if _, ok := second["options"]; ok {
		t.Fatalf("placeholder option must not be imported: %+v", second["options"])
	}
	if second["description"] != "Sin descripción" {
		t.Fatalf("expected description fallback, got %q", second["description"])
	}
}

func TestCSVImporter_TruncatesLongSlugs(t *testing.T) {
	handle := strings.Repeat("producto-", 20) // 180 chars
	csvData := "Handle,Title,Variant Price\n" + handle + ",Producto Largo,99.00"

	store := &stubStore{}
	imp := NewCSVImporter(strings.NewReader(csvData), store, nil)

	if _, err := imp.Run(context.Background()); err != nil {
		t.Fatalf("import run: %v", err)
	}

	slug := store.docs[0]["slug"].(map[string]interface{})["current"].(string)
	if len(slug) != maxSlugLength {
		t.Fatalf("expected slug capped at %d chars, got %d", maxSlugLength, len(slug))
	}
	if store.docs[0]["_id"] != "product."+slug {
		t.Fatalf("document id must follow the capped slug, got %v", store.docs[0]["_id"])
	}
}

func TestCSVImporter_SkipsUntitledGroups(t *testing.T) {
	csvData := `Handle,Title,Variant Price
fantasma,,150.00
fantasma,,150.00`

	store := &stubStore{}
	imp := NewCSVImporter(strings.NewReader(csvData), store, nil)

	count, err := imp.Run(context.Background())
	if err != nil {
		t.Fatalf("import run: %v", err)
	}
	if count != 0 || len(store.docs) != 0 {
		t.Fatalf("untitled groups must be skipped, imported %d", count)
	}
}
