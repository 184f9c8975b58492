// Package testhelpers provides utilities for testing PocketBase-based applications.
package testhelpers

import (
	"strings"
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quoteforms/collections"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app, runs collections.Setup to create all tables, and
// seeds the fabric catalog and pricing tables. The temporary directory is
// cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	if err := collections.Seed(app); err != nil {
		t.Fatalf("failed to seed test app: %v", err)
	}

	return app
}

// CreateTestFabric creates a fabric catalog record and returns it.
func CreateTestFabric(t *testing.T, app *pocketbase.PocketBase, product, name string, group int) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("fabrics")
	if err != nil {
		t.Fatalf("failed to find fabrics collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("product", product)
	record.Set("name", name)
	record.Set("group", group)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test fabric: %v", err)
	}

	return record
}

// CreateTestPriceRow creates a price_rows record with a categorical drop
// bracket and returns it.
func CreateTestPriceRow(t *testing.T, app *pocketbase.PocketBase, product string, group int, width float64, dropCategory string, cost, mrp float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("price_rows")
	if err != nil {
		t.Fatalf("failed to find price_rows collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("product", product)
	record.Set("group", group)
	record.Set("width", width)
	record.Set("drop_category", dropCategory)
	record.Set("cost_price", cost)
	record.Set("mrp", mrp)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test price row: %v", err)
	}

	return record
}

// AssertHTMLContains checks that body contains all specified fragments.
func AssertHTMLContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if !strings.Contains(body, frag) {
			t.Errorf("expected HTML to contain %q, but it was not found\nbody (first 500 chars): %s",
				frag, truncate(body, 500))
		}
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
