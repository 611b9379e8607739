// Package testhelpers provides utilities for testing PocketBase-based applications.
package testhelpers

import (
	"strings"
	"testing"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"takesell/collections"
	"takesell/services"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
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

	return app
}

// CreateTestFabric creates a fabric record with the given name and price
// table and returns it. A nil price table stores an empty object.
func CreateTestFabric(t *testing.T, app *pocketbase.PocketBase, name string, prices services.PriceTable) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("fabrics")
	if err != nil {
		t.Fatalf("failed to find fabrics collection: %v", err)
	}

	if prices == nil {
		prices = services.PriceTable{}
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("prices", prices)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test fabric: %v", err)
	}

	// The autodate "created" field has millisecond precision and the store
	// orders fabrics by it; keep consecutive helper calls from landing in
	// the same millisecond so creation order is deterministic.
	time.Sleep(2 * time.Millisecond)

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

// AssertHXRedirect checks that the response has an HX-Redirect header with the expected URL.
func AssertHXRedirect(t *testing.T, headerVal, expectedURL string) {
	t.Helper()

	if headerVal != expectedURL {
		t.Errorf("expected HX-Redirect %q, got %q", expectedURL, headerVal)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
