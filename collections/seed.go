package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase/core"

	"takesell/services"
)

// DefaultFabricName is the name of the starter fabric inserted into an
// empty store.
const DefaultFabricName = "Standard"

// Seed inserts a starter fabric with an all-zero price table when the
// fabrics collection is empty. It is safe to call on every startup: it
// returns early if any fabric records already exist.
//
// Together with the delete guard (the last remaining fabric cannot be
// deleted) this keeps the catalog from ever being empty.
func Seed(app core.App) error {
	col, err := app.FindCollectionByNameOrId("fabrics")
	if err != nil {
		return fmt.Errorf("seed: could not find fabrics collection: %w", err)
	}

	existing, err := app.FindAllRecords(col)
	if err != nil {
		return fmt.Errorf("seed: could not query fabrics: %w", err)
	}
	if len(existing) > 0 {
		return nil // already seeded
	}

	log.Println("seed: fabrics collection is empty, inserting starter fabric")

	record := core.NewRecord(col)
	record.Set("name", DefaultFabricName)
	record.Set("prices", services.EmptyPriceTable())

	if err := app.Save(record); err != nil {
		return fmt.Errorf("seed: save starter fabric: %w", err)
	}

	log.Printf("seed: created fabric %q (id=%s)", DefaultFabricName, record.Id)
	return nil
}
