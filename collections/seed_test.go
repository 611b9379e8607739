package collections_test

import (
	"testing"

	"takesell/collections"
	"takesell/services"
	"takesell/testhelpers"
)

func TestSeed_EmptyCollection(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if err := collections.Seed(app); err != nil {
		t.Fatalf("Seed() error = %v", err)
	}

	records, err := app.FindAllRecords("fabrics")
	if err != nil {
		t.Fatalf("could not query fabrics: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d fabrics after seed, want 1", len(records))
	}
	if got := records[0].GetString("name"); got != collections.DefaultFabricName {
		t.Errorf("seeded fabric name = %q, want %q", got, collections.DefaultFabricName)
	}

	fabric := services.FabricFromRecord(records[0])
	if len(fabric.Prices) != len(services.Products) {
		t.Errorf("seeded price table has %d entries, want %d", len(fabric.Prices), len(services.Products))
	}
	for key, entry := range fabric.Prices {
		if entry != (services.PriceEntry{}) {
			t.Errorf("seeded price %q = %+v, want zeros", key, entry)
		}
	}
}

func TestSeed_SkipsWhenFabricsExist(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	testhelpers.CreateTestFabric(t, app, "Existing", nil)

	if err := collections.Seed(app); err != nil {
		t.Fatalf("Seed() error = %v", err)
	}

	records, err := app.FindAllRecords("fabrics")
	if err != nil {
		t.Fatalf("could not query fabrics: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("got %d fabrics, want 1 (no starter fabric added)", len(records))
	}
}

func TestSeed_Idempotent(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if err := collections.Seed(app); err != nil {
		t.Fatalf("first Seed() error = %v", err)
	}
	if err := collections.Seed(app); err != nil {
		t.Fatalf("second Seed() error = %v", err)
	}

	records, err := app.FindAllRecords("fabrics")
	if err != nil {
		t.Fatalf("could not query fabrics: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("got %d fabrics after double seed, want 1", len(records))
	}
}
