// Package services provides the product catalog, price model and
// calculation functions for the fabric prices calculator.
package services

// Product is one entry of the fixed cover catalog. The catalog is compiled
// in and never persisted; Key is stable across sessions and used to key
// price tables and quantities.
type Product struct {
	Key   string
	Label string
}

// Products is the full catalog in display order. Order matters: line totals
// and breakdown rows are emitted in this order, and only the first
// DefaultVisibleCount entries are shown until the user expands the list.
var Products = []Product{
	{Key: "sofa", Label: "Sofa Cover"},
	{Key: "chair", Label: "Chair Cover"},
	{Key: "table", Label: "T-Table Cover"},
	{Key: "cushion_16_16", Label: "Cushion 16×16"},
	{Key: "cushion_18_18", Label: "Cushion 18×18"},
	{Key: "cushion_20_20", Label: "Cushion 20×20"},
	{Key: "cushion_24_24", Label: "Cushion 24×24"},
	{Key: "cushion_30_30", Label: "Cushion 30×30"},
	{Key: "bed", Label: "Bed Cover"},
	{Key: "dining", Label: "Dining Table Cover"},
	{Key: "tul", Label: "Tul Cover"},
	{Key: "box", Label: "Box Cover"},
	{Key: "tv", Label: "TV Cover"},
	{Key: "ac", Label: "AC Cover"},
	{Key: "foam", Label: "Foam Cover"},
}

// DefaultVisibleCount is how many products the calculator shows before the
// "show more items" toggle is used.
const DefaultVisibleCount = 4

// VisibleProducts returns the catalog slice that should currently be
// rendered: the whole catalog when showAll is set, otherwise the first
// DefaultVisibleCount entries.
func VisibleProducts(showAll bool) []Product {
	if showAll || len(Products) <= DefaultVisibleCount {
		return Products
	}
	return Products[:DefaultVisibleCount]
}

// ProductLabel returns the display label for a product key, or the key
// itself when it is not part of the catalog.
func ProductLabel(key string) string {
	for _, p := range Products {
		if p.Key == key {
			return p.Label
		}
	}
	return key
}

// UnitLabel returns the quantity unit shown next to a product in the
// itemized breakdown. Sofa covers are counted in seats, everything else in
// pieces.
func UnitLabel(key string) string {
	if key == "sofa" {
		return "Seats"
	}
	return "Pcs"
}
