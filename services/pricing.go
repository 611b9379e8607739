package services

// PriceMode selects which of the two prices of a PriceEntry is used when
// computing totals. Switching modes never mutates stored data.
type PriceMode string

const (
	PriceModeRetail    PriceMode = "retail"
	PriceModeWholesale PriceMode = "wholesale"
)

// ParsePriceMode maps a raw string onto a PriceMode, defaulting to retail
// for anything unrecognized.
func ParsePriceMode(s string) PriceMode {
	if s == string(PriceModeWholesale) {
		return PriceModeWholesale
	}
	return PriceModeRetail
}

// PriceEntry holds the two price points of one product. The zero value is
// the default for products a fabric has no entry for.
type PriceEntry struct {
	Retail    float64 `json:"retail"`
	Wholesale float64 `json:"wholesale"`
}

// For returns the price for the given mode.
func (e PriceEntry) For(mode PriceMode) float64 {
	if mode == PriceModeWholesale {
		return e.Wholesale
	}
	return e.Retail
}

// PriceTable maps product keys to their price entries.
type PriceTable map[string]PriceEntry

// Entry returns the price entry for key, defaulting to {0,0} when the table
// has none. Missing keys are defaulted at read time, never backfilled into
// the stored record.
func (t PriceTable) Entry(key string) PriceEntry {
	if t == nil {
		return PriceEntry{}
	}
	return t[key]
}

// EmptyPriceTable returns a table with a zero entry for every catalog
// product.
func EmptyPriceTable() PriceTable {
	t := make(PriceTable, len(Products))
	for _, p := range Products {
		t[p.Key] = PriceEntry{}
	}
	return t
}

// NormalizePrices builds a table that has exactly the current product set:
// entries for unknown keys are dropped, missing ones default to {0,0}. Used
// when seeding the edit form so it always matches the catalog regardless of
// what the stored record contains.
func NormalizePrices(t PriceTable) PriceTable {
	out := make(PriceTable, len(Products))
	for _, p := range Products {
		out[p.Key] = t.Entry(p.Key)
	}
	return out
}

// Quantities maps product keys to requested quantities. It lives only in
// the editor's transient state and is never persisted.
type Quantities map[string]int

// Qty returns the quantity for key, defaulting to 0.
func (q Quantities) Qty(key string) int {
	if q == nil {
		return 0
	}
	return q[key]
}

// UnitPrice returns the price of one product in the given mode.
func UnitPrice(t PriceTable, key string, mode PriceMode) float64 {
	return t.Entry(key).For(mode)
}

// LineTotal returns unit price times requested quantity for one product.
func LineTotal(t PriceTable, key string, mode PriceMode, q Quantities) float64 {
	return UnitPrice(t, key, mode) * float64(q.Qty(key))
}

// GrandTotal sums line totals over the whole catalog in catalog order.
func GrandTotal(t PriceTable, mode PriceMode, q Quantities) float64 {
	var sum float64
	for _, p := range Products {
		sum += LineTotal(t, p.Key, mode, q)
	}
	return sum
}

// BreakdownRow is one line of the itemized price summary.
type BreakdownRow struct {
	FabricName   string
	ProductKey   string
	ProductLabel string
	Qty          int
	UnitLabel    string
	UnitPrice    float64
	LineTotal    float64
}

// Breakdown returns one row per product with a quantity strictly greater
// than zero, preserving catalog order.
func Breakdown(fabricName string, t PriceTable, mode PriceMode, q Quantities) []BreakdownRow {
	var rows []BreakdownRow
	for _, p := range Products {
		qty := q.Qty(p.Key)
		if qty <= 0 {
			continue
		}
		rows = append(rows, BreakdownRow{
			FabricName:   fabricName,
			ProductKey:   p.Key,
			ProductLabel: p.Label,
			Qty:          qty,
			UnitLabel:    UnitLabel(p.Key),
			UnitPrice:    UnitPrice(t, p.Key, mode),
			LineTotal:    LineTotal(t, p.Key, mode, q),
		})
	}
	return rows
}
