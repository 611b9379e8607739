package services

// QuoteData holds everything needed to render a quotation document from the
// calculator's current state: the selected fabric, the active price mode and
// the itemized rows for every product with a quantity.
type QuoteData struct {
	FabricName string
	PriceMode  PriceMode
	Date       string

	Rows       []BreakdownRow
	GrandTotal float64
}

// BuildQuoteData assembles quotation data for one fabric. Rows follow the
// itemized breakdown (catalog order, quantities above zero only); the grand
// total is still taken over the whole catalog so both always agree.
func BuildQuoteData(fabric Fabric, mode PriceMode, q Quantities, date string) QuoteData {
	return QuoteData{
		FabricName: fabric.Name,
		PriceMode:  mode,
		Date:       date,
		Rows:       Breakdown(fabric.Name, fabric.Prices, mode, q),
		GrandTotal: GrandTotal(fabric.Prices, mode, q),
	}
}

// PriceModeLabel returns the display label for a price mode.
func PriceModeLabel(mode PriceMode) string {
	if mode == PriceModeWholesale {
		return "Wholesale"
	}
	return "Retail"
}
