// Package templates holds the templ components and their view-data types
// for the calculator UI. All amounts arrive pre-formatted; components only
// lay the data out.
package templates

// FabricOption is one entry of the fabric selector.
type FabricOption struct {
	Index    string
	ID       string
	Name     string
	Selected bool
}

// ProductRow is one product line of the main price/quantity table.
type ProductRow struct {
	Key       string
	Label     string
	Retail    string
	Wholesale string
	Qty       string // empty when no quantity is set
	LineTotal string
}

// BreakdownLine is one row of the itemized price summary.
type BreakdownLine struct {
	Text  string
	Total string
}

// CalculatorData feeds the calculator page and its htmx-swapped main block.
type CalculatorData struct {
	Loading      bool
	Fabrics      []FabricOption
	SelectedName string
	Mode         string
	ModeLabel    string
	GrandTotal   string
	Rows         []ProductRow
	ShowAll      bool
	HasMore      bool
	Breakdown    []BreakdownLine
	CanDelete    bool
}

// PriceFieldRow is one product's editable price pair in the add/edit modal.
type PriceFieldRow struct {
	Key       string
	Label     string
	Retail    string
	Wholesale string
}

// FabricFormData feeds the shared add/edit fabric modal.
type FabricFormData struct {
	Title      string
	Action     string
	SubmitText string
	Name       string
	Rows       []PriceFieldRow
	Errors     map[string]string
}

// DeleteModalData feeds the delete confirmation modal.
type DeleteModalData struct {
	FabricName string
	Error      string
}
