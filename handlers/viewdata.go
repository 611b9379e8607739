package handlers

import (
	"strconv"

	"takesell/editor"
	"takesell/services"
	"takesell/templates"
)

// buildCalculatorData maps an editor view onto the calculator template data,
// formatting every amount for display.
func buildCalculatorData(v editor.View) templates.CalculatorData {
	data := templates.CalculatorData{
		Loading:   !v.Loaded,
		Mode:      string(v.Mode),
		ModeLabel: services.PriceModeLabel(v.Mode),
		ShowAll:   v.ShowAll,
		HasMore:   len(services.Products) > services.DefaultVisibleCount,
		CanDelete: len(v.Fabrics) > 1,
	}
	if !v.Loaded {
		return data
	}

	for i, f := range v.Fabrics {
		data.Fabrics = append(data.Fabrics, templates.FabricOption{
			Index:    strconv.Itoa(i),
			ID:       f.ID,
			Name:     f.Name,
			Selected: i == v.SelectedIndex,
		})
	}

	if v.HasSelection {
		data.SelectedName = v.Selected.Name
	}
	data.GrandTotal = services.FormatTk(v.GrandTotal)

	for _, p := range services.VisibleProducts(v.ShowAll) {
		entry := v.Selected.Prices.Entry(p.Key)
		qty := v.Quantities.Qty(p.Key)
		row := templates.ProductRow{
			Key:       p.Key,
			Label:     p.Label,
			Retail:    strconv.FormatFloat(entry.Retail, 'f', -1, 64),
			Wholesale: strconv.FormatFloat(entry.Wholesale, 'f', -1, 64),
			LineTotal: services.FormatTk(services.LineTotal(v.Selected.Prices, p.Key, v.Mode, v.Quantities)),
		}
		if qty != 0 {
			row.Qty = strconv.Itoa(qty)
		}
		data.Rows = append(data.Rows, row)
	}

	for _, b := range v.Breakdown {
		data.Breakdown = append(data.Breakdown, templates.BreakdownLine{
			Text:  b.ProductLabel + " × " + strconv.Itoa(b.Qty) + " " + b.UnitLabel,
			Total: services.FormatTk(b.LineTotal),
		})
	}
	return data
}

// buildFabricFormData maps a form draft onto the shared add/edit modal data.
// Rows always follow catalog order regardless of what the draft carries.
func buildFabricFormData(title, action, submit string, draft editor.FormDraft, errs map[string]string) templates.FabricFormData {
	data := templates.FabricFormData{
		Title:      title,
		Action:     action,
		SubmitText: submit,
		Name:       draft.Name,
		Errors:     errs,
	}
	if data.Errors == nil {
		data.Errors = make(map[string]string)
	}
	for _, p := range services.Products {
		in := draft.Prices[p.Key]
		data.Rows = append(data.Rows, templates.PriceFieldRow{
			Key:       p.Key,
			Label:     p.Label,
			Retail:    in.Retail,
			Wholesale: in.Wholesale,
		})
	}
	return data
}
