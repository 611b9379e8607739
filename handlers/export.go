package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase/core"

	"takesell/editor"
	"takesell/services"
)

// quoteData snapshots the editor into quotation data, stamped with today's
// date. Exports require a selection and at least one quantity.
func quoteData(ed *editor.Editor) (services.QuoteData, error) {
	v := ed.View()
	if !v.HasSelection {
		return services.QuoteData{}, editor.ErrNoFabricSelected
	}
	date := time.Now().Format("02 Jan 2006")
	data := services.BuildQuoteData(v.Selected, v.Mode, v.Quantities, date)
	if len(data.Rows) == 0 {
		return services.QuoteData{}, fmt.Errorf("nothing to export: no quantities set")
	}
	return data, nil
}

// sanitizeFilename removes characters that are unsafe for filenames.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "/", "-")
	s = strings.ReplaceAll(s, "\\", "-")
	s = strings.ReplaceAll(s, ":", "-")
	return s
}

// HandleQuoteExportExcel downloads the current quotation as an Excel file.
func HandleQuoteExportExcel(ed *editor.Editor) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data, err := quoteData(ed)
		if err != nil {
			return e.String(http.StatusBadRequest, "Nothing to export. Set at least one quantity first.")
		}

		xlsxBytes, err := services.GenerateQuoteExcel(data)
		if err != nil {
			return e.String(http.StatusInternalServerError, "Failed to generate Excel file")
		}

		filename := fmt.Sprintf("Quotation_%s_%d.xlsx", sanitizeFilename(data.FabricName), time.Now().Year())

		e.Response.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(xlsxBytes)
		return nil
	}
}

// HandleQuoteExportPDF downloads the current quotation as a PDF file.
func HandleQuoteExportPDF(ed *editor.Editor) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data, err := quoteData(ed)
		if err != nil {
			return e.String(http.StatusBadRequest, "Nothing to export. Set at least one quantity first.")
		}

		pdfBytes, err := services.GenerateQuotePDF(data)
		if err != nil {
			return e.String(http.StatusInternalServerError, "Failed to generate PDF file")
		}

		filename := fmt.Sprintf("Quotation_%s_%d.pdf", sanitizeFilename(data.FabricName), time.Now().Year())

		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(pdfBytes)
		return nil
	}
}
