package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"takesell/testhelpers"
)

func TestHandleQuoteExportExcel(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestFabric(t, app, "Velvet", testPrices(500, 400))
	ed := newTestEditor(t, app)
	ed.SetQuantity("sofa", "2")

	req := httptest.NewRequest("GET", "/export/excel", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleQuoteExportExcel(ed)(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if got := rec.Header().Get("Content-Type"); got != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
		t.Errorf("content type = %q", got)
	}
	disposition := rec.Header().Get("Content-Disposition")
	if !strings.Contains(disposition, "Quotation_Velvet_") || !strings.Contains(disposition, ".xlsx") {
		t.Errorf("content disposition = %q", disposition)
	}
	if rec.Body.Len() == 0 {
		t.Error("empty response body")
	}
}

func TestHandleQuoteExportPDF(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestFabric(t, app, "Velvet", testPrices(500, 400))
	ed := newTestEditor(t, app)
	ed.SetQuantity("chair", "4")

	req := httptest.NewRequest("GET", "/export/pdf", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleQuoteExportPDF(ed)(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if got := rec.Header().Get("Content-Type"); got != "application/pdf" {
		t.Errorf("content type = %q", got)
	}
	body := rec.Body.Bytes()
	if len(body) < 5 || string(body[:5]) != "%PDF-" {
		t.Error("response is not a PDF")
	}
}

func TestHandleQuoteExport_NothingToExport(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestFabric(t, app, "Velvet", testPrices(500, 400))
	ed := newTestEditor(t, app)

	req := httptest.NewRequest("GET", "/export/excel", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleQuoteExportExcel(ed)(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Velvet Blue", "Velvet-Blue"},
		{"a/b\\c:d", "a-b-c-d"},
		{"plain", "plain"},
	}
	for _, tt := range tests {
		if got := sanitizeFilename(tt.input); got != tt.want {
			t.Errorf("sanitizeFilename(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
