package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"takesell/editor"
	"takesell/testhelpers"
)

func TestHandleFabricDeletePrompt_LastFabricRefused(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestFabric(t, app, "Only", nil)
	ed := newTestEditor(t, app)

	req := httptest.NewRequest("GET", "/fabrics/delete", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleFabricDeletePrompt(ed)(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(), "Cannot delete the last fabric")
	if v := ed.View(); v.Modal != editor.ModalNone {
		t.Error("delete modal opened for the last fabric")
	}
}

func TestHandleFabricDeletePrompt_RendersModal(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestFabric(t, app, "Velvet", nil)
	testhelpers.CreateTestFabric(t, app, "Cotton", nil)
	ed := newTestEditor(t, app)

	req := httptest.NewRequest("GET", "/fabrics/delete", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleFabricDeletePrompt(ed)(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	testhelpers.AssertHTMLContains(t, rec.Body.String(),
		"Delete Fabric: Velvet",
		`name="confirmation"`,
		"Confirm Delete",
	)
}

func TestHandleFabricDelete_Mismatch(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestFabric(t, app, "Velvet", nil)
	testhelpers.CreateTestFabric(t, app, "Cotton", nil)
	ed := newTestEditor(t, app)
	if err := ed.OpenDelete(); err != nil {
		t.Fatalf("OpenDelete() error = %v", err)
	}

	req := formRequest("POST", "/fabrics/delete", url.Values{"confirmation": {"velvet"}})
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleFabricDelete(ed)(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	// The modal re-renders with the error; the record survives.
	testhelpers.AssertHTMLContains(t, rec.Body.String(),
		"Delete Fabric: Velvet",
		"The name does not match. Deletion cancelled.",
	)

	records, _ := app.FindAllRecords("fabrics")
	if len(records) != 2 {
		t.Errorf("got %d fabrics, want 2 (nothing deleted)", len(records))
	}
}

func TestHandleFabricDelete_LastFabricRefused(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestFabric(t, app, "Velvet", nil)
	cotton := testhelpers.CreateTestFabric(t, app, "Cotton", nil)
	ed := newTestEditor(t, app)
	if err := ed.OpenDelete(); err != nil {
		t.Fatalf("OpenDelete() error = %v", err)
	}

	// Another session deletes Cotton while the confirmation modal is open.
	if err := app.Delete(cotton); err != nil {
		t.Fatalf("delete record: %v", err)
	}
	waitForEditor(t, ed, func(v editor.View) bool {
		return len(v.Fabrics) == 1
	})

	req := formRequest("POST", "/fabrics/delete", url.Values{"confirmation": {"Velvet"}})
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleFabricDelete(ed)(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}

	records, _ := app.FindAllRecords("fabrics")
	if len(records) != 1 {
		t.Errorf("got %d fabrics, want 1 (last fabric kept)", len(records))
	}
}

func TestHandleFabricDelete_Success(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestFabric(t, app, "Velvet", nil)
	testhelpers.CreateTestFabric(t, app, "Cotton", nil)
	ed := newTestEditor(t, app)
	if err := ed.OpenDelete(); err != nil {
		t.Fatalf("OpenDelete() error = %v", err)
	}

	req := formRequest("POST", "/fabrics/delete", url.Values{"confirmation": {"Velvet"}})
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleFabricDelete(ed)(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	testhelpers.AssertHXRedirect(t, rec.Header().Get("HX-Redirect"), "/")

	records, _ := app.FindAllRecords("fabrics")
	if len(records) != 1 || records[0].GetString("name") != "Cotton" {
		t.Errorf("remaining fabrics = %d, want just Cotton", len(records))
	}

	v := waitForEditor(t, ed, func(v editor.View) bool {
		return len(v.Fabrics) == 1
	})
	if v.Selected.Name != "Cotton" {
		t.Errorf("selected %q after delete, want Cotton", v.Selected.Name)
	}
}
