package handlers

import (
	"net/http/httptest"
	"testing"

	"takesell/editor"
	"takesell/store"
	"takesell/testhelpers"
)

func TestHandleCalculator_RendersPage(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestFabric(t, app, "Velvet", testPrices(500, 400))
	ed := newTestEditor(t, app)

	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleCalculator(ed)(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	body := rec.Body.String()
	testhelpers.AssertHTMLContains(t, body,
		"Takesell Prices Calculator",
		`id="calculator"`,
		"Velvet",
		"Select Fabric",
		"Sofa Cover",
	)
}

func TestHandleCalculator_LoadingState(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	// Editor without a started subscription has no snapshot yet.
	ed := editor.New(store.New(app))

	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleCalculator(ed)(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	testhelpers.AssertHTMLContains(t, rec.Body.String(), "Loading fabrics...")
}

func TestHandleCalculator_DeleteDisabledForLastFabric(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestFabric(t, app, "Only", nil)
	ed := newTestEditor(t, app)

	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleCalculator(ed)(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	testhelpers.AssertHTMLContains(t, rec.Body.String(), "cursor-not-allowed")
}

func TestHandleModalClose(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestFabric(t, app, "Velvet", nil)
	ed := newTestEditor(t, app)
	ed.OpenAdd()

	req := httptest.NewRequest("GET", "/modal/close", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleModalClose(ed)(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Body.String() != "" {
		t.Errorf("expected empty body, got %q", rec.Body.String())
	}
	if v := ed.View(); v.Modal != editor.ModalNone {
		t.Error("modal still open after close")
	}
}
