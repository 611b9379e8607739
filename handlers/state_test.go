package handlers

import (
	"net/http/httptest"
	"net/url"
	"testing"

	"takesell/testhelpers"
)

func TestHandleSelect_SwitchesFabric(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestFabric(t, app, "First", testPrices(100, 80))
	testhelpers.CreateTestFabric(t, app, "Second", testPrices(200, 160))
	ed := newTestEditor(t, app)

	req := formRequest("POST", "/select", url.Values{"index": {"1"}})
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleSelect(ed)(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if v := ed.View(); v.Selected.Name != "Second" {
		t.Errorf("selected %q, want Second", v.Selected.Name)
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(), "Prices for:", "Second")
}

func TestHandleSelect_BadIndexKeepsSelection(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestFabric(t, app, "First", nil)
	ed := newTestEditor(t, app)

	for _, raw := range []string{"junk", "99", "-1", ""} {
		req := formRequest("POST", "/select", url.Values{"index": {raw}})
		rec := httptest.NewRecorder()
		e := newTestRequestEvent(app, req, rec)

		if err := HandleSelect(ed)(e); err != nil {
			t.Fatalf("handler error for index %q: %v", raw, err)
		}
		if v := ed.View(); v.SelectedIndex != 0 {
			t.Errorf("index %q moved selection to %d", raw, v.SelectedIndex)
		}
	}
}

func TestHandleMode_TogglesAndRecomputes(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestFabric(t, app, "Velvet", testPrices(500, 400))
	ed := newTestEditor(t, app)
	ed.SetQuantity("sofa", "2")

	req := formRequest("POST", "/mode?mode=wholesale", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleMode(ed)(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	// 2 x 400 wholesale
	testhelpers.AssertHTMLContains(t, rec.Body.String(), "Wholesale", "Tk 800")
}

func TestHandleQuantity_UpdatesTotals(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestFabric(t, app, "Velvet", testPrices(500, 400))
	ed := newTestEditor(t, app)

	req := formRequest("POST", "/quantity?product=sofa", url.Values{"qty": {"3"}})
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleQuantity(ed)(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if got := ed.View().Quantities.Qty("sofa"); got != 3 {
		t.Errorf("quantity = %d, want 3", got)
	}
	// 3 x 500 retail, plus the itemized summary appears.
	testhelpers.AssertHTMLContains(t, rec.Body.String(),
		"Tk 1,500",
		"Itemized Price Summary",
		"Download Excel",
	)
}

func TestHandleQuantity_MissingProduct(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestFabric(t, app, "Velvet", nil)
	ed := newTestEditor(t, app)

	req := formRequest("POST", "/quantity", url.Values{"qty": {"3"}})
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleQuantity(ed)(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != 400 {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHandleToggleItems(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestFabric(t, app, "Velvet", nil)
	ed := newTestEditor(t, app)

	req := formRequest("POST", "/toggle-items", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleToggleItems(ed)(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	// All 15 products visible now, including ones beyond the default four.
	testhelpers.AssertHTMLContains(t, rec.Body.String(),
		"Hide Extra Items",
		"Foam Cover",
		"AC Cover",
	)

	rec2 := httptest.NewRecorder()
	e2 := newTestRequestEvent(app, formRequest("POST", "/toggle-items", nil), rec2)
	if err := HandleToggleItems(ed)(e2); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	testhelpers.AssertHTMLContains(t, rec2.Body.String(), "Show More Items")
}
