package handlers

import (
	"net/http"
	"strconv"

	"github.com/pocketbase/pocketbase/core"

	"takesell/editor"
	"takesell/services"
)

// HandleSelect moves the fabric selection to the submitted index. Anything
// unparseable or out of range leaves the selection where it was; either way
// the calculator block is re-rendered.
func HandleSelect(ed *editor.Editor) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}
		if i, err := strconv.Atoi(e.Request.FormValue("index")); err == nil {
			ed.Select(i)
		}
		return renderMain(ed, e)
	}
}

// HandleMode switches the active price mode. Unknown values fall back to
// retail.
func HandleMode(ed *editor.Editor) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		ed.SetPriceMode(services.ParsePriceMode(e.Request.URL.Query().Get("mode")))
		return renderMain(ed, e)
	}
}

// HandleQuantity records the typed quantity for one product and re-renders
// with recomputed totals.
func HandleQuantity(ed *editor.Editor) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}
		product := e.Request.URL.Query().Get("product")
		if product == "" {
			return ErrorToast(e, http.StatusBadRequest, "Missing product")
		}
		ed.SetQuantity(product, e.Request.FormValue("qty"))
		return renderMain(ed, e)
	}
}

// HandleToggleItems flips between the short and the full product list.
func HandleToggleItems(ed *editor.Editor) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		ed.ToggleShowAll()
		return renderMain(ed, e)
	}
}
