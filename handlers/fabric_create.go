package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase/core"

	"takesell/editor"
	"takesell/services"
	"takesell/templates"
)

// draftFromForm reads the submitted modal form into a draft. Every catalog
// product contributes a retail_<key> and a wholesale_<key> field; absent
// fields stay empty strings and coerce to 0 on submit.
func draftFromForm(e *core.RequestEvent) editor.FormDraft {
	d := editor.FormDraft{
		Name:   strings.TrimSpace(e.Request.FormValue("name")),
		Prices: make(map[string]editor.PriceInput, len(services.Products)),
	}
	for _, p := range services.Products {
		d.Prices[p.Key] = editor.PriceInput{
			Retail:    e.Request.FormValue("retail_" + p.Key),
			Wholesale: e.Request.FormValue("wholesale_" + p.Key),
		}
	}
	return d
}

// HandleFabricNew opens the add-fabric modal with a blank draft.
func HandleFabricNew(ed *editor.Editor) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		ed.OpenAdd()
		data := buildFabricFormData("Add New Fabric", "/fabrics", "Save Fabric", editor.EmptyDraft(), nil)
		component := templates.FabricFormModal(data)
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleFabricCreate submits the add-fabric form. Validation failures
// re-render the modal with the typed values intact; on success the new
// fabric becomes the selection and the page reloads.
func HandleFabricCreate(ed *editor.Editor) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}
		draft := draftFromForm(e)

		err := ed.SubmitAdd(e.Request.Context(), draft)
		if err != nil {
			var ve *editor.ValidationError
			if errors.As(err, &ve) {
				SetToast(e, "warning", "Please fix the errors below")
				data := buildFabricFormData("Add New Fabric", "/fabrics", "Save Fabric", draft, map[string]string{ve.Field: ve.Message})
				component := templates.FabricFormModal(data)
				return component.Render(e.Request.Context(), e.Response)
			}
			if errors.Is(err, editor.ErrRequestInFlight) {
				return ErrorToast(e, http.StatusConflict, "Another request is still running. Please wait.")
			}
			log.Printf("fabric_create: could not create fabric: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Fabric added successfully")
		if e.Request.Header.Get("HX-Request") == "true" {
			e.Response.Header().Set("HX-Redirect", "/")
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, "/")
	}
}
