package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"takesell/editor"
	"takesell/templates"
)

// HandleFabricEdit opens the edit modal seeded from the selected fabric.
// Without a selection nothing opens and the modal target stays empty.
func HandleFabricEdit(ed *editor.Editor) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if !ed.OpenEdit() {
			return ErrorToast(e, http.StatusBadRequest, "No fabric selected")
		}
		v := ed.View()
		data := buildFabricFormData("Edit Fabric", "/fabrics/save", "Update Fabric", v.Draft, nil)
		component := templates.FabricFormModal(data)
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleFabricSave submits the edit form against the selected fabric.
func HandleFabricSave(ed *editor.Editor) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}
		draft := draftFromForm(e)

		err := ed.SubmitEdit(e.Request.Context(), draft)
		if err != nil {
			var ve *editor.ValidationError
			if errors.As(err, &ve) {
				SetToast(e, "warning", "Please fix the errors below")
				data := buildFabricFormData("Edit Fabric", "/fabrics/save", "Update Fabric", draft, map[string]string{ve.Field: ve.Message})
				component := templates.FabricFormModal(data)
				return component.Render(e.Request.Context(), e.Response)
			}
			if errors.Is(err, editor.ErrNoFabricSelected) {
				// The fabric vanished while the modal was open.
				return ErrorToast(e, http.StatusConflict, "The fabric no longer exists")
			}
			if errors.Is(err, editor.ErrRequestInFlight) {
				return ErrorToast(e, http.StatusConflict, "Another request is still running. Please wait.")
			}
			log.Printf("fabric_edit: could not update fabric: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Fabric updated successfully")
		if e.Request.Header.Get("HX-Request") == "true" {
			e.Response.Header().Set("HX-Redirect", "/")
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, "/")
	}
}
