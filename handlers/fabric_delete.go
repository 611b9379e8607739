package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"takesell/editor"
	"takesell/templates"
)

// HandleFabricDeletePrompt opens the delete confirmation modal. Deleting the
// last remaining fabric is refused so the catalog never goes empty.
func HandleFabricDeletePrompt(ed *editor.Editor) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := ed.OpenDelete(); err != nil {
			if errors.Is(err, editor.ErrLastFabric) {
				return ErrorToast(e, http.StatusBadRequest, "Cannot delete the last fabric")
			}
			return ErrorToast(e, http.StatusBadRequest, "No fabric selected")
		}
		sel, _ := ed.Selected()
		component := templates.DeleteFabricModal(templates.DeleteModalData{FabricName: sel.Name})
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleFabricDelete checks the typed confirmation and removes the fabric.
// A mismatch re-renders the modal with an inline error and an empty
// confirmation field.
func HandleFabricDelete(ed *editor.Editor) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}
		typed := e.Request.FormValue("confirmation")

		err := ed.ConfirmDelete(e.Request.Context(), typed)
		if err != nil {
			if errors.Is(err, editor.ErrConfirmationMismatch) {
				sel, _ := ed.Selected()
				component := templates.DeleteFabricModal(templates.DeleteModalData{
					FabricName: sel.Name,
					Error:      "The name does not match. Deletion cancelled.",
				})
				return component.Render(e.Request.Context(), e.Response)
			}
			if errors.Is(err, editor.ErrLastFabric) {
				return ErrorToast(e, http.StatusBadRequest, "Cannot delete the last fabric")
			}
			if errors.Is(err, editor.ErrNoFabricSelected) {
				return ErrorToast(e, http.StatusConflict, "The fabric no longer exists")
			}
			if errors.Is(err, editor.ErrRequestInFlight) {
				return ErrorToast(e, http.StatusConflict, "Another request is still running. Please wait.")
			}
			log.Printf("fabric_delete: could not delete fabric: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Fabric deleted")
		if e.Request.Header.Get("HX-Request") == "true" {
			e.Response.Header().Set("HX-Redirect", "/")
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, "/")
	}
}
