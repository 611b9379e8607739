package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"takesell/editor"
)

// HandleModalClose dismisses whatever modal is open by clearing the modal
// target.
func HandleModalClose(ed *editor.Editor) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		ed.CloseModal()
		return e.String(http.StatusOK, "")
	}
}
