// Package handlers wires the calculator UI to the editor state machine over
// htmx: full page render, partial re-renders after every state change, and
// the modal add/edit/delete workflows.
package handlers

import (
	"github.com/pocketbase/pocketbase/core"

	"takesell/editor"
	"takesell/templates"
)

// HandleCalculator renders the full calculator page.
func HandleCalculator(ed *editor.Editor) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data := buildCalculatorData(ed.View())
		component := templates.CalculatorPage(data)
		return component.Render(e.Request.Context(), e.Response)
	}
}

// renderMain re-renders the htmx-swapped calculator block from current state.
func renderMain(ed *editor.Editor, e *core.RequestEvent) error {
	data := buildCalculatorData(ed.View())
	component := templates.CalculatorMain(data)
	return component.Render(e.Request.Context(), e.Response)
}
