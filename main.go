package main

import (
	"context"
	"log"
	"os"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"takesell/collections"
	"takesell/editor"
	"takesell/handlers"
	"takesell/store"
)

func main() {
	app := pocketbase.New()

	ctx, cancel := context.WithCancel(context.Background())
	fabrics := store.New(app)
	ed := editor.New(fabrics)

	// Create collections and seed data on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.Seed(app); err != nil {
			log.Printf("Warning: seed data failed: %v", err)
		}
		if err := ed.Start(ctx); err != nil {
			return err
		}
		return se.Next()
	})

	app.OnTerminate().BindFunc(func(te *core.TerminateEvent) error {
		cancel()
		if done := ed.Done(); done != nil {
			<-done
		}
		return te.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		// Serve static files from ./static
		se.Router.GET("/static/{path...}", apis.Static(os.DirFS("./static"), false))

		// Calculator page and state changes
		se.Router.GET("/", handlers.HandleCalculator(ed))
		se.Router.POST("/select", handlers.HandleSelect(ed))
		se.Router.POST("/mode", handlers.HandleMode(ed))
		se.Router.POST("/quantity", handlers.HandleQuantity(ed))
		se.Router.POST("/toggle-items", handlers.HandleToggleItems(ed))

		// Fabric CRUD modals
		se.Router.GET("/fabrics/new", handlers.HandleFabricNew(ed))
		se.Router.POST("/fabrics", handlers.HandleFabricCreate(ed))
		se.Router.GET("/fabrics/edit", handlers.HandleFabricEdit(ed))
		se.Router.POST("/fabrics/save", handlers.HandleFabricSave(ed))
		se.Router.GET("/fabrics/delete", handlers.HandleFabricDeletePrompt(ed))
		se.Router.POST("/fabrics/delete", handlers.HandleFabricDelete(ed))
		se.Router.GET("/modal/close", handlers.HandleModalClose(ed))

		// Quotation export
		se.Router.GET("/export/excel", handlers.HandleQuoteExportExcel(ed))
		se.Router.GET("/export/pdf", handlers.HandleQuoteExportPDF(ed))

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
