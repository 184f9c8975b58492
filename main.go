package main

import (
	"log"
	"os"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"quoteforms/collections"
	"quoteforms/config"
	"quoteforms/handlers"
	"quoteforms/services"
	"quoteforms/sheets"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	app := pocketbase.New()

	// Create collections and seed the catalog on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.Seed(app); err != nil {
			log.Printf("Warning: seed data failed: %v", err)
		}
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		// Pricing tables are static reference data; load them once.
		engines, err := services.LoadEngines(app)
		if err != nil {
			return err
		}

		client := sheets.NewClient(cfg.SubmitTimeout)

		// Serve static files from ./static
		se.Router.GET("/static/{path...}", apis.Static(os.DirFS("./static"), false))

		// ── Pages ───────────────────────────────────────────────
		se.Router.GET("/", handlers.HandleHome())
		se.Router.GET("/forms/{product}", handlers.HandleForm())

		// ── Quote API ───────────────────────────────────────────
		se.Router.POST("/api/price/{product}", handlers.HandlePrice(engines))
		se.Router.POST("/api/export/{product}/pdf", handlers.HandleExportPDF(engines))
		se.Router.POST("/api/export/{product}/excel", handlers.HandleExportExcel(engines))

		// The submit handler checks the method itself so that non-POST
		// callers get a 405 rather than a 404.
		se.Router.Any("/api/submit/{product}", handlers.HandleSubmit(cfg, client, engines))

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
