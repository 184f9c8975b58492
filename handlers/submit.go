package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"quoteforms/config"
	"quoteforms/services"
	"quoteforms/sheets"
)

// HandleSubmit returns a handler that validates a quote submission,
// recomputes its prices, and forwards it to the product's spreadsheet
// endpoint.
func HandleSubmit(cfg *config.Config, client *sheets.Client, engines map[string]*services.Engine) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if e.Request.Method != http.MethodPost {
			return e.JSON(http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		}

		slug := e.Request.PathValue("product")
		schema, ok := services.ProductBySlug(slug)
		if !ok {
			return e.JSON(http.StatusNotFound, map[string]string{"error": "unknown product"})
		}

		var payload SubmissionPayload
		if err := json.NewDecoder(e.Request.Body).Decode(&payload); err != nil {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		}

		quote := buildQuote(schema, engines[slug], payload)

		if errs := services.ValidateCustomer(quote.Customer); len(errs) > 0 {
			return e.JSON(http.StatusBadRequest, map[string]any{"errors": errs})
		}

		url := cfg.SheetURL(slug)
		if url == "" {
			log.Printf("submit: no spreadsheet endpoint configured for %s", slug)
			return e.JSON(http.StatusInternalServerError, map[string]string{"error": "submission endpoint not configured"})
		}

		err := client.Submit(e.Request.Context(), url, sheetPayload(schema, quote))
		switch {
		case errors.Is(err, sheets.ErrTimeout):
			log.Printf("submit: %s timed out", slug)
			return e.JSON(http.StatusGatewayTimeout, map[string]string{"error": "spreadsheet did not respond in time"})
		case err != nil:
			log.Printf("submit: %s failed: %v", slug, err)
			return e.JSON(http.StatusInternalServerError, map[string]string{"error": "submission failed"})
		}

		resp := map[string]any{"result": "success"}
		if schema.Priced() {
			resp["totalPrice"] = quote.TotalPrice
		}
		return e.JSON(http.StatusOK, resp)
	}
}
