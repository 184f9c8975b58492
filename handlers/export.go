package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase/core"

	"quoteforms/services"
)

// decodeExportQuote parses the submission body and recomputes it into a
// quote and its export data. On failure it returns the HTTP status the
// caller should respond with.
func decodeExportQuote(e *core.RequestEvent, engines map[string]*services.Engine) (services.ProductSchema, services.QuoteExport, int, error) {
	slug := e.Request.PathValue("product")
	schema, ok := services.ProductBySlug(slug)
	if !ok {
		return services.ProductSchema{}, services.QuoteExport{}, http.StatusNotFound, fmt.Errorf("unknown product %q", slug)
	}

	var payload SubmissionPayload
	if err := json.NewDecoder(e.Request.Body).Decode(&payload); err != nil {
		return services.ProductSchema{}, services.QuoteExport{}, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err)
	}

	quote := buildQuote(schema, engines[slug], payload)
	return schema, services.BuildQuoteExport(schema, quote), 0, nil
}

// sanitizeFilename removes characters that are unsafe for filenames.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "/", "-")
	s = strings.ReplaceAll(s, "\\", "-")
	s = strings.ReplaceAll(s, ":", "-")
	return s
}

func exportFilename(schema services.ProductSchema, data services.QuoteExport, ext string) string {
	name := data.CustomerName
	if name == "" {
		name = "Quote"
	}
	return fmt.Sprintf("%s_%s_%d.%s", sanitizeFilename(schema.Name), sanitizeFilename(name), time.Now().Year(), ext)
}

// HandleExportPDF returns a handler that renders the posted quote as a PDF
// download.
func HandleExportPDF(engines map[string]*services.Engine) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		schema, data, status, err := decodeExportQuote(e, engines)
		if err != nil {
			return e.String(status, err.Error())
		}

		pdfBytes, err := services.GeneratePDF(data)
		if err != nil {
			log.Printf("export: PDF generation failed: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate PDF")
		}

		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, exportFilename(schema, data, "pdf")))
		e.Response.Write(pdfBytes)
		return nil
	}
}

// HandleExportExcel returns a handler that renders the posted quote as an
// Excel download.
func HandleExportExcel(engines map[string]*services.Engine) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		schema, data, status, err := decodeExportQuote(e, engines)
		if err != nil {
			return e.String(status, err.Error())
		}

		xlsxBytes, err := services.GenerateExcel(data)
		if err != nil {
			log.Printf("export: Excel generation failed: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate Excel")
		}

		e.Response.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, exportFilename(schema, data, "xlsx")))
		e.Response.Write(xlsxBytes)
		return nil
	}
}
