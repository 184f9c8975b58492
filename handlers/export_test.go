package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"spaces to hyphens", "Jo Smith", "Jo-Smith"},
		{"slashes to hyphens", "path/to/file", "path-to-file"},
		{"backslashes", "path\\to\\file", "path-to-file"},
		{"colons", "file:name", "file-name"},
		{"no special chars", "simple", "simple"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sanitizeFilename(tt.input)
			if got != tt.want {
				t.Errorf("sanitizeFilename(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestHandleExportPDF(t *testing.T) {
	app, engines := newSeededEngines(t)

	req := httptest.NewRequest(http.MethodPost, "/api/export/curtains/pdf", strings.NewReader(validSubmission))
	req.SetPathValue("product", "curtains")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleExportPDF(engines)(e); err != nil {
		t.Fatalf("HandleExportPDF() error = %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("Content-Type = %q", ct)
	}
	cd := rec.Header().Get("Content-Disposition")
	if !strings.Contains(cd, "attachment") || !strings.Contains(cd, "Jo-Smith") || !strings.Contains(cd, ".pdf") {
		t.Errorf("Content-Disposition = %q", cd)
	}
	if body := rec.Body.Bytes(); len(body) < 5 || string(body[:5]) != "%PDF-" {
		t.Error("response is not a PDF document")
	}
}

func TestHandleExportExcel(t *testing.T) {
	app, engines := newSeededEngines(t)

	req := httptest.NewRequest(http.MethodPost, "/api/export/curtains/excel", strings.NewReader(validSubmission))
	req.SetPathValue("product", "curtains")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleExportExcel(engines)(e); err != nil {
		t.Fatalf("HandleExportExcel() error = %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); !strings.Contains(ct, "spreadsheetml") {
		t.Errorf("Content-Type = %q", ct)
	}
	if body := rec.Body.Bytes(); len(body) < 2 || string(body[:2]) != "PK" {
		t.Error("response is not an xlsx archive")
	}
}

func TestHandleExportPDF_UnknownProduct(t *testing.T) {
	app, engines := newSeededEngines(t)

	req := httptest.NewRequest(http.MethodPost, "/api/export/awnings/pdf", strings.NewReader(validSubmission))
	req.SetPathValue("product", "awnings")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleExportPDF(engines)(e); err != nil {
		t.Fatalf("HandleExportPDF() error = %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestHandleExportExcel_UnknownProduct(t *testing.T) {
	app, engines := newSeededEngines(t)

	req := httptest.NewRequest(http.MethodPost, "/api/export/awnings/excel", strings.NewReader(validSubmission))
	req.SetPathValue("product", "awnings")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleExportExcel(engines)(e); err != nil {
		t.Fatalf("HandleExportExcel() error = %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestHandleExportPDF_BadBody(t *testing.T) {
	app, engines := newSeededEngines(t)

	req := httptest.NewRequest(http.MethodPost, "/api/export/curtains/pdf", strings.NewReader("{broken"))
	req.SetPathValue("product", "curtains")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleExportPDF(engines)(e); err != nil {
		t.Fatalf("HandleExportPDF() error = %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
