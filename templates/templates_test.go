package templates

import (
	"context"
	"strings"
	"testing"
)

func TestHomePage(t *testing.T) {
	data := HomeData{Products: []ProductLink{
		{Slug: "curtains", Name: "Curtains"},
		{Slug: "security-doors", Name: "Security Doors"},
	}}

	var sb strings.Builder
	if err := HomePage(data).Render(context.Background(), &sb); err != nil {
		t.Fatalf("render error: %v", err)
	}
	out := sb.String()

	for _, want := range []string{
		"<!DOCTYPE html>",
		`href="/forms/curtains"`,
		"Curtains",
		"Security Doors",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestFormPage(t *testing.T) {
	data := FormData{
		Slug:       "curtains",
		Name:       "Curtains",
		Priced:     true,
		Date:       "2025-06-14",
		SchemaJSON: `{"slug":"curtains"}`,
	}

	var sb strings.Builder
	if err := FormPage(data).Render(context.Background(), &sb); err != nil {
		t.Fatalf("render error: %v", err)
	}
	out := sb.String()

	for _, want := range []string{
		"Curtains Quote Request",
		`data-product="curtains"`,
		`value="2025-06-14"`,
		`id="schema-data">{"slug":"curtains"}</script>`,
		"Discount %",
		"/static/app.js",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestFormPage_UnpricedOmitsTotals(t *testing.T) {
	data := FormData{Slug: "security-doors", Name: "Security Doors", SchemaJSON: "{}"}

	var sb strings.Builder
	if err := FormPage(data).Render(context.Background(), &sb); err != nil {
		t.Fatalf("render error: %v", err)
	}
	if strings.Contains(sb.String(), "Discount %") {
		t.Error("unpriced form rendered the pricing fieldset")
	}
}

func TestFormPage_EscapesName(t *testing.T) {
	data := FormData{Slug: "curtains", Name: `<script>alert(1)</script>`, SchemaJSON: "{}"}

	var sb strings.Builder
	if err := FormPage(data).Render(context.Background(), &sb); err != nil {
		t.Fatalf("render error: %v", err)
	}
	if strings.Contains(sb.String(), "<script>alert(1)</script>") {
		t.Error("product name was not escaped")
	}
}
