package services

import (
	"sort"
	"testing"
)

func TestProductBySlug(t *testing.T) {
	for _, slug := range []string{"curtains", "indoor-blinds", "plantation-shutters", "roller-shutters", "security-doors"} {
		s, ok := ProductBySlug(slug)
		if !ok {
			t.Errorf("ProductBySlug(%q) not found", slug)
			continue
		}
		if s.Slug != slug {
			t.Errorf("ProductBySlug(%q).Slug = %q", slug, s.Slug)
		}
		if s.Name == "" || s.ProductType == "" {
			t.Errorf("ProductBySlug(%q) has empty Name or ProductType: %+v", slug, s)
		}
		if len(s.Fields) == 0 {
			t.Errorf("ProductBySlug(%q) has no fields", slug)
		}
	}

	if _, ok := ProductBySlug("awnings"); ok {
		t.Error("ProductBySlug for unknown slug should not be found")
	}
}

func TestProductPricingAssignments(t *testing.T) {
	tests := []struct {
		slug   string
		priced bool
		scheme DropScheme
	}{
		{"curtains", true, DropCategorical},
		{"indoor-blinds", true, DropNumeric},
		{"plantation-shutters", false, 0},
		{"roller-shutters", false, 0},
		{"security-doors", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.slug, func(t *testing.T) {
			s, ok := ProductBySlug(tt.slug)
			if !ok {
				t.Fatalf("ProductBySlug(%q) not found", tt.slug)
			}
			if s.Priced() != tt.priced {
				t.Fatalf("Priced() = %v, want %v", s.Priced(), tt.priced)
			}
			if tt.priced && s.Pricing.Scheme != tt.scheme {
				t.Errorf("Scheme = %v, want %v", s.Pricing.Scheme, tt.scheme)
			}
			if tt.priced && (s.WidthField == "" || s.HeightField == "") {
				t.Errorf("priced product missing dimension fields: %+v", s)
			}
		})
	}
}

func TestFabricOptions(t *testing.T) {
	s, _ := ProductBySlug("indoor-blinds")
	opts := s.FabricOptions()

	if len(opts) < 10 {
		t.Fatalf("FabricOptions() returned %d options", len(opts))
	}
	if last := opts[len(opts)-1]; last != "Other" {
		t.Errorf("last option = %q, want Other", last)
	}
	named := opts[:len(opts)-1]
	if !sort.StringsAreSorted(named) {
		t.Errorf("fabric options not sorted: %v", named)
	}
	for _, o := range named {
		if CanonicalFabric(o) == "OTHER" {
			t.Errorf("Other appears before the final slot: %v", opts)
		}
	}
}

func TestColourOptions(t *testing.T) {
	s, _ := ProductBySlug("curtains")

	colours := s.ColourOptions("balmoral blockout")
	if len(colours) == 0 {
		t.Fatal("ColourOptions for known fabric is empty")
	}
	found := false
	for _, c := range colours {
		if c == "Jet" {
			found = true
		}
	}
	if !found {
		t.Errorf("ColourOptions(balmoral blockout) = %v, missing Jet", colours)
	}

	fallback := s.ColourOptions("Velvet Dream")
	if len(fallback) != 2 || fallback[0] != "To Confirm" || fallback[1] != "Other" {
		t.Errorf("ColourOptions for unknown fabric = %v", fallback)
	}
}

func TestFieldByName(t *testing.T) {
	s, _ := ProductBySlug("curtains")

	f, ok := s.FieldByName("fabric")
	if !ok {
		t.Fatal("fabric field not found")
	}
	if f.Type != FieldFabric || !f.Required {
		t.Errorf("fabric field = %+v", f)
	}

	if _, ok := s.FieldByName("nonexistent"); ok {
		t.Error("FieldByName for unknown field should not be found")
	}
}

func TestDeletePolicies(t *testing.T) {
	tests := []struct {
		slug        string
		allowFilled bool
	}{
		{"curtains", true},
		{"indoor-blinds", false},
		{"plantation-shutters", false},
		{"roller-shutters", true},
		{"security-doors", true},
	}

	for _, tt := range tests {
		s, _ := ProductBySlug(tt.slug)
		if s.AllowFilledDelete != tt.allowFilled {
			t.Errorf("%s: AllowFilledDelete = %v, want %v", tt.slug, s.AllowFilledDelete, tt.allowFilled)
		}
	}
}

func TestSquareMetres(t *testing.T) {
	tests := []struct {
		name   string
		width  float64
		drop   float64
		expect float64
	}{
		{"one square metre", 1000, 1000, 1},
		{"rounds to 2dp", 1234, 2100, 2.59},
		{"zero width", 0, 2100, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SquareMetres(tt.width, tt.drop); got != tt.expect {
				t.Errorf("SquareMetres(%v, %v) = %v, want %v", tt.width, tt.drop, got, tt.expect)
			}
		})
	}
}
