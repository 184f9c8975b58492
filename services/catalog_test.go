package services

import (
	"reflect"
	"testing"
)

func TestCanonicalFabric(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{"already canonical", "BALMORAL BLOCKOUT", "BALMORAL BLOCKOUT"},
		{"mixed case", "Balmoral Blockout", "BALMORAL BLOCKOUT"},
		{"surrounding whitespace", "  vibe  ", "VIBE"},
		{"inner whitespace collapsed", "Le   Reve\tBlockout", "LE REVE BLOCKOUT"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanonicalFabric(tt.input); got != tt.expect {
				t.Errorf("CanonicalFabric(%q) = %q, want %q", tt.input, got, tt.expect)
			}
		})
	}
}

func TestStaticCatalog_GroupFor(t *testing.T) {
	c := NewStaticCatalog(map[string]int{
		"Balmoral Blockout": 1,
		"One Screen":        2,
		"Other":             9,
		"To Confirm":        9,
	})

	tests := []struct {
		name   string
		fabric string
		group  int
		found  bool
	}{
		{"exact", "Balmoral Blockout", 1, true},
		{"case insensitive", "ONE screen", 2, true},
		{"unknown", "Velvet Dream", 0, false},
		{"other never resolves", "Other", 0, false},
		{"to confirm never resolves", "to confirm", 0, false},
		{"empty never resolves", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			group, found := c.GroupFor(tt.fabric)
			if group != tt.group || found != tt.found {
				t.Errorf("GroupFor(%q) = (%d, %v), want (%d, %v)",
					tt.fabric, group, found, tt.group, tt.found)
			}
		})
	}

	// Sentinel entries must not be stored at all.
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
}

func TestStaticPriceTable(t *testing.T) {
	table := NewStaticPriceTable([]PriceRow{
		{Group: 1, DropKey: "3000", Width: 1800, CostPrice: 400, MRP: 720},
		{Group: 1, DropKey: "3000", Width: 900, CostPrice: 250, MRP: 450},
		{Group: 1, DropKey: "3000", Width: 1200, CostPrice: 300, MRP: 540},
		{Group: 1, DropKey: "6000", Width: 900, CostPrice: 320, MRP: 576},
		{Group: 2, DropKey: "3000", Width: 900, CostPrice: 280, MRP: 504},
	})

	widths := table.Widths(1, "3000")
	if want := []float64{900, 1200, 1800}; !reflect.DeepEqual(widths, want) {
		t.Errorf("Widths(1, 3000) = %v, want %v", widths, want)
	}

	if got := table.Widths(7, "3000"); len(got) != 0 {
		t.Errorf("Widths for unknown group = %v, want empty", got)
	}

	row, ok := table.Row(1, "3000", 1200)
	if !ok {
		t.Fatal("Row(1, 3000, 1200) not found")
	}
	if row.MRP != 540 || row.CostPrice != 300 {
		t.Errorf("Row(1, 3000, 1200) = %+v", row)
	}

	if _, ok := table.Row(1, "3000", 1000); ok {
		t.Error("Row for untabulated width should not be found")
	}
}

func TestStaticPriceTable_DuplicateRowsKeepFirst(t *testing.T) {
	table := NewStaticPriceTable([]PriceRow{
		{Group: 1, DropKey: "3000", Width: 900, MRP: 450},
		{Group: 1, DropKey: "3000", Width: 900, MRP: 999},
	})

	if table.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", table.Len())
	}
	row, _ := table.Row(1, "3000", 900)
	if row.MRP != 450 {
		t.Errorf("duplicate row overwrote first entry: MRP = %v, want 450", row.MRP)
	}
	if widths := table.Widths(1, "3000"); len(widths) != 1 {
		t.Errorf("Widths = %v, want a single entry", widths)
	}
}
