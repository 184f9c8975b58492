package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pocketbase/pocketbase"
)

// PriceRow is one row of a product's static pricing table: the retail and
// cost price for a (group, drop bracket, width bracket) cell.
type PriceRow struct {
	Group     int
	DropKey   string
	Width     float64
	CostPrice float64
	MRP       float64
}

// CatalogProvider resolves a fabric/material name to its pricing group.
type CatalogProvider interface {
	GroupFor(fabric string) (int, bool)
}

// PriceTableProvider exposes the tabulated width brackets and rows for a
// (group, drop bracket) pair. Widths are sorted ascending.
type PriceTableProvider interface {
	Widths(group int, dropKey string) []float64
	Row(group int, dropKey string, width float64) (PriceRow, bool)
}

// CanonicalFabric normalizes a fabric name for catalog lookups: trimmed,
// inner whitespace collapsed, upper-cased. The original forms disagreed on
// casing between variants; canonical matching is adopted uniformly.
func CanonicalFabric(name string) string {
	return strings.ToUpper(strings.Join(strings.Fields(name), " "))
}

// sentinel fabrics that exist in dropdowns but carry no pricing
var fabricSentinels = map[string]bool{
	"OTHER":      true,
	"TO CONFIRM": true,
	"":           true,
}

// StaticCatalog is an immutable in-memory fabric catalog.
type StaticCatalog struct {
	groups map[string]int
}

// NewStaticCatalog builds a catalog from fabric name -> group entries.
// Keys are canonicalized; sentinel names are dropped.
func NewStaticCatalog(entries map[string]int) *StaticCatalog {
	groups := make(map[string]int, len(entries))
	for name, group := range entries {
		key := CanonicalFabric(name)
		if fabricSentinels[key] {
			continue
		}
		groups[key] = group
	}
	return &StaticCatalog{groups: groups}
}

// GroupFor implements CatalogProvider.
func (c *StaticCatalog) GroupFor(fabric string) (int, bool) {
	key := CanonicalFabric(fabric)
	if fabricSentinels[key] {
		return 0, false
	}
	group, ok := c.groups[key]
	return group, ok
}

// Len reports the number of catalog entries.
func (c *StaticCatalog) Len() int { return len(c.groups) }

type priceCellKey struct {
	group   int
	dropKey string
	width   float64
}

type widthSetKey struct {
	group   int
	dropKey string
}

// StaticPriceTable is an immutable in-memory pricing table.
type StaticPriceTable struct {
	rows   map[priceCellKey]PriceRow
	widths map[widthSetKey][]float64
}

// NewStaticPriceTable indexes rows by (group, drop bracket, width) and
// precomputes the ascending width list per (group, drop bracket).
func NewStaticPriceTable(rows []PriceRow) *StaticPriceTable {
	t := &StaticPriceTable{
		rows:   make(map[priceCellKey]PriceRow, len(rows)),
		widths: make(map[widthSetKey][]float64),
	}
	for _, row := range rows {
		cell := priceCellKey{row.Group, row.DropKey, row.Width}
		if _, dup := t.rows[cell]; dup {
			continue
		}
		t.rows[cell] = row
		set := widthSetKey{row.Group, row.DropKey}
		t.widths[set] = append(t.widths[set], row.Width)
	}
	for key := range t.widths {
		sort.Float64s(t.widths[key])
	}
	return t
}

// Widths implements PriceTableProvider.
func (t *StaticPriceTable) Widths(group int, dropKey string) []float64 {
	return t.widths[widthSetKey{group, dropKey}]
}

// Row implements PriceTableProvider.
func (t *StaticPriceTable) Row(group int, dropKey string, width float64) (PriceRow, bool) {
	row, ok := t.rows[priceCellKey{group, dropKey, width}]
	return row, ok
}

// Len reports the number of table rows.
func (t *StaticPriceTable) Len() int { return len(t.rows) }

// LoadCatalog reads a product's fabric catalog from the fabrics collection
// into an immutable StaticCatalog. Called once at startup.
func LoadCatalog(app *pocketbase.PocketBase, product string) (*StaticCatalog, error) {
	records, err := app.FindRecordsByFilter("fabrics", "product = {:product}", "name", 0, 0,
		map[string]any{"product": product})
	if err != nil {
		return nil, fmt.Errorf("load catalog for %s: %w", product, err)
	}

	entries := make(map[string]int, len(records))
	for _, r := range records {
		entries[r.GetString("name")] = r.GetInt("group")
	}
	return NewStaticCatalog(entries), nil
}

// LoadPriceTable reads a product's pricing rows from the price_rows
// collection into an immutable StaticPriceTable. The drop bracket key is
// derived from the product's drop scheme: the textual drop_category for
// categorical tables, the numeric drop_max for numeric ones.
func LoadPriceTable(app *pocketbase.PocketBase, product string, cfg PricingConfig) (*StaticPriceTable, error) {
	records, err := app.FindRecordsByFilter("price_rows", "product = {:product}", "width", 0, 0,
		map[string]any{"product": product})
	if err != nil {
		return nil, fmt.Errorf("load price table for %s: %w", product, err)
	}

	rows := make([]PriceRow, 0, len(records))
	for _, r := range records {
		dropKey := r.GetString("drop_category")
		if cfg.Scheme == DropNumeric {
			dropKey, err = cfg.DropKey(r.GetFloat("drop_max"))
			if err != nil {
				return nil, fmt.Errorf("price table for %s: %w", product, err)
			}
		}
		rows = append(rows, PriceRow{
			Group:     r.GetInt("group"),
			DropKey:   dropKey,
			Width:     r.GetFloat("width"),
			CostPrice: r.GetFloat("cost_price"),
			MRP:       r.GetFloat("mrp"),
		})
	}
	return NewStaticPriceTable(rows), nil
}

// LoadEngine assembles the pricing engine for a priced product, or returns
// (nil, nil) for products without a pricing table.
func LoadEngine(app *pocketbase.PocketBase, schema ProductSchema) (*Engine, error) {
	if schema.Pricing == nil {
		return nil, nil
	}
	catalog, err := LoadCatalog(app, schema.Slug)
	if err != nil {
		return nil, err
	}
	table, err := LoadPriceTable(app, schema.Slug, *schema.Pricing)
	if err != nil {
		return nil, err
	}
	return NewEngine(catalog, table, *schema.Pricing), nil
}

// LoadEngines builds engines for every priced product, keyed by slug.
func LoadEngines(app *pocketbase.PocketBase) (map[string]*Engine, error) {
	engines := make(map[string]*Engine)
	for _, schema := range Products {
		engine, err := LoadEngine(app, schema)
		if err != nil {
			return nil, err
		}
		if engine != nil {
			engines[schema.Slug] = engine
		}
	}
	return engines, nil
}
