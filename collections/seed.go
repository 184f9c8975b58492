package collections

import (
	"fmt"
	"log"
	"math"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// fabricGroups maps every stocked fabric to its pricing group. The same
// catalog serves curtains and indoor blinds.
var fabricGroups = map[string]int{
	// Group 1
	"Focus":                  1,
	"Vibe":                   1,
	"Metroshade Light Filter": 1,
	"Sanctuary Light Filter": 1,

	// Group 2
	"One Screen":            2,
	"Kleenscreen":           2,
	"Sanctuary Blockout":    2,
	"Kew":                   2,
	"Matrix":                2,
	"Terra":                 2,
	"Etch":                  2,
	"Jersey Blockout":       2,
	"Jersey Light Filter":   2,
	"One Block":             2,
	"Balmoral Light Filter": 2,
	"Le Reve Light Filter":  2,
	"Mantra Light Filter":   2,
	"Skye Light Filter":     2,
	"Karma":                 2,
	"Duo Block":             2,
	"Ansari":                2,
	"Endota":                2,

	// Group 3
	"Zeno":                  3,
	"Le Reve Blockout":      3,
	"Mantra Blockout":       3,
	"Linesque Light Filter": 3,
	"Skye Blockout":         3,
	"Metroshade Blockout":   3,

	// Group 4
	"Linesque Blockout": 4,
	"Balmoral Blockout": 4,
	"Barbados":          4,
	"Icon FR":           4,
}

// Tabulated width brackets shared by both pricing tables, in millimetres.
var priceWidths = []float64{900, 1200, 1500, 1800, 2400, 3000}

// Cost rate in dollars per metre of width, by pricing group. MRP is the
// cost marked up by 80%.
var (
	curtainRates = map[int]float64{1: 150, 2: 180, 3: 210, 4: 240}
	blindRates   = map[int]float64{1: 120, 2: 140, 3: 160, 4: 180}
)

const (
	markup = 1.8

	// Curtains above the 3000mm drop cutoff cost 40% more.
	curtainTallFactor = 1.4

	// Blinds priced against the 6000mm drop bracket cost 50% more.
	blindTallFactor = 1.5
)

// Seed inserts the fabric catalog and pricing tables when the fabrics
// collection is empty. Safe to call on every startup.
func Seed(app *pocketbase.PocketBase) error {
	fabricsCol, err := app.FindCollectionByNameOrId("fabrics")
	if err != nil {
		return fmt.Errorf("seed: could not find fabrics collection: %w", err)
	}
	existing, err := app.FindAllRecords(fabricsCol)
	if err != nil {
		return fmt.Errorf("seed: could not query fabrics: %w", err)
	}
	if len(existing) > 0 {
		return nil // already seeded
	}

	log.Println("seed: fabrics collection is empty – inserting seed data …")

	priceRowsCol, err := app.FindCollectionByNameOrId("price_rows")
	if err != nil {
		return fmt.Errorf("seed: could not find price_rows collection: %w", err)
	}

	// ── fabric catalog for both priced products ──────────────────────
	for _, product := range []string{"curtains", "indoor-blinds"} {
		for name, group := range fabricGroups {
			r := core.NewRecord(fabricsCol)
			r.Set("product", product)
			r.Set("name", name)
			r.Set("group", group)
			if err := app.Save(r); err != nil {
				return fmt.Errorf("seed: save fabric %q: %w", name, err)
			}
		}
	}

	// ── curtains: categorical drop brackets ──────────────────────────
	for group, rate := range curtainRates {
		for _, bracket := range []struct {
			category string
			factor   float64
		}{
			{"Drop<=3000", 1},
			{"Drop>3000", curtainTallFactor},
		} {
			for _, width := range priceWidths {
				cost := round2(rate * bracket.factor * width / 1000)
				r := core.NewRecord(priceRowsCol)
				r.Set("product", "curtains")
				r.Set("group", group)
				r.Set("width", width)
				r.Set("drop_category", bracket.category)
				r.Set("cost_price", cost)
				r.Set("mrp", round2(cost*markup))
				if err := app.Save(r); err != nil {
					return fmt.Errorf("seed: save curtains price row: %w", err)
				}
			}
		}
	}

	// ── indoor blinds: numeric drop brackets ─────────────────────────
	for group, rate := range blindRates {
		for _, bracket := range []struct {
			dropMax float64
			factor  float64
		}{
			{3000, 1},
			{6000, blindTallFactor},
		} {
			for _, width := range priceWidths {
				cost := round2(rate * bracket.factor * width / 1000)
				r := core.NewRecord(priceRowsCol)
				r.Set("product", "indoor-blinds")
				r.Set("group", group)
				r.Set("width", width)
				r.Set("drop_max", bracket.dropMax)
				r.Set("cost_price", cost)
				r.Set("mrp", round2(cost*markup))
				if err := app.Save(r); err != nil {
					return fmt.Errorf("seed: save indoor-blinds price row: %w", err)
				}
			}
		}
	}

	log.Println("seed: done")
	return nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
