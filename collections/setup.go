// Package collections defines the PocketBase collections holding the static
// reference data behind the quote forms: the fabric catalog and the pricing
// tables. Quotes themselves are never stored; submissions go to the external
// spreadsheet.
package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// Setup programmatically creates/ensures the fabrics and price_rows
// collections exist.
func Setup(app *pocketbase.PocketBase) {
	ensureCollection(app, "fabrics", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "product", Required: true})
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.NumberField{Name: "group", Required: true})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "price_rows", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "product", Required: true})
		c.Fields.Add(&core.NumberField{Name: "group", Required: true})
		c.Fields.Add(&core.NumberField{Name: "width", Required: true})
		// drop_category carries the bracket label for categorical tables;
		// drop_max carries the bracket ceiling for numeric ones.
		c.Fields.Add(&core.TextField{Name: "drop_category", Required: false})
		c.Fields.Add(&core.NumberField{Name: "drop_max", Required: false})
		c.Fields.Add(&core.NumberField{Name: "cost_price", Required: false})
		c.Fields.Add(&core.NumberField{Name: "mrp", Required: true})
	})
}

// ensureCollection checks if a collection already exists by name. If it does,
// the existing collection is returned. Otherwise a new base collection is
// created, the addFields callback is invoked to populate its fields, and the
// collection is saved.
func ensureCollection(app *pocketbase.PocketBase, name string, addFields func(*core.Collection)) *core.Collection {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		log.Printf("Collection %q already exists, skipping creation.\n", name)
		return existing
	}

	collection := core.NewBaseCollection(name)
	addFields(collection)

	if err := app.Save(collection); err != nil {
		log.Fatalf("Failed to create collection %q: %v", name, err)
	}

	fmt.Printf("Created collection %q (id=%s)\n", name, collection.Id)
	return collection
}
