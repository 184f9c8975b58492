package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase/core"

	"quoteforms/services"
	"quoteforms/templates"
)

// HandleHome returns a handler that renders the product picker page.
func HandleHome() func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data := templates.HomeData{}
		for _, s := range services.Products {
			data.Products = append(data.Products, templates.ProductLink{Slug: s.Slug, Name: s.Name})
		}
		component := templates.HomePage(data)
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleForm returns a handler that renders a product's quote form page.
func HandleForm() func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		slug := e.Request.PathValue("product")
		schema, ok := services.ProductBySlug(slug)
		if !ok {
			return e.String(http.StatusNotFound, "Unknown product")
		}

		schemaJSON, err := json.Marshal(clientSchema(schema))
		if err != nil {
			log.Printf("form: could not marshal schema for %s: %v", slug, err)
			return e.String(http.StatusInternalServerError, "Internal error")
		}

		data := templates.FormData{
			Slug:       schema.Slug,
			Name:       schema.Name,
			Priced:     schema.Priced(),
			Date:       time.Now().Format("2006-01-02"),
			SchemaJSON: string(schemaJSON),
		}
		component := templates.FormPage(data)
		return component.Render(e.Request.Context(), e.Response)
	}
}

type clientField struct {
	Name     string   `json:"name"`
	Label    string   `json:"label"`
	Type     string   `json:"type"`
	Options  []string `json:"options,omitempty"`
	Required bool     `json:"required,omitempty"`
}

type clientSchemaData struct {
	Slug              string              `json:"slug"`
	Name              string              `json:"name"`
	Priced            bool                `json:"priced"`
	AllowFilledDelete bool                `json:"allowFilledDelete"`
	WidthField        string              `json:"widthField,omitempty"`
	HeightField       string              `json:"heightField,omitempty"`
	SquareMetre       bool                `json:"squareMetre,omitempty"`
	Fields            []clientField       `json:"fields"`
	Fabrics           []string            `json:"fabrics,omitempty"`
	Colours           map[string][]string `json:"colours,omitempty"`
}

// clientSchema converts a product schema into the JSON document the form
// script consumes.
func clientSchema(schema services.ProductSchema) clientSchemaData {
	data := clientSchemaData{
		Slug:              schema.Slug,
		Name:              schema.Name,
		Priced:            schema.Priced(),
		AllowFilledDelete: schema.AllowFilledDelete,
		WidthField:        schema.WidthField,
		HeightField:       schema.HeightField,
		SquareMetre:       schema.SquareMetre,
	}

	for _, f := range schema.Fields {
		data.Fields = append(data.Fields, clientField{
			Name:     f.Name,
			Label:    f.Label,
			Type:     fieldTypeName(f.Type),
			Options:  f.Options,
			Required: f.Required,
		})
	}

	if len(schema.FabricColours) > 0 {
		data.Fabrics = schema.FabricOptions()
		data.Colours = make(map[string][]string, len(data.Fabrics))
		for _, fabric := range data.Fabrics {
			data.Colours[fabric] = schema.ColourOptions(fabric)
		}
	}

	return data
}

func fieldTypeName(t services.FieldType) string {
	switch t {
	case services.FieldNumber:
		return "number"
	case services.FieldSelect:
		return "select"
	case services.FieldFabric:
		return "fabric"
	case services.FieldColour:
		return "colour"
	default:
		return "text"
	}
}
