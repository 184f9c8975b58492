package services

import "sort"

// FieldType selects the input widget rendered for a window field.
type FieldType int

const (
	FieldText FieldType = iota
	FieldNumber
	FieldSelect

	// FieldFabric and FieldColour are selects whose options come from the
	// product's fabric/colour catalog rather than a fixed list.
	FieldFabric
	FieldColour
)

// Field is one window-level form field in a product schema.
type Field struct {
	Name     string
	Label    string
	Type     FieldType
	Options  []string
	Required bool
}

// ProductSchema drives one product's quote form: the ordered window fields,
// the option sets, and the pricing configuration. The original site carried
// a near-duplicate hand-written form per product; here a single form engine
// renders all of them from this description.
type ProductSchema struct {
	Slug        string
	Name        string
	ProductType string // productType literal sent in the submission payload

	Fields []Field

	// WidthField/HeightField name the dimension fields used for pricing
	// and the square-metre calculation. Empty when not applicable.
	WidthField  string
	HeightField string

	// Pricing is nil for products quoted manually (no pricing table).
	Pricing *PricingConfig

	// AllowFilledDelete permits deleting a window that already has data.
	// Products with it false keep the original "only blank windows can be
	// deleted" behaviour.
	AllowFilledDelete bool

	// FabricColours maps fabric names to their colour options, for products
	// with fabric/colour selects.
	FabricColours map[string][]string

	// SquareMetre enables the derived width x drop area field.
	SquareMetre bool
}

// Priced reports whether the product has a pricing table.
func (s ProductSchema) Priced() bool { return s.Pricing != nil }

// FabricOptions returns the fabric dropdown options sorted alphabetically
// with the OTHER sentinel last, matching the original forms.
func (s ProductSchema) FabricOptions() []string {
	opts := make([]string, 0, len(s.FabricColours))
	for name := range s.FabricColours {
		if CanonicalFabric(name) == "OTHER" {
			continue
		}
		opts = append(opts, name)
	}
	sort.Strings(opts)
	return append(opts, "Other")
}

// ColourOptions returns the colour options for a fabric, or the sentinel
// pair when the fabric is unknown.
func (s ProductSchema) ColourOptions(fabric string) []string {
	for name, colours := range s.FabricColours {
		if CanonicalFabric(name) == CanonicalFabric(fabric) {
			return colours
		}
	}
	return []string{"To Confirm", "Other"}
}

// FieldByName returns the schema field with the given name.
func (s ProductSchema) FieldByName(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// ProductBySlug returns the schema for a product form slug.
func ProductBySlug(slug string) (ProductSchema, bool) {
	for _, s := range Products {
		if s.Slug == slug {
			return s, true
		}
	}
	return ProductSchema{}, false
}

// SquareMetres converts millimetre width and drop to square metres, rounded
// to 2 decimal places.
func SquareMetres(width, drop float64) float64 {
	return Round2((width / 1000) * (drop / 1000))
}

// fabricColours maps every stocked fabric to its colour range. Shared by the
// curtains and indoor blinds forms.
var fabricColours = map[string][]string{
	"Ansari":                 {"Ash", "Charcoal", "Coconut", "Fog", "Fossil", "Lead", "Slate", "Stone", "To Confirm", "Other"},
	"Balmoral Blockout":      {"Armour", "Birch", "Bourneville", "Chrome", "Concrete", "Dove", "Jet", "Pearl", "Platinum", "Putty", "Pyrite", "Steel", "To Confirm", "White", "Other"},
	"Balmoral Light Filter":  {"Driftwood", "Dune", "Paperbark", "Pumice", "Sand", "Surf", "To Confirm", "Other"},
	"Etch":                   {"Felt", "Mono", "Pencil", "Plate", "Steel", "Tissue", "To Confirm", "Zinc", "Other"},
	"Focus":                  {"Ash", "Bay", "Carbon", "Chalk", "Cloud", "Coal", "Dove", "Drift", "Ebony", "Espresso", "Feather", "Fig - Discontinued", "Magnetic", "Mist", "Oyster", "Polar", "Powder - Discontinued", "Sandstone - Discontinued", "Shell", "Tempest", "To Confirm", "White", "Other"},
	"Icon FR":                {"Ceylon", "Flora", "Harbour", "Jet", "Leather", "Liquorice", "Maritime", "Osprey", "Papyrus", "Sail", "Sculpture", "Sea Mist", "Solar", "Stonewash", "Taurus", "To Confirm", "Other"},
	"Kleenscreen":            {"Alloy", "Barley", "Black", "Black Pearl", "Charcoal", "Graphite", "Grey", "Ivory", "Pewter", "Pure White", "Shale", "Silver Pearl", "To Confirm", "White Pearl", "Other"},
	"Le Reve Blockout":       {"Chalk", "Concrete", "Crystal", "Graphite", "Marble", "Mink", "Onyx", "Pewter", "Sand", "Shell", "To Confirm", "Other"},
	"Le Reve Light Filter":   {"Chalk", "Concrete", "Crystal", "Graphite", "Marble", "Mink", "Onyx", "Pewter", "Sand", "Shell", "To Confirm", "Other"},
	"Linesque Blockout":      {"Almond", "Aspen", "Blanco", "Breeze", "Denim", "Dove", "Fig", "Fleece", "Fossil", "Raffia", "Soba", "To Confirm", "Vine", "Other"},
	"Linesque Light Filter":  {"Chestnut", "Delta", "Granite", "Hazel", "Levi", "Lily", "Oatcake", "Owl", "Stonewash", "To Confirm", "Trellis", "Wicker", "Winter", "Other"},
	"Mantra Blockout":        {"Cotton", "Flint", "Opal", "Parchment", "Pebble", "Seagrass", "Seed Pearl", "Sesame", "Shale", "Spice", "To Confirm", "Other"},
	"Mantra Light Filter":    {"Cotton", "Parchment", "Pebble", "Seagrass", "Seed Pearl", "Sesame", "Shale", "To Confirm", "Other"},
	"Metroshade Blockout":    {"Black", "Dove/White", "Ecru", "Ice Grey", "Moonstone", "Nougat", "Pebble", "Quill", "Seal", "Slate", "Storm", "To Confirm", "Whitewash", "Other"},
	"Metroshade Light Filter": {"Dove/White", "Ecru", "Ice Grey", "Moonstone", "Nougat", "Quill", "To Confirm", "Other"},
	"One Screen":             {"Black", "Charcoal", "Dune", "Grey", "Gunmetal", "Ice", "Linen Bronze", "Mercury", "Sand", "Silver Black", "To Confirm", "Wallaby", "White", "Other"},
	"Sanctuary Blockout":     {"Baltic", "Ceramic", "Lava", "Marble", "Mineral", "Plaster", "Suede", "To Confirm", "Truffle", "Whitewash", "Other"},
	"Sanctuary Light Filter": {"Baltic", "Ceramic", "Lava", "Marble", "Mineral", "Plaster", "Slate", "Suede", "To Confirm", "Whitewash", "Other"},
	"Skye Blockout":          {"Blazer", "Chiffon", "Chrome", "Earl Grey", "Oyster", "Porcelain", "Raven", "Sail", "Swan", "To Confirm", "Other"},
	"Skye Light Filter":      {"Blazer", "Chiffon", "Chrome", "Earl Grey", "Oyster", "Porcelain", "Raven", "Sail", "Swan", "To Confirm", "Other"},
	"Terra":                  {"Aria", "Ela", "Flint", "Hazel", "Kai", "Misty", "Ridge", "Stella", "Storm", "To Confirm", "Willow", "Other"},
	"Vibe":                   {"Alloy", "Birch", "Bistro", "Chateau", "Clay", "Cloud", "Coal", "Dune", "Ice", "Lace", "Limestone", "Linen", "Loft", "Mist", "Nimbus", "Odessey", "Orient", "Porcelain", "Pure", "Spirit Discontinued", "Stone", "Storm", "Surf", "Terrace", "To Confirm", "Tundra", "Whisper", "Zircon", "Other"},
	"Zeno":                   {"Barranca", "Cusco", "Ica", "Lima", "Mala", "Puno", "Tarma", "To Confirm", "Other"},
	"Other":                  {"To Confirm", "Other"},
}

// Products describes every quote form the site offers.
var Products = []ProductSchema{
	{
		Slug:        "curtains",
		Name:        "Curtains",
		ProductType: "Curtains",
		Fields: []Field{
			{Name: "roomName", Label: "Room", Type: FieldText},
			{Name: "width", Label: "Width (mm)", Type: FieldNumber, Required: true},
			{Name: "height", Label: "Height (mm)", Type: FieldNumber, Required: true},
			{Name: "fabric", Label: "Fabric", Type: FieldFabric, Required: true},
			{Name: "color", Label: "Colour", Type: FieldColour, Required: true},
			{Name: "headingType", Label: "Heading Type", Type: FieldSelect, Options: []string{"Double Pinch Pleat", "Wave Fold (S-fold)"}},
			{Name: "track", Label: "Track", Type: FieldSelect, Options: []string{"Normal", "Designer"}},
			{Name: "trackColour", Label: "Track Colour", Type: FieldSelect, Options: []string{"Black", "White", "Anodised Silver", "N/A"}},
			{Name: "control", Label: "Control", Type: FieldSelect, Options: []string{"Centre Opening", "Full Right", "Full Left"}},
			{Name: "fixing", Label: "Fixing", Type: FieldSelect, Options: []string{"Top Fix", "Double Extension Face Fix", "Double Face Fix", "Single Face Fix"}},
			{Name: "comments", Label: "Comments", Type: FieldText},
		},
		WidthField:  "width",
		HeightField: "height",
		Pricing: &PricingConfig{
			Scheme: DropCategorical,
			Cutoff: 3000,
		},
		AllowFilledDelete: true,
		FabricColours:     fabricColours,
	},
	{
		Slug:        "indoor-blinds",
		Name:        "Indoor Blinds",
		ProductType: "Indoor Blinds",
		Fields: []Field{
			{Name: "roomName", Label: "Room Name", Type: FieldText},
			{Name: "subcategory", Label: "Subcategory", Type: FieldText},
			{Name: "fabric", Label: "Fabric", Type: FieldFabric, Required: true},
			{Name: "color", Label: "Colour", Type: FieldColour, Required: true},
			{Name: "width", Label: "Width (mm)", Type: FieldNumber, Required: true},
			{Name: "height", Label: "Height (mm)", Type: FieldNumber, Required: true},
			{Name: "control", Label: "Control", Type: FieldSelect, Options: []string{"Left", "Right"}},
			{Name: "fit", Label: "Fit", Type: FieldSelect, Options: []string{"Face", "Recess"}},
			{Name: "roll", Label: "Roll", Type: FieldSelect, Options: []string{"Standard", "Reverse"}},
			{Name: "motorised", Label: "Motorised", Type: FieldSelect, Options: []string{"Yes", "No"}},
			{Name: "bottomFinish", Label: "Bottom Finish", Type: FieldSelect, Options: []string{"N/A", "D30", "D30 Silent", "Flat", "Heavy Duty", "Oval", "S-1", "S-5", "S-6", "S-7", "S-8", "S-9"}},
			{Name: "baseRail", Label: "Base Rail", Type: FieldSelect, Options: []string{"N/A", "Anodised", "Bone", "Pure White", "Sandstone", "Satin Black"}},
			{Name: "componentColour", Label: "Component Colour", Type: FieldSelect, Options: []string{"N/A", "Black", "White", "Grey", "Sandstone"}},
			{Name: "brackets", Label: "Brackets", Type: FieldSelect, Options: []string{"N/A", "Slim Combo Top Back", "Slim Combo Top Back to suit", "Slim Combo Top Front to suit", "Slim Combo Top front", "Dual Opposite side", "Dual Same Side to suit", "Dual Same side", "Dual opposite Side to suit", "Single", "55mm", "None"}},
			{Name: "comments", Label: "Comments", Type: FieldText},
		},
		WidthField:  "width",
		HeightField: "height",
		Pricing: &PricingConfig{
			Scheme:   DropNumeric,
			Brackets: []float64{3000, 6000},
		},
		FabricColours: fabricColours,
	},
	{
		Slug:        "plantation-shutters",
		Name:        "Plantation Shutters",
		ProductType: "Plantation Shutters",
		Fields: []Field{
			{Name: "location", Label: "Location", Type: FieldText},
			{Name: "width", Label: "Width (mm)", Type: FieldNumber, Required: true},
			{Name: "drop", Label: "Drop (mm)", Type: FieldNumber, Required: true},
			{Name: "squareMetre", Label: "Square Metre", Type: FieldNumber},
			{Name: "colour", Label: "Colour", Type: FieldSelect, Options: []string{"Alpine white", "Ivory", "Pure white", "To confirm", "Other"}},
			{Name: "mountingMethod", Label: "Mounting Method", Type: FieldSelect, Options: []string{"N/A", "Bay Window Hinged", "Bifold", "Bypass", "Corner Window Hinged", "Double Hinged", "Pivot Hinge", "Standard Hinged", "U Channel"}},
			{Name: "inOrOut", Label: "In Or Out", Type: FieldSelect, Options: []string{"In", "Out"}},
			{Name: "panelQty", Label: "Panel Qty", Type: FieldText},
			{Name: "bladeSize", Label: "Blade Size", Type: FieldSelect, Options: []string{"63MM", "89MM", "114MM"}},
			{Name: "midRailHeight", Label: "Mid Rail Height", Type: FieldText},
			{Name: "layoutCode", Label: "Layout Code", Type: FieldText},
			{Name: "hingeColour", Label: "Hinge Colour", Type: FieldSelect, Options: []string{"NA", "Silver", "Stainless Steel", "To Match", "White"}},
			{Name: "tiltrodType", Label: "Tiltrod Type", Type: FieldSelect, Options: []string{"NA", "Hidden"}},
			{Name: "frameType", Label: "Frame Type", Type: FieldSelect, Options: []string{"N/A", "Medium L No Cap", "Medium L", "Cap", "No Frame", "Small L No Cap", "Z Frame"}},
			{Name: "left", Label: "Left", Type: FieldSelect, Options: []string{"Yes", "No", "Still"}},
			{Name: "right", Label: "Right", Type: FieldSelect, Options: []string{"Yes", "No", "Still"}},
			{Name: "top", Label: "Top", Type: FieldSelect, Options: []string{"Yes", "No", "Still"}},
			{Name: "bottom", Label: "Bottom", Type: FieldSelect, Options: []string{"Yes", "No", "Still"}},
			{Name: "lightBlock", Label: "Light Block", Type: FieldSelect, Options: []string{"N/A", "B", "L", "LR", "LRTB", "NO", "R", "T", "TB"}},
			{Name: "comments", Label: "Comments", Type: FieldText},
		},
		WidthField:  "width",
		HeightField: "drop",
		SquareMetre: true,
	},
	{
		Slug:        "roller-shutters",
		Name:        "Roller Shutters",
		ProductType: "Roller Shutters",
		Fields: []Field{
			{Name: "shutterType", Label: "Shutter Type", Type: FieldSelect, Options: []string{"42mm Double Line - Standard (Suitable for widths up to 3200mm)", "Other"}},
			{Name: "openingWidth", Label: "Opening Width (mm)", Type: FieldNumber, Required: true},
			{Name: "widthFit", Label: "Width Fit", Type: FieldSelect, Options: []string{"Face (covers frame) (+/+)", "Reveal (frame visible) (-/-)", "Face / Reveal (+/-)", "Reveal / Face (-/+)"}},
			{Name: "height", Label: "Height (mm)", Type: FieldNumber, Required: true},
			{Name: "mainProfileColour", Label: "Main Profile Colour", Type: FieldSelect, Options: []string{"Unspecified", "CREAM", "OLRBEIGE", "WHITE", "GREY", "BROWN", "BEIGE(Mushroom)", "GREEN", "RED", "BRONZE", "BLACK", "SILVER", "DEEPOCEAN", "MAGNOLIA", "WOLANDGREY", "MONUMENT", "JASPER", "SUREMIST", "DUNE"}},
			{Name: "pelmetColour", Label: "Pelmet Colour", Type: FieldText},
			{Name: "bottomBarColour", Label: "Bottom Bar Colour", Type: FieldText},
			{Name: "guideColour", Label: "Guide Colour", Type: FieldText},
			{Name: "controlStyle", Label: "Control Style", Type: FieldSelect, Options: []string{"Manual", "Motorised", "Without control"}},
			{Name: "motorSide", Label: "Motor Side", Type: FieldSelect, Options: []string{"Left", "Right"}},
			{Name: "comments", Label: "Comments", Type: FieldText},
		},
		WidthField:        "openingWidth",
		HeightField:       "height",
		AllowFilledDelete: true,
	},
	{
		Slug:        "security-doors",
		Name:        "Security Doors",
		ProductType: "Security Doors",
		Fields: []Field{
			{Name: "location", Label: "Location", Type: FieldText},
			{Name: "doorType", Label: "Door Type", Type: FieldText},
			{Name: "fittingType", Label: "Fitting Type", Type: FieldSelect, Options: []string{"Hinged", "Sliding", "Fixed Side Panel", "Stacker Door"}},
			{Name: "frameColour", Label: "Frame Colour", Type: FieldSelect, Options: []string{"ANOTEC DARK GREY", "APO GREY", "CUSTOM BLACK MATT", "DEEP OCEAN SATIN", "DOESKIN", "DUNE MATT", "JASPER SATIN", "HAMERSLEY BROWN", "MAGNOLIA", "MONUMENT SATIN", "MONUMENT MATT", "NOTRE DAME", "PRIMROSE GLOSS", "PAPERBARK SATIN", "PEARL WHITE", "POTTERY", "SURFMIST SATIN", "STONE BEIGE MATT", "ULTRA SILVER GLOSS", "WHITE BIRCH", "WOODLAND GREY SATIN", "CLEAR ANOD", "BRONZE ANOD", "WESTERN RED CEDAR (Cost Extra)"}},
			{Name: "lockType", Label: "Lock Type", Type: FieldSelect, Options: []string{"standard", "3 point lock", "No lock fixed panel", "stacker panel", "digital lock", "digital 3point", "other"}},
			{Name: "topWidth", Label: "Top Width (mm)", Type: FieldNumber},
			{Name: "middleWidth", Label: "Middle Width (mm)", Type: FieldNumber},
			{Name: "bottomWidth", Label: "Bottom Width (mm)", Type: FieldNumber},
			{Name: "leftHeight", Label: "Left Height (mm)", Type: FieldNumber},
			{Name: "middleHeight", Label: "Middle Height (mm)", Type: FieldNumber},
			{Name: "rightHeight", Label: "Right Height (mm)", Type: FieldNumber},
			{Name: "lockHeight", Label: "Lock Height (mm)", Type: FieldNumber},
			{Name: "lockPlacement", Label: "Lock Placement", Type: FieldSelect, Options: []string{"Above", "Below"}},
			{Name: "comments", Label: "Comments", Type: FieldText},
		},
		AllowFilledDelete: true,
	},
}
