package services

import "fmt"

// QuoteField is one label/value pair rendered in an export document.
type QuoteField struct {
	Label string
	Value string
}

// QuoteSection groups the fields of one window, with its price when the
// product is priced.
type QuoteSection struct {
	Title       string
	Fields      []QuoteField
	Priced      bool
	Price       float64
	LinearPrice float64
}

// QuoteExport holds all data needed to render a quote as PDF or Excel.
// Cost price is internal and never included.
type QuoteExport struct {
	Title           string
	CustomerName    string
	Date            string
	SalesRep        string
	CustomerFields  []QuoteField
	Sections        []QuoteSection
	Priced          bool
	DiscountPercent float64
	TotalPrice      float64
}

// BuildQuoteExport flattens a quote into the export representation. Blank
// windows are skipped, select fields keep their submitted text, and prices
// appear only for priced products.
func BuildQuoteExport(schema ProductSchema, q Quote) QuoteExport {
	exp := QuoteExport{
		Title:           schema.Name + " Quote",
		CustomerName:    q.Customer.Name,
		Date:            q.Customer.Date,
		SalesRep:        q.Customer.SalesRep,
		Priced:          schema.Priced(),
		DiscountPercent: q.DiscountPercent,
		TotalPrice:      q.TotalPrice,
	}

	exp.CustomerFields = []QuoteField{
		{Label: "Customer", Value: q.Customer.Name},
		{Label: "Address", Value: q.Customer.Address},
		{Label: "Phone", Value: q.Customer.Phone},
		{Label: "Email", Value: q.Customer.Email},
		{Label: "Sales Rep", Value: q.Customer.SalesRep},
		{Label: "Date", Value: q.Customer.Date},
	}

	n := 0
	for _, w := range q.Windows {
		if w.Blank() {
			continue
		}
		n++
		sec := QuoteSection{
			Title:       fmt.Sprintf("Window %d", n),
			Priced:      w.Priced,
			Price:       w.Price,
			LinearPrice: w.LinearPrice,
		}
		for _, f := range schema.Fields {
			v := w.Fields[f.Name]
			if v == "" {
				continue
			}
			sec.Fields = append(sec.Fields, QuoteField{Label: f.Label, Value: v})
		}
		exp.Sections = append(exp.Sections, sec)
	}

	return exp
}
