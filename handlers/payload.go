package handlers

import (
	"strconv"
	"strings"

	"quoteforms/services"
)

// flexFloat decodes a JSON number that some clients send as a string.
// Empty strings decode to zero.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*f = 0
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		unquoted, err := strconv.Unquote(s)
		if err != nil {
			return err
		}
		s = strings.TrimSpace(unquoted)
	}
	if s == "" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	*f = flexFloat(v)
	return nil
}

// windowPayload carries one window's submitted fields. Values arrive as
// strings or numbers depending on the client input type.
type windowPayload map[string]any

// str renders a payload value as a string. Numbers lose no precision and
// drop trailing zeros.
func (wp windowPayload) str(key string) string {
	switch v := wp[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case nil:
		return ""
	default:
		return ""
	}
}

// num parses a payload value as a float64, tolerating string-typed numbers.
func (wp windowPayload) num(key string) float64 {
	s := wp.str(key)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// SubmissionPayload is the JSON body accepted by the submit, price-preview
// and export endpoints.
type SubmissionPayload struct {
	ProductType     string          `json:"productType"`
	Date            string          `json:"date"`
	Time            string          `json:"time"`
	SalesRep        string          `json:"salesRep"`
	CustomerName    string          `json:"customerName"`
	Address         string          `json:"address"`
	Phone           string          `json:"phone"`
	Email           string          `json:"email"`
	DiscountPercent flexFloat       `json:"discountPercent"`
	Windows         []windowPayload `json:"windows"`
}

// buildQuote converts a submission into a priced Quote. Prices are always
// recomputed server side from the catalog; any price fields the client sent
// are ignored. A window whose fabric has no pricing data stays unpriced and
// contributes zero to the total.
func buildQuote(schema services.ProductSchema, engine *services.Engine, p SubmissionPayload) services.Quote {
	q := services.Quote{
		Customer: services.Customer{
			Date:     p.Date,
			Time:     p.Time,
			SalesRep: p.SalesRep,
			Name:     strings.TrimSpace(p.CustomerName),
			Address:  strings.TrimSpace(p.Address),
			Phone:    strings.TrimSpace(p.Phone),
			Email:    strings.TrimSpace(p.Email),
		},
		ProductType:     schema.ProductType,
		DiscountPercent: float64(p.DiscountPercent),
	}

	for _, wp := range p.Windows {
		w := services.Window{Fields: make(map[string]string, len(schema.Fields))}
		for _, f := range schema.Fields {
			w.Fields[f.Name] = wp.str(f.Name)
		}
		if schema.WidthField != "" {
			w.Width = wp.num(schema.WidthField)
		}
		if schema.HeightField != "" {
			w.Height = wp.num(schema.HeightField)
		}
		if schema.SquareMetre && w.Width > 0 && w.Height > 0 {
			w.Fields["squareMetre"] = strconv.FormatFloat(services.SquareMetres(w.Width, w.Height), 'f', -1, 64)
		}

		// A pricing failure leaves the window unpriced rather than failing
		// the whole quote.
		if engine != nil && !w.Blank() {
			if line, err := engine.PriceLineItem(w.Width, w.Height, w.Fields["fabric"], q.DiscountPercent); err == nil {
				w.Priced = true
				w.Price = line.Price
				w.BasePrice = line.BasePrice
				w.CostPrice = line.CostPrice
				w.LinearPrice = line.LinearPrice
			}
		}
		q.Windows = append(q.Windows, w)
	}

	q.Recalculate()
	return q
}

// sheetPayload flattens a recomputed quote into the JSON document appended
// to the spreadsheet. Cost price never leaves the server.
func sheetPayload(schema services.ProductSchema, q services.Quote) map[string]any {
	windows := make([]map[string]any, 0, len(q.Windows))
	for _, w := range q.Windows {
		if w.Blank() {
			continue
		}
		row := make(map[string]any, len(w.Fields)+2)
		for k, v := range w.Fields {
			row[k] = v
		}
		if w.Priced {
			row["price"] = w.Price
			row["linearPrice"] = w.LinearPrice
		}
		windows = append(windows, row)
	}

	payload := map[string]any{
		"productType":  schema.ProductType,
		"date":         q.Customer.Date,
		"time":         q.Customer.Time,
		"salesRep":     q.Customer.SalesRep,
		"customerName": q.Customer.Name,
		"address":      q.Customer.Address,
		"phone":        q.Customer.Phone,
		"email":        q.Customer.Email,
		"windows":      windows,
	}
	if schema.Priced() {
		payload["discountPercent"] = q.DiscountPercent
		payload["totalPrice"] = q.TotalPrice
	}
	return payload
}
