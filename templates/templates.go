// Package templates renders the HTML pages for the quote request forms.
package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// ProductLink is one entry on the product picker page.
type ProductLink struct {
	Slug string
	Name string
}

// HomeData feeds the product picker page.
type HomeData struct {
	Products []ProductLink
}

// FormData feeds one product's quote form page. SchemaJSON carries the
// window field definitions and option sets consumed by the client script.
type FormData struct {
	Slug       string
	Name       string
	Priced     bool
	Date       string
	SchemaJSON string
}

// Layout wraps page content in the shared document shell.
func Layout(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s</title>
<link rel="stylesheet" href="/static/styles.css">
</head>
<body>
<main class="container">
`, templ.EscapeString(title)); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</main>\n</body>\n</html>\n")
		return err
	})
}

// HomePage renders the product picker.
func HomePage(data HomeData) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<h1>Quote Request Forms</h1>
<ul class="product-list">
`); err != nil {
			return err
		}
		for _, p := range data.Products {
			if _, err := fmt.Fprintf(w, `<li><a href="/forms/%s">%s</a></li>
`, templ.EscapeString(p.Slug), templ.EscapeString(p.Name)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</ul>\n")
		return err
	})
	return Layout("Quote Request Forms", body)
}

// FormPage renders one product's quote form shell. The window rows, pricing
// calls and submission are driven by the client script against the JSON
// schema embedded in the page.
func FormPage(data FormData) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<h1>%s Quote Request</h1>
<form id="quote-form" data-product="%s" data-priced="%t">
<fieldset class="customer">
<legend>Customer Details</legend>
<label>Date <input type="date" name="date" value="%s"></label>
<label>Time <input type="time" name="time"></label>
<label>Sales Rep <input type="text" name="salesRep"></label>
<label>Customer Name <input type="text" name="customerName" required></label>
<label>Address <input type="text" name="address" placeholder="Street, Suburb STATE 0000"></label>
<label>Phone <input type="tel" name="phone" required></label>
<label>Email <input type="email" name="email"></label>
</fieldset>
<div id="windows"></div>
<button type="button" id="add-window">Add Window</button>
`,
			templ.EscapeString(data.Name),
			templ.EscapeString(data.Slug),
			data.Priced,
			templ.EscapeString(data.Date),
		); err != nil {
			return err
		}

		if data.Priced {
			if _, err := io.WriteString(w, `<fieldset class="totals">
<legend>Pricing</legend>
<label>Discount % <input type="number" name="discountPercent" min="0" max="100" value="0"></label>
<p>Total: <span id="total-price">$0.00</span></p>
</fieldset>
`); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintf(w, `<div class="actions">
<button type="submit">Submit Quote</button>
<button type="button" id="export-pdf">Download PDF</button>
<button type="button" id="export-excel">Download Excel</button>
</div>
<p id="form-message" role="status"></p>
</form>
<script type="application/json" id="schema-data">%s</script>
<script src="/static/app.js"></script>
`, data.SchemaJSON); err != nil {
			return err
		}
		return nil
	})
	return Layout(data.Name+" Quote Request", body)
}
