package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GeneratePDF renders a quote as a PDF document using maroto/v2.
// It returns the raw PDF bytes or an error.
func GeneratePDF(data QuoteExport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).
		WithTopMargin(12).
		WithRightMargin(12).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addQuoteHeader(m, data)
	addCustomerBlock(m, data)

	for _, sec := range data.Sections {
		addWindowSection(m, sec)
	}

	if data.Priced {
		addQuoteSummary(m, data)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

// addQuoteHeader adds the title and date to the PDF.
func addQuoteHeader(m core.Maroto, data QuoteExport) {
	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New(data.Title, props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
	)

	m.AddRows(
		row.New(8).Add(
			col.New(6).Add(
				text.New(fmt.Sprintf("Prepared by: %s", data.SalesRep), props.Text{
					Size:  9,
					Align: align.Left,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
			col.New(6).Add(
				text.New(fmt.Sprintf("Date: %s", data.Date), props.Text{
					Size:  9,
					Align: align.Right,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
		),
	)

	m.AddRows(row.New(4))
}

// addCustomerBlock adds the customer details as label/value rows.
func addCustomerBlock(m core.Maroto, data QuoteExport) {
	for _, f := range data.CustomerFields {
		if f.Value == "" {
			continue
		}
		addFieldRow(m, f, nil)
	}
	m.AddRows(row.New(4))
}

// addWindowSection adds one window's heading, fields, and price line.
func addWindowSection(m core.Maroto, sec QuoteSection) {
	headerBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	headerCell := props.Cell{BackgroundColor: headerBg}

	m.AddRows(
		row.New(8).Add(
			col.New(12).Add(
				text.New(sec.Title, props.Text{
					Size:  9,
					Style: fontstyle.Bold,
					Align: align.Left,
					Color: &props.Color{Red: 255, Green: 255, Blue: 255},
				}),
			).WithStyle(&headerCell),
		),
	)

	stripe := &props.Cell{BackgroundColor: &props.Color{Red: 245, Green: 245, Blue: 245}}
	for i, f := range sec.Fields {
		var cellStyle *props.Cell
		if i%2 == 1 {
			cellStyle = stripe
		}
		addFieldRow(m, f, cellStyle)
	}

	if sec.Priced {
		priceStyle := props.Text{
			Size:  8,
			Style: fontstyle.Bold,
			Align: align.Right,
		}
		m.AddRows(
			row.New(7).Add(
				col.New(9).Add(
					text.New("Price", priceStyle),
				),
				col.New(3).Add(
					text.New(FormatAUD(sec.Price), priceStyle),
				),
			),
		)
		if sec.LinearPrice > 0 {
			metreStyle := props.Text{
				Size:  7,
				Align: align.Right,
				Color: &props.Color{Red: 80, Green: 80, Blue: 80},
			}
			m.AddRows(
				row.New(5).Add(
					col.New(9).Add(
						text.New("Per metre of width", metreStyle),
					),
					col.New(3).Add(
						text.New(FormatAUD(sec.LinearPrice), metreStyle),
					),
				),
			)
		}
	}

	m.AddRows(row.New(3))
}

// addFieldRow adds a single label/value row, optionally with a background.
func addFieldRow(m core.Maroto, f QuoteField, cellStyle *props.Cell) {
	labelText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Left,
	}
	valueText := props.Text{
		Size:  8,
		Align: align.Left,
	}

	colLabel := col.New(4).Add(text.New(f.Label, labelText))
	colValue := col.New(8).Add(text.New(f.Value, valueText))
	if cellStyle != nil {
		colLabel = colLabel.WithStyle(cellStyle)
		colValue = colValue.WithStyle(cellStyle)
	}

	m.AddRows(row.New(6).Add(colLabel, colValue))
}

// addQuoteSummary adds the discount and total lines at the bottom.
func addQuoteSummary(m core.Maroto, data QuoteExport) {
	m.AddRows(row.New(4))

	summaryBg := &props.Color{Red: 240, Green: 240, Blue: 240}
	summaryCell := &props.Cell{BackgroundColor: summaryBg}

	labelStyle := props.Text{
		Size:  9,
		Style: fontstyle.Bold,
		Align: align.Right,
	}

	if data.DiscountPercent > 0 {
		m.AddRows(
			row.New(8).Add(
				col.New(8).Add(
					text.New("Discount", labelStyle),
				).WithStyle(summaryCell),
				col.New(4).Add(
					text.New(fmt.Sprintf("%.0f%%", data.DiscountPercent), labelStyle),
				).WithStyle(summaryCell),
			),
		)
	}

	m.AddRows(
		row.New(8).Add(
			col.New(8).Add(
				text.New("Total", labelStyle),
			).WithStyle(summaryCell),
			col.New(4).Add(
				text.New(FormatAUD(data.TotalPrice), labelStyle),
			).WithStyle(summaryCell),
		),
	)
}
