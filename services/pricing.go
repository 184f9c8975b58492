// Package services provides the pricing engine, quote calculations and
// export generation for the quote request forms.
package services

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

var (
	// ErrPriceUnavailable is returned when a fabric has no pricing data at
	// all (unknown fabric, sentinel fabric, or a missing table row). It is
	// never returned for oversized dimensions.
	ErrPriceUnavailable = errors.New("price unavailable")

	// ErrNoPricingData is returned when a (group, drop bracket) pair has an
	// empty width table.
	ErrNoPricingData = errors.New("no pricing data for group")
)

// DropScheme selects how a window's height is mapped to a drop bracket.
// The original pricing tables use two incompatible encodings, so the scheme
// is fixed per product rather than inferred from the data.
type DropScheme int

const (
	// DropCategorical splits heights at a single cutoff into two brackets,
	// e.g. "Drop<=3000" and "Drop>3000".
	DropCategorical DropScheme = iota

	// DropNumeric rounds the height up to the nearest tabulated drop value,
	// e.g. {3000, 6000}.
	DropNumeric
)

// PricingConfig describes a product's pricing table layout.
type PricingConfig struct {
	Scheme DropScheme

	// Cutoff is the categorical split point in millimetres (DropCategorical).
	Cutoff float64

	// Brackets are the ascending numeric drop brackets (DropNumeric).
	Brackets []float64
}

// DropKey maps a height in millimetres to the bracket key used by the
// product's pricing table rows.
func (c PricingConfig) DropKey(height float64) (string, error) {
	switch c.Scheme {
	case DropNumeric:
		bracket, err := NearestBracket(height, c.Brackets)
		if err != nil {
			return "", err
		}
		return strconv.FormatFloat(bracket, 'f', -1, 64), nil
	default:
		cutoff := strconv.FormatFloat(c.Cutoff, 'f', -1, 64)
		if height <= c.Cutoff {
			return "Drop<=" + cutoff, nil
		}
		return "Drop>" + cutoff, nil
	}
}

// NearestBracket returns the smallest candidate >= value. Oversized values
// clamp to the largest candidate: an oversized request is quoted at the
// largest known bracket, never rejected. Candidates must be sorted ascending.
func NearestBracket(value float64, candidates []float64) (float64, error) {
	if len(candidates) == 0 {
		return 0, ErrNoPricingData
	}
	for _, c := range candidates {
		if c >= value {
			return c, nil
		}
	}
	return candidates[len(candidates)-1], nil
}

// LinePrice holds the priced outputs for a single window.
type LinePrice struct {
	// Price is the customer-facing price after discount.
	Price float64

	// BasePrice is the tabulated MRP before discount.
	BasePrice float64

	// CostPrice is the internal cost basis. Not shown to customers.
	CostPrice float64

	// LinearPrice is the undiscounted price per linear metre of the
	// requested width. Discount changes never alter it.
	LinearPrice float64
}

// Engine prices window line items against a static fabric catalog and
// pricing table. It is stateless over its providers and safe for concurrent
// reads.
type Engine struct {
	catalog CatalogProvider
	table   PriceTableProvider
	cfg     PricingConfig
}

// NewEngine builds a pricing engine for one product.
func NewEngine(catalog CatalogProvider, table PriceTableProvider, cfg PricingConfig) *Engine {
	return &Engine{catalog: catalog, table: table, cfg: cfg}
}

// ResolveGroup looks up the pricing group for a fabric name. Matching is
// case-insensitive and whitespace-tolerant; the "OTHER" and "TO CONFIRM"
// sentinels never resolve.
func (e *Engine) ResolveGroup(fabric string) (int, bool) {
	return e.catalog.GroupFor(fabric)
}

// PriceLineItem maps a (width, height, fabric, discount) tuple to a priced
// line item. Width and height are in millimetres, discountPercent in [0,100].
// It returns ErrPriceUnavailable when the fabric or its group has no pricing
// data; callers surface that as a zero price, not as a failure of the quote.
func (e *Engine) PriceLineItem(width, height float64, fabric string, discountPercent float64) (LinePrice, error) {
	group, ok := e.catalog.GroupFor(fabric)
	if !ok {
		return LinePrice{}, fmt.Errorf("fabric %q: %w", fabric, ErrPriceUnavailable)
	}
	if width <= 0 || height <= 0 {
		return LinePrice{}, fmt.Errorf("dimensions %vx%v: %w", width, height, ErrPriceUnavailable)
	}

	dropKey, err := e.cfg.DropKey(height)
	if err != nil {
		return LinePrice{}, fmt.Errorf("group %d: %w", group, err)
	}

	widths := e.table.Widths(group, dropKey)
	nearestWidth, err := NearestBracket(width, widths)
	if err != nil {
		return LinePrice{}, fmt.Errorf("group %d %s: %w", group, dropKey, err)
	}

	row, ok := e.table.Row(group, dropKey, nearestWidth)
	if !ok {
		return LinePrice{}, fmt.Errorf("group %d %s width %v: %w", group, dropKey, nearestWidth, ErrPriceUnavailable)
	}

	base := row.MRP
	return LinePrice{
		Price:       Round2(base * DiscountFactor(discountPercent)),
		BasePrice:   base,
		CostPrice:   row.CostPrice,
		LinearPrice: Round2(base / (width / 1000)),
	}, nil
}

// DiscountFactor converts a discount percentage to a multiplier, clamped so
// the effective price is never negative. Zero or negative discounts behave
// as "no discount".
func DiscountFactor(percent float64) float64 {
	if percent <= 0 {
		return 1
	}
	if percent >= 100 {
		return 0
	}
	return 1 - percent/100
}

// Round2 rounds a currency amount to 2 decimal places, half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
