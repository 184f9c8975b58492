package services

import (
	"errors"
	"fmt"
)

var (
	// ErrWindowNotBlank is returned when a delete is rejected by the
	// product's blank-only delete policy.
	ErrWindowNotBlank = errors.New("window has data and cannot be deleted")

	// ErrWindowIndex is returned for an out-of-range window index.
	ErrWindowIndex = errors.New("window index out of range")
)

// Customer holds the quote header fields common to every product form.
type Customer struct {
	Date     string
	Time     string
	SalesRep string
	Name     string
	Address  string
	Phone    string
	Email    string
}

// Window is one window/opening line item on a quote. Fields holds the raw
// descriptive form values keyed by schema field name; the priced amounts are
// derived and carried separately so discount changes can be reapplied
// without re-resolving the catalog.
type Window struct {
	Fields map[string]string

	Width  float64
	Height float64

	// Priced marks whether a pricing row was resolved for this window.
	// Unpriced windows contribute zero to the total.
	Priced bool

	BasePrice   float64
	Price       float64
	CostPrice   float64
	LinearPrice float64
}

// Blank reports whether every descriptive field of the window is empty.
func (w Window) Blank() bool {
	for _, v := range w.Fields {
		if v != "" {
			return false
		}
	}
	return w.Width == 0 && w.Height == 0
}

// Quote is one form session's worth of data: customer identity, the window
// line items, and the discount applied across them. Quotes are never
// persisted; the external spreadsheet is the system of record.
type Quote struct {
	Customer        Customer
	ProductType     string
	Windows         []Window
	DiscountPercent float64
	TotalPrice      float64
}

// ApplyDiscount reapplies the discount factor to every window's already
// resolved base price, in place. It performs no catalog or table lookups,
// and never touches LinearPrice, which is defined on the undiscounted base.
func ApplyDiscount(windows []Window, discountPercent float64) {
	factor := DiscountFactor(discountPercent)
	for i := range windows {
		if !windows[i].Priced {
			continue
		}
		windows[i].Price = Round2(windows[i].BasePrice * factor)
	}
}

// QuoteTotal sums the discounted window prices. Unpriced windows count as
// zero.
func QuoteTotal(windows []Window) float64 {
	var total float64
	for _, w := range windows {
		if !w.Priced {
			continue
		}
		total += w.Price
	}
	return Round2(total)
}

// Recalculate reapplies the quote's discount and refreshes its total.
func (q *Quote) Recalculate() {
	ApplyDiscount(q.Windows, q.DiscountPercent)
	q.TotalPrice = QuoteTotal(q.Windows)
}

// RemoveWindow deletes the window at idx and returns the shortened slice.
// When allowFilled is false the product's blank-only policy applies: a
// window with data is kept and ErrWindowNotBlank is returned so the caller
// can warn instead of destroying entered measurements.
func RemoveWindow(windows []Window, idx int, allowFilled bool) ([]Window, error) {
	if idx < 0 || idx >= len(windows) {
		return windows, fmt.Errorf("index %d of %d windows: %w", idx, len(windows), ErrWindowIndex)
	}
	if !allowFilled && !windows[idx].Blank() {
		return windows, ErrWindowNotBlank
	}
	return append(windows[:idx], windows[idx+1:]...), nil
}
