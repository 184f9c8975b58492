package services

import (
	"errors"
	"testing"
)

func pricedWindow(base float64) Window {
	return Window{
		Fields:      map[string]string{"fabric": "Vibe"},
		Width:       1200,
		Height:      2400,
		Priced:      true,
		BasePrice:   base,
		Price:       base,
		LinearPrice: Round2(base / 1.2),
	}
}

func TestApplyDiscount(t *testing.T) {
	windows := []Window{pricedWindow(540), pricedWindow(720)}

	ApplyDiscount(windows, 15)
	if windows[0].Price != 459 {
		t.Errorf("Price after 15%% = %v, want 459", windows[0].Price)
	}
	if windows[1].Price != 612 {
		t.Errorf("Price after 15%% = %v, want 612", windows[1].Price)
	}
	if windows[0].BasePrice != 540 {
		t.Errorf("BasePrice changed to %v", windows[0].BasePrice)
	}
}

func TestApplyDiscount_Idempotent(t *testing.T) {
	windows := []Window{pricedWindow(540)}

	// Repeated application recomputes from the base, never compounds.
	ApplyDiscount(windows, 15)
	ApplyDiscount(windows, 15)
	ApplyDiscount(windows, 15)
	if windows[0].Price != 459 {
		t.Errorf("Price after repeated 15%% = %v, want 459", windows[0].Price)
	}

	// Reverting to zero restores the base price.
	ApplyDiscount(windows, 0)
	if windows[0].Price != 540 {
		t.Errorf("Price after reverting discount = %v, want 540", windows[0].Price)
	}
}

func TestApplyDiscount_Bounds(t *testing.T) {
	windows := []Window{pricedWindow(540)}

	ApplyDiscount(windows, 100)
	if windows[0].Price != 0 {
		t.Errorf("Price at 100%% = %v, want 0", windows[0].Price)
	}

	ApplyDiscount(windows, -20)
	if windows[0].Price != 540 {
		t.Errorf("Price at negative discount = %v, want 540", windows[0].Price)
	}
}

func TestApplyDiscount_LeavesLinearAndUnpriced(t *testing.T) {
	unpriced := Window{Fields: map[string]string{"location": "Front Door"}}
	windows := []Window{pricedWindow(540), unpriced}
	linear := windows[0].LinearPrice

	ApplyDiscount(windows, 30)

	if windows[0].LinearPrice != linear {
		t.Errorf("LinearPrice changed from %v to %v", linear, windows[0].LinearPrice)
	}
	if windows[1].Price != 0 || windows[1].Priced {
		t.Errorf("unpriced window mutated: %+v", windows[1])
	}
}

func TestQuoteTotal(t *testing.T) {
	tests := []struct {
		name    string
		windows []Window
		expect  float64
	}{
		{"empty", nil, 0},
		{"single", []Window{pricedWindow(459)}, 459},
		{"sums priced", []Window{pricedWindow(459), pricedWindow(612)}, 1071},
		{"skips unpriced", []Window{pricedWindow(459), {Fields: map[string]string{"fabric": "Other"}}}, 459},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := QuoteTotal(tt.windows); got != tt.expect {
				t.Errorf("QuoteTotal() = %v, want %v", got, tt.expect)
			}
		})
	}
}

func TestQuoteRecalculate(t *testing.T) {
	q := Quote{
		Windows:         []Window{pricedWindow(540), pricedWindow(720)},
		DiscountPercent: 15,
	}

	q.Recalculate()

	if q.TotalPrice != 1071 {
		t.Errorf("TotalPrice = %v, want 1071", q.TotalPrice)
	}

	q.DiscountPercent = 0
	q.Recalculate()
	if q.TotalPrice != 1260 {
		t.Errorf("TotalPrice after removing discount = %v, want 1260", q.TotalPrice)
	}
}

func TestWindowBlank(t *testing.T) {
	tests := []struct {
		name   string
		window Window
		expect bool
	}{
		{"zero value", Window{}, true},
		{"empty fields map", Window{Fields: map[string]string{}}, true},
		{"all values empty", Window{Fields: map[string]string{"roomName": "", "fabric": ""}}, true},
		{"has a field", Window{Fields: map[string]string{"roomName": "Kitchen"}}, false},
		{"has a width", Window{Width: 1200}, false},
		{"has a height", Window{Height: 900}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.window.Blank(); got != tt.expect {
				t.Errorf("Blank() = %v, want %v", got, tt.expect)
			}
		})
	}
}

func TestRemoveWindow(t *testing.T) {
	filled := Window{Fields: map[string]string{"roomName": "Kitchen"}}

	t.Run("blank window removed under strict policy", func(t *testing.T) {
		windows := []Window{filled, {}}
		got, err := RemoveWindow(windows, 1, false)
		if err != nil {
			t.Fatalf("RemoveWindow() error = %v", err)
		}
		if len(got) != 1 {
			t.Errorf("len = %d, want 1", len(got))
		}
	})

	t.Run("filled window rejected under strict policy", func(t *testing.T) {
		windows := []Window{filled, {}}
		got, err := RemoveWindow(windows, 0, false)
		if !errors.Is(err, ErrWindowNotBlank) {
			t.Fatalf("error = %v, want ErrWindowNotBlank", err)
		}
		if len(got) != 2 {
			t.Errorf("windows mutated on rejected delete: len = %d", len(got))
		}
	})

	t.Run("filled window removed when allowed", func(t *testing.T) {
		windows := []Window{filled, {}}
		got, err := RemoveWindow(windows, 0, true)
		if err != nil {
			t.Fatalf("RemoveWindow() error = %v", err)
		}
		if len(got) != 1 {
			t.Errorf("len = %d, want 1", len(got))
		}
	})

	t.Run("index out of range", func(t *testing.T) {
		windows := []Window{{}}
		if _, err := RemoveWindow(windows, 3, true); !errors.Is(err, ErrWindowIndex) {
			t.Errorf("error = %v, want ErrWindowIndex", err)
		}
		if _, err := RemoveWindow(windows, -1, true); !errors.Is(err, ErrWindowIndex) {
			t.Errorf("error = %v, want ErrWindowIndex", err)
		}
	})
}
