// Package rate derives the priced rate entries of a menu item.
package rate

import (
	"fmt"

	"github.com/kailas-cloud/dinemenu/internal/domain/menu"
)

// firstAdditional is the index of rate3, the first tier behind the expand toggle.
const firstAdditional = 3

var (
	keys   = [menu.RateFieldCount]string{"rate", "rate1", "rate2", "rate3", "rate4", "rate5", "rate6", "rate7"}
	labels = [menu.RateFieldCount]string{
		"Base Rate", "Rate 1", "Rate 2", "Rate 3", "Rate 4", "Rate 5", "Rate 6", "Rate 7",
	}
)

// Entry is one present rate field of an item.
type Entry struct {
	Key   string     `json:"key"`
	Label string     `json:"label"`
	Value menu.Value `json:"value"`
	Price float64    `json:"price"`
}

// Extract returns an entry for every rate field whose parsed value is
// strictly positive, in field order rate, rate1 … rate7.
func Extract(item *menu.Item) []Entry {
	vals := item.RateValues()
	out := make([]Entry, 0, len(vals))
	for i, v := range vals {
		price := Parse(v)
		if price <= 0 {
			continue
		}
		out = append(out, Entry{Key: keys[i], Label: labels[i], Value: v, Price: price})
	}
	return out
}

// HasAdditional reports whether any of rate3..rate7 is present.
func HasAdditional(item *menu.Item) bool {
	vals := item.RateValues()
	for _, v := range vals[firstAdditional:] {
		if Parse(v) > 0 {
			return true
		}
	}
	return false
}

// Parse coerces a raw rate field to a number; malformed and missing values are 0.
func Parse(v menu.Value) float64 {
	return v.Float()
}

// Format renders a rate for display: "₹150.00" when present, "-" otherwise.
func Format(v menu.Value) string {
	p := Parse(v)
	if p <= 0 {
		return "-"
	}
	return fmt.Sprintf("₹%.2f", p)
}

// Keys returns the rate field names in order.
func Keys() []string {
	return append([]string(nil), keys[:]...)
}

// Label returns the display label for a rate field name.
func Label(key string) (string, bool) {
	for i, k := range keys {
		if k == key {
			return labels[i], true
		}
	}
	return "", false
}
