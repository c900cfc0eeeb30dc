package dinemenu

import (
	"github.com/kailas-cloud/dinemenu/internal/domain/menu"
	"github.com/kailas-cloud/dinemenu/internal/domain/menu/expand"
	"github.com/kailas-cloud/dinemenu/internal/domain/menu/filter"
	"github.com/kailas-cloud/dinemenu/internal/domain/menu/rate"
	menuuc "github.com/kailas-cloud/dinemenu/internal/usecase/menu"
)

const (
	// AllCategories is the category selector value that disables category filtering.
	AllCategories = menu.AllCategories
	// DefaultCategory is shown for items without a category.
	DefaultCategory = menu.DefaultCategory
)

type (
	// Item is a menu item as supplied by the item source.
	Item = menu.Item
	// Value is a raw rate field: number, numeric string, null or absent.
	Value = menu.Value
	// RateEntry is one priced rate of an item.
	RateEntry = rate.Entry
	// Entry is an item with its derived rates.
	Entry = menuuc.Entry
	// Page is the result of Browse.
	Page = menuuc.Page
	// ExpandSet tracks which items show all of their rates.
	ExpandSet = expand.Set
)

// ExtractRates returns the priced rates of item in field order.
func ExtractRates(item *Item) []RateEntry { return rate.Extract(item) }

// HasAdditionalRates reports whether any of rate3..rate7 is priced.
func HasAdditionalRates(item *Item) bool { return rate.HasAdditional(item) }

// ParseRate coerces a raw rate to a number; malformed values are 0.
func ParseRate(v Value) float64 { return rate.Parse(v) }

// FormatRate renders a rate as "₹150.00", or "-" when it is not priced.
func FormatRate(v Value) string { return rate.Format(v) }

// Matches reports whether query is a case-insensitive substring of the
// item's name, code, category or kitchen.
func Matches(item *Item, query string) bool { return filter.Matches(item, query) }

// Filter keeps items in category that match query, preserving order.
func Filter(items []Item, category, query string) []Item {
	return filter.Apply(items, category, query)
}

// Categories returns AllCategories followed by the distinct item categories.
func Categories(items []Item) []string { return filter.Categories(items) }
