package menu

import (
	dommenu "github.com/kailas-cloud/dinemenu/internal/domain/menu"
	"github.com/kailas-cloud/dinemenu/internal/domain/menu/rate"
)

// Entry is an item prepared for display.
type Entry struct {
	dommenu.Item
	DisplayCategory    string       `json:"display_category"`
	Rates              []rate.Entry `json:"rates"`
	HasAdditionalRates bool         `json:"has_additional_rates"`
}

// Page is the result of a browse request.
type Page struct {
	Category   string   `json:"category"`
	Query      string   `json:"query"`
	Items      []Entry  `json:"items"`
	Categories []string `json:"categories"`
	Total      int      `json:"total"`
	Matched    int      `json:"matched"`
}

// NewEntry derives the display fields of an item.
func NewEntry(item dommenu.Item) Entry {
	return Entry{
		Item:               item,
		DisplayCategory:    item.DisplayCategory(),
		Rates:              rate.Extract(&item),
		HasAdditionalRates: rate.HasAdditional(&item),
	}
}
