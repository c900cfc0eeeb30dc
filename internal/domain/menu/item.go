// Package menu holds the menu item record served by the item source.
package menu

const (
	// AllCategories is the category selector sentinel that disables category filtering.
	AllCategories = "All"
	// DefaultCategory is shown for items without a category.
	DefaultCategory = "General"
	// RateFieldCount is the number of rate fields on an item (rate, rate1..rate7).
	RateFieldCount = 8
)

// Item is a menu item as supplied by the item source. It is read-only to
// the filtering and rate logic.
type Item struct {
	ID       int64  `json:"id"`
	Name     string `json:"item_name"`
	Code     string `json:"item_code"`
	Category string `json:"category,omitempty"`
	Kitchen  string `json:"kitchen,omitempty"`

	Rate  Value `json:"rate,omitzero"`
	Rate1 Value `json:"rate1,omitzero"`
	Rate2 Value `json:"rate2,omitzero"`
	Rate3 Value `json:"rate3,omitzero"`
	Rate4 Value `json:"rate4,omitzero"`
	Rate5 Value `json:"rate5,omitzero"`
	Rate6 Value `json:"rate6,omitzero"`
	Rate7 Value `json:"rate7,omitzero"`
}

// RateValues returns the rate fields in fixed order: rate, rate1 … rate7.
func (it *Item) RateValues() [RateFieldCount]Value {
	return [RateFieldCount]Value{
		it.Rate, it.Rate1, it.Rate2, it.Rate3,
		it.Rate4, it.Rate5, it.Rate6, it.Rate7,
	}
}

// DisplayCategory returns the category, or DefaultCategory when empty.
func (it *Item) DisplayCategory() string {
	if it.Category == "" {
		return DefaultCategory
	}
	return it.Category
}

// Find returns the item with the given id.
func Find(items []Item, id int64) (Item, bool) {
	for i := range items {
		if items[i].ID == id {
			return items[i], true
		}
	}
	return Item{}, false
}
