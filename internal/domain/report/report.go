// Package report holds sales summaries shown next to the menu.
package report

import (
	"fmt"
	"math"
)

// Kind selects a summary.
type Kind string

// Summary kinds.
const (
	Today Kind = "today"
	Day   Kind = "day"
	Month Kind = "month"
	Item  Kind = "item"
)

var titles = map[Kind]string{
	Today: "Today Summary",
	Day:   "Day Summary",
	Month: "Month Summary",
	Item:  "Item Summary",
}

// Kinds returns all kinds in selector order.
func Kinds() []Kind { return []Kind{Today, Month, Item, Day} }

// ParseKind validates a kind name.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if _, ok := titles[k]; !ok {
		return "", fmt.Errorf("unknown summary kind %q", s)
	}
	return k, nil
}

// Title returns the display title.
func (k Kind) Title() string { return titles[k] }

// Row is one summary line. Today rows are single bills (Label is the bill
// number); day and month rows aggregate Bills; item rows carry Quantity.
type Row struct {
	ID       int     `json:"id"`
	Label    string  `json:"label"`
	User     string  `json:"user,omitempty"`
	Time     string  `json:"time,omitempty"`
	Bills    int     `json:"bills,omitempty"`
	Quantity int     `json:"quantity,omitempty"`
	Amount   float64 `json:"amount"`
}

// Totals aggregates the rows of a summary.
type Totals struct {
	Rows     int     `json:"rows"`
	Bills    int     `json:"bills"`
	Quantity int     `json:"quantity"`
	Amount   float64 `json:"amount"`
}

// Summary is a titled list of rows with totals.
type Summary struct {
	Kind   Kind   `json:"kind"`
	Title  string `json:"title"`
	Rows   []Row  `json:"rows"`
	Totals Totals `json:"totals"`
}

// New builds a summary and computes its totals.
func New(kind Kind, rows []Row) Summary {
	t := Totals{Rows: len(rows)}
	for _, r := range rows {
		switch kind {
		case Today:
			t.Bills++
		default:
			t.Bills += r.Bills
		}
		t.Quantity += r.Quantity
		t.Amount += r.Amount
	}
	t.Amount = math.Round(t.Amount*100) / 100

	return Summary{Kind: kind, Title: kind.Title(), Rows: rows, Totals: t}
}
