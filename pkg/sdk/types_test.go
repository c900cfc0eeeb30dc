package dinemenu

import "testing"

func TestRateHelpers(t *testing.T) {
	item := Item{ID: 1, Name: "Lassi", Rate: Value{}, Rate1: Value{}}
	if got := FormatRate(item.Rate); got != "-" {
		t.Errorf("FormatRate(absent) = %q, want -", got)
	}
	if HasAdditionalRates(&item) {
		t.Error("expected no additional rates")
	}
	if len(ExtractRates(&item)) != 0 {
		t.Error("expected no rates")
	}
}

func TestFilterHelpers(t *testing.T) {
	items := []Item{
		{ID: 1, Name: "Paneer Tikka", Category: "Starters"},
		{ID: 2, Name: "Dal Makhani", Category: "Mains"},
	}
	if !Matches(&items[0], "PANEER") {
		t.Error("expected case-insensitive match")
	}
	got := Filter(items, "Mains", "")
	if len(got) != 1 || got[0].ID != 2 {
		t.Errorf("Filter = %+v", got)
	}
	cats := Categories(items)
	if len(cats) != 3 || cats[0] != AllCategories {
		t.Errorf("Categories = %v", cats)
	}
}

func TestExpandSet(t *testing.T) {
	var s ExpandSet
	if !s.Toggle(7) || !s.Has(7) {
		t.Fatal("expected 7 expanded")
	}
	if s.Toggle(7) || s.Has(7) {
		t.Fatal("expected 7 collapsed")
	}
}
