package menu

import "testing"

func TestItem_DisplayCategory(t *testing.T) {
	withCategory := Item{Category: "Fast Food"}
	if got := withCategory.DisplayCategory(); got != "Fast Food" {
		t.Errorf("DisplayCategory() = %q", got)
	}

	without := Item{}
	if got := without.DisplayCategory(); got != DefaultCategory {
		t.Errorf("DisplayCategory() = %q, want %q", got, DefaultCategory)
	}
}

func TestItem_RateValuesOrder(t *testing.T) {
	item := Item{
		Rate:  NumberValue(1),
		Rate1: NumberValue(2),
		Rate2: NumberValue(3),
		Rate3: NumberValue(4),
		Rate4: NumberValue(5),
		Rate5: NumberValue(6),
		Rate6: NumberValue(7),
		Rate7: NumberValue(8),
	}

	vals := item.RateValues()
	for i, v := range vals {
		if v.Float() != float64(i+1) {
			t.Errorf("RateValues()[%d] = %v, want %d", i, v.Float(), i+1)
		}
	}
}

func TestFind(t *testing.T) {
	items := []Item{{ID: 1, Name: "Burger"}, {ID: 2, Name: "Pizza"}}

	got, ok := Find(items, 2)
	if !ok || got.Name != "Pizza" {
		t.Errorf("Find(2) = %+v, %v", got, ok)
	}

	if _, ok := Find(items, 3); ok {
		t.Error("Find(3) should miss")
	}
}
