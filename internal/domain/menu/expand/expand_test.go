package expand

import (
	"reflect"
	"testing"
)

func TestSet_InitiallyEmpty(t *testing.T) {
	var s Set
	if s.Len() != 0 || s.Has(1) {
		t.Errorf("zero Set should be empty, got %v", s.IDs())
	}
}

func TestSet_Toggle(t *testing.T) {
	var s Set

	if !s.Toggle(7) {
		t.Error("first toggle should expand")
	}
	if !s.Has(7) {
		t.Error("7 should be expanded")
	}
	if s.Toggle(7) {
		t.Error("second toggle should collapse")
	}
	if s.Has(7) || s.Len() != 0 {
		t.Errorf("7 should be collapsed, ids = %v", s.IDs())
	}
}

func TestSet_IndependentIDs(t *testing.T) {
	var s Set
	s.Toggle(3)
	s.Toggle(1)
	s.Toggle(2)
	s.Toggle(1)

	if got := s.IDs(); !reflect.DeepEqual(got, []int64{2, 3}) {
		t.Errorf("IDs() = %v, want [2 3]", got)
	}
}
