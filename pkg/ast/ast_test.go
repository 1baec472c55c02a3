package ast

import (
	"errors"
	"strings"
	"testing"
)

func TestOptionSetGetLastWins(t *testing.T) {
	s := OptionSet{
		{Key: "size", Value: "10"},
		{Key: "color", Value: "red"},
		{Key: "size", Value: "20"},
	}
	if got, ok := s.Get("size"); !ok || got != "20" {
		t.Errorf("Get(size) = %q, %v, want %q", got, ok, "20")
	}
	if got, ok := s.Get("color"); !ok || got != "red" {
		t.Errorf("Get(color) = %q, %v, want %q", got, ok, "red")
	}
	if _, ok := s.Get("missing"); ok {
		t.Error("Get(missing) reported present")
	}
}

func TestCardinalitySymbols(t *testing.T) {
	tests := []struct {
		card   Cardinality
		symbol string
		name   string
	}{
		{ZeroOne, "?", "zero-or-one"},
		{One, "1", "exactly-one"},
		{ZeroPlus, "*", "zero-or-many"},
		{OnePlus, "+", "one-or-many"},
	}
	for _, tt := range tests {
		if got := tt.card.Symbol(); got != tt.symbol {
			t.Errorf("%v.Symbol() = %q, want %q", tt.card, got, tt.symbol)
		}
		if got := tt.card.String(); got != tt.name {
			t.Errorf("Cardinality(%d).String() = %q, want %q", int(tt.card), got, tt.name)
		}
	}
}

func TestEntityByName(t *testing.T) {
	doc := &Document{Entities: []*Entity{
		{Name: "Person"},
		{Name: "person"},
	}}
	if e := doc.EntityByName("person"); e == nil || e != doc.Entities[1] {
		t.Error("EntityByName is not case-sensitive")
	}
	if e := doc.EntityByName("absent"); e != nil {
		t.Errorf("EntityByName(absent) = %v, want nil", e)
	}
}

func TestValidate(t *testing.T) {
	doc := &Document{
		Entities: []*Entity{{Name: "A"}, {Name: "B"}},
		Relations: []*Relation{
			{Left: "A", Right: "B"},
		},
	}
	if err := Validate(doc); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestValidateUnresolvedEndpoint(t *testing.T) {
	doc := &Document{
		Entities: []*Entity{{Name: "A"}},
		Relations: []*Relation{
			{Left: "A", Right: "Ghost", Pos: Position{Line: 3, Column: 1}},
		},
	}
	err := Validate(doc)
	var uerr *UnresolvedEntityError
	if !errors.As(err, &uerr) {
		t.Fatalf("Validate() = %v, want *UnresolvedEntityError", err)
	}
	if uerr.Name != "Ghost" {
		t.Errorf("unresolved name = %q, want %q", uerr.Name, "Ghost")
	}
	if !strings.Contains(err.Error(), "line 3") {
		t.Errorf("error %q does not carry the relationship position", err)
	}
}

func TestValidateReportsFirstFailure(t *testing.T) {
	doc := &Document{
		Relations: []*Relation{
			{Left: "X", Right: "Y"},
			{Left: "Z", Right: "W"},
		},
	}
	err := Validate(doc)
	var uerr *UnresolvedEntityError
	if !errors.As(err, &uerr) {
		t.Fatalf("Validate() = %v, want *UnresolvedEntityError", err)
	}
	if uerr.Name != "X" {
		t.Errorf("first failure = %q, want %q", uerr.Name, "X")
	}
}
