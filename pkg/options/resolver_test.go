package options

import (
	"strings"
	"testing"

	"github.com/davechallis/erd-go/pkg/ast"
)

func TestResolveDefaults(t *testing.T) {
	r := New(&ast.Document{}, nil)

	res := r.Resolve(ScopeEntity, nil)
	if got := res.Get("bgcolor"); got != "#d0e0d0" {
		t.Errorf("entity bgcolor default = %q, want %q", got, "#d0e0d0")
	}
	if got := res.Get("size"); got != "14" {
		t.Errorf("entity size default = %q, want %q", got, "14")
	}

	title := r.Resolve(ScopeTitle, nil)
	if got := title.Get("size"); got != "30" {
		t.Errorf("title size default = %q, want %q", got, "30")
	}
	if got := title.Get("direction"); got != "LR" {
		t.Errorf("title direction default = %q, want %q", got, "LR")
	}
}

func TestResolvePrecedence(t *testing.T) {
	doc := &ast.Document{
		Entity: ast.OptionSet{{Key: "bgcolor", Value: "#111111"}, {Key: "size", Value: "10"}},
	}
	overrides := map[Scope]ast.OptionSet{
		ScopeEntity: {{Key: "bgcolor", Value: "#222222"}},
	}
	r := New(doc, overrides)

	// Override beats directive, directive beats default.
	res := r.Resolve(ScopeEntity, nil)
	if got := res.Get("bgcolor"); got != "#222222" {
		t.Errorf("bgcolor = %q, want override value %q", got, "#222222")
	}
	if got := res.Get("size"); got != "10" {
		t.Errorf("size = %q, want directive value %q", got, "10")
	}

	// Element-local beats everything.
	local := ast.OptionSet{{Key: "bgcolor", Value: "#333333"}}
	res = r.Resolve(ScopeEntity, local)
	if got := res.Get("bgcolor"); got != "#333333" {
		t.Errorf("bgcolor = %q, want local value %q", got, "#333333")
	}
}

func TestResolveIgnoresUnrecognizedKeys(t *testing.T) {
	r := New(&ast.Document{}, nil)
	local := ast.OptionSet{{Key: "bogus", Value: "x", Pos: ast.Position{Line: 2, Column: 5}}}

	res := r.Resolve(ScopeEntity, local)
	if got := res.Get("bogus"); got != "" {
		t.Errorf("unrecognized key applied: %q", got)
	}

	warns := r.Warnings()
	if len(warns) != 1 {
		t.Fatalf("warning count = %d, want 1", len(warns))
	}
	w := warns[0]
	if w.Key != "bogus" || w.Scope != ScopeEntity {
		t.Errorf("warning = %+v, want bogus/entity", w)
	}
	if !strings.Contains(w.String(), `unknown entity option "bogus"`) {
		t.Errorf("warning text = %q", w.String())
	}
}

func TestResolveScopedRecognition(t *testing.T) {
	// direction is a title key only; in other scopes it is unrecognized.
	r := New(&ast.Document{}, nil)
	r.Resolve(ScopeRelationship, ast.OptionSet{{Key: "direction", Value: "TB"}})
	if len(r.Warnings()) != 1 {
		t.Fatalf("warning count = %d, want 1", len(r.Warnings()))
	}
}

func TestNewFlagsGlobalUnknownKeys(t *testing.T) {
	doc := &ast.Document{
		Title: ast.OptionSet{{Key: "typo", Value: "x"}},
	}
	overrides := map[Scope]ast.OptionSet{
		ScopeHeader: {{Key: "also_bad", Value: "y"}},
	}
	r := New(doc, overrides)
	warns := r.Warnings()
	if len(warns) != 2 {
		t.Fatalf("warning count = %d, want 2 (%v)", len(warns), warns)
	}
	if warns[0].Key != "typo" || warns[0].Scope != ScopeTitle {
		t.Errorf("warning 0 = %+v", warns[0])
	}
	if warns[1].Key != "also_bad" || warns[1].Scope != ScopeHeader {
		t.Errorf("warning 1 = %+v", warns[1])
	}
}

func TestResolveQuietRecordsNoWarnings(t *testing.T) {
	r := New(&ast.Document{}, nil)
	local := ast.OptionSet{
		{Key: "bgcolor", Value: "#abcdef"},
		{Key: "cellpadding", Value: "9"}, // entity key, not a header key
	}
	res := r.ResolveQuiet(ScopeHeader, local)
	if got := res.Get("bgcolor"); got != "#abcdef" {
		t.Errorf("header bgcolor = %q, want %q", got, "#abcdef")
	}
	if len(r.Warnings()) != 0 {
		t.Errorf("ResolveQuiet recorded warnings: %v", r.Warnings())
	}
}

func TestResolveDuplicateLocalKeyLastWins(t *testing.T) {
	r := New(&ast.Document{}, nil)
	local := ast.OptionSet{
		{Key: "size", Value: "10"},
		{Key: "size", Value: "20"},
	}
	res := r.Resolve(ScopeEntity, local)
	if got := res.Get("size"); got != "20" {
		t.Errorf("size = %q, want last value %q", got, "20")
	}
}

func TestZeroResolver(t *testing.T) {
	var r Resolver
	res := r.Resolve(ScopeRelationship, nil)
	if got := res.Get("color"); got != "black" {
		t.Errorf("relationship color = %q, want %q", got, "black")
	}
}
