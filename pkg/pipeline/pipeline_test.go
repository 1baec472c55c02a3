package pipeline

import (
	"errors"
	"strings"
	"testing"

	"github.com/davechallis/erd-go/pkg/ast"
	"github.com/davechallis/erd-go/pkg/options"
	"github.com/davechallis/erd-go/pkg/parser"
)

const sampleSchema = `title {label: "People"}

[Person]
*id
name
+birth_place_id

[Location]
*id
city

Person *--1 Location {label: "born in"}
`

func TestTranslate(t *testing.T) {
	res, err := Translate([]byte(sampleSchema), Options{})
	if err != nil {
		t.Fatalf("Translate() error = %v", err)
	}
	if res.Stats.EntityCount != 2 {
		t.Errorf("entity count = %d, want 2", res.Stats.EntityCount)
	}
	if res.Stats.RelationCount != 1 {
		t.Errorf("relation count = %d, want 1", res.Stats.RelationCount)
	}
	if len(res.Warnings) != 0 {
		t.Errorf("warnings = %v, want none", res.Warnings)
	}
	for _, want := range []string{
		"graph {",
		`"Person" [label=<`,
		`"Location" [label=<`,
		`"Person" -- "Location" [`,
		`label="born in"`,
		">People</FONT>",
	} {
		if !strings.Contains(res.DOT, want) {
			t.Errorf("DOT missing %q:\n%s", want, res.DOT)
		}
	}
}

func TestTranslateParseError(t *testing.T) {
	res, err := Translate([]byte("[Person]\n[Person]\n"), Options{})
	if res != nil {
		t.Error("partial result returned alongside an error")
	}
	var perr *parser.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("error = %v, want *parser.ParseError", err)
	}
}

func TestTranslateLexError(t *testing.T) {
	_, err := Translate([]byte("[Person]\n\"unterminated\n"), Options{})
	var lerr *parser.LexError
	if !errors.As(err, &lerr) {
		t.Fatalf("error = %v, want *parser.LexError", err)
	}
}

func TestTranslateUnresolvedEntity(t *testing.T) {
	res, err := Translate([]byte("[A]\nA 1--1 Ghost\n"), Options{})
	if res != nil {
		t.Error("result returned for a document with a dangling relationship")
	}
	var uerr *ast.UnresolvedEntityError
	if !errors.As(err, &uerr) {
		t.Fatalf("error = %v, want *ast.UnresolvedEntityError", err)
	}
	if uerr.Name != "Ghost" {
		t.Errorf("unresolved name = %q, want %q", uerr.Name, "Ghost")
	}
}

func TestTranslateWarningsAccompanySuccess(t *testing.T) {
	res, err := Translate([]byte("[A] {mystery: \"x\"}\nid\n"), Options{})
	if err != nil {
		t.Fatalf("Translate() error = %v", err)
	}
	if len(res.Warnings) != 1 {
		t.Fatalf("warning count = %d, want 1", len(res.Warnings))
	}
	if res.Warnings[0].Key != "mystery" {
		t.Errorf("warning key = %q, want %q", res.Warnings[0].Key, "mystery")
	}
	if res.DOT == "" {
		t.Error("warning suppressed the DOT output")
	}
}

func TestTranslateOverrides(t *testing.T) {
	opts := Options{
		Overrides: map[options.Scope]ast.OptionSet{
			options.ScopeEntity: {{Key: "bgcolor", Value: "#ffffff"}},
		},
	}
	res, err := Translate([]byte("[A]\n"), opts)
	if err != nil {
		t.Fatalf("Translate() error = %v", err)
	}
	if !strings.Contains(res.DOT, `BGCOLOR="#ffffff"`) {
		t.Errorf("override not applied:\n%s", res.DOT)
	}

	// A local option still beats the override.
	res, err = Translate([]byte("[A] {bgcolor: \"#000000\"}\n"), opts)
	if err != nil {
		t.Fatalf("Translate() error = %v", err)
	}
	if !strings.Contains(res.DOT, `BGCOLOR="#000000"`) {
		t.Errorf("local option lost to override:\n%s", res.DOT)
	}
}

func TestTranslateEmptyInput(t *testing.T) {
	res, err := Translate(nil, Options{})
	if err != nil {
		t.Fatalf("Translate() error = %v", err)
	}
	if !strings.HasPrefix(res.DOT, "graph {") {
		t.Errorf("empty input did not render an empty graph:\n%s", res.DOT)
	}
}

func TestTranslateDeterministic(t *testing.T) {
	first, err := Translate([]byte(sampleSchema), Options{})
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		res, err := Translate([]byte(sampleSchema), Options{})
		if err != nil {
			t.Fatal(err)
		}
		if res.DOT != first.DOT {
			t.Fatalf("translation %d produced different DOT", i)
		}
	}
}
