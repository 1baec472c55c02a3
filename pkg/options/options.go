// Package options implements the layered option model for rendered
// diagrams. Each element scope (title, header, entity, attribute,
// relationship) has a closed set of recognized keys with built-in
// defaults. A Resolver merges, in increasing precedence: defaults,
// document-level directives, external overrides supplied by the caller,
// and element-local options. Unrecognized keys are never applied; they
// are collected as warnings so a typo'd key is always surfaced.
//
// Resolution is a pure merge with no I/O and no failure modes: it is
// total over every well-formed document.
package options

import (
	"fmt"

	"github.com/davechallis/erd-go/pkg/ast"
)

// Scope identifies which element kind an option applies to.
type Scope int

const (
	ScopeTitle Scope = iota
	ScopeHeader
	ScopeEntity
	ScopeAttribute
	ScopeRelationship
)

func (s Scope) String() string {
	switch s {
	case ScopeTitle:
		return "title"
	case ScopeHeader:
		return "header"
	case ScopeEntity:
		return "entity"
	case ScopeAttribute:
		return "attribute"
	case ScopeRelationship:
		return "relationship"
	}
	return fmt.Sprintf("Scope(%d)", int(s))
}

// Scopes lists all scopes in resolution order.
var Scopes = []Scope{ScopeTitle, ScopeHeader, ScopeEntity, ScopeAttribute, ScopeRelationship}

// defaults maps each scope to its recognized keys and built-in default
// values. A key absent from its scope's map is unrecognized in that scope.
var defaults = map[Scope]map[string]string{
	ScopeTitle: {
		"label":     "",
		"size":      "30",
		"font":      "Helvetica",
		"color":     "black",
		"direction": "LR",
	},
	ScopeHeader: {
		"bgcolor":      "",
		"size":         "16",
		"font":         "Helvetica",
		"color":        "black",
		"border":       "",
		"border-color": "",
	},
	ScopeEntity: {
		"bgcolor":      "#d0e0d0",
		"size":         "14",
		"font":         "Helvetica",
		"color":        "black",
		"border":       "0",
		"border-color": "",
		"cellborder":   "1",
		"cellpadding":  "4",
		"cellspacing":  "0",
	},
	ScopeAttribute: {
		"label":          "",
		"bgcolor":        "",
		"color":          "",
		"font":           "",
		"size":           "",
		"text-alignment": "LEFT",
	},
	ScopeRelationship: {
		"label": "",
		"color": "black",
		"size":  "",
		"font":  "Helvetica",
		"style": "",
	},
}

// Recognized reports whether key is a recognized option in scope.
func Recognized(scope Scope, key string) bool {
	_, ok := defaults[scope][key]
	return ok
}

// Default returns the built-in default for key in scope, or "" if the key
// is not recognized there.
func Default(scope Scope, key string) string {
	return defaults[scope][key]
}

// Warning records an unrecognized option key found in source. Warnings are
// non-fatal: the key is ignored, the translation still succeeds, and the
// rendered output is identical to a document without the key.
type Warning struct {
	Key   string
	Scope Scope
	Pos   ast.Position
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: unknown %s option %q", w.Pos, w.Scope, w.Key)
}
