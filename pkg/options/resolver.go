package options

import "github.com/davechallis/erd-go/pkg/ast"

// Resolved holds the effective options for one element: every recognized
// key of the element's scope mapped to a value.
type Resolved map[string]string

// Get returns the effective value for key. Keys outside the scope's
// recognized set resolve to "".
func (r Resolved) Get(key string) string {
	return r[key]
}

// Resolver computes effective option values for document elements.
//
// The zero value resolves with built-in defaults only. A resolver built by
// New layers the document's directive blocks and any external overrides on
// top of the defaults; Resolve then layers an element's local options on
// top of that. Each call returns a fresh map, so resolved views can be
// shared freely.
type Resolver struct {
	global   map[Scope]ast.OptionSet // document directives per scope
	override map[Scope]ast.OptionSet // external (CLI/config) overrides per scope
	warnings []Warning
}

// New creates a Resolver for a parsed document. overrides supplies
// externally configured global options per scope (may be nil); they take
// precedence over the document's own directives, last writer wins.
// Unrecognized keys in the document's directives are recorded as warnings
// immediately; warnings for element-local options accumulate as elements
// are resolved.
func New(doc *ast.Document, overrides map[Scope]ast.OptionSet) *Resolver {
	r := &Resolver{
		global: map[Scope]ast.OptionSet{
			ScopeTitle:        doc.Title,
			ScopeHeader:       doc.Header,
			ScopeEntity:       doc.Entity,
			ScopeRelationship: doc.Relationship,
		},
		override: overrides,
	}
	for _, scope := range Scopes {
		r.flag(scope, r.global[scope])
		r.flag(scope, r.override[scope])
	}
	return r
}

// flag records warnings for unrecognized keys without applying them.
func (r *Resolver) flag(scope Scope, opts ast.OptionSet) {
	for _, o := range opts {
		if !Recognized(scope, o.Key) {
			r.warnings = append(r.warnings, Warning{Key: o.Key, Scope: scope, Pos: o.Pos})
		}
	}
}

// Resolve returns the effective options for an element in the given scope
// with the given local options. Precedence, lowest to highest: built-in
// default, document directive, external override, element-local option.
func (r *Resolver) Resolve(scope Scope, local ast.OptionSet) Resolved {
	res := make(Resolved, len(defaults[scope]))
	for key, def := range defaults[scope] {
		res[key] = def
	}
	r.apply(res, scope, r.global[scope], false)
	r.apply(res, scope, r.override[scope], false)
	r.apply(res, scope, local, true)
	return res
}

// ResolveQuiet is like Resolve but records no warnings for unrecognized
// local keys. The renderer uses it when one element's local options feed a
// second scope (an entity's options also style its header row); flagging
// there would duplicate the warnings from the primary scope.
func (r *Resolver) ResolveQuiet(scope Scope, local ast.OptionSet) Resolved {
	res := make(Resolved, len(defaults[scope]))
	for key, def := range defaults[scope] {
		res[key] = def
	}
	r.apply(res, scope, r.global[scope], false)
	r.apply(res, scope, r.override[scope], false)
	r.apply(res, scope, local, false)
	return res
}

// apply overlays recognized keys from opts onto res. Element-local sets
// are flagged here; global sets were already flagged by New.
func (r *Resolver) apply(res Resolved, scope Scope, opts ast.OptionSet, flagUnknown bool) {
	for _, o := range opts {
		if !Recognized(scope, o.Key) {
			if flagUnknown {
				r.warnings = append(r.warnings, Warning{Key: o.Key, Scope: scope, Pos: o.Pos})
			}
			continue
		}
		res[o.Key] = o.Value
	}
}

// Warnings returns all unrecognized-key warnings recorded so far, in the
// order encountered.
func (r *Resolver) Warnings() []Warning {
	return r.warnings
}
