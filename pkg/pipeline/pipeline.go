// Package pipeline provides the core translation pipeline: markup text in,
// DOT text out.
//
// # Architecture
//
// A translation runs four stages over a single document:
//
//  1. Parse: tokenize and parse the markup into an AST
//  2. Validate: check relationship endpoints against declared entities
//  3. Resolve: merge defaults, document directives, external overrides and
//     element-local options
//  4. Render: emit deterministic DOT text
//
// The pipeline is synchronous and stateless across invocations; concurrent
// translations are safe because no state outlives a single [Translate]
// call.
//
// # Usage
//
//	result, err := pipeline.Translate(src, pipeline.Options{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(result.DOT)
//	for _, w := range result.Warnings {
//	    log.Warn(w.String())
//	}
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/davechallis/erd-go/pkg/ast"
	"github.com/davechallis/erd-go/pkg/options"
	"github.com/davechallis/erd-go/pkg/parser"
	"github.com/davechallis/erd-go/pkg/render/dot"
)

// Options configures a translation.
type Options struct {
	// Overrides supplies external global options per scope, equivalent in
	// shape to the document's own directive blocks. Overrides take
	// precedence over document-declared directives but not over
	// element-local options.
	Overrides map[options.Scope]ast.OptionSet

	// Logger receives stage summaries. Nil discards them.
	Logger *log.Logger

	validated bool
}

// ValidateAndSetDefaults applies defaults. Idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// Result contains the outputs of a successful translation.
type Result struct {
	// Document is the parsed AST.
	Document *ast.Document

	// DOT is the rendered graph text.
	DOT string

	// Warnings lists unrecognized option keys found in source. They were
	// ignored, not applied; the DOT output is unaffected by them.
	Warnings []options.Warning

	// Stats contains counts and timing information.
	Stats Stats
}

// Stats contains translation statistics.
type Stats struct {
	EntityCount   int
	RelationCount int
	ParseTime     time.Duration
	RenderTime    time.Duration
}

// Translate runs the full parse → validate → resolve → render pipeline on
// one markup document. On failure no partial output is returned: the error
// is a *parser.LexError, *parser.ParseError, or *ast.UnresolvedEntityError,
// each carrying a source position.
func Translate(src []byte, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	parseStart := time.Now()
	doc, err := parser.Parse(src)
	if err != nil {
		return nil, err
	}
	parseTime := time.Since(parseStart)

	opts.Logger.Info("parsed document",
		"entities", len(doc.Entities),
		"relationships", len(doc.Relations),
		"duration", parseTime)

	if err := ast.Validate(doc); err != nil {
		return nil, err
	}

	renderStart := time.Now()
	resolver := options.New(doc, opts.Overrides)
	out := dot.ToDOT(doc, resolver)
	renderTime := time.Since(renderStart)

	warnings := resolver.Warnings()
	for _, w := range warnings {
		opts.Logger.Warn("ignoring unknown option", "scope", w.Scope, "key", w.Key, "pos", w.Pos)
	}
	opts.Logger.Info("rendered DOT", "bytes", len(out), "duration", renderTime)

	return &Result{
		Document: doc,
		DOT:      out,
		Warnings: warnings,
		Stats: Stats{
			EntityCount:   len(doc.Entities),
			RelationCount: len(doc.Relations),
			ParseTime:     parseTime,
			RenderTime:    renderTime,
		},
	}, nil
}
