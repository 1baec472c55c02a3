// Package pkg provides the core libraries for translating
// entity-relationship markup into graph descriptions.
//
// # Overview
//
// The pkg directory is organized into five areas:
//
//  1. [parser] - Lexing and parsing of the markup grammar
//  2. [ast] - The parsed document model and reference validation
//  3. [options] - The layered option model (defaults, directives,
//     overrides, element-local options)
//  4. [render] - Output backends, currently DOT text plus rasterization
//  5. [pipeline] - Orchestration (parse → validate → resolve → render)
//
// # Architecture
//
// The typical data flow through a translation:
//
//	markup text
//	     ↓
//	[parser] package (tokenize + parse)
//	     ↓
//	[ast] package (document model + validation)
//	     ↓
//	[options] package (resolve effective styling)
//	     ↓
//	[render/dot] package (emit DOT, optionally SVG/PNG)
//
// # Quick Start
//
// Translate a document and print the DOT text:
//
//	import "github.com/davechallis/erd-go/pkg/pipeline"
//
//	result, err := pipeline.Translate(src, pipeline.Options{})
//	if err != nil {
//	    return err
//	}
//	fmt.Print(result.DOT)
//
// Callers needing finer control can drive the stages directly: parse with
// [parser.Parse], validate with [ast.Validate], then render with
// [render/dot.ToDOT].
package pkg
