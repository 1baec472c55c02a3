// Package dot renders parsed entity-relationship documents as Graphviz
// DOT text and, optionally, lays them out to SVG or PNG in-process.
//
// # Output
//
// [ToDOT] produces an undirected graph: one node statement per entity with
// an HTML-like table label (header row plus one row per attribute in
// declaration order), and one edge statement per relationship. Cardinality
// is expressed purely through arrow decorations on both edge ends
// (dir=both); the graph carries no directional meaning.
//
// Output is deterministic. Translating the same source with the same
// option overrides yields byte-identical DOT, so generated diagrams diff
// cleanly under version control.
//
// # Escaping
//
// All user text is escaped for the position it lands in: DOT quoted
// strings (backslash, double quote) or HTML-like labels (&, <, >).
//
// # Rendering
//
// [RenderSVG] and [RenderPNG] feed the DOT text through
// [github.com/goccy/go-graphviz] for in-process layout, no external
// Graphviz installation required.
package dot
