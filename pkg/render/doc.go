// Package render groups the output backends.
//
// Each subpackage turns a validated document into one output family:
//
//   - [dot] - DOT graph text, the primary output, plus SVG and PNG
//     rasterization through an embedded Graphviz engine
//
// Backends are pure functions over the document and a resolved option
// set; they share no state and can run concurrently.
package render
