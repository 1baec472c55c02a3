// Package ast defines the data model for parsed entity-relationship
// documents: entities with ordered attributes, relationships with a
// cardinality on each side, and the scoped option sets attached to each.
//
// Documents are built once by [github.com/davechallis/erd-go/pkg/parser]
// and are not mutated afterwards. [Validate] checks relationship endpoints
// against the set of declared entities before rendering.
package ast
