// Package parser turns entity-relationship markup into an ast.Document.
//
// The grammar is line-oriented. An input is a sequence of statements,
// each terminated by a newline:
//
//	[Person] {bgcolor: "#ececfc"}
//	*id
//	name: varchar(255)
//	+dept_id
//
//	Person *--1 Department {label: "works in"}
//
// Square brackets declare an entity; subsequent bare lines are its
// attributes, with leading '*' marking a primary key and '+' a foreign
// key. Two names joined by a pair of cardinality symbols around "--"
// declare a relationship. Before the first entity, the words title,
// header, entity and relationship introduce document-level option
// blocks. A '#' starts a comment running to end of line.
//
// Parse is strict: the first token outside the grammar aborts with a
// *ParseError or *LexError carrying a line and column.
package parser
