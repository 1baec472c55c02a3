package ast

import "fmt"

// UnresolvedEntityError reports a relationship endpoint that names no
// declared entity.
type UnresolvedEntityError struct {
	Name string
	Pos  Position
}

func (e *UnresolvedEntityError) Error() string {
	return fmt.Sprintf("%s: relationship references undeclared entity %q", e.Pos, e.Name)
}

// Validate checks that every relationship endpoint resolves to a declared
// entity. It returns the first failure found, in declaration order, so a
// document that references a nonexistent entity never reaches the renderer.
func Validate(doc *Document) error {
	declared := make(map[string]bool, len(doc.Entities))
	for _, e := range doc.Entities {
		declared[e.Name] = true
	}

	for _, r := range doc.Relations {
		if !declared[r.Left] {
			return &UnresolvedEntityError{Name: r.Left, Pos: r.Pos}
		}
		if !declared[r.Right] {
			return &UnresolvedEntityError{Name: r.Right, Pos: r.Pos}
		}
	}
	return nil
}
