package dot

import (
	"bytes"
	"fmt"

	"github.com/davechallis/erd-go/pkg/ast"
	"github.com/davechallis/erd-go/pkg/options"
)

// arrowShapes maps each cardinality onto its DOT arrow decoration: a tee or
// crow's foot with an optional circle. Edges are drawn dir=both so the
// decoration on each end, not the edge direction, carries the meaning.
var arrowShapes = map[ast.Cardinality]string{
	ast.ZeroOne:  "noneodot",
	ast.One:      "nonetee",
	ast.ZeroPlus: "crowodot",
	ast.OnePlus:  "crowtee",
}

// ArrowShape returns the DOT arrowhead/arrowtail glyph name for c.
func ArrowShape(c ast.Cardinality) string {
	return arrowShapes[c]
}

// ToDOT renders a document as DOT graph text. Output is deterministic:
// the same document and resolver configuration always produce
// byte-identical text. Every entity becomes one node statement with an
// HTML-like table label and every relationship becomes one edge statement,
// both in declaration order. Rendering never fails; callers are expected
// to have run [ast.Validate] first.
func ToDOT(doc *ast.Document, r *options.Resolver) string {
	var buf bytes.Buffer

	title := r.Resolve(options.ScopeTitle, nil)

	buf.WriteString("graph {\n")
	writeGraphDefaults(&buf, title)

	for _, e := range doc.Entities {
		writeEntity(&buf, e, r)
	}

	if len(doc.Relations) > 0 {
		buf.WriteString("\n")
	}
	for _, rel := range doc.Relations {
		writeRelation(&buf, rel, r)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func writeGraphDefaults(buf *bytes.Buffer, title options.Resolved) {
	buf.WriteString("  graph [")
	if label := title.Get("label"); label != "" {
		fmt.Fprintf(buf, "label=<<FONT COLOR=\"%s\" POINT-SIZE=\"%s\">%s</FONT>>, labeljust=\"l\", labelloc=\"t\", ",
			escapeHTML(title.Get("color")), escapeHTML(title.Get("size")), escapeHTML(label))
	}
	fmt.Fprintf(buf, "fontname=\"%s\", rankdir=\"%s\", splines=\"spline\"];\n",
		escapeQuoted(title.Get("font")), escapeQuoted(title.Get("direction")))
	buf.WriteString("  node [label=\"\\N\", shape=\"plaintext\"];\n")
	buf.WriteString("  edge [dir=\"both\"];\n\n")
}

func writeEntity(buf *bytes.Buffer, e *ast.Entity, r *options.Resolver) {
	ent := r.Resolve(options.ScopeEntity, e.Options)
	hdr := r.ResolveQuiet(options.ScopeHeader, e.Options)

	fmt.Fprintf(buf, "  \"%s\" [label=<\n", escapeQuoted(e.Name))
	fmt.Fprintf(buf, "    <FONT FACE=\"%s\">\n", escapeHTML(ent.Get("font")))
	fmt.Fprintf(buf, "    <TABLE BGCOLOR=\"%s\" BORDER=\"%s\" CELLBORDER=\"%s\" CELLPADDING=\"%s\" CELLSPACING=\"%s\">\n",
		escapeHTML(ent.Get("bgcolor")), escapeHTML(ent.Get("border")),
		escapeHTML(ent.Get("cellborder")), escapeHTML(ent.Get("cellpadding")),
		escapeHTML(ent.Get("cellspacing")))

	buf.WriteString("      " + headerRow(e.Name, ent, hdr) + "\n")
	for _, a := range e.Attrs {
		attr := r.Resolve(options.ScopeAttribute, a.Options)
		buf.WriteString("      " + attributeRow(a, attr) + "\n")
	}

	buf.WriteString("    </TABLE>\n")
	buf.WriteString("    </FONT>\n")
	buf.WriteString("  >];\n")
}

// headerRow renders the entity name row. The header background falls back
// to the entity background when not set explicitly.
func headerRow(name string, ent, hdr options.Resolved) string {
	var td string
	if bg := hdr.Get("bgcolor"); bg != "" && bg != ent.Get("bgcolor") {
		td = fmt.Sprintf(" BGCOLOR=\"%s\"", escapeHTML(bg))
	}
	if b := hdr.Get("border"); b != "" {
		td += fmt.Sprintf(" BORDER=\"%s\"", escapeHTML(b))
	}
	if bc := hdr.Get("border-color"); bc != "" {
		td += fmt.Sprintf(" COLOR=\"%s\"", escapeHTML(bc))
	}
	return fmt.Sprintf("<TR><TD%s><B><FONT COLOR=\"%s\" POINT-SIZE=\"%s\">%s</FONT></B></TD></TR>",
		td, escapeHTML(hdr.Get("color")), escapeHTML(hdr.Get("size")), escapeHTML(name))
}

// attributeRow renders one attribute row. Key attributes are underlined,
// foreign keys italic; a type label (from the ':' suffix or the label
// option) is appended in brackets.
func attributeRow(a *ast.Attribute, res options.Resolved) string {
	text := escapeHTML(a.Name)
	switch {
	case a.IsKey && a.IsFK:
		text = "<I><U>" + text + "</U></I>"
	case a.IsKey:
		text = "<U>" + text + "</U>"
	case a.IsFK:
		text = "<I>" + text + "</I>"
	}

	label := res.Get("label")
	if label == "" {
		label = a.Type
	}
	if label != "" {
		text += " [" + escapeHTML(label) + "]"
	}

	var font string
	if f, c, s := res.Get("font"), res.Get("color"), res.Get("size"); f != "" || c != "" || s != "" {
		font = "<FONT"
		if f != "" {
			font += fmt.Sprintf(" FACE=\"%s\"", escapeHTML(f))
		}
		if c != "" {
			font += fmt.Sprintf(" COLOR=\"%s\"", escapeHTML(c))
		}
		if s != "" {
			font += fmt.Sprintf(" POINT-SIZE=\"%s\"", escapeHTML(s))
		}
		text = font + ">" + text + "</FONT>"
	}

	td := fmt.Sprintf(" ALIGN=\"%s\"", escapeHTML(res.Get("text-alignment")))
	if bg := res.Get("bgcolor"); bg != "" {
		td += fmt.Sprintf(" BGCOLOR=\"%s\"", escapeHTML(bg))
	}
	return fmt.Sprintf("<TR><TD%s>%s</TD></TR>", td, text)
}

func writeRelation(buf *bytes.Buffer, rel *ast.Relation, r *options.Resolver) {
	res := r.Resolve(options.ScopeRelationship, rel.Options)

	attrs := fmt.Sprintf("arrowhead=\"%s\", arrowtail=\"%s\", color=\"%s\", fontname=\"%s\"",
		arrowShapes[rel.RightCard], arrowShapes[rel.LeftCard],
		escapeQuoted(res.Get("color")), escapeQuoted(res.Get("font")))
	if label := res.Get("label"); label != "" {
		attrs += fmt.Sprintf(", label=\"%s\"", escapeQuoted(label))
	}
	if size := res.Get("size"); size != "" {
		attrs += fmt.Sprintf(", fontsize=\"%s\"", escapeQuoted(size))
	}
	if style := res.Get("style"); style != "" {
		attrs += fmt.Sprintf(", style=\"%s\"", escapeQuoted(style))
	}

	fmt.Fprintf(buf, "  \"%s\" -- \"%s\" [%s];\n",
		escapeQuoted(rel.Left), escapeQuoted(rel.Right), attrs)
}
