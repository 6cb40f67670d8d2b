// Package widgets provides the small set of widgets used to describe
// terminal output: styled text lines, vertical stacks and indentation.
//
// # Widget Construction
//
// Widgets are plain struct literals:
//
//	widgets.Column{Children: []core.Widget{
//	    widgets.Text{Content: "Todos"},
//	    widgets.Padding{Left: 2, Child: list},
//	}}
//
// Use [ColumnOf] when the children are known inline.
//
// # Rendering
//
// A mounted tree is flattened to lines with [Lines] or [Render]. Text
// contributes one line per newline-separated segment, Padding indents
// everything below it, and any other element contributes the lines of its
// children in order.
package widgets
