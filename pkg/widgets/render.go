package widgets

import (
	"strings"

	"github.com/go-drift/redux/pkg/core"
)

// Lines flattens the mounted tree under root into output lines.
func Lines(root core.Element) []string {
	if root == nil {
		return nil
	}
	var out []string
	collectLines(root, 0, &out)
	return out
}

// Render is Lines joined with newlines.
func Render(root core.Element) string {
	return strings.Join(Lines(root), "\n")
}

func collectLines(element core.Element, indent int, out *[]string) {
	switch w := element.Widget().(type) {
	case Text:
		prefix := strings.Repeat(" ", indent)
		for _, line := range w.lines() {
			*out = append(*out, prefix+line)
		}
		return
	case Padding:
		indent += w.Left
	}
	element.VisitChildren(func(child core.Element) bool {
		collectLines(child, indent, out)
		return true
	})
}
