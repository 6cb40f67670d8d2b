package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/redux/pkg/core"
)

// Text displays a string. Content containing newlines renders as several
// lines.
//
//	Text{Content: "Label"}
//	Text{Content: "Done", Style: &doneStyle}
type Text struct {
	// Content is the text to display.
	Content string
	// Style is applied to each rendered line. Nil renders the content
	// unchanged.
	Style *lipgloss.Style
}

func (t Text) CreateElement() core.Element {
	return core.NewStatelessElement(t, nil)
}

func (t Text) Key() any {
	return nil
}

// Build returns nil; Text is a leaf.
func (t Text) Build(ctx core.BuildContext) core.Widget {
	return nil
}

// WithStyle returns a copy of t using style.
func (t Text) WithStyle(style lipgloss.Style) Text {
	t.Style = &style
	return t
}

func (t Text) lines() []string {
	lines := strings.Split(t.Content, "\n")
	if t.Style == nil {
		return lines
	}
	for i, line := range lines {
		lines[i] = t.Style.Render(line)
	}
	return lines
}
