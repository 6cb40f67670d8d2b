package widgets

import "github.com/go-drift/redux/pkg/core"

// Padding indents every line rendered by its child by Left spaces.
type Padding struct {
	core.StatelessBase
	Left  int
	Child core.Widget
}

func (p Padding) Build(ctx core.BuildContext) core.Widget {
	return p.Child
}
