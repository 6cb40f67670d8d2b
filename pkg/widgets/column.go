package widgets

import "github.com/go-drift/redux/pkg/core"

// Column stacks its children vertically, in order.
type Column struct {
	core.MultiChildBase
	Children []core.Widget
}

// ColumnOf returns a Column holding children. Nil children are dropped.
func ColumnOf(children ...core.Widget) Column {
	kept := make([]core.Widget, 0, len(children))
	for _, child := range children {
		if child != nil {
			kept = append(kept, child)
		}
	}
	return Column{Children: kept}
}

func (c Column) ChildWidgets() []core.Widget {
	return c.Children
}
