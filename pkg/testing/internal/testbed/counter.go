// Package testbed provides internal test widgets for the testing framework.
package testbed

import (
	"strconv"

	"github.com/go-drift/redux/pkg/core"
	"github.com/go-drift/redux/pkg/widgets"
)

// Counter is a stateful widget that displays a count. Bind receives a
// function that increments the count, standing in for user input.
type Counter struct {
	core.StatefulBase
	Initial int
	Bind    func(increment func())
}

func (c Counter) CreateState() core.State {
	return &counterState{}
}

type counterState struct {
	core.StateBase
	count int
}

func (s *counterState) InitState() {
	w := s.Widget().(Counter)
	s.count = w.Initial
	if w.Bind != nil {
		w.Bind(func() {
			s.SetState(func() { s.count++ })
		})
	}
}

func (s *counterState) Build(ctx core.BuildContext) core.Widget {
	return widgets.Column{Children: []core.Widget{
		widgets.Text{Content: "count"},
		widgets.Padding{Left: 2, Child: widgets.Text{Content: strconv.Itoa(s.count)}},
	}}
}
