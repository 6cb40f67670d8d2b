// Package app runs the todos demo: a bubbletea program hosting a connected
// widget tree.
package app

import (
	"context"
	stderrors "errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/golang/glog"

	"github.com/go-drift/redux/cmd/todos/internal/config"
	"github.com/go-drift/redux/cmd/todos/internal/todos"
	"github.com/go-drift/redux/pkg/core"
	"github.com/go-drift/redux/pkg/errors"
	"github.com/go-drift/redux/pkg/redux"
	"github.com/go-drift/redux/pkg/store"
	"github.com/go-drift/redux/pkg/widgets"
)

// Options configure the demo.
type Options struct {
	ConfigPath string
}

// Run loads the configuration and blocks until the user quits or ctx is
// cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}
	glog.Infof("todos: config version %s, theme %s, %d initial todos", cfg.Version, cfg.Theme, len(cfg.Todos))

	errors.SetHandler(glogHandler{})
	core.SetDebugMode(cfg.Debug)

	m := New(cfg)
	defer m.Close()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if stderrors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}
	return nil
}

type focus int

const (
	focusInput focus = iota
	focusList
)

// Model is the bubbletea model. It owns the store and the mounted tree;
// every message that changes anything ends with a build flush.
type Model struct {
	store store.Store
	views todos.Views
	owner *core.BuildOwner
	root  core.Element

	theme  *todos.Theme
	input  textinput.Model
	focus  focus
	cursor int
}

// New creates the store from cfg and mounts the tree.
func New(cfg config.Config) Model {
	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "What needs to be done?"
	input.CharLimit = 120
	input.Focus()

	m := Model{
		store: store.New(todos.Reduce, cfg.InitialState()),
		views: todos.NewViews(cfg.Connect),
		owner: core.NewBuildOwner(),
		theme: todos.ThemeNamed(cfg.Theme),
		input: input,
	}
	m.root = core.MountRoot(m.tree(), m.owner)
	m.owner.FlushBuild()
	return m
}

// Store returns the store driving the tree.
func (m Model) Store() store.Store { return m.store }

// Close unmounts the tree.
func (m Model) Close() {
	if m.root != nil {
		m.root.Unmount()
	}
}

func (m Model) tree() core.Widget {
	return m.views.Tree(m.store, todos.Frame{
		Input:       m.input.View(),
		Cursor:      m.cursor,
		ListFocused: m.focus == focusList,
		Theme:       m.theme,
	})
}

// render hands the tree its new frame and flushes pending rebuilds.
func (m Model) render() Model {
	m.clampCursor()
	m.root.Update(m.tree())
	m.owner.FlushBuild()
	return m
}

func (m *Model) clampCursor() {
	n := len(m.visible())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) visible() []todos.Todo {
	return todos.Visible(m.store.GetState().(*todos.State))
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m.render(), cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "tab":
		if m.focus == focusInput {
			m.focus = focusList
			m.input.Blur()
		} else {
			m.focus = focusInput
			m.input.Focus()
		}
		return m.render(), nil
	}

	if m.focus == focusInput {
		if msg.Type == tea.KeyEnter {
			m.call(m.views.AddTodo, "addTodo", m.input.Value())
			m.input.Reset()
			return m.render(), nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m.render(), cmd
	}

	switch msg.String() {
	case "up", "k":
		m.cursor--
	case "down", "j":
		m.cursor++
	case " ", "x", "enter":
		if visible := m.visible(); m.cursor < len(visible) {
			m.call(m.views.TodoList, "completeTodo", visible[m.cursor].ID)
		}
	case "f":
		current := m.store.GetState().(*todos.State).Filter
		m.call(m.views.Footer, "setVisibilityFilter", current.Next())
	case "1", "2", "3":
		m.call(m.views.Footer, "setVisibilityFilter", todos.Filters[msg.String()[0]-'1'])
	case "t":
		m.theme = m.theme.Next()
	case "q":
		return m, tea.Quit
	}
	return m.render(), nil
}

// call invokes the bound action creator name of the mounted view. A panic
// in the reducer is reported and leaves the program running.
func (m Model) call(view *redux.Connected, name string, args ...any) {
	defer errors.Recover("todos." + name)
	handler, ok := m.views.Handler(m.root, view, name)
	if !ok {
		glog.Warningf("todos: %s has no %s handler", view.DisplayName(), name)
		return
	}
	handler(args...)
}

const help = "tab: switch focus • enter: add • ↑/↓: move • x: toggle • f/1-3: filter • t: theme • esc: quit"

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(widgets.Render(m.root))
	b.WriteString("\n\n")
	b.WriteString(m.theme.Muted.Render(help))
	b.WriteString("\n")
	return b.String()
}
