package todos

import (
	"reflect"

	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/redux/pkg/core"
)

// Theme holds the lipgloss styles the components render with. Themes are
// shared by pointer so that passing one as a prop never defeats memoization.
type Theme struct {
	Name   string
	Title  lipgloss.Style
	Item   lipgloss.Style
	Done   lipgloss.Style
	Cursor lipgloss.Style
	Active lipgloss.Style
	Muted  lipgloss.Style
}

// DefaultTheme is used when no theme, or an unknown one, is configured.
const DefaultTheme = "dracula"

// ThemeNames lists the known themes in cycling order.
var ThemeNames = []string{"dracula", "mono"}

var themes = map[string]*Theme{
	"dracula": {
		Name:   "dracula",
		Title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#bd93f9")),
		Item:   lipgloss.NewStyle().Foreground(lipgloss.Color("#f8f8f2")),
		Done:   lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("#6272a4")),
		Cursor: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ff79c6")),
		Active: lipgloss.NewStyle().Underline(true).Foreground(lipgloss.Color("#50fa7b")),
		Muted:  lipgloss.NewStyle().Foreground(lipgloss.Color("#6272a4")),
	},
	"mono": {
		Name:   "mono",
		Title:  lipgloss.NewStyle().Bold(true),
		Item:   lipgloss.NewStyle(),
		Done:   lipgloss.NewStyle().Faint(true),
		Cursor: lipgloss.NewStyle().Reverse(true),
		Active: lipgloss.NewStyle().Underline(true),
		Muted:  lipgloss.NewStyle().Faint(true),
	},
}

// ThemeNamed returns the theme called name, falling back to DefaultTheme.
func ThemeNamed(name string) *Theme {
	if theme, ok := themes[name]; ok {
		return theme
	}
	return themes[DefaultTheme]
}

// HasTheme reports whether name is a known theme.
func HasTheme(name string) bool {
	_, ok := themes[name]
	return ok
}

// Next returns the theme after t in ThemeNames, wrapping around.
func (t *Theme) Next() *Theme {
	for i, name := range ThemeNames {
		if name == t.Name {
			return themes[ThemeNames[(i+1)%len(ThemeNames)]]
		}
	}
	return themes[DefaultTheme]
}

// ThemeScope publishes a theme to its subtree. Components that read it
// rebuild when the theme changes even if their props did not.
type ThemeScope struct {
	core.InheritedBase
	Theme *Theme
	Child core.Widget
}

func (s ThemeScope) ChildWidget() core.Widget { return s.Child }

func (s ThemeScope) UpdateShouldNotify(old core.InheritedWidget) bool {
	return s.Theme != old.(ThemeScope).Theme
}

// ThemeOf returns the theme of the nearest ThemeScope above ctx and
// registers ctx as its dependent. Without a scope it returns DefaultTheme.
func ThemeOf(ctx core.BuildContext) *Theme {
	if scope, ok := ctx.DependOnInherited(reflect.TypeFor[ThemeScope]()).(ThemeScope); ok && scope.Theme != nil {
		return scope.Theme
	}
	return themes[DefaultTheme]
}
