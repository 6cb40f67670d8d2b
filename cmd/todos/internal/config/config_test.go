package config

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-drift/redux/cmd/todos/internal/todos"
	"github.com/go-drift/redux/pkg/errors"
	"github.com/go-drift/redux/pkg/redux"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	for _, path := range []string{"", filepath.Join(t.TempDir(), "absent.yaml")} {
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load(%q) error = %v", path, err)
		}
		if diff := cmp.Diff(Default(), cfg); diff != "" {
			t.Errorf("Load(%q) mismatch (-want +got):\n%s", path, diff)
		}
	}
}

func TestLoadFormats(t *testing.T) {
	off := false
	want := Config{
		Version: "v1.0.0",
		Theme:   "mono",
		Debug:   true,
		Filter:  todos.ShowActive,
		Todos:   []TodoConfig{{Text: "milk"}, {Text: "eggs", Completed: true}},
		Connect: redux.Options{Pure: &off, StoreKey: "todos"},
	}
	files := map[string]string{
		"todos.yaml": `version: "1.0.0"
theme: mono
debug: true
filter: SHOW_ACTIVE
todos:
  - text: milk
  - text: eggs
    completed: true
connect:
  pure: false
  store_key: todos
`,
		"todos.toml": `version = "v1.0.0"
theme = "mono"
debug = true
filter = "SHOW_ACTIVE"

[[todos]]
text = "milk"

[[todos]]
text = "eggs"
completed = true

[connect]
pure = false
store_key = "todos"
`,
	}
	for name, content := range files {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
				t.Fatal(err)
			}
			cfg, err := Load(path)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if diff := cmp.Diff(want, cfg); diff != "" {
				t.Errorf("Load() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		ext     string
		wantErr string
	}{
		{"unsupported extension", "", ".json", "unsupported config format"},
		{"bad yaml", "theme: [", ".yaml", "parse config"},
		{"bad version", "version: banana", ".yaml", "not a semantic version"},
		{"other major", "version: v2.0.0", ".yaml", "not supported"},
		{"newer minor", "version: v1.9.0", ".yml", "newer than this build"},
		{"unknown theme", "theme = \"neon\"", ".toml", "unknown theme"},
		{"unknown filter", "filter: SHOW_SOME", ".yaml", "unknown filter"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), tt.ext)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("Parse() error = %v, want it to mention %q", err, tt.wantErr)
			}
			var berr *errors.BindingError
			if !stderrors.As(err, &berr) || berr.Kind != errors.KindConfig || berr.Op != "config.Parse" {
				t.Errorf("Parse() error = %#v, want a config.Parse BindingError of kind config", err)
			}
		})
	}
}

func TestLoadUnreadableFile(t *testing.T) {
	// directories exist but cannot be read as a file
	_, err := Load(t.TempDir())
	var berr *errors.BindingError
	if !stderrors.As(err, &berr) {
		t.Fatalf("Load() error = %v, want a BindingError", err)
	}
	if berr.Kind != errors.KindConfig || berr.Op != "config.Load" {
		t.Errorf("Load() error = %s %s, want config.Load of kind config", berr.Op, berr.Kind)
	}
	if !strings.Contains(err.Error(), "read config") {
		t.Errorf("Load() error = %v, want it to mention read config", err)
	}
}

func TestInitialState(t *testing.T) {
	cfg := Default()
	cfg.Todos = []TodoConfig{{Text: " milk "}, {Text: ""}, {Text: "eggs", Completed: true}}

	got := cfg.InitialState()
	want := &todos.State{Filter: todos.ShowAll, Todos: []todos.Todo{
		{ID: 0, Text: "milk"},
		{ID: 1, Text: "eggs", Completed: true},
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("InitialState() mismatch (-want +got):\n%s", diff)
	}
}
