package testing

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/redux/pkg/core"
	"github.com/go-drift/redux/pkg/props"
	"github.com/go-drift/redux/pkg/widgets"
)

// UpdateSnapshotsEnv names the environment variable that rewrites golden
// files instead of comparing against them.
const UpdateSnapshotsEnv = "REDUX_UPDATE_SNAPSHOTS"

// TestingT is the subset of *testing.T used by MatchesFile, allowing
// test doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// Snapshot captures the element tree and the rendered lines.
type Snapshot struct {
	Lines []string     `yaml:"lines"`
	Tree  *ElementNode `yaml:"tree,omitempty"`
}

// ElementNode is one element in a captured tree.
type ElementNode struct {
	ID       string         `yaml:"id"`
	Type     string         `yaml:"type"`
	Props    map[string]any `yaml:"props,omitempty"`
	Children []*ElementNode `yaml:"children,omitempty"`
}

// CaptureSnapshot captures the current tree.
func (t *WidgetTester) CaptureSnapshot() *Snapshot {
	snap := &Snapshot{Lines: t.Lines()}
	if t.root != nil {
		snap.Tree = captureNode(t.root, &typeCounter{})
	}
	return snap
}

// MatchesFile compares this snapshot against a golden file. On mismatch it
// reports a diff and instructions for updating. When REDUX_UPDATE_SNAPSHOTS=1
// is set, the file is silently updated instead.
func (s *Snapshot) MatchesFile(t TestingT, path string) {
	t.Helper()

	if os.Getenv(UpdateSnapshotsEnv) == "1" {
		if err := s.UpdateFile(path); err != nil {
			t.Fatalf("failed to update snapshot: %v", err)
		}
		return
	}

	expected, err := loadSnapshot(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("snapshot file missing: %s\n\nTo create: %s=1 go test -run %s", path, UpdateSnapshotsEnv, t.Name())
			return
		}
		t.Fatalf("failed to load snapshot: %v", err)
		return
	}

	if diff := s.Diff(expected); diff != "" {
		t.Errorf("snapshot mismatch: %s (-want +got)\n%s\n\nTo update: %s=1 go test -run %s", path, diff, UpdateSnapshotsEnv, t.Name())
	}
}

// UpdateFile writes this snapshot to the given path, creating directories
// as needed.
func (s *Snapshot) UpdateFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Diff returns a diff between other (want) and this snapshot (got), or the
// empty string if they are equal.
func (s *Snapshot) Diff(other *Snapshot) string {
	// compare the serialized forms so that decoded files and live captures
	// agree on numeric types
	a, _ := normalize(s)
	b, _ := normalize(other)
	return cmp.Diff(b, a)
}

func normalize(s *Snapshot) (*Snapshot, error) {
	data, err := yaml.Marshal(s)
	if err != nil {
		return nil, err
	}
	var out Snapshot
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func loadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("invalid snapshot YAML: %w", err)
	}
	return &snap, nil
}

// typeCounter assigns stable IDs like "Text#0", "Text#1".
type typeCounter struct {
	counts map[string]int
}

func (c *typeCounter) next(typeName string) string {
	if c.counts == nil {
		c.counts = make(map[string]int)
	}
	n := c.counts[typeName]
	c.counts[typeName] = n + 1
	return fmt.Sprintf("%s#%d", typeName, n)
}

func captureNode(element core.Element, counter *typeCounter) *ElementNode {
	typeName := widgetTypeName(element.Widget())
	node := &ElementNode{ID: counter.next(typeName), Type: typeName}

	switch w := element.Widget().(type) {
	case widgets.Text:
		node.Props = map[string]any{"content": w.Content}
	case interface{ Props() props.Props }:
		node.Props = serializeProps(w.Props())
	}

	element.VisitChildren(func(child core.Element) bool {
		node.Children = append(node.Children, captureNode(child, counter))
		return true
	})
	return node
}

func widgetTypeName(w core.Widget) string {
	t := reflect.TypeOf(w)
	if t == nil {
		return "nil"
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}

// serializeProps keeps scalar values and replaces everything else with a
// stable description.
func serializeProps(p props.Props) map[string]any {
	if len(p) == 0 {
		return nil
	}
	out := make(map[string]any, len(p))
	for _, key := range p.Keys() {
		out[key] = serializeValue(p[key])
	}
	return out
}

func serializeValue(v any) any {
	if v == nil {
		return nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.String()
	case reflect.Bool:
		return rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint()
	case reflect.Float32, reflect.Float64:
		return rv.Float()
	case reflect.Func:
		return "func"
	case reflect.Slice, reflect.Array, reflect.Map:
		return fmt.Sprintf("%s(len=%d)", rv.Type(), rv.Len())
	default:
		return rv.Type().String()
	}
}
