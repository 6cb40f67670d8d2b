package redux

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

func applied(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func TestOptionsApply(t *testing.T) {
	off := false
	tests := []struct {
		name string
		opts Options
		want options
	}{
		{"zero value", Options{}, options{pure: true, storeKey: DefaultStoreKey}},
		{"impure", Options{Pure: &off}, options{pure: false, storeKey: DefaultStoreKey}},
		{"with ref and key", Options{WithRef: true, StoreKey: "todos"}, options{pure: true, withRef: true, storeKey: "todos"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := applied(tt.opts.Apply())
			if diff := cmp.Diff(tt.want, got, cmp.AllowUnexported(options{})); diff != "" {
				t.Errorf("Apply() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestStoreKeyIgnoresEmpty(t *testing.T) {
	if got := applied([]Option{StoreKey("a"), StoreKey("")}); got.storeKey != "a" {
		t.Errorf("storeKey = %q, want a", got.storeKey)
	}
}

func TestOptionsDecode(t *testing.T) {
	want := applied([]Option{Pure(false), WithRef(true), StoreKey("todos")})

	t.Run("yaml", func(t *testing.T) {
		var o Options
		if err := yaml.Unmarshal([]byte("pure: false\nwith_ref: true\nstore_key: todos\n"), &o); err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(want, applied(o.Apply()), cmp.AllowUnexported(options{})); diff != "" {
			t.Errorf("mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("toml", func(t *testing.T) {
		var o Options
		if err := toml.Unmarshal([]byte("pure = false\nwith_ref = true\nstore_key = \"todos\"\n"), &o); err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(want, applied(o.Apply()), cmp.AllowUnexported(options{})); diff != "" {
			t.Errorf("mismatch (-want +got):\n%s", diff)
		}
	})
}
