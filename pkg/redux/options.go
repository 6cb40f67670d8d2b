package redux

// DefaultStoreKey is the key a Provider publishes its store under and the
// key connected widgets look up when no StoreKey option is given.
const DefaultStoreKey = "store"

// Option configures a Connect call.
type Option func(*options)

type options struct {
	pure     bool
	withRef  bool
	storeKey string
}

func defaultOptions() options {
	return options{pure: true, storeKey: DefaultStoreKey}
}

// Pure controls memoization. With pure=false every parent rebuild and every
// store notification recomputes all derived props, and own props always
// count as changed. Defaults to true.
func Pure(pure bool) Option {
	return func(o *options) { o.pure = pure }
}

// WithRef keeps a handle on the wrapped component's element, readable
// through [Adapter.WrappedInstance]. Defaults to false.
func WithRef(withRef bool) Option {
	return func(o *options) { o.withRef = withRef }
}

// StoreKey selects which provider (and which own prop) supplies the store.
func StoreKey(key string) Option {
	return func(o *options) {
		if key != "" {
			o.storeKey = key
		}
	}
}

// Options is the declarative form of the connect options, suitable for
// loading from a configuration file. A nil Pure means the default (true).
type Options struct {
	Pure     *bool  `yaml:"pure,omitempty" toml:"pure,omitempty"`
	WithRef  bool   `yaml:"with_ref,omitempty" toml:"with_ref,omitempty"`
	StoreKey string `yaml:"store_key,omitempty" toml:"store_key,omitempty"`
}

// Apply converts o into functional options.
func (o Options) Apply() []Option {
	var out []Option
	if o.Pure != nil {
		out = append(out, Pure(*o.Pure))
	}
	if o.WithRef {
		out = append(out, WithRef(true))
	}
	if o.StoreKey != "" {
		out = append(out, StoreKey(o.StoreKey))
	}
	return out
}
