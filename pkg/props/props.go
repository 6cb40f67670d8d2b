// Package props defines the property bag passed between connected widgets
// and the comparison helpers the binding engine memoizes on.
package props

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Props is a flat, string-keyed property bag. A nil Props is a valid empty
// bag for reads.
type Props map[string]any

// Get returns the value stored under key, or nil.
func (p Props) Get(key string) any {
	return p[key]
}

// Has reports whether key is present, even with a nil value.
func (p Props) Has(key string) bool {
	_, ok := p[key]
	return ok
}

// String returns the value under key if it is a string.
func (p Props) String(key string) string {
	s, _ := p[key].(string)
	return s
}

// Int returns the value under key if it is an int.
func (p Props) Int(key string) int {
	n, _ := p[key].(int)
	return n
}

// Bool returns the value under key if it is a bool.
func (p Props) Bool(key string) bool {
	b, _ := p[key].(bool)
	return b
}

// Clone returns a shallow copy. Cloning nil yields an empty, non-nil bag.
func (p Props) Clone() Props {
	out := make(Props, len(p))
	maps.Copy(out, p)
	return out
}

// Without returns a shallow copy with the given keys removed.
func (p Props) Without(keys ...string) Props {
	out := p.Clone()
	for _, key := range keys {
		delete(out, key)
	}
	return out
}

// Keys returns the keys in sorted order.
func (p Props) Keys() []string {
	return slices.Sorted(maps.Keys(p))
}

// GoString renders the bag with sorted keys, for diagnostics.
func (p Props) GoString() string {
	if p == nil {
		return "props.Props(nil)"
	}
	var sb strings.Builder
	sb.WriteString("props.Props{")
	for i, key := range p.Keys() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%q: %#v", key, p[key])
	}
	sb.WriteString("}")
	return sb.String()
}

// Merge returns a new bag holding the union of parts. Later parts take
// precedence over earlier ones for duplicate keys; nil parts are skipped.
func Merge(parts ...Props) Props {
	size := 0
	for _, part := range parts {
		size += len(part)
	}
	out := make(Props, size)
	for _, part := range parts {
		maps.Copy(out, part)
	}
	return out
}
