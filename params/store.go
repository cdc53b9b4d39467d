package params

import (
	"fmt"
	"strings"

	"github.com/xy-planning-network/trailhead"
)

// A Store is an insertion-ordered mapping of raw keys to raw values.
//
// A Store is read-only once built by NewStore,
// so it is safe for concurrent use.
// Values it hands out are copies.
type Store struct {
	keys  []string
	vals  map[string]any
	index map[string][]string
}

// NewStore merges srcs, in order, into a *Store.
//
// When a raw key appears more than once, the last value wins
// and the key keeps the position it first appeared in.
func NewStore(srcs ...Source) *Store {
	s := &Store{
		vals:  make(map[string]any),
		index: make(map[string][]string),
	}

	for _, src := range srcs {
		for _, p := range src {
			if _, ok := s.vals[p.Key]; !ok {
				s.keys = append(s.keys, p.Key)
				canon := Canonical(p.Key)
				s.index[canon] = append(s.index[canon], p.Key)
			}

			s.vals[p.Key] = p.Value
		}
	}

	return s
}

// Len returns the number of keys in s.
func (s *Store) Len() int { return len(s.keys) }

// Keys returns the raw keys in s, in insertion order.
func (s *Store) Keys() []string { return append([]string(nil), s.keys...) }

// Value returns the value set for the raw key, matched exactly.
func (s *Store) Value(rawKey string) (any, bool) {
	v, ok := s.vals[rawKey]
	if !ok {
		return nil, false
	}

	return clone(v), true
}

// Values returns a copy of every raw key and value in s.
func (s *Store) Values() map[string]any {
	out := make(map[string]any, len(s.vals))
	for k, v := range s.vals {
		out[k] = clone(v)
	}

	return out
}

// Lookup finds the value whose key shares a canonical form with key.
//
// ok reports whether any stored key matches.
// When several do, Lookup prefers, in order, a stored key equal to key,
// equal to key with its first letter lower-cased,
// and equal to key's canonical form.
// If none of those is stored, Lookup returns ok and ErrAmbiguousParameter.
func (s *Store) Lookup(key string) (rawKey string, value any, ok bool, err error) {
	canon := Canonical(key)
	matches := s.index[canon]
	switch len(matches) {
	case 0:
		return "", nil, false, nil
	case 1:
		return matches[0], clone(s.vals[matches[0]]), true, nil
	}

	for _, want := range []string{key, lowerFirst(key), canon} {
		for _, k := range matches {
			if k == want {
				return k, clone(s.vals[k]), true, nil
			}
		}
	}

	quoted := make([]string, len(matches))
	for i, k := range matches {
		quoted[i] = fmt.Sprintf("%q", k)
	}

	return "", nil, true, fmt.Errorf("%w: %q matches %s", ErrAmbiguousParameter, key, strings.Join(quoted, ", "))
}

// String summarizes s as "Key=value" pairs, comma-separated, in insertion order.
// Each key is rendered with UpperCamel.
func (s *Store) String() string {
	return s.summary(func(_ string, v any) any { return v })
}

// Masked is String, with the values of keys trailhead.IsMasked reports on
// replaced by trailhead.LogMaskVal.
func (s *Store) Masked() string {
	return s.summary(func(k string, v any) any {
		if trailhead.IsMasked(k) {
			return trailhead.LogMaskVal
		}

		return v
	})
}

func (s *Store) summary(show func(key string, v any) any) string {
	parts := make([]string, 0, len(s.keys))
	for _, k := range s.keys {
		parts = append(parts, fmt.Sprintf("%s=%v", UpperCamel(k), show(k, s.vals[k])))
	}

	return strings.Join(parts, ", ")
}

// clone copies the lists and objects a value may hold.
func clone(v any) any {
	switch t := v.(type) {
	case []any:
		if t == nil {
			return t
		}

		out := make([]any, len(t))
		for i := range t {
			out[i] = clone(t[i])
		}

		return out

	case []string:
		return append([]string(nil), t...)

	case map[string]any:
		if t == nil {
			return t
		}

		out := make(map[string]any, len(t))
		for k := range t {
			out[k] = clone(t[k])
		}

		return out

	default:
		return v
	}
}
