package params

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/xy-planning-network/trailhead"
)

// listSuffix marks a key whose values collect into a list, as in "tags[]=a&tags[]=b".
const listSuffix = "[]"

// A Pair is a single raw key and value.
type Pair struct {
	Key   string
	Value any
}

// A Source is an ordered set of raw key/value pairs, such as a query string.
type Source []Pair

// ParseQuery parses a URL-encoded query string into a Source, preserving the order keys first appear in.
//
// Values for keys ending in "[]" collect, in order, into a []any under the key without that suffix.
// A plain key set more than once keeps the last value set.
//
// Like url.ParseQuery, ParseQuery keeps going when it cannot parse a pair
// and returns the first error it found.
func ParseQuery(raw string) (Source, error) {
	var (
		src    Source
		idx    = make(map[string]int)
		errOut error
	)

	for raw != "" {
		var pair string
		pair, raw, _ = strings.Cut(raw, "&")
		if pair == "" {
			continue
		}

		if strings.Contains(pair, ";") {
			if errOut == nil {
				errOut = fmt.Errorf("%w: invalid semicolon separator in query", trailhead.ErrBadFormat)
			}
			continue
		}

		k, v, _ := strings.Cut(pair, "=")
		key, err := url.QueryUnescape(k)
		if err != nil {
			if errOut == nil {
				errOut = fmt.Errorf("%w: %s", trailhead.ErrBadFormat, err)
			}
			continue
		}

		val, err := url.QueryUnescape(v)
		if err != nil {
			if errOut == nil {
				errOut = fmt.Errorf("%w: %s", trailhead.ErrBadFormat, err)
			}
			continue
		}

		var value any = val
		list := strings.HasSuffix(key, listSuffix) && len(key) > len(listSuffix)
		if list {
			key = strings.TrimSuffix(key, listSuffix)
		}

		i, seen := idx[key]
		switch {
		case !seen:
			if list {
				value = []any{val}
			}

			idx[key] = len(src)
			src = append(src, Pair{Key: key, Value: value})

		case list:
			if vals, ok := src[i].Value.([]any); ok {
				src[i].Value = append(vals, val)
			} else {
				src[i].Value = []any{val}
			}

		default:
			src[i].Value = value
		}
	}

	return src, errOut
}

// FromValues converts vals into a Source ordered by key.
//
// Keys ending in "[]" hold every value set, as a []any under the key without that suffix.
// Other keys hold the last value set.
func FromValues(vals url.Values) Source {
	keys := make([]string, 0, len(vals))
	for k := range vals {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	src := make(Source, 0, len(keys))
	for _, k := range keys {
		vs := vals[k]
		if strings.HasSuffix(k, listSuffix) && len(k) > len(listSuffix) {
			list := make([]any, len(vs))
			for i := range vs {
				list[i] = vs[i]
			}

			src = append(src, Pair{Key: strings.TrimSuffix(k, listSuffix), Value: list})
			continue
		}

		if len(vs) == 0 {
			continue
		}

		src = append(src, Pair{Key: k, Value: vs[len(vs)-1]})
	}

	return src
}

// FromMap converts m into a Source ordered by key.
func FromMap(m map[string]any) Source {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	src := make(Source, 0, len(keys))
	for _, k := range keys {
		src = append(src, Pair{Key: k, Value: m[k]})
	}

	return src
}
