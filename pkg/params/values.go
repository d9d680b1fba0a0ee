package params

import (
	"maps"
	"slices"
	"strconv"
	"strings"
)

// expandValues turns flat url.Values-style input into a tree.
// Bracket keys nest: "email[name]=x" becomes {"email": {"name": "x"}} and
// "tags[]=a&tags[]=b" becomes {"tags": ["a", "b"]}.
// A key with a single value maps to a string, repeated values to []any.
// When a plain key and a bracket key share a name ("a=x&a[b]=y") the nested
// value wins whatever the input order.
func expandValues(values map[string][]string) map[string]any {
	tree := make(map[string]any, len(values))

	for _, key := range slices.Sorted(maps.Keys(values)) {
		vals := values[key]
		if len(vals) == 0 {
			continue
		}
		setPath(tree, splitKey(key), scalarOrList(vals))
	}
	fixLists(tree)
	return tree
}

// setPath stores value under segments. A scalar on the way is replaced by a
// nested map, and a nested map already at the target is never replaced by a scalar.
func setPath(tree map[string]any, segments []string, value any) {
	cur := tree
	for i, seg := range segments {
		last := i == len(segments)-1
		if !last {
			next, ok := cur[seg].(map[string]any)
			if !ok {
				next = make(map[string]any)
				cur[seg] = next
			}
			cur = next
			continue
		}
		if _, nested := cur[seg].(map[string]any); nested {
			return
		}
		cur[seg] = value
	}
}

func scalarOrList(vals []string) any {
	if len(vals) == 1 {
		return vals[0]
	}
	return stringsToAny(vals)
}

func stringsToAny(vals []string) []any {
	out := make([]any, len(vals))
	for i, v := range vals {
		out[i] = v
	}
	return out
}

// splitKey parses "a[b][c]" into [a b c]. A trailing "[]" marks a list and is
// reported as a list of one segment so setPath stores []any.
// Malformed keys are returned unsplit.
func splitKey(key string) []string {
	open := strings.IndexByte(key, '[')
	if open <= 0 || !strings.HasSuffix(key, "]") {
		return []string{key}
	}

	segments := []string{key[:open]}
	rest := key[open:]
	for rest != "" {
		if rest[0] != '[' {
			return []string{key}
		}
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			return []string{key}
		}
		segments = append(segments, rest[1:end])
		rest = rest[end+1:]
	}

	// "[]" is only meaningful at the end
	for i, seg := range segments[:len(segments)-1] {
		if seg == "" && i > 0 {
			return []string{key}
		}
	}
	if segments[len(segments)-1] == "" {
		segments = segments[:len(segments)-1]
		return append(segments, listMarker)
	}
	return segments
}

// listMarker stands for a trailing "[]". No real segment can equal it since
// splitKey cuts segments at brackets.
const listMarker = "[]"

// fixLists rewrites {"tags": {"[]": x}} into {"tags": []any{...}}.
// A marker next to integer keys ("tags[0]=a&tags[]=b") gives one list, indexed
// entries first. A marker next to any other key is dropped.
func fixLists(tree map[string]any) {
	for k, v := range tree {
		sub, ok := v.(map[string]any)
		if !ok {
			continue
		}
		if marked, ok := sub[listMarker]; ok {
			if list, ok := indexedList(sub, marked); ok {
				for _, item := range list {
					if m, ok := item.(map[string]any); ok {
						fixLists(m)
					}
				}
				tree[k] = list
				continue
			}
			delete(sub, listMarker)
		}
		fixLists(sub)
	}
}

// indexedList reports false if sub has a key that is neither the marker nor a
// canonical non-negative integer.
func indexedList(sub map[string]any, marked any) ([]any, bool) {
	indexes := make([]int, 0, len(sub)-1)
	for key := range sub {
		if key == listMarker {
			continue
		}
		n, err := strconv.Atoi(key)
		if err != nil || n < 0 || strconv.Itoa(n) != key {
			return nil, false
		}
		indexes = append(indexes, n)
	}
	slices.Sort(indexes)

	out := make([]any, 0, len(sub))
	for _, n := range indexes {
		out = append(out, sub[strconv.Itoa(n)])
	}
	if l, ok := marked.([]any); ok {
		return append(out, l...), true
	}
	return append(out, marked), true
}

// merge copies src into dst. Nested trees merge recursively, anything else is replaced.
func merge(dst, src map[string]any) {
	for k, v := range src {
		if sub, ok := v.(map[string]any); ok {
			if existing, ok := dst[k].(map[string]any); ok {
				merge(existing, sub)
				continue
			}
		}
		dst[k] = v
	}
}
