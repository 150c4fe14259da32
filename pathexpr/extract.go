package pathexpr

import (
	"sort"
)

// ExtractPaths enumerates every leaf-reachable path of document in
// dot-and-bracket notation, sorted lexicographically. Empty arrays are
// listed as <prefix>[], empty objects as their own prefix, and a scalar
// document as ".".
func ExtractPaths(document any) []string {
	var paths []string
	walkPaths(document, "", &paths)
	sort.Strings(paths)
	return paths
}

func walkPaths(value any, prefix string, paths *[]string) {
	switch v := value.(type) {
	case map[string]any:
		if len(v) == 0 {
			*paths = append(*paths, orRoot(prefix))
			return
		}
		for key, child := range v {
			walkPaths(child, prefix+Property{Name: key}.String(), paths)
		}
	case []any:
		if len(v) == 0 {
			*paths = append(*paths, prefix+"[]")
			return
		}
		for i, child := range v {
			walkPaths(child, prefix+Index{N: i}.String(), paths)
		}
	default:
		*paths = append(*paths, orRoot(prefix))
	}
}

func orRoot(prefix string) string {
	if prefix == "" {
		return "."
	}
	return prefix
}
