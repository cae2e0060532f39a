package sequencescape

import "strings"

// Path addresses a value inside a decoded JSON document as a sequence of object keys
type Path []string

func (p Path) String() string {
	return strings.Join(p, ".")
}

// Extract walks doc along path. A missing key or a non-object on the way yields (nil, false).
func Extract(doc any, path Path) (any, bool) {
	if len(path) == 0 {
		return doc, doc != nil
	}
	object, ok := doc.(map[string]any)
	if !ok {
		return nil, false
	}
	child, ok := object[path[0]]
	if !ok {
		return nil, false
	}
	return Extract(child, path[1:])
}
