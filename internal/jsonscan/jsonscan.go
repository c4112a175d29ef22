// Package jsonscan carves the first JSON value out of free-form model output.
package jsonscan

import (
	"encoding/json"
	"strings"
)

// Extract scans text left to right and returns the first JSON value that
// decodes cleanly from some offset. Anything after that value is ignored.
func Extract(text string) (any, bool) {
	return scan(text, func(any) bool { return true })
}

// ExtractObject is like Extract but only accepts a JSON object. Scalars and
// arrays met on the way are skipped.
func ExtractObject(text string) (map[string]any, bool) {
	v, ok := scan(text, func(v any) bool {
		_, isObj := v.(map[string]any)
		return isObj
	})
	if !ok {
		return nil, false
	}
	return v.(map[string]any), true
}

func scan(text string, accept func(any) bool) (any, bool) {
	for pos := 0; pos < len(text); pos++ {
		v, ok := decodeAt(text, pos)
		if ok && accept(v) {
			return v, true
		}
	}
	return nil, false
}

// decodeAt attempts a single decode starting at pos.
func decodeAt(text string, pos int) (any, bool) {
	dec := json.NewDecoder(strings.NewReader(text[pos:]))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, false
	}
	return v, true
}
