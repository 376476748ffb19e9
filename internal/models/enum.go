package models

import "strings"

// enumCodec maps 1-based enum values to their lowercase names and to the
// single-character DB codes 'A', 'B', ... in declaration order.
type enumCodec struct {
	kind  string
	names []string
}

func (c enumCodec) valid(v int) bool {
	return v >= 1 && v <= len(c.names)
}

func (c enumCodec) name(v int) string {
	if !c.valid(v) {
		return "unknown"
	}
	return c.names[v-1]
}

func (c enumCodec) code(v int) string {
	return string(rune('A' + v - 1))
}

func (c enumCodec) fromCode(s string) (int, error) {
	if len(s) != 1 {
		return 0, deserializationErrorf("failed to deserialize %s DB value %q", c.kind, s)
	}
	v := int(s[0]-'A') + 1
	if !c.valid(v) {
		return 0, deserializationErrorf("failed to deserialize %s DB value %q", c.kind, s)
	}
	return v, nil
}

func (c enumCodec) fromName(s string) (int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range c.names {
		if n == s {
			return i + 1, nil
		}
	}
	return 0, deserializationErrorf("unknown %s %q", c.kind, s)
}
