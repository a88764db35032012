// SPDX-License-Identifier: MIT

package mtx

import "strings"

const panicTokensExhausted = "mtx: token cursor exhausted"

// tokens is a consume-in-order cursor over the fields of one line.
//
// Splitting follows stream-getline semantics: consecutive separators yield
// empty fields (no merging, no trimming), a single trailing separator does
// not produce a trailing empty field, and an empty line has no fields.
type tokens struct {
	fields []string
	pos    int
}

// tokenize splits line on sep.
// Complexity: O(len(line)).
func tokenize(line string, sep byte) tokens {
	if line == "" {
		return tokens{}
	}
	fields := strings.Split(line, string(sep))
	if fields[len(fields)-1] == "" {
		fields = fields[:len(fields)-1]
	}

	return tokens{fields: fields}
}

// remaining reports how many fields are left to consume.
func (t *tokens) remaining() int {
	return len(t.fields) - t.pos
}

// next consumes and returns the front field.
// Calling next on an exhausted cursor is a programming error and panics.
func (t *tokens) next() string {
	s := t.peek()
	t.pos++

	return s
}

// peek returns the front field without consuming it; panics when exhausted.
func (t *tokens) peek() string {
	if t.pos >= len(t.fields) {
		panic(panicTokensExhausted)
	}

	return t.fields[t.pos]
}
