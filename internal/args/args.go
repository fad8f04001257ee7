// Package args tokenizes the raw arguments that follow a gojo subcommand.
//
// The parser knows nothing about which flags a command accepts; each command
// checks the parsed set against its own list with Flags.Unknown.
package args

import "strings"

// Value is the optional value attached to a flag.
type Value struct {
	// Set reports whether a value was supplied.
	Set bool

	// Val is the supplied value. Empty when Set is false.
	Val string
}

// Flags maps flag tokens (leading dashes included) to their values.
// Keys keep the order in which they were first seen.
type Flags struct {
	values map[string]Value
	order  []string
}

// Parse scans tokens left to right with one token of lookahead.
//
// A token starting with "-" is a flag. "--key=value" splits on the first "=".
// A flag without "=" consumes the next token as its value unconditionally, so
// "--release --tests" yields {"--release": "--tests"}. A stray non-flag token
// is recorded as a key with no value. A repeated flag keeps its last value.
func Parse(tokens []string) Flags {
	f := Flags{values: make(map[string]Value, len(tokens))}

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]

		if !strings.HasPrefix(tok, "-") {
			f.set(tok, Value{})
			continue
		}

		if key, val, ok := strings.Cut(tok, "="); ok {
			f.set(key, Value{Set: true, Val: val})
			continue
		}

		if i+1 < len(tokens) {
			i++
			f.set(tok, Value{Set: true, Val: tokens[i]})
			continue
		}
		f.set(tok, Value{})
	}

	return f
}

func (f *Flags) set(key string, v Value) {
	if _, ok := f.values[key]; !ok {
		f.order = append(f.order, key)
	}
	f.values[key] = v
}

// Len returns the number of distinct keys.
func (f Flags) Len() int {
	return len(f.order)
}

// Keys returns the keys in first-seen order.
func (f Flags) Keys() []string {
	out := make([]string, len(f.order))
	copy(out, f.order)
	return out
}

// Has reports whether any of the given names was present.
func (f Flags) Has(names ...string) bool {
	for _, n := range names {
		if _, ok := f.values[n]; ok {
			return true
		}
	}
	return false
}

// Get returns the value for the first of names that is present.
// When several aliases are present the one seen last in the input wins.
func (f Flags) Get(names ...string) (Value, bool) {
	var (
		found Value
		ok    bool
		pos   = -1
	)
	for _, n := range names {
		v, present := f.values[n]
		if !present {
			continue
		}
		if p := f.index(n); p > pos {
			found, ok, pos = v, true, p
		}
	}
	return found, ok
}

func (f Flags) index(key string) int {
	for i, k := range f.order {
		if k == key {
			return i
		}
	}
	return -1
}

// Unknown returns the first key, in input order, that is not in accepted.
func (f Flags) Unknown(accepted ...string) (string, bool) {
	allowed := make(map[string]struct{}, len(accepted))
	for _, a := range accepted {
		allowed[a] = struct{}{}
	}
	for _, k := range f.order {
		if _, ok := allowed[k]; !ok {
			return k, true
		}
	}
	return "", false
}
