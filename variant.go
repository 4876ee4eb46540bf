// Copyright (C) 2018. See AUTHORS.

package prng

import (
	"errors"
	"fmt"
	"sort"

	"github.com/tidwall/match"
)

// ErrUnknownVariant is returned by New for names it does not recognize.
var ErrUnknownVariant = errors.New("unknown variant")

var variants = map[string]func() Source{
	"lcg":          func() Source { return new(LCG) },
	"parkmiller":   func() Source { return new(ParkMiller) },
	"parkmiller64": func() Source { return new(ParkMiller64) },
	"schrage":      func() Source { return new(Schrage) },
}

// Variants returns the names accepted by New in sorted order.
func Variants() []string {
	names := make([]string, 0, len(variants))
	for name := range variants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Match returns the sorted variant names matching a glob pattern where '*'
// matches any run of characters and '?' matches exactly one.
func Match(pattern string) []string {
	var names []string
	for _, name := range Variants() {
		if match.Match(name, pattern) {
			names = append(names, name)
		}
	}
	return names
}

// New returns an unseeded generator of the named variant.
func New(name string) (Source, error) {
	cons, ok := variants[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
	}
	return cons(), nil
}
