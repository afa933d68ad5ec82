// Package language defines the language identities the disambiguation
// engine resolves to, and the registry used to look them up by name.
package language

import (
	"fmt"
	"sort"
	"strings"
)

// Language is an opaque identity. Name is the unique equality key; the
// engine never compares languages any other way.
type Language struct {
	Name    string
	Aliases []string
}

// Registry maps canonical names and aliases to Language values. It is
// populated once and read-only afterwards, so lookups are safe from any
// number of concurrent callers.
type Registry struct {
	byKey map[string]Language
	names []string
}

// NewRegistry builds a registry from the given languages. Duplicate names
// or aliases are a definition bug and return an error.
func NewRegistry(languages []Language) (*Registry, error) {
	r := &Registry{byKey: make(map[string]Language, len(languages))}
	for _, lang := range languages {
		if lang.Name == "" {
			return nil, fmt.Errorf("language with empty name (aliases %v)", lang.Aliases)
		}
		keys := append([]string{lang.Name}, lang.Aliases...)
		for _, key := range keys {
			folded := strings.ToLower(key)
			if existing, ok := r.byKey[folded]; ok {
				return nil, fmt.Errorf("duplicate language key %q (already %s)", key, existing.Name)
			}
			r.byKey[folded] = lang
		}
		r.names = append(r.names, lang.Name)
	}
	sort.Strings(r.names)
	return r, nil
}

// Lookup resolves a name or alias, case-insensitively.
func (r *Registry) Lookup(name string) (Language, bool) {
	lang, ok := r.byKey[strings.ToLower(name)]
	return lang, ok
}

// Names returns the canonical names of all registered languages, sorted.
func (r *Registry) Names() []string {
	return append([]string(nil), r.names...)
}

// Len returns the number of registered languages.
func (r *Registry) Len() int {
	return len(r.names)
}
