// Package heuristics implements the content-pattern tie-breaking engine:
// an ordered bank of disambiguation rules, each bound to the exact set of
// candidate languages it was written for, dispatched first-match-wins.
package heuristics

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/lexiconlabs/tiebreak/internal/language"
	"github.com/lexiconlabs/tiebreak/internal/optional"
)

// Matcher inspects content and yields zero or one language names. Matchers
// must be pure: no side effects, no mutation of content, deterministic for
// identical input. Malformed or binary content simply yields None.
type Matcher func(content []byte) optional.Option[string]

// Clause is one ordered condition inside a declarative matcher: if Pattern
// matches the content, the clause resolves to Language. A clause with an
// empty Pattern matches unconditionally and acts as a fallback.
type Clause struct {
	Language string
	Pattern  string
}

// When builds a clause resolving to lang when pattern matches.
func When(pattern, lang string) Clause {
	return Clause{Language: lang, Pattern: pattern}
}

// Fallback builds an unconditional clause. Only meaningful as the last
// clause of a rule.
func Fallback(lang string) Clause {
	return Clause{Language: lang}
}

type compiledClause struct {
	lang language.Language
	re   *regexp.Regexp // nil for fallback clauses
}

// Rule pairs a candidate-language set with a matching function. Rules are
// immutable once built; they are constructed only through a Builder.
type Rule struct {
	nameSet map[string]struct{}
	names   []string
	clauses []compiledClause // declarative form, nil when fn is set
	fn      Matcher
	resolve func(name string) (language.Language, bool)
}

// Languages returns the rule's declared candidate names, sorted.
func (r *Rule) Languages() []string {
	return append([]string(nil), r.names...)
}

// Matches reports whether this rule applies to the candidate set: the set
// must be non-empty and every candidate must appear in the rule's declared
// names. Containment, not equality: a rule declared for {A,B,C} also
// matches a call carrying only {A,B}.
func (r *Rule) Matches(candidates []language.Language) bool {
	if len(candidates) == 0 {
		return false
	}
	for _, c := range candidates {
		if _, ok := r.nameSet[c.Name]; !ok {
			return false
		}
	}
	return true
}

// Evaluate runs the rule's matcher against content. An inconclusive match
// is None, never an error.
func (r *Rule) Evaluate(content []byte) optional.Option[language.Language] {
	if r.fn != nil {
		name := r.fn(content)
		if !name.Has() {
			return optional.None[language.Language]()
		}
		lang, ok := r.resolve(name.Value())
		if !ok {
			return optional.None[language.Language]()
		}
		return optional.Some(lang)
	}
	for _, clause := range r.clauses {
		if clause.re == nil || clause.re.Match(content) {
			return optional.Some(clause.lang)
		}
	}
	return optional.None[language.Language]()
}

// Clauses describes the rule's conditions, one line per clause, for
// display. Function-backed rules report a single opaque entry.
func (r *Rule) Clauses() []string {
	if r.fn != nil {
		return []string{"<matcher func>"}
	}
	lines := make([]string, 0, len(r.clauses))
	for _, clause := range r.clauses {
		if clause.re == nil {
			lines = append(lines, fmt.Sprintf("otherwise -> %s", clause.lang.Name))
			continue
		}
		lines = append(lines, fmt.Sprintf("%s -> %s", clause.re.String(), clause.lang.Name))
	}
	return lines
}

func newNameSet(names []string) (map[string]struct{}, []string) {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	sorted := make([]string, 0, len(set))
	for name := range set {
		sorted = append(sorted, name)
	}
	sort.Strings(sorted)
	return set, sorted
}
