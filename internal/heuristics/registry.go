package heuristics

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/lexiconlabs/tiebreak/internal/language"
	"github.com/lexiconlabs/tiebreak/internal/logging"
	"github.com/lexiconlabs/tiebreak/internal/optional"
)

// Content beyond this prefix never influences a match. Keeps pattern cost
// bounded on attacker-influenced input; Go's RE2 engine is already linear
// in input size.
const maxScanBytes = 512 * 1024

var (
	ErrNoLanguages     = errors.New("rule must declare at least one candidate language")
	ErrNoClauses       = errors.New("rule must declare at least one clause")
	ErrNilMatcher      = errors.New("rule matcher func must not be nil")
	ErrUnknownLanguage = errors.New("unknown language")
)

// Registry is an ordered, frozen bank of rules. Registration order is
// precedence order. Built once via a Builder, then safe for concurrent use.
type Registry struct {
	rules []*Rule
}

// Builder accumulates rules in registration order. Zero value is not
// usable; construct with NewBuilder.
type Builder struct {
	languages *language.Registry
	rules     []*Rule
}

// NewBuilder starts an empty rule bank resolving names against languages.
func NewBuilder(languages *language.Registry) *Builder {
	return &Builder{languages: languages}
}

// Rule appends a declarative rule: the candidate names it disambiguates
// and its ordered clauses. All names must resolve through the language
// registry, every clause language must be one of the candidates, all
// patterns must compile, and an unconditional clause may only appear last.
func (b *Builder) Rule(names []string, clauses ...Clause) error {
	nameSet, canonical, err := b.resolveNames(names)
	if err != nil {
		return err
	}
	if len(clauses) == 0 {
		return fmt.Errorf("rule %v: %w", canonical, ErrNoClauses)
	}

	compiled := make([]compiledClause, 0, len(clauses))
	for i, clause := range clauses {
		lang, ok := b.languages.Lookup(clause.Language)
		if !ok {
			return fmt.Errorf("rule %v clause %d: %w: %q", canonical, i+1, ErrUnknownLanguage, clause.Language)
		}
		if _, ok := nameSet[lang.Name]; !ok {
			return fmt.Errorf("rule %v clause %d: language %q is not a declared candidate", canonical, i+1, lang.Name)
		}
		cc := compiledClause{lang: lang}
		if clause.Pattern == "" {
			if i != len(clauses)-1 {
				return fmt.Errorf("rule %v clause %d: unconditional clause must be last", canonical, i+1)
			}
		} else {
			re, err := regexp.Compile(clause.Pattern)
			if err != nil {
				return fmt.Errorf("rule %v clause %d: invalid pattern: %w", canonical, i+1, err)
			}
			cc.re = re
		}
		compiled = append(compiled, cc)
	}

	b.rules = append(b.rules, &Rule{nameSet: nameSet, names: canonical, clauses: compiled})
	return nil
}

// RuleFunc appends a rule backed by an arbitrary matcher func. The func
// must be pure; names it returns resolve through the language registry and
// must belong to the rule's declared candidates, otherwise the evaluation
// counts as inconclusive.
func (b *Builder) RuleFunc(names []string, fn Matcher) error {
	nameSet, canonical, err := b.resolveNames(names)
	if err != nil {
		return err
	}
	if fn == nil {
		return fmt.Errorf("rule %v: %w", canonical, ErrNilMatcher)
	}

	languages := b.languages
	resolve := func(name string) (language.Language, bool) {
		lang, ok := languages.Lookup(name)
		if !ok {
			return language.Language{}, false
		}
		if _, declared := nameSet[lang.Name]; !declared {
			return language.Language{}, false
		}
		return lang, true
	}

	b.rules = append(b.rules, &Rule{nameSet: nameSet, names: canonical, fn: fn, resolve: resolve})
	return nil
}

func (b *Builder) resolveNames(names []string) (map[string]struct{}, []string, error) {
	if len(names) == 0 {
		return nil, nil, ErrNoLanguages
	}
	canonical := make([]string, 0, len(names))
	for _, name := range names {
		lang, ok := b.languages.Lookup(name)
		if !ok {
			return nil, nil, fmt.Errorf("%w: %q", ErrUnknownLanguage, name)
		}
		canonical = append(canonical, lang.Name)
	}
	set, sorted := newNameSet(canonical)
	return set, sorted, nil
}

// Build freezes the accumulated rules into a Registry. The builder may not
// be reused afterwards.
func (b *Builder) Build() *Registry {
	rules := b.rules
	b.rules = nil
	return &Registry{rules: rules}
}

// Rules returns the registered rules in precedence order.
func (r *Registry) Rules() []*Rule {
	return append([]*Rule(nil), r.rules...)
}

// Resolve dispatches content against the rule bank: the first rule whose
// candidate set matches is evaluated and its result returned, conclusive
// or not. At most one rule ever runs per call; a rule's evaluation is
// trusted to be the only heuristic written for its candidate set, so
// falling through to a later rule would apply an unrelated heuristic to
// the wrong group. No rule matching and an inconclusive rule both yield
// None.
func (r *Registry) Resolve(ctx context.Context, content []byte, candidates []language.Language) optional.Option[language.Language] {
	if len(content) > maxScanBytes {
		content = content[:maxScanBytes]
	}

	for _, rule := range r.rules {
		if !rule.Matches(candidates) {
			continue
		}
		result := rule.Evaluate(content)
		logging.Get(ctx).Debug().
			Str("rule", strings.Join(rule.Languages(), ",")).
			Bool("conclusive", result.Has()).
			Msg("heuristic rule evaluated")
		return result
	}

	logging.Get(ctx).Debug().
		Int("candidates", len(candidates)).
		Msg("no heuristic rule for candidate set")
	return optional.None[language.Language]()
}
