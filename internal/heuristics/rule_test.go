package heuristics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexiconlabs/tiebreak/internal/language"
)

func candidates(t *testing.T, names ...string) []language.Language {
	t.Helper()

	reg := language.DefaultRegistry()
	langs := make([]language.Language, 0, len(names))
	for _, name := range names {
		lang, ok := reg.Lookup(name)
		require.True(t, ok, "unknown test language %q", name)
		langs = append(langs, lang)
	}
	return langs
}

func singleRule(t *testing.T, names []string, clauses ...Clause) *Rule {
	t.Helper()

	builder := NewBuilder(language.DefaultRegistry())
	require.NoError(t, builder.Rule(names, clauses...))
	rules := builder.Build().Rules()
	require.Len(t, rules, 1)
	return rules[0]
}

func TestMatchesIsSubsetContainment(t *testing.T) {
	t.Parallel()

	rule := singleRule(t, []string{"Objective-C", "C++", "C"}, When(`std::`, "C++"))

	tests := []struct {
		name       string
		candidates []string
		expected   bool
	}{
		{name: "exact set", candidates: []string{"Objective-C", "C++", "C"}, expected: true},
		{name: "proper subset", candidates: []string{"C++", "C"}, expected: true},
		{name: "single member", candidates: []string{"C"}, expected: true},
		{name: "empty set never matches", candidates: nil, expected: false},
		{name: "superset", candidates: []string{"Objective-C", "C++", "C", "Rust"}, expected: false},
		{name: "disjoint", candidates: []string{"Perl", "Prolog"}, expected: false},
		{name: "overlapping but not contained", candidates: []string{"C", "Rust"}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, rule.Matches(candidates(t, tt.candidates...)))
		})
	}
}

func TestMatchesUsesCanonicalNames(t *testing.T) {
	t.Parallel()

	// Declared via alias, matched against the canonical identity.
	rule := singleRule(t, []string{"objc", "cpp", "C"}, When(`std::`, "C++"))
	assert.True(t, rule.Matches(candidates(t, "Objective-C", "C++")))
}

func TestEvaluateClauseOrder(t *testing.T) {
	t.Parallel()

	rule := singleRule(t, []string{"Hack", "PHP"},
		When(`<\?hh`, "Hack"),
		When(`<\?php`, "PHP"),
	)

	result := rule.Evaluate([]byte("<?hh // strict"))
	require.True(t, result.Has())
	assert.Equal(t, "Hack", result.Value().Name)

	result = rule.Evaluate([]byte("<?php echo 1;"))
	require.True(t, result.Has())
	assert.Equal(t, "PHP", result.Value().Name)

	assert.False(t, rule.Evaluate([]byte("plain text")).Has())
}

func TestEvaluateFallbackClause(t *testing.T) {
	t.Parallel()

	rule := singleRule(t, []string{"TypeScript", "XML"},
		When(`<TS\b`, "XML"),
		Fallback("TypeScript"),
	)

	result := rule.Evaluate([]byte("const x: number = 1"))
	require.True(t, result.Has())
	assert.Equal(t, "TypeScript", result.Value().Name)
}

func TestEvaluateToleratesBinaryContent(t *testing.T) {
	t.Parallel()

	rule := singleRule(t, []string{"Hack", "PHP"}, When(`<\?hh`, "Hack"))

	garbage := []byte{0x00, 0xff, 0xfe, 0x80, 0x00, 0x7f}
	assert.False(t, rule.Evaluate(garbage).Has())
	assert.False(t, rule.Evaluate(nil).Has())
}

func TestClausesDescription(t *testing.T) {
	t.Parallel()

	rule := singleRule(t, []string{"TypeScript", "XML"},
		When(`<TS\b`, "XML"),
		Fallback("TypeScript"),
	)

	assert.Equal(t, []string{`<TS\b -> XML`, "otherwise -> TypeScript"}, rule.Clauses())
}

func TestLanguagesReturnsSortedCopy(t *testing.T) {
	t.Parallel()

	rule := singleRule(t, []string{"Smalltalk", "C#"}, When(`namespace`, "C#"))

	names := rule.Languages()
	assert.Equal(t, []string{"C#", "Smalltalk"}, names)

	names[0] = "mutated"
	assert.Equal(t, []string{"C#", "Smalltalk"}, rule.Languages())
}
