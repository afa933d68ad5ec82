package heuristics

import "github.com/lexiconlabs/tiebreak/internal/language"

// defaultRules is the built-in disambiguation bank, one entry per ambiguous
// candidate group. Clause order within a rule is significant: the first
// matching clause wins. This is configuration, not engine logic; adding a
// group means adding an entry, never touching the dispatcher.
var defaultRules = []struct {
	languages []string
	clauses   []Clause
}{
	{
		languages: []string{"C#", "Smalltalk"},
		clauses: []Clause{
			When(`![\w ]+ (methodsFor:|subclass:|commentStamp:)`, "Smalltalk"),
			When(`(?m)^\s*(using\s+System|namespace\s+[\w.]+\s*[{;]|class\s+\w+\s*[:{])`, "C#"),
		},
	},
	{
		languages: []string{"Objective-C", "C++", "C"},
		clauses: []Clause{
			When(`(?m)^\s*(@(interface|class|protocol|property|end|synchronized|selector|implementation)\b|#import\s+.+\.h[">])`, "Objective-C"),
			When(`(?m)(^\s*#\s*include <(cstdint|string|vector|map|list|array|bitset|queue|stack|forward_list|unordered_map|unordered_set|(i|o|io)stream)>|^\s*template\s*<|^[ \t]*(try|constexpr)\b|^[ \t]*catch\s*\(|^[ \t]*(class|(using[ \t]+)?namespace)\s+\w+|^[ \t]*(private|public|protected):|std::\w+)`, "C++"),
		},
	},
	{
		languages: []string{"Perl", "Prolog"},
		clauses: []Clause{
			When(`(?m)\buse\s+(strict\b|v?5\b)`, "Perl"),
			When(`(?m)^[^#%]*:-`, "Prolog"),
		},
	},
	{
		languages: []string{"Perl", "Raku"},
		clauses: []Clause{
			When(`(?m)^\s*(use\s+v6\b|unit\s+(module|class)\b|\bmy\s+class\b)`, "Raku"),
			When(`(?m)\buse\s+(strict\b|v?5\b)`, "Perl"),
		},
	},
	{
		languages: []string{"F#", "Forth", "GLSL"},
		clauses: []Clause{
			When(`(?m)^(: |new-device\b)`, "Forth"),
			When(`(?m)^\s*(#light|import|let|module|namespace|open|type)\b`, "F#"),
			When(`(?m)^\s*(#version|precision|uniform|varying|vec[234])\b`, "GLSL"),
		},
	},
	{
		languages: []string{"Hack", "PHP"},
		clauses: []Clause{
			When(`<\?hh`, "Hack"),
			When(`<\?(php|=)`, "PHP"),
		},
	},
	{
		languages: []string{"Objective-C", "MATLAB", "Mathematica"},
		clauses: []Clause{
			When(`(?m)^\s*(#import\b|@(interface|implementation|end|class|protocol|property)\b)`, "Objective-C"),
			When(`(?m)(\(\*|^\s*\w+\[[^\]]*\]\s*:=)`, "Mathematica"),
			When(`(?m)(^\s*%|^\s*function\s*\[?[\w, ]*\]?\s*=)`, "MATLAB"),
		},
	},
	{
		languages: []string{"Markdown", "GCC Machine Description"},
		clauses: []Clause{
			When(`(?m)^(;;|\(define_)`, "GCC Machine Description"),
			When(`(?m)(^[-A-Za-z0-9=#!*\[|>])|</`, "Markdown"),
		},
	},
	{
		languages: []string{"Rust", "RenderScript"},
		clauses: []Clause{
			When(`(?m)(#include\b|#pragma\s+(rs|version)|__attribute__)`, "RenderScript"),
			When(`(?m)^\s*(use\s+|fn\s+|mod\s+|pub\s+|macro_rules!|impl\b|#!?\[)`, "Rust"),
		},
	},
	{
		languages: []string{"Scala", "SuperCollider"},
		clauses: []Clause{
			When(`(?m)(\^(this|super)\.|^\s*~\w+\s*=\.|\bSynthDef\b)`, "SuperCollider"),
			When(`(?m)(^\s*import (scala|java)\.|^\s*val\s+\w+\s*=|^\s*(case )?class\b|^\s*object\s+\w+)`, "Scala"),
		},
	},
	{
		languages: []string{"TypeScript", "XML"},
		clauses: []Clause{
			When(`<TS\b`, "XML"),
			Fallback("TypeScript"),
		},
	},
	{
		languages: []string{"D", "DTrace", "Makefile"},
		clauses: []Clause{
			When(`(?m)^module\s+[\w.]*\s*;`, "D"),
			When(`(?m)^(\w+:\w*:\w*:\w*|BEGIN\b|END\b|provider\s+)`, "DTrace"),
			When(`(?m)([/\\].*:\s+.*\s\\$|: \\$)`, "Makefile"),
		},
	},
	{
		languages: []string{"AsciiDoc", "AGS Script"},
		clauses: []Clause{
			When(`(?m)^(=+\s|\[\[|:toc:)`, "AsciiDoc"),
			When(`(?m)(^#define\b|\bfunction\s+\w+\s*\()`, "AGS Script"),
		},
	},
	{
		languages: []string{"SQL", "PLSQL", "PLpgSQL", "SQLPL"},
		clauses: []Clause{
			When(`(?mi)(AS \$\$|LANGUAGE '?plpgsql'?|RETURNS\s+trigger)`, "PLpgSQL"),
			When(`(?mi)(ALTER MODULE|LANGUAGE SQL|BEGIN( NOT)? ATOMIC)`, "SQLPL"),
			When(`(?mi)(\$\$PLSQL_|XMLTYPE\b|systimestamp\b|\.nextval\b|CONNECT BY\b|AUTHID (DEFINER|CURRENT_USER))`, "PLSQL"),
			Fallback("SQL"),
		},
	},
	{
		languages: []string{"Prolog", "IDL", "INI", "QMake"},
		clauses: []Clause{
			When(`(?m)^\s*(HEADERS|SOURCES|TEMPLATE|CONFIG)\s*[+*]?=`, "QMake"),
			When(`(?m)^\s*function\s+[\w,\s]+$`, "IDL"),
			When(`(?m)^[^\[#]*:-`, "Prolog"),
			When(`(?m)^\s*\[\w+\]`, "INI"),
		},
	},
}

// DefaultRegistry builds the rule bank every caller that does not supply
// custom rules shares. Languages must cover every name the table uses;
// language.DefaultRegistry does.
func DefaultRegistry(languages *language.Registry) (*Registry, error) {
	builder := NewBuilder(languages)
	if err := RegisterDefaults(builder); err != nil {
		return nil, err
	}
	return builder.Build(), nil
}

// RegisterDefaults appends the built-in rule bank to builder, preserving
// table order.
func RegisterDefaults(builder *Builder) error {
	for _, entry := range defaultRules {
		if err := builder.Rule(entry.languages, entry.clauses...); err != nil {
			return err
		}
	}
	return nil
}
