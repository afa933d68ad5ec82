package heuristics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexiconlabs/tiebreak/internal/language"
)

func defaultTestRegistry(t *testing.T) *Registry {
	t.Helper()

	registry, err := DefaultRegistry(language.DefaultRegistry())
	require.NoError(t, err)
	return registry
}

func TestDefaultTableBuilds(t *testing.T) {
	t.Parallel()

	registry := defaultTestRegistry(t)
	assert.Len(t, registry.Rules(), len(defaultRules))
}

func TestDefaultTableScenarios(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		content    string
		candidates []string
		want       string // empty means unresolved
	}{
		{
			name:       "smalltalk method category",
			candidates: []string{"C#", "Smalltalk"},
			content:    "!Foo methodsFor: 'bar'\n\tbaz ^42",
			want:       "Smalltalk",
		},
		{
			name:       "csharp namespace",
			candidates: []string{"C#", "Smalltalk"},
			content:    "namespace Foo.Bar {\n    class Baz {}\n}",
			want:       "C#",
		},
		{
			name:       "cpp std usage in header",
			candidates: []string{"Objective-C", "C++", "C"},
			content:    "std::vector<int> v;",
			want:       "C++",
		},
		{
			name:       "objc interface in header",
			candidates: []string{"Objective-C", "C++", "C"},
			content:    "@interface Foo : NSObject\n@end",
			want:       "Objective-C",
		},
		{
			name:       "plain c header stays unresolved",
			candidates: []string{"Objective-C", "C++", "C"},
			content:    "#include <stdio.h>\nint add(int a, int b);\n",
			want:       "",
		},
		{
			name:       "typescript singleton via containment",
			candidates: []string{"TypeScript"},
			content:    "export const answer = 42;",
			want:       "TypeScript",
		},
		{
			name:       "qt translation file is xml",
			candidates: []string{"TypeScript", "XML"},
			content:    `<?xml version="1.0"?><TS version="2.1" language="de_DE">`,
			want:       "XML",
		},
		{
			name:       "perl use strict",
			candidates: []string{"Perl", "Prolog"},
			content:    "use strict;\nuse warnings;\nprint 1;\n",
			want:       "Perl",
		},
		{
			name:       "prolog clause",
			candidates: []string{"Perl", "Prolog"},
			content:    "parent(tom, bob).\nancestor(X, Y) :- parent(X, Y).\n",
			want:       "Prolog",
		},
		{
			name:       "raku module",
			candidates: []string{"Perl", "Raku"},
			content:    "use v6;\nsay 'hello';\n",
			want:       "Raku",
		},
		{
			name:       "forth word definition",
			candidates: []string{"F#", "Forth", "GLSL"},
			content:    ": square dup * ;\n",
			want:       "Forth",
		},
		{
			name:       "fsharp module",
			candidates: []string{"F#", "Forth", "GLSL"},
			content:    "module App\nlet answer = 42\n",
			want:       "F#",
		},
		{
			name:       "glsl shader",
			candidates: []string{"F#", "Forth", "GLSL"},
			content:    "#version 330 core\nuniform mat4 mvp;\n",
			want:       "GLSL",
		},
		{
			name:       "hack file",
			candidates: []string{"Hack", "PHP"},
			content:    "<?hh\nfunction f(): int { return 1; }",
			want:       "Hack",
		},
		{
			name:       "php file",
			candidates: []string{"Hack", "PHP"},
			content:    "<?php echo 'hi';",
			want:       "PHP",
		},
		{
			name:       "matlab comment and function",
			candidates: []string{"Objective-C", "MATLAB", "Mathematica"},
			content:    "% compute gradient\nx = 3;\n",
			want:       "MATLAB",
		},
		{
			name:       "mathematica comment block",
			candidates: []string{"Objective-C", "MATLAB", "Mathematica"},
			content:    "(* Wolfram package *)\nf[x_] := x^2\n",
			want:       "Mathematica",
		},
		{
			name:       "markdown heading",
			candidates: []string{"Markdown", "GCC Machine Description"},
			content:    "# Title\n\nSome prose.\n",
			want:       "Markdown",
		},
		{
			name:       "gcc machine description",
			candidates: []string{"Markdown", "GCC Machine Description"},
			content:    ";; Machine description for RISC-V\n(define_insn \"add\" ...)\n",
			want:       "GCC Machine Description",
		},
		{
			name:       "rust source",
			candidates: []string{"Rust", "RenderScript"},
			content:    "use std::io;\nfn main() {}\n",
			want:       "Rust",
		},
		{
			name:       "renderscript pragma",
			candidates: []string{"Rust", "RenderScript"},
			content:    "#pragma version(1)\n#pragma rs java_package_name(com.example)\n",
			want:       "RenderScript",
		},
		{
			name:       "scala import",
			candidates: []string{"Scala", "SuperCollider"},
			content:    "import scala.collection.mutable\nclass Foo\n",
			want:       "Scala",
		},
		{
			name:       "supercollider synthdef",
			candidates: []string{"Scala", "SuperCollider"},
			content:    "SynthDef(\\sine, { arg freq = 440; }).add;\n",
			want:       "SuperCollider",
		},
		{
			name:       "d module declaration",
			candidates: []string{"D", "DTrace", "Makefile"},
			content:    "module app.main;\nvoid main() {}\n",
			want:       "D",
		},
		{
			name:       "dtrace probe",
			candidates: []string{"D", "DTrace", "Makefile"},
			content:    "BEGIN\n{\n\ttrace(execname);\n}\n",
			want:       "DTrace",
		},
		{
			name:       "plpgsql function body",
			candidates: []string{"SQL", "PLSQL", "PLpgSQL", "SQLPL"},
			content:    "CREATE FUNCTION f() RETURNS trigger AS $$ BEGIN RETURN NEW; END $$ LANGUAGE plpgsql;",
			want:       "PLpgSQL",
		},
		{
			name:       "generic sql falls back",
			candidates: []string{"SQL", "PLSQL", "PLpgSQL", "SQLPL"},
			content:    "SELECT id, name FROM users WHERE id = 1;",
			want:       "SQL",
		},
		{
			name:       "qmake project",
			candidates: []string{"Prolog", "IDL", "INI", "QMake"},
			content:    "TEMPLATE = app\nSOURCES += main.cpp\n",
			want:       "QMake",
		},
		{
			name:       "ini section",
			candidates: []string{"INI", "Prolog"},
			content:    "[general]\nkey=value\n",
			want:       "INI",
		},
		{
			name:       "asciidoc title",
			candidates: []string{"AsciiDoc", "AGS Script"},
			content:    "= Document Title\n\nFirst paragraph.\n",
			want:       "AsciiDoc",
		},
		{
			name:       "ags script function",
			candidates: []string{"AsciiDoc", "AGS Script"},
			content:    "function room_Load()\n{\n}\n",
			want:       "AGS Script",
		},
	}

	registry := defaultTestRegistry(t)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := registry.Resolve(context.Background(), []byte(tt.content), candidates(t, tt.candidates...))
			if tt.want == "" {
				assert.False(t, result.Has(), "expected no resolution, got %v", result.Value().Name)
				return
			}
			require.True(t, result.Has(), "expected %s, got no resolution", tt.want)
			assert.Equal(t, tt.want, result.Value().Name)
		})
	}
}
