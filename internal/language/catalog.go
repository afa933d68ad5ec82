package language

// catalog lists every language the built-in disambiguation rules can
// resolve to. Callers needing languages outside this set supply their own
// registry.
var catalog = []Language{
	{Name: "AGS Script", Aliases: []string{"ags"}},
	{Name: "AsciiDoc", Aliases: []string{"adoc"}},
	{Name: "C"},
	{Name: "C#", Aliases: []string{"csharp", "cs"}},
	{Name: "C++", Aliases: []string{"cpp"}},
	{Name: "D", Aliases: []string{"dlang"}},
	{Name: "DTrace", Aliases: []string{"dtrace-script"}},
	{Name: "F#", Aliases: []string{"fsharp"}},
	{Name: "Forth"},
	{Name: "GCC Machine Description"},
	{Name: "GLSL"},
	{Name: "Hack", Aliases: []string{"hacklang"}},
	{Name: "IDL"},
	{Name: "INI", Aliases: []string{"dosini"}},
	{Name: "Makefile", Aliases: []string{"make", "mf"}},
	{Name: "Markdown", Aliases: []string{"md", "pandoc"}},
	{Name: "Mathematica", Aliases: []string{"mma", "wolfram"}},
	{Name: "MATLAB", Aliases: []string{"octave"}},
	{Name: "Objective-C", Aliases: []string{"objc", "obj-c", "objectivec"}},
	{Name: "Perl", Aliases: []string{"cperl"}},
	{Name: "PHP", Aliases: []string{"inc"}},
	{Name: "PLpgSQL"},
	{Name: "PLSQL"},
	{Name: "Prolog"},
	{Name: "QMake"},
	{Name: "Raku", Aliases: []string{"perl6", "perl-6"}},
	{Name: "RenderScript"},
	{Name: "Rust", Aliases: []string{"rs"}},
	{Name: "Scala"},
	{Name: "Smalltalk", Aliases: []string{"squeak"}},
	{Name: "SQL"},
	{Name: "SQLPL"},
	{Name: "SuperCollider"},
	{Name: "TypeScript", Aliases: []string{"ts"}},
	{Name: "XML", Aliases: []string{"rss", "xsd", "wsdl"}},
}

// Catalog returns a copy of the built-in language list, for callers that
// extend it with their own languages before building a registry.
func Catalog() []Language {
	return append([]Language(nil), catalog...)
}

// DefaultRegistry returns a registry over the built-in catalog. The catalog
// is validated by tests, so construction cannot fail at runtime.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(catalog)
	if err != nil {
		panic(err)
	}
	return r
}
