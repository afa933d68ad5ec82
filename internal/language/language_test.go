package language

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistryRejectsDuplicates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		languages []Language
		wantErr   string
	}{
		{
			name: "duplicate canonical name",
			languages: []Language{
				{Name: "Perl"},
				{Name: "perl"},
			},
			wantErr: "duplicate language key",
		},
		{
			name: "alias colliding with name",
			languages: []Language{
				{Name: "TypeScript"},
				{Name: "Turboscript", Aliases: []string{"typescript"}},
			},
			wantErr: "duplicate language key",
		},
		{
			name: "empty name",
			languages: []Language{
				{Name: ""},
			},
			wantErr: "empty name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewRegistry(tt.languages)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLookupIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	reg := DefaultRegistry()

	lang, ok := reg.Lookup("objective-c")
	require.True(t, ok)
	assert.Equal(t, "Objective-C", lang.Name)

	lang, ok = reg.Lookup("OBJC")
	require.True(t, ok)
	assert.Equal(t, "Objective-C", lang.Name)

	_, ok = reg.Lookup("Klingon")
	assert.False(t, ok)
}

func TestDefaultRegistryCoversCatalog(t *testing.T) {
	t.Parallel()

	reg := DefaultRegistry()
	assert.Equal(t, len(catalog), reg.Len())

	for _, lang := range catalog {
		got, ok := reg.Lookup(lang.Name)
		require.True(t, ok, "catalog language %q must resolve", lang.Name)
		assert.Equal(t, lang.Name, got.Name)
	}
}

func TestNamesReturnsCopy(t *testing.T) {
	t.Parallel()

	reg := DefaultRegistry()
	names := reg.Names()
	require.NotEmpty(t, names)

	names[0] = "mutated"
	assert.NotEqual(t, "mutated", reg.Names()[0])
}
