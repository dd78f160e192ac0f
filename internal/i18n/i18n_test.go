package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	t.Run("translated key", func(t *testing.T) {
		assert.Equal(t, "डैशबोर्ड", Resolve("hi", "dashboard"))
	})

	t.Run("untranslated key falls back to English", func(t *testing.T) {
		// Telugu has no table of its own.
		assert.Equal(t, en["dashboard"], Resolve("te", "dashboard"))
	})

	t.Run("unknown language falls back to English", func(t *testing.T) {
		assert.Equal(t, en["appName"], Resolve("xx-unknown", "appName"))
	})

	t.Run("unknown key echoes itself", func(t *testing.T) {
		assert.Equal(t, "no.such.key", Resolve("hi", "no.such.key"))
		assert.Equal(t, "no.such.key", Resolve("en", "no.such.key"))
	})
}

func TestResolveFallbackChain(t *testing.T) {
	// Keys present in Hindi resolve natively; the rest of the English table
	// still resolves to a non-empty string through the fallback.
	for key := range en {
		got := Resolve("hi", key)
		assert.NotEmpty(t, got, "empty resolution for %q", key)
	}
}

func TestTable(t *testing.T) {
	table := Table("ta")
	assert.Len(t, table, len(en))
	for key, value := range table {
		assert.NotEmpty(t, value, "empty value for %q", key)
	}

	// The resolved table never contains untranslated holes: a key missing
	// in Tamil carries the English text.
	assert.Equal(t, "ஃபிக்ஸ் மை சிட்டி", table["appName"])
}

func TestEnglishTableComplete(t *testing.T) {
	for key, value := range en {
		assert.NotEmpty(t, value, "English value missing for %q", key)
	}
}

func TestSupported(t *testing.T) {
	assert.True(t, Supported("en"))
	assert.True(t, Supported("pa"))
	assert.False(t, Supported("fr"))
	assert.False(t, Supported(""))
}

func TestLanguagesClosedSet(t *testing.T) {
	assert.Len(t, Languages, 10)
	seen := map[string]bool{}
	for _, l := range Languages {
		assert.False(t, seen[l.Code], "duplicate code %s", l.Code)
		seen[l.Code] = true
		assert.NotEmpty(t, l.NativeName)
	}
}
