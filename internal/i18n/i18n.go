// Package i18n resolves display strings for the portal's supported
// languages. Resolution is total: a key missing from the active language
// falls back to English, and a key missing there too is echoed back
// unchanged so the caller always has something to render.
package i18n

// DefaultLanguage is the fallback for every resolution.
const DefaultLanguage = "en"

// Language describes one supported portal language.
type Language struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	NativeName string `json:"native_name"`
}

// Languages is the closed set of selectable languages. Codes without a
// translation table of their own resolve through the English fallback.
var Languages = []Language{
	{"en", "English", "English"},
	{"hi", "Hindi", "हिंदी"},
	{"ta", "Tamil", "தமிழ்"},
	{"te", "Telugu", "తెలుగు"},
	{"bn", "Bengali", "বাংলা"},
	{"mr", "Marathi", "मराठी"},
	{"gu", "Gujarati", "ગુજરાતી"},
	{"kn", "Kannada", "ಕನ್ನಡ"},
	{"ml", "Malayalam", "മലയാളം"},
	{"pa", "Punjabi", "ਪੰਜਾਬੀ"},
}

var translations = map[string]map[string]string{
	"en": en,
	"hi": hi,
	"ta": ta,
}

// Supported reports whether code is one of the selectable languages.
func Supported(code string) bool {
	for _, l := range Languages {
		if l.Code == code {
			return true
		}
	}
	return false
}

// Resolve returns the localized string for a key in the given language,
// falling back to English and finally to the key itself.
func Resolve(lang, key string) string {
	if table, ok := translations[lang]; ok {
		if value, ok := table[key]; ok {
			return value
		}
	}
	if lang != DefaultLanguage {
		if value, ok := translations[DefaultLanguage][key]; ok {
			return value
		}
	}
	return key
}

// Table returns the fully resolved table for a language: every English key
// mapped through Resolve, so missing keys carry the fallback value.
func Table(lang string) map[string]string {
	out := make(map[string]string, len(en))
	for key := range en {
		out[key] = Resolve(lang, key)
	}
	return out
}
