// Package i18n carries the English and Hindi copy for the screening flow.
package i18n

import "strings"

// Language is a supported UI language.
type Language string

const (
	English Language = "en"
	Hindi   Language = "hi"
)

// Default is used whenever an unknown language is requested.
const Default = English

// Supported lists the UI languages in selector order.
var Supported = []Language{English, Hindi}

// ParseLanguage normalizes s ("hi", "hi-IN", "EN") to a supported language,
// falling back to English.
func ParseLanguage(s string) Language {
	l := strings.ToLower(strings.TrimSpace(s))
	if i := strings.IndexAny(l, "-_"); i > 0 {
		l = l[:i]
	}
	for _, sup := range Supported {
		if Language(l) == sup {
			return sup
		}
	}
	return Default
}

// Locale returns the speech recognition locale for the language.
func (l Language) Locale() string {
	if l == Hindi {
		return "hi-IN"
	}
	return "en-US"
}

// T returns the translated string for key; falls back to English, then to the key.
func T(lang Language, key string) string {
	if m, ok := catalog[lang]; ok {
		if v, ok := m[key]; ok {
			return v
		}
	}
	if v, ok := catalog[Default][key]; ok {
		return v
	}
	return key
}
