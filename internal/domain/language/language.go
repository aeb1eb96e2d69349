// Package language defines the interface languages a scheme catalog is localized in.
package language

import "strings"

// Language is an ISO 639-1 code for a supported interface language.
type Language string

const (
	English Language = "en"
	Telugu  Language = "te"
	Hindi   Language = "hi"

	// Default is used whenever a requested language is not recognized.
	Default = English
)

// All returns the supported languages in display order.
func All() []Language {
	return []Language{English, Telugu, Hindi}
}

// IsValid reports whether l is one of the supported languages.
func (l Language) IsValid() bool {
	switch l {
	case English, Telugu, Hindi:
		return true
	}
	return false
}

// Parse coerces a raw language code. Unrecognized values fall back to Default.
func Parse(raw string) Language {
	l := Language(strings.ToLower(strings.TrimSpace(raw)))
	if l.IsValid() {
		return l
	}
	return Default
}

func (l Language) String() string { return string(l) }
