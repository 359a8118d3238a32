package models

import "fmt"

// Language identifies one of the tracked languages
type Language string

const (
	LanguageEnglish    Language = "english"
	LanguagePortuguese Language = "portuguese"
	LanguageSpanish    Language = "spanish"
)

// Languages lists all supported languages in display order
var Languages = []Language{LanguageEnglish, LanguagePortuguese, LanguageSpanish}

// ParseLanguage converts a raw string into a Language
func ParseLanguage(s string) (Language, error) {
	switch Language(s) {
	case LanguageEnglish, LanguagePortuguese, LanguageSpanish:
		return Language(s), nil
	}
	return "", fmt.Errorf("unsupported language: %q", s)
}

// Valid reports whether the language is one of the supported values
func (l Language) Valid() bool {
	_, err := ParseLanguage(string(l))
	return err == nil
}
