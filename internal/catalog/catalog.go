// Package catalog holds the built-in starter vocabulary used to seed
// new child profiles and to restore a language after it was removed.
package catalog

import (
	"fmt"

	"littlewords/internal/models"
)

// OtherCategoryKey is the free-text category present in every language
const OtherCategoryKey = "other"

// categoryDef describes one seeded category: its key, display title
// and curated word list
type categoryDef struct {
	key   string
	title string
	words []string
}

var defaults = map[models.Language][]categoryDef{
	models.LanguageEnglish:    englishCategories,
	models.LanguagePortuguese: portugueseCategories,
	models.LanguageSpanish:    spanishCategories,
}

// CategoryKeys returns the category keys for a language in display order
func CategoryKeys(lang models.Language) []string {
	defs, ok := defaults[lang]
	if !ok {
		return nil
	}
	keys := make([]string, len(defs))
	for i, def := range defs {
		keys[i] = def.key
	}
	return keys
}

// DefaultDataForLanguage builds a fresh category map for one language.
// Every word starts unmarked. The result is built from scratch on each
// call, so callers can mutate it freely without touching the catalog.
func DefaultDataForLanguage(lang models.Language) (models.CategoryMap, error) {
	defs, ok := defaults[lang]
	if !ok {
		return nil, fmt.Errorf("no default catalog for language: %q", lang)
	}

	categories := make(models.CategoryMap, len(defs))
	for _, def := range defs {
		words := make([]models.Word, len(def.words))
		for i, text := range def.words {
			words[i] = models.Word{Word: text}
		}
		categories[def.key] = &models.Category{
			Title:    def.title,
			Language: lang,
			Words:    words,
		}
	}
	return categories, nil
}

// DefaultLanguageData builds fresh default data for all supported languages
func DefaultLanguageData() models.LanguageData {
	data := make(models.LanguageData, len(defaults))
	for lang := range defaults {
		categories, err := DefaultDataForLanguage(lang)
		if err != nil {
			continue
		}
		data[lang] = categories
	}
	return data
}
