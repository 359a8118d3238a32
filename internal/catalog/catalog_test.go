package catalog

import (
	"testing"

	"littlewords/internal/models"
)

func TestDefaultDataForLanguage(t *testing.T) {
	tests := []struct {
		name          string
		language      models.Language
		categoryCount int
		hasPlaces     bool
	}{
		{
			name:          "english has nine categories",
			language:      models.LanguageEnglish,
			categoryCount: 9,
			hasPlaces:     false,
		},
		{
			name:          "portuguese additionally has places",
			language:      models.LanguagePortuguese,
			categoryCount: 10,
			hasPlaces:     true,
		},
		{
			name:          "spanish has nine categories",
			language:      models.LanguageSpanish,
			categoryCount: 9,
			hasPlaces:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			categories, err := DefaultDataForLanguage(tt.language)
			if err != nil {
				t.Fatalf("DefaultDataForLanguage() error = %v", err)
			}
			if len(categories) != tt.categoryCount {
				t.Errorf("got %d categories, want %d", len(categories), tt.categoryCount)
			}
			if _, ok := categories["places"]; ok != tt.hasPlaces {
				t.Errorf("places category present = %v, want %v", ok, tt.hasPlaces)
			}

			other, ok := categories[OtherCategoryKey]
			if !ok {
				t.Fatal("other category missing")
			}
			if len(other.Words) != 0 {
				t.Errorf("other category should start empty, has %d words", len(other.Words))
			}

			for key, category := range categories {
				if category.Language != tt.language {
					t.Errorf("category %s tagged with language %s", key, category.Language)
				}
				for _, w := range category.Words {
					if w.Understanding || w.Speaking || w.FirstSpokenAge != nil {
						t.Errorf("word %q in %s not initialized blank", w.Word, key)
					}
				}
			}
		})
	}
}

func TestDefaultDataForUnknownLanguage(t *testing.T) {
	if _, err := DefaultDataForLanguage("french"); err == nil {
		t.Error("expected error for unknown language")
	}
}

func TestDefaultDataIsIndependentPerCall(t *testing.T) {
	first, err := DefaultDataForLanguage(models.LanguageEnglish)
	if err != nil {
		t.Fatalf("DefaultDataForLanguage() error = %v", err)
	}

	// Mutate everything reachable from the first copy
	first["toys"].Words[0].Speaking = true
	first["toys"].Words[0].Word = "mutated"
	first["toys"].Title = "Mutated"
	delete(first, "family")

	second, err := DefaultDataForLanguage(models.LanguageEnglish)
	if err != nil {
		t.Fatalf("DefaultDataForLanguage() error = %v", err)
	}
	if _, ok := second["family"]; !ok {
		t.Error("catalog lost a category after caller mutation")
	}
	if second["toys"].Title != "Toys" {
		t.Error("catalog title mutated through caller copy")
	}
	if second["toys"].Words[0].Word == "mutated" || second["toys"].Words[0].Speaking {
		t.Error("catalog words mutated through caller copy")
	}
}

func TestCategoryKeysOrder(t *testing.T) {
	keys := CategoryKeys(models.LanguageEnglish)
	expected := []string{"family", "food", "actions", "body", "toys", "colors", "animals", "greetings", "other"}
	if len(keys) != len(expected) {
		t.Fatalf("got %d keys, want %d", len(keys), len(expected))
	}
	for i, key := range expected {
		if keys[i] != key {
			t.Errorf("keys[%d] = %s, want %s", i, keys[i], key)
		}
	}
}

func TestEnglishToysIncludeBall(t *testing.T) {
	categories, err := DefaultDataForLanguage(models.LanguageEnglish)
	if err != nil {
		t.Fatalf("DefaultDataForLanguage() error = %v", err)
	}
	if categories["toys"].FindWordIndex("ball") < 0 {
		t.Error("english toys category is missing ball")
	}
}

func TestDefaultLanguageDataCoversAllLanguages(t *testing.T) {
	data := DefaultLanguageData()
	for _, lang := range models.Languages {
		if _, ok := data[lang]; !ok {
			t.Errorf("missing default data for %s", lang)
		}
	}
}
