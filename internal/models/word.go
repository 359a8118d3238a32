package models

// Word tracks a single vocabulary entry for a child.
// FirstSpokenAge is the child's age in whole months when the word was
// first marked speaking; nil until then, and cleared whenever speaking
// is unset.
type Word struct {
	Word           string `json:"word"`
	Understanding  bool   `json:"understanding"`
	Speaking       bool   `json:"speaking"`
	FirstSpokenAge *int   `json:"firstSpokenAge"`
}

// Clone returns a deep copy of the word
func (w Word) Clone() Word {
	c := w
	if w.FirstSpokenAge != nil {
		age := *w.FirstSpokenAge
		c.FirstSpokenAge = &age
	}
	return c
}

// Category is a thematic grouping of words within one language.
// Words are ordered: insertion order is display order, and words are
// addressed by position in update/remove operations.
type Category struct {
	Title    string   `json:"title"`
	Language Language `json:"language"`
	Words    []Word   `json:"words"`
}

// Clone returns a deep copy of the category
func (c *Category) Clone() *Category {
	words := make([]Word, len(c.Words))
	for i, w := range c.Words {
		words[i] = w.Clone()
	}
	return &Category{Title: c.Title, Language: c.Language, Words: words}
}

// FindWordIndex returns the position of the first word whose text
// exactly matches the given text, or -1 if no word matches
func (c *Category) FindWordIndex(text string) int {
	for i, w := range c.Words {
		if w.Word == text {
			return i
		}
	}
	return -1
}

// CategoryMap maps category keys (e.g. "family", "toys", "other") to
// categories. The well-known key "other" is always present and holds
// free-text additions with no category fit.
type CategoryMap map[string]*Category

// Clone returns a deep copy of the category map
func (m CategoryMap) Clone() CategoryMap {
	c := make(CategoryMap, len(m))
	for key, cat := range m {
		c[key] = cat.Clone()
	}
	return c
}

// WordCount returns the number of words across all categories
func (m CategoryMap) WordCount() int {
	total := 0
	for _, cat := range m {
		total += len(cat.Words)
	}
	return total
}

// WordTexts returns the text of every word across all categories.
// Used for duplicate checks at the add-word boundary.
func (m CategoryMap) WordTexts() []string {
	texts := make([]string, 0, m.WordCount())
	for _, cat := range m {
		for _, w := range cat.Words {
			texts = append(texts, w.Word)
		}
	}
	return texts
}

// LanguageData holds one category map per selected language
type LanguageData map[Language]CategoryMap

// Clone returns a deep copy of the language data
func (d LanguageData) Clone() LanguageData {
	c := make(LanguageData, len(d))
	for lang, m := range d {
		c[lang] = m.Clone()
	}
	return c
}
