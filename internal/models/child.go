package models

import (
	"fmt"
	"time"
)

// BirthDateLayout is the ISO date layout used for birth dates
const BirthDateLayout = "2006-01-02"

// Child represents a child profile and all of its vocabulary data
type Child struct {
	ID                string       `json:"id"`
	Name              string       `json:"name"`
	BirthDate         *string      `json:"birthDate"`
	SelectedLanguages []Language   `json:"selectedLanguages"`
	Categories        LanguageData `json:"categories"`
	CreatedAt         time.Time    `json:"createdAt"`
	LastModified      time.Time    `json:"lastModified"`
}

// Clone returns a deep copy of the child, safe to hand to readers
func (c *Child) Clone() *Child {
	clone := &Child{
		ID:           c.ID,
		Name:         c.Name,
		CreatedAt:    c.CreatedAt,
		LastModified: c.LastModified,
		Categories:   c.Categories.Clone(),
	}
	if c.BirthDate != nil {
		bd := *c.BirthDate
		clone.BirthDate = &bd
	}
	clone.SelectedLanguages = make([]Language, len(c.SelectedLanguages))
	copy(clone.SelectedLanguages, c.SelectedLanguages)
	return clone
}

// HasLanguage reports whether the language is in the child's selection
func (c *Child) HasLanguage(lang Language) bool {
	for _, l := range c.SelectedLanguages {
		if l == lang {
			return true
		}
	}
	return false
}

// Category returns the named category for a language, if present
func (c *Child) Category(lang Language, key string) (*Category, bool) {
	categories, ok := c.Categories[lang]
	if !ok {
		return nil, false
	}
	cat, ok := categories[key]
	return cat, ok
}

// WordAt returns a pointer to the word at the given position, if the
// language, category and index are all valid
func (c *Child) WordAt(lang Language, key string, index int) (*Word, bool) {
	cat, ok := c.Category(lang, key)
	if !ok {
		return nil, false
	}
	if index < 0 || index >= len(cat.Words) {
		return nil, false
	}
	return &cat.Words[index], true
}

// AgeInMonths computes a child's age in whole months at the given
// moment. The month is only counted once its day-of-month anniversary
// has passed; the result is floored at zero.
func AgeInMonths(birthDate string, now time.Time) (int, error) {
	birth, err := time.Parse(BirthDateLayout, birthDate)
	if err != nil {
		return 0, fmt.Errorf("parse birth date: %w", err)
	}

	months := (now.Year()-birth.Year())*12 + int(now.Month()) - int(birth.Month())
	if now.Day() < birth.Day() {
		months--
	}
	if months < 0 {
		months = 0
	}
	return months, nil
}
