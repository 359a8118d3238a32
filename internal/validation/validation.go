// Package validation holds the pure predicates guarding every mutation.
// The mutation engine itself performs no validation; callers run these
// checks before issuing a command.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"littlewords/internal/models"
)

const (
	// MaxChildProfiles is the ceiling on child profiles per installation
	MaxChildProfiles = 8
	// MaxWordsPerCategory is the ceiling on words within one category
	MaxWordsPerCategory = 150
	// MaxWordsPerLanguage is the ceiling on words within one language
	MaxWordsPerLanguage = 1000

	maxNameLength     = 25
	maxWordLength     = 40
	maxSanitizedInput = 1000
	minBirthYear      = 1925
	maxAgeYears       = 25
)

// namePattern allows letters from any script (extended Latin included),
// spaces, hyphens and apostrophes
var namePattern = regexp.MustCompile(`^[\p{L}\s'-]+$`)

// wordPattern additionally allows digits and periods
var wordPattern = regexp.MustCompile(`^[\p{L}\p{N}\s'.-]+$`)

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateChildName checks if a child profile name is valid
func ValidateChildName(name string) error {
	trimmed := strings.TrimSpace(name)
	if utf8.RuneCountInString(trimmed) < 2 {
		return ValidationError{Field: "name", Message: "name must be at least 2 characters"}
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return ValidationError{Field: "name", Message: fmt.Sprintf("name must be at most %d characters", maxNameLength)}
	}
	if !namePattern.MatchString(trimmed) {
		return ValidationError{Field: "name", Message: "name may only contain letters, spaces, hyphens and apostrophes"}
	}
	return nil
}

// ValidateBirthDate checks if a birth date is valid. An empty value is
// valid: the birth date is optional.
func ValidateBirthDate(birthDate string, now time.Time) error {
	if birthDate == "" {
		return nil
	}
	birth, err := time.Parse(models.BirthDateLayout, birthDate)
	if err != nil {
		return ValidationError{Field: "birthDate", Message: "birth date must be a valid date"}
	}
	if birth.After(now) {
		return ValidationError{Field: "birthDate", Message: "birth date cannot be in the future"}
	}
	if birth.Year() < minBirthYear {
		return ValidationError{Field: "birthDate", Message: fmt.Sprintf("birth year must be %d or later", minBirthYear)}
	}
	if birth.AddDate(maxAgeYears, 0, 0).Before(now) {
		return ValidationError{Field: "birthDate", Message: fmt.Sprintf("age cannot exceed %d years", maxAgeYears)}
	}
	return nil
}

// ValidateWord checks if a word is valid
func ValidateWord(text string) error {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return ValidationError{Field: "word", Message: "word is required"}
	}
	if utf8.RuneCountInString(text) > maxWordLength {
		return ValidationError{Field: "word", Message: fmt.Sprintf("word must be at most %d characters", maxWordLength)}
	}
	if !wordPattern.MatchString(trimmed) {
		return ValidationError{Field: "word", Message: "word may only contain letters, digits, spaces, apostrophes, periods and hyphens"}
	}
	return nil
}

// SanitizeInput normalizes user-supplied text before it is persisted:
// trims, collapses internal whitespace runs to a single space, strips
// angle brackets and truncates to a hard ceiling.
func SanitizeInput(text string) string {
	collapsed := strings.Join(strings.Fields(text), " ")
	cleaned := strings.NewReplacer("<", "", ">", "").Replace(collapsed)
	runes := []rune(cleaned)
	if len(runes) > maxSanitizedInput {
		return string(runes[:maxSanitizedInput])
	}
	return cleaned
}

// CanAddChildProfile checks the profile-count ceiling
func CanAddChildProfile(count int) error {
	if count >= MaxChildProfiles {
		return ValidationError{Field: "children", Message: fmt.Sprintf("cannot have more than %d child profiles", MaxChildProfiles)}
	}
	return nil
}

// CanAddWordToCategory checks the per-category word-count ceiling
func CanAddWordToCategory(count int) error {
	if count >= MaxWordsPerCategory {
		return ValidationError{Field: "words", Message: fmt.Sprintf("category cannot hold more than %d words", MaxWordsPerCategory)}
	}
	return nil
}

// CanAddWordToLanguage checks the per-language word-count ceiling
func CanAddWordToLanguage(count int) error {
	if count >= MaxWordsPerLanguage {
		return ValidationError{Field: "words", Message: fmt.Sprintf("language cannot hold more than %d words", MaxWordsPerLanguage)}
	}
	return nil
}

// IsDuplicateChildName reports whether the name matches any existing
// child name, compared case-insensitively on trimmed text. Callers
// exclude the child being edited from the existing list.
func IsDuplicateChildName(name string, existing []string) bool {
	return containsFold(name, existing)
}

// IsDuplicateWord reports whether the word already exists in the given
// list, compared case-insensitively on trimmed text
func IsDuplicateWord(text string, existing []string) bool {
	return containsFold(text, existing)
}

func containsFold(needle string, haystack []string) bool {
	needle = strings.ToLower(strings.TrimSpace(needle))
	for _, s := range haystack {
		if strings.ToLower(strings.TrimSpace(s)) == needle {
			return true
		}
	}
	return false
}
