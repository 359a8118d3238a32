package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"littlewords/internal/catalog"
	"littlewords/internal/models"
	"littlewords/internal/repository"
)

var (
	// ErrNotFound is the base error every stale-reference failure matches
	ErrNotFound = errors.New("not found")

	ErrChildNotFound    = fmt.Errorf("child %w", ErrNotFound)
	ErrLanguageNotFound = fmt.Errorf("language data %w", ErrNotFound)
	ErrCategoryNotFound = fmt.Errorf("category %w", ErrNotFound)
	ErrWordNotFound     = fmt.Errorf("word %w", ErrNotFound)

	ErrNoLanguages = errors.New("at least one language is required")
)

// ChildUpdate carries the profile fields to merge into an existing
// child. Nil fields are left untouched. Changing SelectedLanguages does
// not reconcile category data; callers follow up with
// RemoveLanguageData / RestoreLanguageData for each changed language.
type ChildUpdate struct {
	Name              *string
	BirthDate         *string
	SelectedLanguages []models.Language
}

// WordStatusUpdate carries the word status fields to merge. Nil fields
// are left untouched.
type WordStatusUpdate struct {
	Understanding  *bool
	Speaking       *bool
	FirstSpokenAge *int
}

// ChildService owns the in-memory application state and applies every
// mutation to it. State is loaded once at construction and written back
// as a whole after each mutation. A single mutex serializes access:
// the design is read-modify-write over one blob, so there must never be
// two writers in flight.
type ChildService struct {
	mu     sync.Mutex
	repo   *repository.AppRepository
	data   *models.AppData
	logger *zap.Logger
	now    func() time.Time
}

// NewChildService loads the persisted state and returns the service
func NewChildService(ctx context.Context, repo *repository.AppRepository, logger *zap.Logger) *ChildService {
	return &ChildService{
		repo:   repo,
		data:   repo.Initialize(ctx),
		logger: logger,
		now:    time.Now,
	}
}

// CreateChild creates a new child profile seeded with the default
// catalog for each selected language. The first child created becomes
// the active child.
func (s *ChildService) CreateChild(ctx context.Context, name string, birthDate *string, languages []models.Language) (*models.Child, error) {
	if len(languages) == 0 {
		return nil, ErrNoLanguages
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	categories := make(models.LanguageData, len(languages))
	selected := make([]models.Language, 0, len(languages))
	for _, lang := range languages {
		if _, ok := categories[lang]; ok {
			continue
		}
		defaults, err := catalog.DefaultDataForLanguage(lang)
		if err != nil {
			return nil, fmt.Errorf("failed to seed language data: %w", err)
		}
		categories[lang] = defaults
		selected = append(selected, lang)
	}

	now := s.now()
	child := &models.Child{
		ID:                uuid.NewString(),
		Name:              name,
		SelectedLanguages: selected,
		Categories:        categories,
		CreatedAt:         now,
		LastModified:      now,
	}
	if birthDate != nil && *birthDate != "" {
		bd := *birthDate
		child.BirthDate = &bd
	}

	s.data.Children[child.ID] = child
	if s.data.ActiveChildID == nil {
		id := child.ID
		s.data.ActiveChildID = &id
	}

	if err := s.repo.Save(ctx, s.data); err != nil {
		return nil, err
	}

	s.logger.Info("child profile created", zap.String("child_id", child.ID))
	return child.Clone(), nil
}

// UpdateChild merges the provided profile fields into an existing child
func (s *ChildService) UpdateChild(ctx context.Context, childID string, update ChildUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	child, ok := s.data.Children[childID]
	if !ok {
		return ErrChildNotFound
	}

	if update.Name != nil {
		child.Name = *update.Name
	}
	if update.BirthDate != nil {
		if *update.BirthDate == "" {
			child.BirthDate = nil
		} else {
			bd := *update.BirthDate
			child.BirthDate = &bd
		}
	}
	if update.SelectedLanguages != nil {
		child.SelectedLanguages = append([]models.Language(nil), update.SelectedLanguages...)
	}
	child.LastModified = s.now()

	return s.repo.Save(ctx, s.data)
}

// DeleteChild removes a child profile. If it was the active child, an
// arbitrary remaining child becomes active, or none remain active.
func (s *ChildService) DeleteChild(ctx context.Context, childID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.data.Children[childID]; !ok {
		return ErrChildNotFound
	}
	delete(s.data.Children, childID)

	if s.data.ActiveChildID != nil && *s.data.ActiveChildID == childID {
		s.data.ActiveChildID = nil
		for id := range s.data.Children {
			next := id
			s.data.ActiveChildID = &next
			break
		}
	}

	return s.repo.Save(ctx, s.data)
}

// SetActiveChild switches the active child profile
func (s *ChildService) SetActiveChild(ctx context.Context, childID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.data.Children[childID]; !ok {
		return ErrChildNotFound
	}
	id := childID
	s.data.ActiveChildID = &id

	return s.repo.Save(ctx, s.data)
}

// ActiveChild returns a snapshot of the active child, or nil
func (s *ChildService) ActiveChild() *models.Child {
	s.mu.Lock()
	defer s.mu.Unlock()

	child := s.data.ActiveChild()
	if child == nil {
		return nil
	}
	return child.Clone()
}

// Child returns a snapshot of one child profile
func (s *ChildService) Child(childID string) (*models.Child, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	child, ok := s.data.Children[childID]
	if !ok {
		return nil, ErrChildNotFound
	}
	return child.Clone(), nil
}

// Children returns snapshots of all child profiles in creation order
func (s *ChildService) Children() []*models.Child {
	s.mu.Lock()
	defer s.mu.Unlock()

	children := make([]*models.Child, 0, len(s.data.Children))
	for _, child := range s.data.Children {
		children = append(children, child.Clone())
	}
	sort.Slice(children, func(i, j int) bool {
		return children[i].CreatedAt.Before(children[j].CreatedAt)
	})
	return children
}

// ChildCount returns the number of child profiles
func (s *ChildService) ChildCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.data.Children)
}

// SiblingNames returns the names of all children except the given one,
// for duplicate-name checks at the boundary
func (s *ChildService) SiblingNames(excludeID string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.ChildNames(excludeID)
}

// RemoveLanguageData deletes all category data for a language. The loss
// is intentional and irreversible; re-adding the language later
// restores the default catalog, not the removed progress.
func (s *ChildService) RemoveLanguageData(ctx context.Context, childID string, lang models.Language) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	child, ok := s.data.Children[childID]
	if !ok {
		return ErrChildNotFound
	}

	delete(child.Categories, lang)
	child.LastModified = s.now()

	return s.repo.Save(ctx, s.data)
}

// RestoreLanguageData seeds default category data for a language that
// has none. Existing data is never overwritten.
func (s *ChildService) RestoreLanguageData(ctx context.Context, childID string, lang models.Language) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	child, ok := s.data.Children[childID]
	if !ok {
		return ErrChildNotFound
	}
	if _, ok := child.Categories[lang]; ok {
		return nil
	}

	defaults, err := catalog.DefaultDataForLanguage(lang)
	if err != nil {
		return fmt.Errorf("failed to restore language data: %w", err)
	}
	child.Categories[lang] = defaults
	child.LastModified = s.now()

	return s.repo.Save(ctx, s.data)
}

// UpdateWordStatus merges status fields onto one word, addressed by
// position. The merge is applied atomically together with the implied
// status rules, so the inconsistent state "understood=false but
// speaking=true" can never be persisted:
//   - marking speaking stamps FirstSpokenAge from the child's age in
//     months, if the word has no age yet and a birth date is set
//   - a word marked speaking is always marked understood
//   - unmarking understanding also unmarks speaking
//   - a word not speaking has no FirstSpokenAge
func (s *ChildService) UpdateWordStatus(ctx context.Context, childID string, lang models.Language, categoryKey string, wordIndex int, update WordStatusUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	child, ok := s.data.Children[childID]
	if !ok {
		return ErrChildNotFound
	}
	word, ok := child.WordAt(lang, categoryKey, wordIndex)
	if !ok {
		return ErrWordNotFound
	}

	hadNoAge := word.FirstSpokenAge == nil

	if update.Understanding != nil {
		word.Understanding = *update.Understanding
	}
	if update.Speaking != nil {
		word.Speaking = *update.Speaking
	}
	if update.FirstSpokenAge != nil {
		age := *update.FirstSpokenAge
		word.FirstSpokenAge = &age
	}

	if update.Understanding != nil && !*update.Understanding {
		word.Speaking = false
	}
	if update.Speaking != nil && *update.Speaking && word.Speaking {
		word.Understanding = true
		// The engine's own stamp wins over a caller-supplied age when
		// the word had no age before this update
		if hadNoAge && child.BirthDate != nil {
			if months, err := models.AgeInMonths(*child.BirthDate, s.now()); err == nil {
				word.FirstSpokenAge = &months
			}
		}
	}
	if !word.Speaking {
		word.FirstSpokenAge = nil
	}

	child.LastModified = s.now()

	return s.repo.Save(ctx, s.data)
}

// AddCustomWord appends a new unmarked word to a category. Validation,
// sanitization and duplicate checks are the caller's responsibility;
// this layer only guards references.
func (s *ChildService) AddCustomWord(ctx context.Context, childID string, lang models.Language, categoryKey, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	child, ok := s.data.Children[childID]
	if !ok {
		return ErrChildNotFound
	}
	if _, ok := child.Categories[lang]; !ok {
		return ErrLanguageNotFound
	}
	category, ok := child.Category(lang, categoryKey)
	if !ok {
		return ErrCategoryNotFound
	}

	category.Words = append(category.Words, models.Word{Word: text})
	child.LastModified = s.now()

	return s.repo.Save(ctx, s.data)
}

// RemoveWord deletes the word at the given position. The list shifts:
// any index a caller computed before this call is stale afterwards and
// must be re-resolved, e.g. via FindWordIndex.
func (s *ChildService) RemoveWord(ctx context.Context, childID string, lang models.Language, categoryKey string, wordIndex int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	child, ok := s.data.Children[childID]
	if !ok {
		return ErrChildNotFound
	}
	category, ok := child.Category(lang, categoryKey)
	if !ok {
		return ErrCategoryNotFound
	}
	if wordIndex < 0 || wordIndex >= len(category.Words) {
		return ErrWordNotFound
	}

	category.Words = append(category.Words[:wordIndex], category.Words[wordIndex+1:]...)
	child.LastModified = s.now()

	return s.repo.Save(ctx, s.data)
}

// FindWordIndex resolves a word's current position by exact text match
// within a category. This is the canonical lookup when a caller cannot
// guarantee its positional index is still fresh.
func (s *ChildService) FindWordIndex(childID string, lang models.Language, categoryKey, text string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	child, ok := s.data.Children[childID]
	if !ok {
		return 0, ErrChildNotFound
	}
	category, ok := child.Category(lang, categoryKey)
	if !ok {
		return 0, ErrCategoryNotFound
	}
	index := category.FindWordIndex(text)
	if index < 0 {
		return 0, ErrWordNotFound
	}
	return index, nil
}
