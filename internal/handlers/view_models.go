package handlers

import (
	"littlewords/internal/models"
	"littlewords/internal/stats"
)

// createChildRequest is the payload for creating a child profile
type createChildRequest struct {
	Name      string   `json:"name" validate:"required"`
	BirthDate string   `json:"birthDate" validate:"omitempty,datetime=2006-01-02"`
	Languages []string `json:"languages" validate:"required,min=1,dive,required"`
}

// updateChildRequest is the payload for editing a child profile.
// Absent fields are left untouched; an explicit empty birthDate clears it.
type updateChildRequest struct {
	Name      *string  `json:"name" validate:"omitempty,min=1"`
	BirthDate *string  `json:"birthDate" validate:"omitempty,datetime=2006-01-02"`
	Languages []string `json:"languages" validate:"omitempty,min=1,dive,required"`
}

// updateWordStatusRequest merges word status flags. The optional word
// text re-resolves the position when the caller's index may be stale.
type updateWordStatusRequest struct {
	Word           *string `json:"word"`
	Understanding  *bool   `json:"understanding"`
	Speaking       *bool   `json:"speaking"`
	FirstSpokenAge *int    `json:"firstSpokenAge"`
}

// addWordRequest is the payload for adding a custom word
type addWordRequest struct {
	Word string `json:"word" validate:"required"`
}

// childListResponse wraps the child collection plus the active selection
type childListResponse struct {
	Children      []*models.Child `json:"children"`
	ActiveChildID *string         `json:"activeChildId"`
}

// languageStatsResponse aggregates one language's derived statistics
type languageStatsResponse struct {
	Language   models.Language       `json:"language"`
	Understood int                   `json:"understood"`
	Spoken     int                   `json:"spoken"`
	Categories []stats.CategoryStats `json:"categories"`
	Histogram  []stats.AgeBucket     `json:"histogram"`
}

// childStatsResponse is the full statistics payload for one child
type childStatsResponse struct {
	ChildID    string                                `json:"childId"`
	Languages  []languageStatsResponse               `json:"languages"`
	Shares     []stats.LanguageShare                 `json:"shares"`
	Cumulative map[models.Language][]stats.AgeBucket `json:"cumulative"`
}
