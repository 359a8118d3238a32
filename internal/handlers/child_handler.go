package handlers

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"littlewords/internal/models"
	"littlewords/internal/service"
	"littlewords/internal/validation"
)

// ChildHandler handles child-profile HTTP requests. All validation and
// duplicate checking happens here, before any mutation is issued: the
// engine itself trusts its callers.
type ChildHandler struct {
	children *service.ChildService
	validate *validator.Validate
	logger   *zap.Logger
}

// NewChildHandler creates a new child handler
func NewChildHandler(children *service.ChildService, validate *validator.Validate, logger *zap.Logger) *ChildHandler {
	return &ChildHandler{
		children: children,
		validate: validate,
		logger:   logger,
	}
}

// CreateChild creates a new child profile
func (h *ChildHandler) CreateChild(w http.ResponseWriter, r *http.Request) {
	var req createChildRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(h.logger, w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		respondWithError(h.logger, w, http.StatusBadRequest, "invalid request", err)
		return
	}

	name := validation.SanitizeInput(req.Name)
	if err := h.validateProfile(name, req.BirthDate, ""); err != nil {
		respondWithServiceError(h.logger, w, err)
		return
	}
	if err := validation.CanAddChildProfile(h.children.ChildCount()); err != nil {
		respondWithServiceError(h.logger, w, err)
		return
	}

	languages, err := parseLanguages(req.Languages)
	if err != nil {
		respondWithError(h.logger, w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	var birthDate *string
	if req.BirthDate != "" {
		birthDate = &req.BirthDate
	}

	child, err := h.children.CreateChild(r.Context(), name, birthDate, languages)
	if err != nil {
		respondWithServiceError(h.logger, w, err)
		return
	}

	writeJSON(w, http.StatusCreated, child)
}

// ListChildren returns all child profiles and the active selection
func (h *ChildHandler) ListChildren(w http.ResponseWriter, r *http.Request) {
	resp := childListResponse{Children: h.children.Children()}
	if active := h.children.ActiveChild(); active != nil {
		id := active.ID
		resp.ActiveChildID = &id
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetChild returns one child profile
func (h *ChildHandler) GetChild(w http.ResponseWriter, r *http.Request) {
	child, err := h.children.Child(r.PathValue("id"))
	if err != nil {
		respondWithServiceError(h.logger, w, err)
		return
	}
	writeJSON(w, http.StatusOK, child)
}

// GetActiveChild returns the active child profile, or 204 if none
func (h *ChildHandler) GetActiveChild(w http.ResponseWriter, r *http.Request) {
	child := h.children.ActiveChild()
	if child == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, child)
}

// UpdateChild edits a child profile. A changed language selection is
// reconciled in explicit follow-up steps: removed languages lose their
// data, newly added ones are seeded with defaults.
func (h *ChildHandler) UpdateChild(w http.ResponseWriter, r *http.Request) {
	childID := r.PathValue("id")

	var req updateChildRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(h.logger, w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		respondWithError(h.logger, w, http.StatusBadRequest, "invalid request", err)
		return
	}

	current, err := h.children.Child(childID)
	if err != nil {
		respondWithServiceError(h.logger, w, err)
		return
	}

	update := service.ChildUpdate{BirthDate: req.BirthDate}
	if req.Name != nil {
		name := validation.SanitizeInput(*req.Name)
		if err := h.validateProfile(name, "", childID); err != nil {
			respondWithServiceError(h.logger, w, err)
			return
		}
		update.Name = &name
	}
	if req.BirthDate != nil && *req.BirthDate != "" {
		if err := validation.ValidateBirthDate(*req.BirthDate, time.Now()); err != nil {
			respondWithServiceError(h.logger, w, err)
			return
		}
	}

	var added, removed []models.Language
	if req.Languages != nil {
		languages, err := parseLanguages(req.Languages)
		if err != nil {
			respondWithError(h.logger, w, http.StatusBadRequest, err.Error(), nil)
			return
		}
		update.SelectedLanguages = languages
		added, removed = diffLanguages(current.SelectedLanguages, languages)
	}

	if err := h.children.UpdateChild(r.Context(), childID, update); err != nil {
		respondWithServiceError(h.logger, w, err)
		return
	}
	for _, lang := range removed {
		if err := h.children.RemoveLanguageData(r.Context(), childID, lang); err != nil {
			respondWithServiceError(h.logger, w, err)
			return
		}
	}
	for _, lang := range added {
		if err := h.children.RestoreLanguageData(r.Context(), childID, lang); err != nil {
			respondWithServiceError(h.logger, w, err)
			return
		}
	}

	child, err := h.children.Child(childID)
	if err != nil {
		respondWithServiceError(h.logger, w, err)
		return
	}
	writeJSON(w, http.StatusOK, child)
}

// DeleteChild removes a child profile
func (h *ChildHandler) DeleteChild(w http.ResponseWriter, r *http.Request) {
	if err := h.children.DeleteChild(r.Context(), r.PathValue("id")); err != nil {
		respondWithServiceError(h.logger, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ActivateChild switches the active child profile
func (h *ChildHandler) ActivateChild(w http.ResponseWriter, r *http.Request) {
	if err := h.children.SetActiveChild(r.Context(), r.PathValue("id")); err != nil {
		respondWithServiceError(h.logger, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// validateProfile runs the name predicates plus the duplicate-name
// check, excluding the child being edited
func (h *ChildHandler) validateProfile(name, birthDate, excludeID string) error {
	if err := validation.ValidateChildName(name); err != nil {
		return err
	}
	if validation.IsDuplicateChildName(name, h.children.SiblingNames(excludeID)) {
		return validation.ValidationError{Field: "name", Message: "a child with this name already exists"}
	}
	if birthDate != "" {
		if err := validation.ValidateBirthDate(birthDate, time.Now()); err != nil {
			return err
		}
	}
	return nil
}

func parseLanguages(raw []string) ([]models.Language, error) {
	languages := make([]models.Language, 0, len(raw))
	for _, s := range raw {
		lang, err := models.ParseLanguage(s)
		if err != nil {
			return nil, err
		}
		languages = append(languages, lang)
	}
	return languages, nil
}

// diffLanguages returns the languages present only in next (added) and
// only in prev (removed)
func diffLanguages(prev, next []models.Language) (added, removed []models.Language) {
	prevSet := make(map[models.Language]bool, len(prev))
	for _, lang := range prev {
		prevSet[lang] = true
	}
	nextSet := make(map[models.Language]bool, len(next))
	for _, lang := range next {
		nextSet[lang] = true
		if !prevSet[lang] {
			added = append(added, lang)
		}
	}
	for _, lang := range prev {
		if !nextSet[lang] {
			removed = append(removed, lang)
		}
	}
	return added, removed
}
