package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"littlewords/internal/models"
	"littlewords/internal/service"
	"littlewords/internal/validation"
)

// WordHandler handles word and language-data HTTP requests
type WordHandler struct {
	children *service.ChildService
	validate *validator.Validate
	logger   *zap.Logger
}

// NewWordHandler creates a new word handler
func NewWordHandler(children *service.ChildService, validate *validator.Validate, logger *zap.Logger) *WordHandler {
	return &WordHandler{
		children: children,
		validate: validate,
		logger:   logger,
	}
}

// UpdateWordStatus merges status flags onto one word. The position in
// the path is used as-is unless the body carries the word text, in
// which case the position is re-resolved by text match so a stale index
// can never hit the wrong word.
func (h *WordHandler) UpdateWordStatus(w http.ResponseWriter, r *http.Request) {
	childID, lang, categoryKey, index, ok := h.wordRef(w, r)
	if !ok {
		return
	}

	var req updateWordStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(h.logger, w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	if req.Word != nil {
		resolved, err := h.children.FindWordIndex(childID, lang, categoryKey, *req.Word)
		if err != nil {
			respondWithServiceError(h.logger, w, err)
			return
		}
		index = resolved
	}

	update := service.WordStatusUpdate{
		Understanding:  req.Understanding,
		Speaking:       req.Speaking,
		FirstSpokenAge: req.FirstSpokenAge,
	}
	if err := h.children.UpdateWordStatus(r.Context(), childID, lang, categoryKey, index, update); err != nil {
		respondWithServiceError(h.logger, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AddWord appends a custom word to a category after sanitizing,
// validating and checking duplicates and count ceilings
func (h *WordHandler) AddWord(w http.ResponseWriter, r *http.Request) {
	childID := r.PathValue("id")
	lang, ok := h.language(w, r)
	if !ok {
		return
	}
	categoryKey := r.PathValue("category")

	var req addWordRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(h.logger, w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		respondWithError(h.logger, w, http.StatusBadRequest, "invalid request", err)
		return
	}

	text := validation.SanitizeInput(req.Word)
	if err := h.validateWordAdd(childID, lang, categoryKey, text); err != nil {
		respondWithServiceError(h.logger, w, err)
		return
	}

	if err := h.children.AddCustomWord(r.Context(), childID, lang, categoryKey, text); err != nil {
		respondWithServiceError(h.logger, w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

// RemoveWord deletes a word. As with status updates, a ?word= query
// re-resolves the position when the caller's index may be stale.
func (h *WordHandler) RemoveWord(w http.ResponseWriter, r *http.Request) {
	childID, lang, categoryKey, index, ok := h.wordRef(w, r)
	if !ok {
		return
	}

	if text := r.URL.Query().Get("word"); text != "" {
		resolved, err := h.children.FindWordIndex(childID, lang, categoryKey, text)
		if err != nil {
			respondWithServiceError(h.logger, w, err)
			return
		}
		index = resolved
	}

	if err := h.children.RemoveWord(r.Context(), childID, lang, categoryKey, index); err != nil {
		respondWithServiceError(h.logger, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RemoveLanguage deletes all data for one of the child's languages
func (h *WordHandler) RemoveLanguage(w http.ResponseWriter, r *http.Request) {
	lang, ok := h.language(w, r)
	if !ok {
		return
	}
	if err := h.children.RemoveLanguageData(r.Context(), r.PathValue("id"), lang); err != nil {
		respondWithServiceError(h.logger, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RestoreLanguage seeds default data for a language with none
func (h *WordHandler) RestoreLanguage(w http.ResponseWriter, r *http.Request) {
	lang, ok := h.language(w, r)
	if !ok {
		return
	}
	if err := h.children.RestoreLanguageData(r.Context(), r.PathValue("id"), lang); err != nil {
		respondWithServiceError(h.logger, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// validateWordAdd runs the add-word predicates: word shape, duplicate
// within the language, and both count ceilings
func (h *WordHandler) validateWordAdd(childID string, lang models.Language, categoryKey, text string) error {
	if err := validation.ValidateWord(text); err != nil {
		return err
	}

	child, err := h.children.Child(childID)
	if err != nil {
		return err
	}
	categories, ok := child.Categories[lang]
	if !ok {
		return service.ErrLanguageNotFound
	}
	category, ok := categories[categoryKey]
	if !ok {
		return service.ErrCategoryNotFound
	}

	if validation.IsDuplicateWord(text, categories.WordTexts()) {
		return validation.ValidationError{Field: "word", Message: "this word already exists for this language"}
	}
	if err := validation.CanAddWordToCategory(len(category.Words)); err != nil {
		return err
	}
	return validation.CanAddWordToLanguage(categories.WordCount())
}

func (h *WordHandler) language(w http.ResponseWriter, r *http.Request) (models.Language, bool) {
	lang, err := models.ParseLanguage(r.PathValue("language"))
	if err != nil {
		respondWithError(h.logger, w, http.StatusBadRequest, err.Error(), nil)
		return "", false
	}
	return lang, true
}

// wordRef extracts the child/language/category/index reference shared
// by the word routes
func (h *WordHandler) wordRef(w http.ResponseWriter, r *http.Request) (string, models.Language, string, int, bool) {
	lang, ok := h.language(w, r)
	if !ok {
		return "", "", "", 0, false
	}
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		respondWithError(h.logger, w, http.StatusBadRequest, "invalid word index", err)
		return "", "", "", 0, false
	}
	return r.PathValue("id"), lang, r.PathValue("category"), index, true
}
