package handlers

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"littlewords/internal/report"
	"littlewords/internal/service"
	"littlewords/internal/stats"
)

// StatsHandler serves derived statistics and the HTML progress report
type StatsHandler struct {
	children *service.ChildService
	logger   *zap.Logger
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(children *service.ChildService, logger *zap.Logger) *StatsHandler {
	return &StatsHandler{children: children, logger: logger}
}

// GetChildStats returns the full statistics payload for one child
func (h *StatsHandler) GetChildStats(w http.ResponseWriter, r *http.Request) {
	child, err := h.children.Child(r.PathValue("id"))
	if err != nil {
		respondWithServiceError(h.logger, w, err)
		return
	}

	resp := childStatsResponse{
		ChildID:    child.ID,
		Shares:     stats.LanguageShares(child),
		Cumulative: stats.CumulativeAgeHistogram(child),
	}
	for _, lang := range child.SelectedLanguages {
		totals := stats.TotalsForLanguage(child, lang)
		resp.Languages = append(resp.Languages, languageStatsResponse{
			Language:   lang,
			Understood: totals.Understood,
			Spoken:     totals.Spoken,
			Categories: stats.CategoryBreakdown(child, lang),
			Histogram:  stats.AgeHistogram(child, lang),
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

// GetChildReport renders the HTML progress report for one child
func (h *StatsHandler) GetChildReport(w http.ResponseWriter, r *http.Request) {
	child, err := h.children.Child(r.PathValue("id"))
	if err != nil {
		respondWithServiceError(h.logger, w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := report.Render(w, child, time.Now()); err != nil {
		h.logger.Error("failed to render report", zap.Error(err))
	}
}
