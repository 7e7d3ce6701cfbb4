package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"pulsecheck/internal/service"
)

// InsightHandler serves the analytics pipeline outputs.
type InsightHandler struct {
	insightSvc *service.InsightService
}

func NewInsightHandler(insightSvc *service.InsightService) *InsightHandler {
	return &InsightHandler{insightSvc: insightSvc}
}

// Themes handles GET /v1/surveys/{surveyId}/insights/themes
// Optional query params: theme, from, to (RFC 3339 dates).
func (h *InsightHandler) Themes(w http.ResponseWriter, r *http.Request) {
	surveyID := mux.Vars(r)["surveyId"]
	themeID := r.URL.Query().Get("theme")

	from, ok := parseTimeParam(w, r, "from")
	if !ok {
		return
	}
	to, ok := parseTimeParam(w, r, "to")
	if !ok {
		return
	}

	themes, err := h.insightSvc.GetThemeInsights(r.Context(), surveyID, themeID, from, to)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, themes)
}

// Quality handles GET /v1/surveys/{surveyId}/insights/quality
func (h *InsightHandler) Quality(w http.ResponseWriter, r *http.Request) {
	surveyID := mux.Vars(r)["surveyId"]

	report, err := h.insightSvc.GetQuality(r.Context(), surveyID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// SessionQuality handles GET /v1/sessions/{sessionId}/quality
func (h *InsightHandler) SessionQuality(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	metrics, err := h.insightSvc.GetSessionQuality(r.Context(), sessionID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, metrics)
}

// NLP handles GET /v1/surveys/{surveyId}/insights/nlp
func (h *InsightHandler) NLP(w http.ResponseWriter, r *http.Request) {
	surveyID := mux.Vars(r)["surveyId"]

	analysis, err := h.insightSvc.GetNLP(r.Context(), surveyID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, analysis)
}

// Culture handles GET /v1/surveys/{surveyId}/insights/culture
func (h *InsightHandler) Culture(w http.ResponseWriter, r *http.Request) {
	surveyID := mux.Vars(r)["surveyId"]

	culture, err := h.insightSvc.GetCulture(r.Context(), surveyID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, culture)
}

// Actions handles GET /v1/surveys/{surveyId}/insights/actions
func (h *InsightHandler) Actions(w http.ResponseWriter, r *http.Request) {
	surveyID := mux.Vars(r)["surveyId"]

	plan, err := h.insightSvc.GetActions(r.Context(), surveyID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, plan)
}

// Summary handles GET /v1/surveys/{surveyId}/insights/summary
func (h *InsightHandler) Summary(w http.ResponseWriter, r *http.Request) {
	surveyID := mux.Vars(r)["surveyId"]

	summary, err := h.insightSvc.GetSummary(r.Context(), surveyID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// Snapshot handles GET /v1/surveys/{surveyId}/insights/snapshot
func (h *InsightHandler) Snapshot(w http.ResponseWriter, r *http.Request) {
	surveyID := mux.Vars(r)["surveyId"]

	snapshot, err := h.insightSvc.GetSnapshot(r.Context(), surveyID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if snapshot == nil {
		writeError(w, http.StatusNotFound, "no snapshot yet; POST .../insights/refresh first")
		return
	}
	writeJSON(w, http.StatusOK, snapshot)
}

// Refresh handles POST /v1/surveys/{surveyId}/insights/refresh
func (h *InsightHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	surveyID := mux.Vars(r)["surveyId"]

	snapshot, err := h.insightSvc.Refresh(r.Context(), surveyID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snapshot)
}

func parseTimeParam(w http.ResponseWriter, r *http.Request, name string) (*time.Time, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, true
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, name+" must be an RFC 3339 timestamp")
		return nil, false
	}
	return &t, true
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrSurveyNotFound):
		writeError(w, http.StatusNotFound, "survey not found")
	case errors.Is(err, service.ErrSessionNotFound):
		writeError(w, http.StatusNotFound, "session not found")
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
