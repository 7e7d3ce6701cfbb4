package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"pulsecheck/internal/cache"
	"pulsecheck/internal/insight"
	"pulsecheck/internal/model"
	"pulsecheck/internal/repository"
)

var ErrSessionNotFound = errors.New("session not found")

// ActionPlan bundles the actionable-intelligence outputs served together.
type ActionPlan struct {
	RootCauses    []model.RootCause                  `json:"rootCauses"`
	Interventions []model.InterventionRecommendation `json:"interventions"`
	QuickWins     []model.QuickWin                   `json:"quickWins"`
	Predictions   []model.ImpactPrediction           `json:"predictions"`
}

// InsightService orchestrates the analytics pipeline: fetch the survey's
// responses and sessions once, run the pure pipeline over the snapshot,
// cache and optionally persist the result. The pipeline holds no state; all
// caching and persistence lives here.
type InsightService struct {
	surveyRepo   repository.SurveyRepo
	responseRepo repository.ResponseRepo
	sessionRepo  repository.SessionRepo
	reportRepo   repository.ReportRepo
	insightCache cache.InsightCache
	lexicon      *insight.Lexicon
	broadcaster  Broadcaster
	logger       zerolog.Logger
}

func NewInsightService(
	surveyRepo repository.SurveyRepo,
	responseRepo repository.ResponseRepo,
	sessionRepo repository.SessionRepo,
	reportRepo repository.ReportRepo,
	insightCache cache.InsightCache,
	lexicon *insight.Lexicon,
	logger zerolog.Logger,
) *InsightService {
	return &InsightService{
		surveyRepo:   surveyRepo,
		responseRepo: responseRepo,
		sessionRepo:  sessionRepo,
		reportRepo:   reportRepo,
		insightCache: insightCache,
		lexicon:      lexicon,
		logger:       logger,
	}
}

// SetBroadcaster injects the ws hub (wired late to avoid an import cycle).
func (s *InsightService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

type surveyData struct {
	survey    *model.Survey
	responses []model.Response
	sessions  []model.Session
}

// fetch loads one immutable input snapshot for a pipeline run.
func (s *InsightService) fetch(ctx context.Context, surveyID string, from, to *time.Time) (*surveyData, error) {
	survey, err := s.surveyRepo.GetByID(ctx, surveyID)
	if err != nil {
		return nil, err
	}
	if survey == nil {
		return nil, ErrSurveyNotFound
	}
	responses, err := s.responseRepo.GetBySurveyID(ctx, surveyID, from, to)
	if err != nil {
		return nil, err
	}
	sessions, err := s.sessionRepo.GetBySurveyID(ctx, surveyID)
	if err != nil {
		return nil, err
	}
	return &surveyData{survey: survey, responses: responses, sessions: sessions}, nil
}

// GetThemeInsights serves theme analytics, from cache when the query is
// unfiltered, recomputing otherwise.
func (s *InsightService) GetThemeInsights(ctx context.Context, surveyID, themeID string, from, to *time.Time) ([]model.ThemeInsight, error) {
	unfiltered := themeID == "" && from == nil && to == nil
	if unfiltered {
		if cached, err := s.insightCache.GetThemes(ctx, surveyID); err == nil && cached != nil {
			return cached, nil
		}
	}

	data, err := s.fetch(ctx, surveyID, from, to)
	if err != nil {
		return nil, err
	}
	themes := insight.ExtractThemeInsights(s.lexicon, data.survey.Themes, data.responses, data.sessions, themeID)

	if unfiltered {
		if err := s.insightCache.SetThemes(ctx, surveyID, themes); err != nil {
			s.logger.Warn().Err(err).Str("surveyId", surveyID).Msg("theme insight cache write failed")
		}
	}
	return themes, nil
}

// GetSessionQuality scores a single conversation.
func (s *InsightService) GetSessionQuality(ctx context.Context, sessionID string) (*model.QualityMetrics, error) {
	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}
	responses, err := s.responseRepo.GetBySessionID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	metrics := insight.CalculateSessionQuality(*session, responses)
	return &metrics, nil
}

// QualityReport pairs aggregate metrics with their textual findings.
type QualityReport struct {
	Aggregate model.AggregateQualityMetrics `json:"aggregate"`
	Insights  []model.QualityInsight        `json:"insights"`
}

func (s *InsightService) GetQuality(ctx context.Context, surveyID string) (*QualityReport, error) {
	if cached, err := s.insightCache.GetQuality(ctx, surveyID); err == nil && cached != nil {
		return &QualityReport{Aggregate: *cached, Insights: insight.GenerateQualityInsights(*cached)}, nil
	}

	data, err := s.fetch(ctx, surveyID, nil, nil)
	if err != nil {
		return nil, err
	}
	agg := insight.CalculateAggregateQuality(data.sessions, data.responses)
	if err := s.insightCache.SetQuality(ctx, surveyID, &agg); err != nil {
		s.logger.Warn().Err(err).Str("surveyId", surveyID).Msg("quality cache write failed")
	}
	return &QualityReport{Aggregate: agg, Insights: insight.GenerateQualityInsights(agg)}, nil
}

func (s *InsightService) GetNLP(ctx context.Context, surveyID string) (*model.NLPAnalysis, error) {
	if cached, err := s.insightCache.GetNLP(ctx, surveyID); err == nil && cached != nil {
		return cached, nil
	}

	data, err := s.fetch(ctx, surveyID, nil, nil)
	if err != nil {
		return nil, err
	}
	analysis := insight.PerformNLPAnalysis(s.lexicon, data.responses, time.Now())
	if err := s.insightCache.SetNLP(ctx, surveyID, &analysis); err != nil {
		s.logger.Warn().Err(err).Str("surveyId", surveyID).Msg("nlp cache write failed")
	}
	return &analysis, nil
}

func (s *InsightService) GetCulture(ctx context.Context, surveyID string) (*model.CulturalMap, error) {
	if cached, err := s.insightCache.GetCulture(ctx, surveyID); err == nil && cached != nil {
		return cached, nil
	}

	data, err := s.fetch(ctx, surveyID, nil, nil)
	if err != nil {
		return nil, err
	}
	themes := insight.ExtractThemeInsights(s.lexicon, data.survey.Themes, data.responses, data.sessions, "")
	culture := insight.BuildCulturalMap(s.lexicon, data.responses, data.sessions, themes)
	if err := s.insightCache.SetCulture(ctx, surveyID, &culture); err != nil {
		s.logger.Warn().Err(err).Str("surveyId", surveyID).Msg("culture cache write failed")
	}
	return &culture, nil
}

// GetActions runs the actionable-intelligence stage. Theme extraction must
// run first since root causes and interventions consume its output.
func (s *InsightService) GetActions(ctx context.Context, surveyID string) (*ActionPlan, error) {
	data, err := s.fetch(ctx, surveyID, nil, nil)
	if err != nil {
		return nil, err
	}
	themes := insight.ExtractThemeInsights(s.lexicon, data.survey.Themes, data.responses, data.sessions, "")
	culture := insight.BuildCulturalMap(s.lexicon, data.responses, data.sessions, themes)

	causes := insight.AnalyzeRootCauses(themes, data.responses, data.sessions)
	interventions := insight.GenerateInterventions(s.lexicon, causes, themes, culture.Patterns)
	return &ActionPlan{
		RootCauses:    causes,
		Interventions: interventions,
		QuickWins:     insight.IdentifyQuickWins(interventions, themes),
		Predictions:   insight.PredictImpact(interventions, themes),
	}, nil
}

func (s *InsightService) GetSummary(ctx context.Context, surveyID string) (*model.NarrativeSummary, error) {
	snapshot, err := s.computeSnapshot(ctx, surveyID)
	if err != nil {
		return nil, err
	}
	return &snapshot.Summary, nil
}

// GetSnapshot returns the latest persisted analytics bundle.
func (s *InsightService) GetSnapshot(ctx context.Context, surveyID string) (*model.InsightSnapshot, error) {
	return s.reportRepo.GetLatestSnapshot(ctx, surveyID)
}

// Refresh recomputes the full analytics bundle, refreshes the cache,
// persists a snapshot and notifies connected dashboards.
func (s *InsightService) Refresh(ctx context.Context, surveyID string) (*model.InsightSnapshot, error) {
	snapshot, err := s.computeSnapshot(ctx, surveyID)
	if err != nil {
		return nil, err
	}

	if err := s.insightCache.SetThemes(ctx, surveyID, snapshot.Themes); err != nil {
		s.logger.Warn().Err(err).Str("surveyId", surveyID).Msg("theme cache refresh failed")
	}
	if err := s.insightCache.SetQuality(ctx, surveyID, &snapshot.Quality); err != nil {
		s.logger.Warn().Err(err).Str("surveyId", surveyID).Msg("quality cache refresh failed")
	}
	if err := s.insightCache.SetNLP(ctx, surveyID, &snapshot.NLP); err != nil {
		s.logger.Warn().Err(err).Str("surveyId", surveyID).Msg("nlp cache refresh failed")
	}
	if err := s.insightCache.SetCulture(ctx, surveyID, &snapshot.Culture); err != nil {
		s.logger.Warn().Err(err).Str("surveyId", surveyID).Msg("culture cache refresh failed")
	}

	if err := s.reportRepo.SaveSnapshot(ctx, snapshot); err != nil {
		return nil, err
	}
	s.logger.Info().
		Str("surveyId", surveyID).
		Int("themes", len(snapshot.Themes)).
		Int("rootCauses", len(snapshot.RootCauses)).
		Msg("insights refreshed")

	if s.broadcaster != nil {
		s.broadcaster.BroadcastToSurvey(surveyID, "insights_refreshed", map[string]interface{}{
			"surveyId":    surveyID,
			"generatedAt": snapshot.GeneratedAt,
		})
	}
	return snapshot, nil
}

// computeSnapshot runs every pipeline stage over one input snapshot. Stages
// only share the immutable inputs, so ordering is free except that the
// actionable stage consumes theme output.
func (s *InsightService) computeSnapshot(ctx context.Context, surveyID string) (*model.InsightSnapshot, error) {
	data, err := s.fetch(ctx, surveyID, nil, nil)
	if err != nil {
		return nil, err
	}
	now := time.Now()

	themes := insight.ExtractThemeInsights(s.lexicon, data.survey.Themes, data.responses, data.sessions, "")
	quality := insight.CalculateAggregateQuality(data.sessions, data.responses)
	nlp := insight.PerformNLPAnalysis(s.lexicon, data.responses, now)
	culture := insight.BuildCulturalMap(s.lexicon, data.responses, data.sessions, themes)

	causes := insight.AnalyzeRootCauses(themes, data.responses, data.sessions)
	interventions := insight.GenerateInterventions(s.lexicon, causes, themes, culture.Patterns)
	quickWins := insight.IdentifyQuickWins(interventions, themes)
	predictions := insight.PredictImpact(interventions, themes)

	return &model.InsightSnapshot{
		SurveyID:        surveyID,
		GeneratedAt:     now,
		Themes:          themes,
		Quality:         quality,
		QualityInsights: insight.GenerateQualityInsights(quality),
		NLP:             nlp,
		Culture:         culture,
		RootCauses:      causes,
		Interventions:   interventions,
		QuickWins:       quickWins,
		Predictions:     predictions,
		Summary:         insight.BuildNarrativeSummary(themes, quality, culture, causes, quickWins, now),
	}, nil
}
