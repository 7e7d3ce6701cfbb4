package model

import "time"

// NarrativeSummary is the human-readable overview composed from all derived
// artifacts.
type NarrativeSummary struct {
	Overview    string    `json:"overview" bson:"overview"`
	KeyFindings []string  `json:"keyFindings" bson:"keyFindings"`
	GeneratedAt time.Time `json:"generatedAt" bson:"generatedAt"`
}

// InsightSnapshot is the persisted analytics bundle for a survey at a point
// in time. Derived artifacts have no identity of their own; a new snapshot
// replaces the previous one wholesale.
type InsightSnapshot struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	SurveyID    string    `json:"surveyId" bson:"surveyId"`
	GeneratedAt time.Time `json:"generatedAt" bson:"generatedAt"`

	Themes          []ThemeInsight               `json:"themes" bson:"themes"`
	Quality         AggregateQualityMetrics      `json:"quality" bson:"quality"`
	QualityInsights []QualityInsight             `json:"qualityInsights" bson:"qualityInsights"`
	NLP             NLPAnalysis                  `json:"nlp" bson:"nlp"`
	Culture         CulturalMap                  `json:"culture" bson:"culture"`
	RootCauses      []RootCause                  `json:"rootCauses" bson:"rootCauses"`
	Interventions   []InterventionRecommendation `json:"interventions" bson:"interventions"`
	QuickWins       []QuickWin                   `json:"quickWins" bson:"quickWins"`
	Predictions     []ImpactPrediction           `json:"predictions" bson:"predictions"`
	Summary         NarrativeSummary             `json:"summary" bson:"summary"`
}
