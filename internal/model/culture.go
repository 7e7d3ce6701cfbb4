package model

type PatternCategory string

const (
	PatternStrength PatternCategory = "strength"
	PatternWeakness PatternCategory = "weakness"
	PatternRisk     PatternCategory = "risk"
)

type RiskSeverity string

const (
	RiskLow      RiskSeverity = "low"
	RiskMedium   RiskSeverity = "medium"
	RiskHigh     RiskSeverity = "high"
	RiskCritical RiskSeverity = "critical"
)

// CulturalPattern is a workplace-culture signal detected via keyword presence
// across responses. Severity is only set for risk patterns.
type CulturalPattern struct {
	Category        PatternCategory `json:"category" bson:"category"`
	Name            string          `json:"name" bson:"name"`
	Frequency       int             `json:"frequency" bson:"frequency"`
	SentimentImpact float64         `json:"sentimentImpact" bson:"sentimentImpact"`
	Confidence      float64         `json:"confidence" bson:"confidence"` // 0-100
	Severity        RiskSeverity    `json:"severity,omitempty" bson:"severity,omitempty"`
}

// GroupCultureProfile is the per-group (e.g. department) culture view.
type GroupCultureProfile struct {
	Group         string            `json:"group" bson:"group"`
	ResponseCount int               `json:"responseCount" bson:"responseCount"`
	AvgSentiment  float64           `json:"avgSentiment" bson:"avgSentiment"`
	Patterns      []CulturalPattern `json:"patterns" bson:"patterns"`
}

// CulturalMap is the organization-wide culture artifact: all detected
// patterns (risks first, then weaknesses, then strengths), per-group
// profiles, a composite 0-100 culture score and a coarse trend.
type CulturalMap struct {
	Patterns            []CulturalPattern     `json:"patterns" bson:"patterns"`
	Groups              []GroupCultureProfile `json:"groups" bson:"groups"`
	OverallCultureScore float64               `json:"overallCultureScore" bson:"overallCultureScore"`
	EvolutionTrend      string                `json:"evolutionTrend" bson:"evolutionTrend"` // "improving", "stable", "declining"
}
