package model

type ConfidenceLevel string

const (
	ConfidenceHigh   ConfidenceLevel = "high"
	ConfidenceMedium ConfidenceLevel = "medium"
	ConfidenceLow    ConfidenceLevel = "low"
)

// Quality score bands used in aggregate distributions.
const (
	QualityExcellent = "excellent" // >= 80
	QualityGood      = "good"      // 60-79
	QualityFair      = "fair"      // 40-59
	QualityPoor      = "poor"      // < 40
)

// QualityMetrics scores how much one session's data should be trusted when
// aggregated. Every derived sub-score is clamped to [0,100] before combining.
type QualityMetrics struct {
	SessionID string `json:"sessionId" bson:"sessionId"`

	TotalExchanges    int     `json:"totalExchanges" bson:"totalExchanges"`
	DurationMinutes   float64 `json:"durationMinutes" bson:"durationMinutes"`
	AvgResponseLength float64 `json:"avgResponseLength" bson:"avgResponseLength"`
	LongestResponse   int     `json:"longestResponse" bson:"longestResponse"`
	ShortestResponse  int     `json:"shortestResponse" bson:"shortestResponse"`
	ThemesExplored    int     `json:"themesExplored" bson:"themesExplored"`
	FollowUpCount     int     `json:"followUpCount" bson:"followUpCount"`

	ElaborationScore      float64 `json:"elaborationScore" bson:"elaborationScore"`
	OpennessScore         float64 `json:"opennessScore" bson:"opennessScore"`
	FollowUpEffectiveness float64 `json:"followUpEffectiveness" bson:"followUpEffectiveness"`
	ContentRichness       float64 `json:"contentRichness" bson:"contentRichness"`
	OverallQualityScore   float64 `json:"overallQualityScore" bson:"overallQualityScore"`

	ConfidenceScore float64         `json:"confidenceScore" bson:"confidenceScore"`
	ConfidenceLevel ConfidenceLevel `json:"confidenceLevel" bson:"confidenceLevel"`
}

// AggregateQualityMetrics summarizes quality across all sessions of a survey.
// With zero sessions every field is zero-valued, never NaN.
type AggregateQualityMetrics struct {
	SessionCount       int     `json:"sessionCount" bson:"sessionCount"`
	AvgQualityScore    float64 `json:"avgQualityScore" bson:"avgQualityScore"`
	AvgConfidenceScore float64 `json:"avgConfidenceScore" bson:"avgConfidenceScore"`
	AvgExchanges       float64 `json:"avgExchanges" bson:"avgExchanges"`
	AvgDurationMinutes float64 `json:"avgDurationMinutes" bson:"avgDurationMinutes"`

	QualityDistribution    map[string]int          `json:"qualityDistribution" bson:"qualityDistribution"`
	ConfidenceDistribution map[ConfidenceLevel]int `json:"confidenceDistribution" bson:"confidenceDistribution"`
}

// QualityInsight is a textual finding derived from aggregate quality via
// fixed product thresholds.
type QualityInsight struct {
	Type    string `json:"type" bson:"type"` // "concern", "strength", "observation"
	Message string `json:"message" bson:"message"`
}
