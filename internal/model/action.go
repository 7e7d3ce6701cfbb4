package model

type EffortLevel string

const (
	EffortLow    EffortLevel = "low"
	EffortMedium EffortLevel = "medium"
	EffortHigh   EffortLevel = "high"
)

type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// RootCause is a specific, evidenced reason behind a theme's low sentiment.
// Derived purely from theme insights; regenerated wholesale on each run.
type RootCause struct {
	ID            string   `json:"id" bson:"id"`
	ThemeID       string   `json:"themeId" bson:"themeId"`
	ThemeName     string   `json:"themeName" bson:"themeName"`
	Description   string   `json:"description" bson:"description"`
	Evidence      []string `json:"evidence" bson:"evidence"`
	ImpactScore   float64  `json:"impactScore" bson:"impactScore"` // 0-100
	AffectedCount int      `json:"affectedCount" bson:"affectedCount"`
	Source        string   `json:"source" bson:"source"` // "driver" or "sub-theme"
}

// InterventionRecommendation is a recommended action addressing a theme's
// root causes. Impact/effort/timeline/quick-win come from the rule template,
// not from computation; priority is derived from theme sentiment and reach.
type InterventionRecommendation struct {
	ID              string      `json:"id" bson:"id"`
	ThemeID         string      `json:"themeId" bson:"themeId"`
	ThemeName       string      `json:"themeName" bson:"themeName"`
	Title           string      `json:"title" bson:"title"`
	Description     string      `json:"description" bson:"description"`
	EstimatedImpact float64     `json:"estimatedImpact" bson:"estimatedImpact"` // sentiment points
	EffortLevel     EffortLevel `json:"effortLevel" bson:"effortLevel"`
	Timeline        string      `json:"timeline" bson:"timeline"`
	QuickWin        bool        `json:"quickWin" bson:"quickWin"`
	Priority        Priority    `json:"priority" bson:"priority"`
}

// QuickWin is a low-effort intervention worth doing immediately.
type QuickWin struct {
	ID              string  `json:"id" bson:"id"`
	Title           string  `json:"title" bson:"title"`
	Description     string  `json:"description" bson:"description"`
	EstimatedImpact float64 `json:"estimatedImpact" bson:"estimatedImpact"`
	Timeline        string  `json:"timeline" bson:"timeline"`
	Source          string  `json:"source" bson:"source"` // "intervention" or "sentiment-driver"
}

// ImpactPrediction estimates where a theme's sentiment lands if all its
// interventions are applied. Impacts add up and are capped at 100.
type ImpactPrediction struct {
	ThemeID            string  `json:"themeId" bson:"themeId"`
	ThemeName          string  `json:"themeName" bson:"themeName"`
	CurrentSentiment   float64 `json:"currentSentiment" bson:"currentSentiment"`
	PredictedSentiment float64 `json:"predictedSentiment" bson:"predictedSentiment"`
	Confidence         float64 `json:"confidence" bson:"confidence"`
	InterventionCount  int     `json:"interventionCount" bson:"interventionCount"`
}
