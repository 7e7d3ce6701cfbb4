package model

// TopicCluster groups responses that mention any keyword of a topic. A
// response may belong to multiple clusters.
type TopicCluster struct {
	Topic        string   `json:"topic" bson:"topic"`
	Frequency    int      `json:"frequency" bson:"frequency"`
	AvgSentiment float64  `json:"avgSentiment" bson:"avgSentiment"`
	Quotes       []string `json:"quotes" bson:"quotes"`
	Confidence   float64  `json:"confidence" bson:"confidence"` // 0-100
}

// EmotionResult is the per-response emotion classification.
type EmotionResult struct {
	ResponseID string  `json:"responseId" bson:"responseId"`
	Primary    string  `json:"primary" bson:"primary"`
	Score      float64 `json:"score" bson:"score"`         // 0-1
	Intensity  float64 `json:"intensity" bson:"intensity"` // 0-100
}

// SemanticPattern groups responses that phrase the same idea differently,
// keyed by the canonical phrase of a variant group.
type SemanticPattern struct {
	Canonical       string   `json:"canonical" bson:"canonical"`
	Frequency       int      `json:"frequency" bson:"frequency"`
	SentimentImpact float64  `json:"sentimentImpact" bson:"sentimentImpact"`
	Variants        []string `json:"variants" bson:"variants"`
}

// EmergingTopic flags a topic whose recent frequency outpaces its all-time
// baseline.
type EmergingTopic struct {
	Topic        string  `json:"topic" bson:"topic"`
	RecentCount  int     `json:"recentCount" bson:"recentCount"`
	TotalCount   int     `json:"totalCount" bson:"totalCount"`
	GrowthFactor float64 `json:"growthFactor" bson:"growthFactor"`
}

// NLPAnalysis bundles topic clustering, emotion detection, semantic patterns
// and emerging-topic detection for one survey.
type NLPAnalysis struct {
	Topics         []TopicCluster    `json:"topics" bson:"topics"`
	Emotions       []EmotionResult   `json:"emotions" bson:"emotions"`
	Patterns       []SemanticPattern `json:"patterns" bson:"patterns"`
	EmergingTopics []EmergingTopic   `json:"emergingTopics" bson:"emergingTopics"`
	QualityScore   float64           `json:"qualityScore" bson:"qualityScore"`
}
