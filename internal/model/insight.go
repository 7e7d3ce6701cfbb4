package model

// Quote is a representative response excerpt attached to a theme.
type Quote struct {
	ResponseID string  `json:"responseId" bson:"responseId"`
	Text       string  `json:"text" bson:"text"`
	Sentiment  float64 `json:"sentiment" bson:"sentiment"` // normalized 0-100
}

// SubTheme is a finer-grained keyword-matched grouping inside a theme. A
// response may belong to several sub-themes at once.
type SubTheme struct {
	Name                 string   `json:"name" bson:"name"`
	Frequency            int      `json:"frequency" bson:"frequency"`
	AvgSentiment         float64  `json:"avgSentiment" bson:"avgSentiment"`
	RepresentativeQuotes []string `json:"representativeQuotes" bson:"representativeQuotes"`
}

// SentimentDriver is a phrase whose presence correlates with sentiment
// deviation from neutral. SentimentImpact is signed: mean sentiment of
// matching responses minus 50.
type SentimentDriver struct {
	Phrase          string   `json:"phrase" bson:"phrase"`
	Frequency       int      `json:"frequency" bson:"frequency"`
	SentimentImpact float64  `json:"sentimentImpact" bson:"sentimentImpact"`
	Context         []string `json:"context" bson:"context"`
}

// ThemeInsight is the per-theme analytics artifact, recomputed wholesale on
// every pipeline run. Themes with zero matching responses are omitted from
// output rather than emitted with default values.
type ThemeInsight struct {
	ThemeID               string            `json:"themeId" bson:"themeId"`
	ThemeName             string            `json:"themeName" bson:"themeName"`
	ResponseCount         int               `json:"responseCount" bson:"responseCount"`
	AvgSentiment          float64           `json:"avgSentiment" bson:"avgSentiment"` // normalized 0-100
	Quotes                []Quote           `json:"quotes" bson:"quotes"`
	SubThemes             []SubTheme        `json:"subThemes" bson:"subThemes"`
	SentimentDrivers      []SentimentDriver `json:"sentimentDrivers" bson:"sentimentDrivers"`
	FollowUpEffectiveness float64           `json:"followUpEffectiveness" bson:"followUpEffectiveness"` // 0-1
}
