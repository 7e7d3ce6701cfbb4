package model

import "time"

type SentimentLabel string

const (
	SentimentPositive SentimentLabel = "positive"
	SentimentNeutral  SentimentLabel = "neutral"
	SentimentNegative SentimentLabel = "negative"
)

// Response is a single free-text exchange inside a conversation session.
// SentimentScore is the raw persisted value and may be on a 0-1 or a 0-100
// scale depending on origin (live vs demo-generated data); never do arithmetic
// on it directly, normalize first.
type Response struct {
	ID             string          `json:"id" bson:"_id,omitempty"`
	SessionID      string          `json:"sessionId" bson:"sessionId"`
	SurveyID       string          `json:"surveyId" bson:"surveyId"`
	Content        string          `json:"content" bson:"content"`
	AIFollowUp     *string         `json:"aiFollowUp,omitempty" bson:"aiFollowUp,omitempty"`
	SentimentLabel *SentimentLabel `json:"sentimentLabel,omitempty" bson:"sentimentLabel,omitempty"`
	SentimentScore *float64        `json:"sentimentScore,omitempty" bson:"sentimentScore,omitempty"`
	ThemeID        *string         `json:"themeId,omitempty" bson:"themeId,omitempty"`
	CreatedAt      time.Time       `json:"createdAt" bson:"createdAt"`
}

// HasFollowUp reports whether the AI asked a follow-up after this response.
func (r *Response) HasFollowUp() bool {
	return r.AIFollowUp != nil && *r.AIFollowUp != ""
}
