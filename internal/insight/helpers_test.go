package insight

import (
	"fmt"
	"time"

	"pulsecheck/internal/model"
)

func fptr(v float64) *float64 { return &v }

func sptr(v string) *string { return &v }

var testBase = time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

// themed builds a response assigned to a theme, n minutes after the base time.
func themed(id, themeID, content string, score *float64, n int) model.Response {
	r := model.Response{
		ID:             id,
		SessionID:      "sess-1",
		SurveyID:       "survey-1",
		Content:        content,
		SentimentScore: score,
		CreatedAt:      testBase.Add(time.Duration(n) * time.Minute),
	}
	if themeID != "" {
		r.ThemeID = &themeID
	}
	return r
}

// batch builds n responses on the same theme sharing one content string, with
// sentiment scores taken from scores (cycled).
func batch(themeID, content string, scores []float64, n int) []model.Response {
	out := make([]model.Response, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, themed(fmt.Sprintf("%s-r%d", themeID, i), themeID, content, fptr(scores[i%len(scores)]), i))
	}
	return out
}
