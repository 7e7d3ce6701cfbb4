package insight

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pulsecheck/internal/model"
)

func completedSession(id string, minutes int) model.Session {
	ended := testBase.Add(time.Duration(minutes) * time.Minute)
	return model.Session{
		ID:          id,
		SurveyID:    "survey-1",
		InitialMood: fptr(40),
		FinalMood:   fptr(60),
		StartedAt:   testBase,
		EndedAt:     &ended,
		Status:      model.SessionCompleted,
	}
}

func TestCalculateSessionQuality(t *testing.T) {
	session := completedSession("sess-1", 18)
	content := strings.Repeat("a", 100)
	var responses []model.Response
	for i := 0; i < 5; i++ {
		responses = append(responses, themed(fmt.Sprintf("r%d", i), fmt.Sprintf("t%d", i), content, fptr(50), i))
	}

	m := CalculateSessionQuality(session, responses)

	assert.Equal(t, "sess-1", m.SessionID)
	assert.Equal(t, 5, m.TotalExchanges)
	assert.InDelta(t, 18.0, m.DurationMinutes, 1e-9)
	assert.InDelta(t, 100.0, m.AvgResponseLength, 1e-9)
	assert.Equal(t, 5, m.ThemesExplored)
	assert.Equal(t, 0, m.FollowUpCount)
	assert.InDelta(t, 50.0, m.ElaborationScore, 1e-9)

	// depth 20 + engagement 10 + elaboration 10 + follow-up 0 + content 15
	// + mood bonus 10
	assert.InDelta(t, 65.0, m.OverallQualityScore, 1e-9)

	// 0.4*65 + completed 20 + themes 20 + exchanges 10
	assert.InDelta(t, 76.0, m.ConfidenceScore, 1e-9)
	assert.Equal(t, model.ConfidenceHigh, m.ConfidenceLevel)
}

func TestCalculateSessionQualityEmptySession(t *testing.T) {
	session := model.Session{ID: "sess-empty", StartedAt: testBase, Status: model.SessionActive}
	m := CalculateSessionQuality(session, nil)

	assert.Equal(t, 0, m.TotalExchanges)
	assert.Equal(t, 0.0, m.OverallQualityScore)
	assert.Equal(t, model.ConfidenceLow, m.ConfidenceLevel)
}

func TestConfidenceLevelBoundaries(t *testing.T) {
	assert.Equal(t, model.ConfidenceHigh, confidenceLevel(75))
	assert.Equal(t, model.ConfidenceMedium, confidenceLevel(74.999))
	assert.Equal(t, model.ConfidenceMedium, confidenceLevel(50))
	assert.Equal(t, model.ConfidenceLow, confidenceLevel(49.999))
}

func TestQualityBandBoundaries(t *testing.T) {
	assert.Equal(t, model.QualityExcellent, qualityBand(80))
	assert.Equal(t, model.QualityGood, qualityBand(79.999))
	assert.Equal(t, model.QualityGood, qualityBand(60))
	assert.Equal(t, model.QualityFair, qualityBand(59.999))
	assert.Equal(t, model.QualityFair, qualityBand(40))
	assert.Equal(t, model.QualityPoor, qualityBand(39.999))
}

func TestCalculateAggregateQualityZeroSessions(t *testing.T) {
	agg := CalculateAggregateQuality(nil, nil)

	assert.Equal(t, 0, agg.SessionCount)
	assert.Equal(t, 0.0, agg.AvgQualityScore)
	assert.Equal(t, 0.0, agg.AvgConfidenceScore)
	assert.Equal(t, 0.0, agg.AvgDurationMinutes)
	require.NotNil(t, agg.QualityDistribution)
	require.NotNil(t, agg.ConfidenceDistribution)
	assert.Equal(t, 0, agg.QualityDistribution[model.QualityExcellent])
	assert.Equal(t, 0, agg.ConfidenceDistribution[model.ConfidenceLow])
}

func TestCalculateAggregateQualityDurationFallback(t *testing.T) {
	// sessions exist but none has an end timestamp
	sessions := []model.Session{
		{ID: "s1", StartedAt: testBase, Status: model.SessionActive},
		{ID: "s2", StartedAt: testBase, Status: model.SessionAbandoned},
	}
	agg := CalculateAggregateQuality(sessions, nil)
	assert.Equal(t, 2, agg.SessionCount)
	assert.InDelta(t, DefaultAvgDuration, agg.AvgDurationMinutes, 1e-9)
}

func TestCalculateAggregateQualityDistributions(t *testing.T) {
	s1 := completedSession("s1", 20)
	s2 := model.Session{ID: "s2", StartedAt: testBase, Status: model.SessionActive}

	content := strings.Repeat("b", 120)
	var responses []model.Response
	for i := 0; i < 4; i++ {
		r := themed(fmt.Sprintf("r%d", i), fmt.Sprintf("t%d", i), content, fptr(55), i)
		r.SessionID = "s1"
		responses = append(responses, r)
	}

	agg := CalculateAggregateQuality([]model.Session{s1, s2}, responses)
	assert.Equal(t, 2, agg.SessionCount)
	assert.InDelta(t, 2.0, agg.AvgExchanges, 1e-9)

	var bandTotal int
	for _, n := range agg.QualityDistribution {
		bandTotal += n
	}
	assert.Equal(t, 2, bandTotal)
}

func TestDurationMinutes(t *testing.T) {
	assert.Equal(t, 0.0, durationMinutes(model.Session{StartedAt: testBase}))

	skewed := testBase.Add(-10 * time.Minute)
	assert.Equal(t, 0.0, durationMinutes(model.Session{StartedAt: testBase, EndedAt: &skewed}))
}

func TestFollowUpEffectiveness(t *testing.T) {
	t.Run("longer answers after follow-ups score high", func(t *testing.T) {
		r1 := themed("r1", "t1", strings.Repeat("a", 50), fptr(50), 0)
		r1.AIFollowUp = sptr("Can you say more about that?")
		r2 := themed("r2", "t1", strings.Repeat("b", 100), fptr(50), 1)

		got := followUpEffectiveness([]model.Response{r1, r2})
		assert.InDelta(t, 100.0, got, 1e-9)
	})

	t.Run("shorter answers after follow-ups score low", func(t *testing.T) {
		r1 := themed("r1", "t1", strings.Repeat("a", 100), fptr(50), 0)
		r1.AIFollowUp = sptr("Anything else?")
		r2 := themed("r2", "t1", strings.Repeat("b", 25), fptr(50), 1)

		got := followUpEffectiveness([]model.Response{r1, r2})
		assert.InDelta(t, 25.0, got, 1e-9)
	})

	t.Run("empty baseline falls back on follow-up length", func(t *testing.T) {
		r1 := themed("r1", "t1", "", fptr(50), 0)
		r1.AIFollowUp = sptr("Could you elaborate?")
		long := themed("r2", "t1", strings.Repeat("c", 60), fptr(50), 1)
		short := themed("r3", "t1", strings.Repeat("c", 30), fptr(50), 1)

		assert.Equal(t, 75.0, followUpEffectiveness([]model.Response{r1, long}))
		assert.Equal(t, 50.0, followUpEffectiveness([]model.Response{r1, short}))
	})
}

func TestGenerateQualityInsights(t *testing.T) {
	t.Run("no sessions no insights", func(t *testing.T) {
		assert.Empty(t, GenerateQualityInsights(model.AggregateQualityMetrics{}))
	})

	t.Run("low confidence share raises concern", func(t *testing.T) {
		agg := model.AggregateQualityMetrics{
			SessionCount: 10,
			AvgExchanges: 5,
			ConfidenceDistribution: map[model.ConfidenceLevel]int{
				model.ConfidenceLow: 4,
			},
			QualityDistribution: map[string]int{},
		}
		insights := GenerateQualityInsights(agg)
		require.NotEmpty(t, insights)
		assert.Equal(t, "concern", insights[0].Type)
	})

	t.Run("high average confidence is a strength", func(t *testing.T) {
		agg := model.AggregateQualityMetrics{
			SessionCount:           4,
			AvgConfidenceScore:     80,
			AvgExchanges:           6,
			ConfidenceDistribution: map[model.ConfidenceLevel]int{},
			QualityDistribution:    map[string]int{},
		}
		insights := GenerateQualityInsights(agg)
		require.Len(t, insights, 1)
		assert.Equal(t, "strength", insights[0].Type)
	})

	t.Run("short conversations raise concern", func(t *testing.T) {
		agg := model.AggregateQualityMetrics{
			SessionCount:           4,
			AvgExchanges:           1.5,
			ConfidenceDistribution: map[model.ConfidenceLevel]int{},
			QualityDistribution:    map[string]int{},
		}
		insights := GenerateQualityInsights(agg)
		require.Len(t, insights, 1)
		assert.Equal(t, "concern", insights[0].Type)
	})

	t.Run("excellent majority is a strength", func(t *testing.T) {
		agg := model.AggregateQualityMetrics{
			SessionCount:           4,
			AvgExchanges:           6,
			ConfidenceDistribution: map[model.ConfidenceLevel]int{},
			QualityDistribution:    map[string]int{model.QualityExcellent: 2},
		}
		insights := GenerateQualityInsights(agg)
		require.Len(t, insights, 1)
		assert.Equal(t, "strength", insights[0].Type)
	})
}
