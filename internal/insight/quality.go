package insight

import (
	"fmt"
	"sort"

	"pulsecheck/internal/model"
)

// Confidence level thresholds (inclusive lower bounds).
const (
	confidenceHighMin   = 75.0
	confidenceMediumMin = 50.0
)

// CalculateSessionQuality derives the trust metrics for one session from its
// responses. Every sub-score is clamped to [0,100] before combination.
func CalculateSessionQuality(session model.Session, responses []model.Response) model.QualityMetrics {
	m := model.QualityMetrics{SessionID: session.ID}

	m.TotalExchanges = len(responses)
	m.DurationMinutes = durationMinutes(session)
	m.AvgResponseLength, m.LongestResponse, m.ShortestResponse = lengthStats(responses)
	m.ThemesExplored = distinctThemes(responses)
	for _, r := range responses {
		if r.HasFollowUp() {
			m.FollowUpCount++
		}
	}

	m.ElaborationScore = clamp(m.AvgResponseLength/200*100, 0, 100)

	sentiments := scoredSentiments(responses)
	m.OpennessScore = clamp(stdevOr(sentiments, 0)*2+m.ElaborationScore*0.5, 0, 100)

	m.FollowUpEffectiveness = followUpEffectiveness(responses)
	m.ContentRichness = contentRichness(responses)

	// Weighted quality composition: depth 20, engagement 20, elaboration 20,
	// follow-up 15, content 15, mood-tracking bonus 10, capped at 100.
	depth := clamp(float64(m.ThemesExplored)/5*20, 0, 20)
	responseRate := clamp(float64(m.TotalExchanges)*10, 0, 100)
	engagement := responseRate / 100 * 20
	quality := depth + engagement +
		m.ElaborationScore/100*20 +
		m.FollowUpEffectiveness/100*15 +
		m.ContentRichness/100*15
	if session.InitialMood != nil && session.FinalMood != nil {
		quality += 10
	}
	m.OverallQualityScore = clamp(quality, 0, 100)

	confidence := 0.4 * m.OverallQualityScore
	if session.Status == model.SessionCompleted {
		confidence += 20
	}
	if m.ThemesExplored >= 3 {
		confidence += 20
	} else {
		confidence += float64(m.ThemesExplored) * 6.67
	}
	confidence += clamp(float64(m.TotalExchanges)/10*20, 0, 20)
	m.ConfidenceScore = clamp(confidence, 0, 100)
	m.ConfidenceLevel = confidenceLevel(m.ConfidenceScore)

	return m
}

// CalculateAggregateQuality computes per-session metrics for every session
// and folds them into survey-level means and band counts. Zero sessions
// yield a zero-valued aggregate, never a division error.
func CalculateAggregateQuality(sessions []model.Session, responses []model.Response) model.AggregateQualityMetrics {
	agg := model.AggregateQualityMetrics{
		QualityDistribution: map[string]int{
			model.QualityExcellent: 0,
			model.QualityGood:      0,
			model.QualityFair:      0,
			model.QualityPoor:      0,
		},
		ConfidenceDistribution: map[model.ConfidenceLevel]int{
			model.ConfidenceHigh:   0,
			model.ConfidenceMedium: 0,
			model.ConfidenceLow:    0,
		},
	}
	if len(sessions) == 0 {
		return agg
	}

	bySession := make(map[string][]model.Response)
	for _, r := range responses {
		bySession[r.SessionID] = append(bySession[r.SessionID], r)
	}

	var qualities, confidences, exchanges, durations []float64
	for _, s := range sessions {
		m := CalculateSessionQuality(s, bySession[s.ID])
		qualities = append(qualities, m.OverallQualityScore)
		confidences = append(confidences, m.ConfidenceScore)
		exchanges = append(exchanges, float64(m.TotalExchanges))
		if s.EndedAt != nil {
			durations = append(durations, m.DurationMinutes)
		}
		agg.QualityDistribution[qualityBand(m.OverallQualityScore)]++
		agg.ConfidenceDistribution[m.ConfidenceLevel]++
	}

	agg.SessionCount = len(sessions)
	agg.AvgQualityScore = meanOr(qualities, 0)
	agg.AvgConfidenceScore = meanOr(confidences, 0)
	agg.AvgExchanges = meanOr(exchanges, 0)
	agg.AvgDurationMinutes = meanOr(durations, DefaultAvgDuration)
	return agg
}

// GenerateQualityInsights emits textual findings keyed off fixed product
// thresholds. The thresholds are contracts; do not tune them here.
func GenerateQualityInsights(agg model.AggregateQualityMetrics) []model.QualityInsight {
	insights := []model.QualityInsight{}
	if agg.SessionCount == 0 {
		return insights
	}

	total := float64(agg.SessionCount)
	lowFraction := float64(agg.ConfidenceDistribution[model.ConfidenceLow]) / total
	if lowFraction > 0.30 {
		insights = append(insights, model.QualityInsight{
			Type: "concern",
			Message: fmt.Sprintf("%.0f%% of conversations have low confidence; treat aggregate numbers with caution.",
				lowFraction*100),
		})
	}
	if agg.AvgConfidenceScore >= 75 {
		insights = append(insights, model.QualityInsight{
			Type:    "strength",
			Message: fmt.Sprintf("Average confidence is %.0f; the collected conversations are trustworthy.", agg.AvgConfidenceScore),
		})
	}
	if agg.AvgExchanges < 3 {
		insights = append(insights, model.QualityInsight{
			Type:    "concern",
			Message: fmt.Sprintf("Conversations average only %.1f exchanges; consider longer guided sessions.", agg.AvgExchanges),
		})
	}
	if float64(agg.QualityDistribution[model.QualityExcellent])/total >= 0.5 {
		insights = append(insights, model.QualityInsight{
			Type:    "strength",
			Message: "Over half of all conversations score excellent quality.",
		})
	}
	return insights
}

func confidenceLevel(score float64) model.ConfidenceLevel {
	switch {
	case score >= confidenceHighMin:
		return model.ConfidenceHigh
	case score >= confidenceMediumMin:
		return model.ConfidenceMedium
	default:
		return model.ConfidenceLow
	}
}

func qualityBand(score float64) string {
	switch {
	case score >= 80:
		return model.QualityExcellent
	case score >= 60:
		return model.QualityGood
	case score >= 40:
		return model.QualityFair
	default:
		return model.QualityPoor
	}
}

// durationMinutes is the session length in minutes, 0 when either endpoint
// is missing. Negative spans (clock skew) clamp to 0.
func durationMinutes(session model.Session) float64 {
	if session.EndedAt == nil || session.StartedAt.IsZero() {
		return 0
	}
	mins := session.EndedAt.Sub(session.StartedAt).Minutes()
	if mins < 0 {
		return 0
	}
	return mins
}

func lengthStats(responses []model.Response) (avg float64, longest, shortest int) {
	if len(responses) == 0 {
		return 0, 0, 0
	}
	var sum int
	longest = len(responses[0].Content)
	shortest = len(responses[0].Content)
	for _, r := range responses {
		n := len(r.Content)
		sum += n
		if n > longest {
			longest = n
		}
		if n < shortest {
			shortest = n
		}
	}
	return float64(sum) / float64(len(responses)), longest, shortest
}

func distinctThemes(responses []model.Response) int {
	seen := make(map[string]struct{})
	for _, r := range responses {
		if r.ThemeID != nil && *r.ThemeID != "" {
			seen[*r.ThemeID] = struct{}{}
		}
	}
	return len(seen)
}

// contentRichness is the share of meaningful responses (content at or above
// the meaningful length) as a 0-100 score.
func contentRichness(responses []model.Response) float64 {
	if len(responses) == 0 {
		return 0
	}
	var meaningful int
	for _, r := range responses {
		if len(r.Content) >= meaningfulLength {
			meaningful++
		}
	}
	return float64(meaningful) / float64(len(responses)) * 100
}

// followUpEffectiveness compares the mean length of responses given right
// after an AI follow-up against the baseline of responses that were not.
// The ratio is capped at 100. When the baseline average is 0 the fallback is
// 75 if the follow-up average exceeds 50 characters, else 50.
func followUpEffectiveness(responses []model.Response) float64 {
	ordered := make([]model.Response, len(responses))
	copy(ordered, responses)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].CreatedAt.Before(ordered[j].CreatedAt)
	})

	var followSum, baseSum, followN, baseN float64
	for i, r := range ordered {
		if i > 0 && ordered[i-1].HasFollowUp() {
			followSum += float64(len(r.Content))
			followN++
		} else {
			baseSum += float64(len(r.Content))
			baseN++
		}
	}

	followAvg := 0.0
	if followN > 0 {
		followAvg = followSum / followN
	}
	if baseN == 0 || baseSum == 0 {
		if followAvg > 50 {
			return 75
		}
		return 50
	}
	baseAvg := baseSum / baseN
	return clamp(followAvg/baseAvg*100, 0, 100)
}
