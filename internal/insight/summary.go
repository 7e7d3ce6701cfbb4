package insight

import (
	"fmt"
	"time"

	"pulsecheck/internal/model"
)

// BuildNarrativeSummary composes the human-readable overview and key
// findings from the other pipeline outputs. It reads artifacts only, never
// raw responses, so it stays consistent with whatever the dashboards show.
func BuildNarrativeSummary(
	themes []model.ThemeInsight,
	quality model.AggregateQualityMetrics,
	culture model.CulturalMap,
	rootCauses []model.RootCause,
	quickWins []model.QuickWin,
	now time.Time,
) model.NarrativeSummary {
	summary := model.NarrativeSummary{GeneratedAt: now, KeyFindings: []string{}}

	if len(themes) == 0 {
		summary.Overview = "No conversation data is available for this survey yet."
		return summary
	}

	var totalResponses int
	var sentiments []float64
	for _, t := range themes {
		totalResponses += t.ResponseCount
		sentiments = append(sentiments, t.AvgSentiment)
	}
	overallSentiment := meanOr(sentiments, NeutralSentiment)

	summary.Overview = fmt.Sprintf(
		"Across %d responses in %d sessions, employees touched %d themes with an average sentiment of %.1f. Culture currently reads as %s.",
		totalResponses, quality.SessionCount, len(themes), overallSentiment, culture.EvolutionTrend)

	strongest, weakest := themes[0], themes[0]
	for _, t := range themes[1:] {
		if t.AvgSentiment > strongest.AvgSentiment {
			strongest = t
		}
		if t.AvgSentiment < weakest.AvgSentiment {
			weakest = t
		}
	}
	summary.KeyFindings = append(summary.KeyFindings,
		fmt.Sprintf("%s is the strongest theme at %.0f sentiment.", strongest.ThemeName, strongest.AvgSentiment))
	if weakest.ThemeID != strongest.ThemeID {
		summary.KeyFindings = append(summary.KeyFindings,
			fmt.Sprintf("%s needs attention at %.0f sentiment.", weakest.ThemeName, weakest.AvgSentiment))
	}

	for _, p := range culture.Patterns {
		if p.Category == model.PatternRisk {
			summary.KeyFindings = append(summary.KeyFindings,
				fmt.Sprintf("Culture risk detected: %s (%s severity, %d mentions).", p.Name, p.Severity, p.Frequency))
			break
		}
	}

	if len(rootCauses) > 0 {
		summary.KeyFindings = append(summary.KeyFindings,
			fmt.Sprintf("%d root causes identified behind low-sentiment themes.", len(rootCauses)))
	}
	if len(quickWins) > 0 {
		summary.KeyFindings = append(summary.KeyFindings,
			fmt.Sprintf("%d quick wins are available for immediate action.", len(quickWins)))
	}
	if quality.AvgConfidenceScore > 0 {
		summary.KeyFindings = append(summary.KeyFindings,
			fmt.Sprintf("Data confidence averages %.0f across %d conversations.",
				quality.AvgConfidenceScore, quality.SessionCount))
	}
	return summary
}
