package insight

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"pulsecheck/internal/model"
)

// Themes at or above this sentiment are healthy enough to skip root-cause
// analysis entirely.
const rootCauseSentimentCutoff = 60.0

// AnalyzeRootCauses derives evidenced causes from struggling themes: one per
// negative sentiment driver plus one per sub-theme scoring below neutral.
// Responses and sessions are accepted for parity with the other pipeline
// entry points; the evidence itself already lives on the theme insights.
func AnalyzeRootCauses(themes []model.ThemeInsight, responses []model.Response, sessions []model.Session) []model.RootCause {
	causes := []model.RootCause{}
	for _, theme := range themes {
		if theme.AvgSentiment >= rootCauseSentimentCutoff {
			continue
		}

		for _, driver := range theme.SentimentDrivers {
			if driver.SentimentImpact >= 0 {
				continue
			}
			impact := clamp(-driver.SentimentImpact*20+float64(driver.Frequency)*5, 0, 100)
			causes = append(causes, model.RootCause{
				ID:        uuid.NewString(),
				ThemeID:   theme.ThemeID,
				ThemeName: theme.ThemeName,
				Description: fmt.Sprintf("Recurring mentions of %q are pulling %s sentiment below neutral",
					driver.Phrase, theme.ThemeName),
				Evidence:      driver.Context,
				ImpactScore:   impact,
				AffectedCount: driver.Frequency,
				Source:        "driver",
			})
		}

		for _, sub := range theme.SubThemes {
			if sub.AvgSentiment >= NeutralSentiment {
				continue
			}
			causes = append(causes, model.RootCause{
				ID:        uuid.NewString(),
				ThemeID:   theme.ThemeID,
				ThemeName: theme.ThemeName,
				Description: fmt.Sprintf("Sub-theme %q scores %.0f, well below neutral",
					sub.Name, sub.AvgSentiment),
				Evidence:      sub.RepresentativeQuotes,
				ImpactScore:   clamp((NeutralSentiment-sub.AvgSentiment)*2, 0, 100),
				AffectedCount: sub.Frequency,
				Source:        "sub-theme",
			})
		}
	}
	return causes
}

// GenerateInterventions expands root causes into recommended actions via the
// lexicon rule table, keyed on theme-name substring matches. Every template
// field (impact, effort, timeline, quick-win) is a product constant copied
// from the rule; only priority is derived, from theme sentiment and reach.
// High and critical culture risks additionally contribute a risk-mitigation
// action.
func GenerateInterventions(lex *Lexicon, rootCauses []model.RootCause, themes []model.ThemeInsight, patterns []model.CulturalPattern) []model.InterventionRecommendation {
	themeByID := make(map[string]model.ThemeInsight, len(themes))
	for _, t := range themes {
		themeByID[t.ThemeID] = t
	}

	// One intervention set per theme with at least one root cause,
	// in theme order.
	seen := make(map[string]bool)
	out := []model.InterventionRecommendation{}
	for _, theme := range themes {
		if seen[theme.ThemeID] {
			continue
		}
		hasCause := false
		for _, rc := range rootCauses {
			if rc.ThemeID == theme.ThemeID {
				hasCause = true
				break
			}
		}
		if !hasCause {
			continue
		}
		seen[theme.ThemeID] = true

		priority := interventionPriority(theme.AvgSentiment, theme.ResponseCount)
		for _, tpl := range lex.TemplatesFor(theme.ThemeName) {
			out = append(out, model.InterventionRecommendation{
				ID:              uuid.NewString(),
				ThemeID:         theme.ThemeID,
				ThemeName:       theme.ThemeName,
				Title:           tpl.Title,
				Description:     tpl.Description,
				EstimatedImpact: tpl.EstimatedImpact,
				EffortLevel:     tpl.Effort,
				Timeline:        tpl.Timeline,
				QuickWin:        tpl.QuickWin,
				Priority:        priority,
			})
		}
	}

	for _, p := range patterns {
		if p.Category != model.PatternRisk {
			continue
		}
		if p.Severity != model.RiskHigh && p.Severity != model.RiskCritical {
			continue
		}
		tpl := lex.RiskMitigation
		out = append(out, model.InterventionRecommendation{
			ID:              uuid.NewString(),
			Title:           fmt.Sprintf("%s: %s", tpl.Title, p.Name),
			Description:     tpl.Description,
			EstimatedImpact: tpl.EstimatedImpact,
			EffortLevel:     tpl.Effort,
			Timeline:        tpl.Timeline,
			QuickWin:        tpl.QuickWin,
			Priority:        model.PriorityHigh,
		})
	}
	return out
}

// interventionPriority applies fixed sentiment/reach thresholds.
func interventionPriority(sentiment float64, affected int) model.Priority {
	switch {
	case sentiment < 40 && affected > 10:
		return model.PriorityCritical
	case sentiment < 50 && affected > 5:
		return model.PriorityHigh
	case sentiment < 60:
		return model.PriorityMedium
	default:
		return model.PriorityLow
	}
}

// IdentifyQuickWins keeps interventions flagged quick-win with low effort,
// plus the fixed meeting rule: any theme driver mentioning "meeting" with at
// least 3 occurrences and an impact below -10 earns Meeting-Free Fridays.
// No other provenance is possible.
func IdentifyQuickWins(interventions []model.InterventionRecommendation, themes []model.ThemeInsight) []model.QuickWin {
	wins := []model.QuickWin{}
	for _, iv := range interventions {
		if !iv.QuickWin || iv.EffortLevel != model.EffortLow {
			continue
		}
		wins = append(wins, model.QuickWin{
			ID:              uuid.NewString(),
			Title:           iv.Title,
			Description:     iv.Description,
			EstimatedImpact: iv.EstimatedImpact,
			Timeline:        iv.Timeline,
			Source:          "intervention",
		})
	}

	for _, theme := range themes {
		for _, driver := range theme.SentimentDrivers {
			if driver.Frequency < 3 || driver.SentimentImpact >= -10 {
				continue
			}
			if !strings.Contains(strings.ToLower(driver.Phrase), "meeting") {
				continue
			}
			wins = append(wins, model.QuickWin{
				ID:              uuid.NewString(),
				Title:           "Meeting-Free Fridays",
				Description:     "Block Fridays from recurring meetings to give back uninterrupted time.",
				EstimatedImpact: 8,
				Timeline:        "1 week",
				Source:          "sentiment-driver",
			})
			return wins
		}
	}
	return wins
}

// PredictImpact sums the estimated impact of each theme's interventions and
// caps the predicted sentiment at 100. Impacts add with no diminishing
// returns; the cap is the only guard.
func PredictImpact(interventions []model.InterventionRecommendation, themes []model.ThemeInsight) []model.ImpactPrediction {
	byTheme := make(map[string][]model.InterventionRecommendation)
	for _, iv := range interventions {
		if iv.ThemeID == "" {
			continue
		}
		byTheme[iv.ThemeID] = append(byTheme[iv.ThemeID], iv)
	}

	predictions := []model.ImpactPrediction{}
	for _, theme := range themes {
		ivs := byTheme[theme.ThemeID]
		if len(ivs) == 0 {
			continue
		}
		var sum float64
		for _, iv := range ivs {
			sum += iv.EstimatedImpact
		}
		predictions = append(predictions, model.ImpactPrediction{
			ThemeID:            theme.ThemeID,
			ThemeName:          theme.ThemeName,
			CurrentSentiment:   theme.AvgSentiment,
			PredictedSentiment: clamp(theme.AvgSentiment+sum, 0, 100),
			Confidence:         clamp(50+(100-theme.AvgSentiment)*0.5+float64(len(ivs))*10, 0, 100),
			InterventionCount:  len(ivs),
		})
	}
	return predictions
}
