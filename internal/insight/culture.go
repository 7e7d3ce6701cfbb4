package insight

import (
	"sort"

	"pulsecheck/internal/model"
)

// Emission bars per pattern category. Risks need more evidence because risk
// claims are more consequential.
const (
	strengthMinMatches = 1
	weaknessMinMatches = 1
	riskMinMatches     = 3
)

// Risk severity thresholds on match frequency.
const (
	riskCriticalMatches = 10
	riskHighMatches     = 5
	riskMediumMatches   = 3
)

// BuildCulturalMap mines workplace-culture strengths, weaknesses and risks
// from responses, builds per-group profiles from session groups, and scores
// the overall culture. themes supplies the average theme sentiment component
// of the overall score.
func BuildCulturalMap(lex *Lexicon, responses []model.Response, sessions []model.Session, themes []model.ThemeInsight) model.CulturalMap {
	cm := model.CulturalMap{
		Patterns: detectPatterns(lex, responses),
		Groups:   groupProfiles(lex, responses, sessions),
	}

	var themeSentiments []float64
	for _, t := range themes {
		themeSentiments = append(themeSentiments, t.AvgSentiment)
	}
	avgThemeSentiment := meanOr(themeSentiments, NeutralSentiment)

	var strengths, risks int
	for _, p := range cm.Patterns {
		switch p.Category {
		case model.PatternStrength:
			strengths++
		case model.PatternRisk:
			risks++
		}
	}

	// Composite: half from average theme sentiment, up to 50 from strengths,
	// minus 10 per detected risk, on a base offset of 25.
	strengthBonus := float64(strengths) * 5
	if strengthBonus > 50 {
		strengthBonus = 50
	}
	cm.OverallCultureScore = clamp(
		avgThemeSentiment/100*50+strengthBonus-float64(risks)*10+25, 0, 100)

	switch {
	case avgThemeSentiment >= 70:
		cm.EvolutionTrend = "improving"
	case avgThemeSentiment <= 40:
		cm.EvolutionTrend = "declining"
	default:
		cm.EvolutionTrend = "stable"
	}
	return cm
}

// detectPatterns runs the three keyword-table categories over a response
// set. Output is sorted by category priority (risk > weakness > strength),
// then frequency descending; ties keep table order.
func detectPatterns(lex *Lexicon, responses []model.Response) []model.CulturalPattern {
	patterns := []model.CulturalPattern{}

	for _, set := range lex.CultureStrengths {
		if p, ok := matchPattern(set, responses, model.PatternStrength, strengthMinMatches); ok {
			patterns = append(patterns, p)
		}
	}
	for _, set := range lex.CultureWeaknesses {
		if p, ok := matchPattern(set, responses, model.PatternWeakness, weaknessMinMatches); ok {
			patterns = append(patterns, p)
		}
	}
	for _, set := range lex.CultureRisks {
		if p, ok := matchPattern(set, responses, model.PatternRisk, riskMinMatches); ok {
			patterns = append(patterns, p)
		}
	}

	priority := map[model.PatternCategory]int{
		model.PatternRisk:     0,
		model.PatternWeakness: 1,
		model.PatternStrength: 2,
	}
	sort.SliceStable(patterns, func(i, j int) bool {
		if priority[patterns[i].Category] != priority[patterns[j].Category] {
			return priority[patterns[i].Category] < priority[patterns[j].Category]
		}
		return patterns[i].Frequency > patterns[j].Frequency
	})
	return patterns
}

func matchPattern(set KeywordSet, responses []model.Response, category model.PatternCategory, minMatches int) (model.CulturalPattern, bool) {
	var matched []model.Response
	for _, r := range responses {
		if containsAny(r.Content, set.Keywords) {
			matched = append(matched, r)
		}
	}
	freq := len(matched)
	if freq < minMatches {
		return model.CulturalPattern{}, false
	}

	p := model.CulturalPattern{
		Category:        category,
		Name:            DisplayName(set.Key),
		Frequency:       freq,
		SentimentImpact: avgSentiment(matched) - NeutralSentiment,
	}
	if category == model.PatternRisk {
		p.Confidence = clamp(float64(freq)*15+40, 0, 100)
		p.Severity = riskSeverity(freq)
	} else {
		p.Confidence = clamp(float64(freq)*10+30, 0, 100)
	}
	return p, true
}

// riskSeverity is non-decreasing in match frequency.
func riskSeverity(matches int) model.RiskSeverity {
	switch {
	case matches >= riskCriticalMatches:
		return model.RiskCritical
	case matches >= riskHighMatches:
		return model.RiskHigh
	case matches >= riskMediumMatches:
		return model.RiskMedium
	default:
		return model.RiskLow
	}
}

// groupProfiles builds per-group culture views keyed by session group,
// folding sessions without a group into "Unknown". Groups are sorted by
// response count descending, then name.
func groupProfiles(lex *Lexicon, responses []model.Response, sessions []model.Session) []model.GroupCultureProfile {
	groupBySession := make(map[string]string, len(sessions))
	for i := range sessions {
		groupBySession[sessions[i].ID] = sessions[i].GroupName()
	}

	byGroup := make(map[string][]model.Response)
	for _, r := range responses {
		group, ok := groupBySession[r.SessionID]
		if !ok {
			group = "Unknown"
		}
		byGroup[group] = append(byGroup[group], r)
	}

	profiles := make([]model.GroupCultureProfile, 0, len(byGroup))
	for group, rs := range byGroup {
		profiles = append(profiles, model.GroupCultureProfile{
			Group:         group,
			ResponseCount: len(rs),
			AvgSentiment:  avgSentiment(rs),
			Patterns:      detectPatterns(lex, rs),
		})
	}
	sort.Slice(profiles, func(i, j int) bool {
		if profiles[i].ResponseCount != profiles[j].ResponseCount {
			return profiles[i].ResponseCount > profiles[j].ResponseCount
		}
		return profiles[i].Group < profiles[j].Group
	})
	return profiles
}
