package insight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pulsecheck/internal/model"
)

func strugglingTheme() model.ThemeInsight {
	return model.ThemeInsight{
		ThemeID:       "t-wlb",
		ThemeName:     "Work-Life Balance",
		ResponseCount: 12,
		AvgSentiment:  35,
		SentimentDrivers: []model.SentimentDriver{
			{Phrase: "burned out", Frequency: 4, SentimentImpact: -30, Context: []string{"completely burned out again"}},
			{Phrase: "good balance", Frequency: 2, SentimentImpact: 15},
		},
		SubThemes: []model.SubTheme{
			{Name: "Overtime", Frequency: 5, AvgSentiment: 30, RepresentativeQuotes: []string{"overtime every week"}},
			{Name: "Flexibility", Frequency: 3, AvgSentiment: 80},
		},
	}
}

func TestAnalyzeRootCausesSkipsHealthyThemes(t *testing.T) {
	healthy := model.ThemeInsight{
		ThemeID: "t-ok", ThemeName: "Team Collaboration", AvgSentiment: 60,
		SentimentDrivers: []model.SentimentDriver{{Phrase: "toxic", Frequency: 3, SentimentImpact: -40}},
	}
	assert.Empty(t, AnalyzeRootCauses([]model.ThemeInsight{healthy}, nil, nil))
}

func TestAnalyzeRootCausesFromDriversAndSubThemes(t *testing.T) {
	causes := AnalyzeRootCauses([]model.ThemeInsight{strugglingTheme()}, nil, nil)
	require.Len(t, causes, 2)

	driverCause := causes[0]
	assert.Equal(t, "driver", driverCause.Source)
	assert.Equal(t, "t-wlb", driverCause.ThemeID)
	assert.Equal(t, 4, driverCause.AffectedCount)
	// 30*20 + 4*5 capped at 100
	assert.InDelta(t, 100.0, driverCause.ImpactScore, 1e-9)
	assert.NotEmpty(t, driverCause.ID)
	assert.NotEmpty(t, driverCause.Evidence)

	subCause := causes[1]
	assert.Equal(t, "sub-theme", subCause.Source)
	assert.Equal(t, 5, subCause.AffectedCount)
	// (50-30)*2
	assert.InDelta(t, 40.0, subCause.ImpactScore, 1e-9)
}

func TestAnalyzeRootCausesGuaranteedForLowThemes(t *testing.T) {
	// a theme below the cutoff with any negative driver always yields a cause
	causes := AnalyzeRootCauses([]model.ThemeInsight{strugglingTheme()}, nil, nil)
	assert.NotEmpty(t, causes)
}

func TestInterventionPriorityThresholds(t *testing.T) {
	assert.Equal(t, model.PriorityCritical, interventionPriority(39, 11))
	assert.Equal(t, model.PriorityHigh, interventionPriority(39, 10))
	assert.Equal(t, model.PriorityHigh, interventionPriority(49, 6))
	assert.Equal(t, model.PriorityMedium, interventionPriority(49, 5))
	assert.Equal(t, model.PriorityMedium, interventionPriority(59, 0))
	assert.Equal(t, model.PriorityLow, interventionPriority(60, 100))
}

func TestGenerateInterventions(t *testing.T) {
	theme := strugglingTheme()
	causes := AnalyzeRootCauses([]model.ThemeInsight{theme}, nil, nil)
	require.NotEmpty(t, causes)

	out := GenerateInterventions(DefaultLexicon(), causes, []model.ThemeInsight{theme}, nil)
	require.Len(t, out, 2) // the work-life rule carries two templates

	for _, iv := range out {
		assert.Equal(t, "t-wlb", iv.ThemeID)
		assert.Equal(t, model.PriorityCritical, iv.Priority) // sentiment 35, 12 responses
		assert.NotEmpty(t, iv.ID)
		assert.NotEmpty(t, iv.Title)
	}
}

func TestGenerateInterventionsSkipsThemesWithoutCauses(t *testing.T) {
	theme := model.ThemeInsight{ThemeID: "t-ok", ThemeName: "Management", AvgSentiment: 80}
	out := GenerateInterventions(DefaultLexicon(), nil, []model.ThemeInsight{theme}, nil)
	assert.Empty(t, out)
}

func TestGenerateInterventionsFallbackTemplates(t *testing.T) {
	theme := model.ThemeInsight{ThemeID: "t-misc", ThemeName: "Cafeteria Food", ResponseCount: 4, AvgSentiment: 30}
	causes := []model.RootCause{{ID: "c1", ThemeID: "t-misc", ThemeName: "Cafeteria Food"}}

	out := GenerateInterventions(DefaultLexicon(), causes, []model.ThemeInsight{theme}, nil)
	require.Len(t, out, 1)
	assert.Equal(t, "Run a follow-up deep-dive", out[0].Title)
}

func TestGenerateInterventionsRiskMitigation(t *testing.T) {
	patterns := []model.CulturalPattern{
		{Category: model.PatternRisk, Name: "Attrition Risk", Severity: model.RiskHigh, Frequency: 6},
		{Category: model.PatternRisk, Name: "Quiet Risk", Severity: model.RiskMedium, Frequency: 3},
		{Category: model.PatternStrength, Name: "Collaboration", Frequency: 4},
	}

	out := GenerateInterventions(DefaultLexicon(), nil, nil, patterns)
	require.Len(t, out, 1) // only the high-severity risk escalates

	assert.Contains(t, out[0].Title, "Attrition Risk")
	assert.Equal(t, model.PriorityHigh, out[0].Priority)
	assert.Empty(t, out[0].ThemeID)
}

func TestIdentifyQuickWinsFromInterventions(t *testing.T) {
	interventions := []model.InterventionRecommendation{
		{ID: "i1", Title: "Low effort quick win", QuickWin: true, EffortLevel: model.EffortLow, EstimatedImpact: 8, Timeline: "1 week"},
		{ID: "i2", Title: "Quick win but heavy", QuickWin: true, EffortLevel: model.EffortHigh},
		{ID: "i3", Title: "Low effort but slow burner", QuickWin: false, EffortLevel: model.EffortLow},
	}

	wins := IdentifyQuickWins(interventions, nil)
	require.Len(t, wins, 1)
	assert.Equal(t, "Low effort quick win", wins[0].Title)
	assert.Equal(t, "intervention", wins[0].Source)
}

func TestIdentifyQuickWinsMeetingRule(t *testing.T) {
	themes := []model.ThemeInsight{{
		ThemeID: "t-team", ThemeName: "Team Collaboration", AvgSentiment: 40,
		SentimentDrivers: []model.SentimentDriver{
			{Phrase: "too many meetings", Frequency: 3, SentimentImpact: -20},
		},
	}}

	wins := IdentifyQuickWins(nil, themes)
	require.Len(t, wins, 1)
	assert.Equal(t, "Meeting-Free Fridays", wins[0].Title)
	assert.Equal(t, "sentiment-driver", wins[0].Source)
}

func TestIdentifyQuickWinsMeetingRuleThresholds(t *testing.T) {
	lowFreq := []model.ThemeInsight{{
		ThemeID: "t1", SentimentDrivers: []model.SentimentDriver{
			{Phrase: "too many meetings", Frequency: 2, SentimentImpact: -20},
		},
	}}
	assert.Empty(t, IdentifyQuickWins(nil, lowFreq))

	mildImpact := []model.ThemeInsight{{
		ThemeID: "t1", SentimentDrivers: []model.SentimentDriver{
			{Phrase: "too many meetings", Frequency: 5, SentimentImpact: -10},
		},
	}}
	assert.Empty(t, IdentifyQuickWins(nil, mildImpact))
}

func TestPredictImpact(t *testing.T) {
	themes := []model.ThemeInsight{
		{ThemeID: "t1", ThemeName: "Work-Life Balance", AvgSentiment: 35},
		{ThemeID: "t2", ThemeName: "Compensation", AvgSentiment: 95},
		{ThemeID: "t3", ThemeName: "Management", AvgSentiment: 50},
	}
	interventions := []model.InterventionRecommendation{
		{ThemeID: "t1", EstimatedImpact: 12},
		{ThemeID: "t1", EstimatedImpact: 8},
		{ThemeID: "t2", EstimatedImpact: 13},
	}

	predictions := PredictImpact(interventions, themes)
	require.Len(t, predictions, 2)

	first := predictions[0]
	assert.Equal(t, "t1", first.ThemeID)
	assert.InDelta(t, 55.0, first.PredictedSentiment, 1e-9)
	assert.Equal(t, 2, first.InterventionCount)
	// 50 + (100-35)*0.5 + 2*10
	assert.InDelta(t, 100.0, first.Confidence, 1e-9)

	second := predictions[1]
	assert.Equal(t, "t2", second.ThemeID)
	assert.Equal(t, 100.0, second.PredictedSentiment) // capped
}

func TestPredictImpactNeverExceedsScale(t *testing.T) {
	themes := []model.ThemeInsight{{ThemeID: "t1", ThemeName: "Management", AvgSentiment: 90}}
	interventions := []model.InterventionRecommendation{
		{ThemeID: "t1", EstimatedImpact: 15},
		{ThemeID: "t1", EstimatedImpact: 15},
		{ThemeID: "t1", EstimatedImpact: 15},
	}
	predictions := PredictImpact(interventions, themes)
	require.Len(t, predictions, 1)
	assert.LessOrEqual(t, predictions[0].PredictedSentiment, 100.0)
	assert.LessOrEqual(t, predictions[0].Confidence, 100.0)
}
