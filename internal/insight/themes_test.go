package insight

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pulsecheck/internal/model"
)

var testThemes = []model.Theme{
	{ID: "t-wlb", Name: "Work-Life Balance"},
	{ID: "t-comp", Name: "Compensation"},
	{ID: "t-empty", Name: "Company Culture"},
}

func TestExtractThemeInsightsBalancedScenario(t *testing.T) {
	lex := DefaultLexicon()
	scores := []float64{90, 85, 20, 15, 50, 60, 30, 40, 70, 55}
	responses := batch("t-wlb", "The workload has been heavy but the flexible schedule helps a lot.", scores, 10)

	insights := ExtractThemeInsights(lex, testThemes, responses, nil, "")
	require.Len(t, insights, 1)

	got := insights[0]
	assert.Equal(t, "t-wlb", got.ThemeID)
	assert.Equal(t, "Work-Life Balance", got.ThemeName)
	assert.Equal(t, 10, got.ResponseCount)
	assert.InDelta(t, 51.5, got.AvgSentiment, 1e-9)
}

func TestExtractThemeInsightsEmptyInput(t *testing.T) {
	insights := ExtractThemeInsights(DefaultLexicon(), testThemes, nil, nil, "")
	assert.Empty(t, insights)
}

func TestExtractThemeInsightsOmitsZeroResponseThemes(t *testing.T) {
	responses := []model.Response{
		themed("r1", "t-comp", "I feel underpaid for the hours I put in here", fptr(20), 0),
	}
	insights := ExtractThemeInsights(DefaultLexicon(), testThemes, responses, nil, "")
	require.Len(t, insights, 1)
	assert.Equal(t, "t-comp", insights[0].ThemeID)
}

func TestExtractThemeInsightsThemeFilter(t *testing.T) {
	responses := []model.Response{
		themed("r1", "t-wlb", "too much overtime lately, the late nights are wearing on me", fptr(20), 0),
		themed("r2", "t-comp", "the benefits package is actually quite good here", fptr(80), 1),
	}
	insights := ExtractThemeInsights(DefaultLexicon(), testThemes, responses, nil, "t-comp")
	require.Len(t, insights, 1)
	assert.Equal(t, "t-comp", insights[0].ThemeID)
}

func TestExtractThemeInsightsIgnoresUnassignedResponses(t *testing.T) {
	responses := []model.Response{
		themed("r1", "", "a response the conversation AI never categorized at all", fptr(40), 0),
	}
	insights := ExtractThemeInsights(DefaultLexicon(), testThemes, responses, nil, "")
	assert.Empty(t, insights)
}

func TestThemeQuotes(t *testing.T) {
	responses := []model.Response{
		themed("r1", "t-wlb", "short", fptr(50), 0),
		themed("r2", "t-wlb", "this one is clearly long enough to quote", fptr(0.8), 1),
	}
	for i := 0; i < 6; i++ {
		responses = append(responses, themed("extra", "t-wlb", "another quotable response with plenty of content", fptr(60), 2+i))
	}

	quotes := themeQuotes(responses)
	require.Len(t, quotes, maxThemeQuotes)
	assert.Equal(t, "r2", quotes[0].ResponseID)
	assert.InDelta(t, 80.0, quotes[0].Sentiment, 1e-9)
}

func TestExtractSubThemesMultipleMatches(t *testing.T) {
	lex := DefaultLexicon()
	// one response hitting both the overtime and burnout keyword sets
	responses := []model.Response{
		themed("r1", "t-wlb", "the overtime is constant and I am completely burned out from it", fptr(10), 0),
		themed("r2", "t-wlb", "remote work keeps me flexible and sane", fptr(85), 1),
	}

	subThemes := extractSubThemes(lex, "Work-Life Balance", responses)
	names := make([]string, 0, len(subThemes))
	for _, st := range subThemes {
		names = append(names, st.Name)
	}
	assert.Contains(t, names, "Overtime")
	assert.Contains(t, names, "Burnout")
	assert.Contains(t, names, "Flexibility")

	for _, st := range subThemes {
		assert.Greater(t, st.Frequency, 0)
		assert.LessOrEqual(t, len(st.RepresentativeQuotes), maxSubThemeQuotes)
	}
}

func TestExtractSubThemesDropsLongQuotes(t *testing.T) {
	long := "overtime " + strings.Repeat("x", subThemeQuoteMaxLength)
	subThemes := extractSubThemes(DefaultLexicon(), "Work-Life Balance", []model.Response{
		themed("r1", "t-wlb", long, fptr(20), 0),
	})
	require.Len(t, subThemes, 1)
	assert.Equal(t, 1, subThemes[0].Frequency)
	assert.Empty(t, subThemes[0].RepresentativeQuotes)
}

func TestExtractSubThemesUnknownTheme(t *testing.T) {
	subThemes := extractSubThemes(DefaultLexicon(), "Parking Situation", []model.Response{
		themed("r1", "t-x", "the overtime is out of hand again", fptr(20), 0),
	})
	assert.Empty(t, subThemes)
}

func TestContainsAnyCaseInsensitive(t *testing.T) {
	assert.True(t, containsAny("WAY too much OVERTIME lately", []string{"overtime"}))
	assert.False(t, containsAny("all quiet on this front", []string{"overtime"}))
}
