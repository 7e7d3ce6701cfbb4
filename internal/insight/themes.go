package insight

import (
	"strings"

	"pulsecheck/internal/model"
)

// ExtractThemeInsights groups responses by declared theme and computes the
// per-theme analytics artifact: normalized average sentiment, quotes,
// keyword-matched sub-themes, sentiment drivers and follow-up effectiveness.
// themeID narrows the output to a single theme; empty means all. Themes with
// zero matching responses never appear in the output.
func ExtractThemeInsights(lex *Lexicon, themes []model.Theme, responses []model.Response, sessions []model.Session, themeID string) []model.ThemeInsight {
	byTheme := make(map[string][]model.Response)
	for _, r := range responses {
		if r.ThemeID == nil || *r.ThemeID == "" {
			continue
		}
		byTheme[*r.ThemeID] = append(byTheme[*r.ThemeID], r)
	}

	var out []model.ThemeInsight
	for _, theme := range themes {
		if themeID != "" && theme.ID != themeID {
			continue
		}
		matched := byTheme[theme.ID]
		if len(matched) == 0 {
			continue
		}
		out = append(out, model.ThemeInsight{
			ThemeID:               theme.ID,
			ThemeName:             theme.Name,
			ResponseCount:         len(matched),
			AvgSentiment:          avgSentiment(matched),
			Quotes:                themeQuotes(matched),
			SubThemes:             extractSubThemes(lex, theme.Name, matched),
			SentimentDrivers:      DetectSentimentDrivers(lex, matched),
			FollowUpEffectiveness: followUpEffectiveness(matched) / 100,
		})
	}
	return out
}

// themeQuotes keeps quotable responses (content longer than the quote
// minimum) in encounter order.
func themeQuotes(responses []model.Response) []model.Quote {
	quotes := []model.Quote{}
	for _, r := range responses {
		if len(r.Content) <= quoteMinLength {
			continue
		}
		quotes = append(quotes, model.Quote{
			ResponseID: r.ID,
			Text:       r.Content,
			Sentiment:  NormalizeSentiment(r.SentimentScore),
		})
		if len(quotes) == maxThemeQuotes {
			break
		}
	}
	return quotes
}

// extractSubThemes scans the theme's keyword table. A response may match
// zero, one or several sub-themes; matches are not mutually exclusive.
// Sub-themes nothing matched are dropped.
func extractSubThemes(lex *Lexicon, themeName string, responses []model.Response) []model.SubTheme {
	table := lex.SubThemesFor(themeName)
	subThemes := []model.SubTheme{}
	for _, set := range table {
		var matched []model.Response
		var quotes []string
		for _, r := range responses {
			if !containsAny(r.Content, set.Keywords) {
				continue
			}
			matched = append(matched, r)
			if len(quotes) < maxSubThemeQuotes && len(r.Content) < subThemeQuoteMaxLength {
				quotes = append(quotes, r.Content)
			}
		}
		if len(matched) == 0 {
			continue
		}
		subThemes = append(subThemes, model.SubTheme{
			Name:                 DisplayName(set.Key),
			Frequency:            len(matched),
			AvgSentiment:         avgSentiment(matched),
			RepresentativeQuotes: quotes,
		})
	}
	return subThemes
}

// containsAny reports whether content contains any keyword,
// case-insensitively.
func containsAny(content string, keywords []string) bool {
	lower := strings.ToLower(content)
	for _, kw := range keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
