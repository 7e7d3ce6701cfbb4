package insight

import (
	"math"
	"sort"
	"strings"

	"pulsecheck/internal/model"
)

// DetectSentimentDrivers finds phrases whose presence correlates with
// sentiment deviation from neutral. Every phrase from the positive and
// negative lists is matched as a case-insensitive substring; impact is the
// mean normalized sentiment of matching responses minus neutral. Output is
// the top phrases by absolute impact; ties keep phrase-list declaration
// order (the sort is stable).
func DetectSentimentDrivers(lex *Lexicon, responses []model.Response) []model.SentimentDriver {
	phrases := make([]string, 0, len(lex.PositivePhrases)+len(lex.NegativePhrases))
	phrases = append(phrases, lex.PositivePhrases...)
	phrases = append(phrases, lex.NegativePhrases...)

	drivers := []model.SentimentDriver{}
	for _, phrase := range phrases {
		needle := strings.ToLower(phrase)
		var freq int
		var sum float64
		var contexts []string
		for _, r := range responses {
			if !strings.Contains(strings.ToLower(r.Content), needle) {
				continue
			}
			freq++
			sum += NormalizeSentiment(r.SentimentScore)
			if len(contexts) < maxDriverContexts && len(r.Content) < driverContextMaxLength {
				contexts = append(contexts, r.Content)
			}
		}
		if freq == 0 {
			continue
		}
		drivers = append(drivers, model.SentimentDriver{
			Phrase:          phrase,
			Frequency:       freq,
			SentimentImpact: sum/float64(freq) - NeutralSentiment,
			Context:         contexts,
		})
	}

	sort.SliceStable(drivers, func(i, j int) bool {
		return math.Abs(drivers[i].SentimentImpact) > math.Abs(drivers[j].SentimentImpact)
	})
	if len(drivers) > maxDrivers {
		drivers = drivers[:maxDrivers]
	}
	return drivers
}
