package insight

import (
	"sort"
	"strings"
	"time"

	"pulsecheck/internal/model"
)

const (
	// EmergingWindowDays is the recency window for emerging-topic detection.
	EmergingWindowDays = 14

	emergingMinRecent   = 3
	emergingGrowthRatio = 1.5

	clusterQuoteMinLength = 30
	clusterQuoteMaxLength = 200
	maxClusterQuotes      = 5

	emotionDefaultScore    = 0.5
	highConfidenceEmotion  = 60.0
	emotionPositiveCutoff  = 70.0
	emotionNegativeCutoff  = 30.0
)

// ExtractTopicClusters clusters responses by topic keyword tables. A
// response may land in several clusters. Clusters are sorted by frequency
// descending; ties keep topic-table order.
func ExtractTopicClusters(lex *Lexicon, responses []model.Response) []model.TopicCluster {
	total := len(responses)
	clusters := []model.TopicCluster{}
	for _, topic := range lex.Topics {
		var matched []model.Response
		var quotes []string
		for _, r := range responses {
			if !containsAny(r.Content, topic.Keywords) {
				continue
			}
			matched = append(matched, r)
			if len(quotes) < maxClusterQuotes &&
				len(r.Content) >= clusterQuoteMinLength && len(r.Content) <= clusterQuoteMaxLength {
				quotes = append(quotes, r.Content)
			}
		}
		freq := len(matched)
		if freq == 0 {
			continue
		}
		clusters = append(clusters, model.TopicCluster{
			Topic:        DisplayName(topic.Key),
			Frequency:    freq,
			AvgSentiment: avgSentiment(matched),
			Quotes:       quotes,
			Confidence:   clusterConfidence(freq, total),
		})
	}
	sort.SliceStable(clusters, func(i, j int) bool {
		return clusters[i].Frequency > clusters[j].Frequency
	})
	return clusters
}

// clusterConfidence rewards both share of total responses and absolute
// frequency, with a flat base. Capped at 100.
func clusterConfidence(freq, total int) float64 {
	share := 0.0
	if total > 0 {
		share = float64(freq) / float64(total) * 50
	}
	bulk := float64(freq) * 10
	if freq >= 3 {
		bulk = 30
	}
	if bulk > 30 {
		bulk = 30
	}
	return clamp(share+bulk+20, 0, 100)
}

// DetectEmotion classifies one response against the emotion keyword tables.
// Without any keyword match the emotion is inferred from normalized
// sentiment (satisfied / frustrated / concerned) at the default score.
func DetectEmotion(lex *Lexicon, r model.Response) model.EmotionResult {
	sentiment := NormalizeSentiment(r.SentimentScore)

	best := ""
	bestScore := 0.0
	for _, emotion := range lex.Emotions {
		matches := countMatches(r.Content, emotion.Keywords)
		if matches == 0 {
			continue
		}
		score := clamp(0.4+0.2*float64(matches), 0, 1)
		if score > bestScore {
			best = emotion.Key
			bestScore = score
		}
	}

	if best == "" {
		switch {
		case sentiment >= emotionPositiveCutoff:
			best = "satisfied"
		case sentiment <= emotionNegativeCutoff:
			best = "frustrated"
		default:
			best = "concerned"
		}
		bestScore = emotionDefaultScore
	}

	return model.EmotionResult{
		ResponseID: r.ID,
		Primary:    best,
		Score:      bestScore,
		Intensity:  clamp(bestScore*100+sentiment*0.5, 0, 100),
	}
}

func countMatches(content string, keywords []string) int {
	lower := strings.ToLower(content)
	var n int
	for _, kw := range keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			n++
		}
	}
	return n
}

// FindSemanticPatterns groups responses under canonical phrases via the
// variant table, sorted by frequency descending (stable).
func FindSemanticPatterns(lex *Lexicon, responses []model.Response) []model.SemanticPattern {
	patterns := []model.SemanticPattern{}
	for _, group := range lex.SemanticGroups {
		needles := append([]string{group.Canonical}, group.Variants...)
		var matched []model.Response
		for _, r := range responses {
			if containsAny(r.Content, needles) {
				matched = append(matched, r)
			}
		}
		if len(matched) == 0 {
			continue
		}
		patterns = append(patterns, model.SemanticPattern{
			Canonical:       group.Canonical,
			Frequency:       len(matched),
			SentimentImpact: avgSentiment(matched) - NeutralSentiment,
			Variants:        group.Variants,
		})
	}
	sort.SliceStable(patterns, func(i, j int) bool {
		return patterns[i].Frequency > patterns[j].Frequency
	})
	return patterns
}

// IdentifyEmergingTopics compares each topic's frequency ratio in the recent
// window against its all-time ratio. A topic is emerging when the recent
// ratio exceeds 1.5x the all-time ratio with at least 3 recent occurrences,
// or when all of its at-least-3 occurrences are recent (no historical
// counterpart).
func IdentifyEmergingTopics(lex *Lexicon, responses []model.Response, now time.Time) []model.EmergingTopic {
	cutoff := now.AddDate(0, 0, -EmergingWindowDays)
	var recent []model.Response
	for _, r := range responses {
		if r.CreatedAt.After(cutoff) {
			recent = append(recent, r)
		}
	}

	emerging := []model.EmergingTopic{}
	for _, topic := range lex.Topics {
		totalCount := countTopicMatches(topic, responses)
		recentCount := countTopicMatches(topic, recent)
		if recentCount < emergingMinRecent {
			continue
		}

		recentRatio := float64(recentCount) / float64(len(recent))
		allRatio := float64(totalCount) / float64(len(responses))

		isNew := totalCount == recentCount
		if !isNew && recentRatio <= emergingGrowthRatio*allRatio {
			continue
		}

		growth := float64(recentCount)
		if allRatio > 0 {
			growth = recentRatio / allRatio
		}
		emerging = append(emerging, model.EmergingTopic{
			Topic:        DisplayName(topic.Key),
			RecentCount:  recentCount,
			TotalCount:   totalCount,
			GrowthFactor: growth,
		})
	}
	return emerging
}

func countTopicMatches(topic KeywordSet, responses []model.Response) int {
	var n int
	for _, r := range responses {
		if containsAny(r.Content, topic.Keywords) {
			n++
		}
	}
	return n
}

// PerformNLPAnalysis runs the whole NLP layer over one survey's responses
// and scores its own output quality: a weighted mix of topic diversity,
// response volume, pattern richness and the fraction of high-confidence
// emotion detections, capped at 100.
func PerformNLPAnalysis(lex *Lexicon, responses []model.Response, now time.Time) model.NLPAnalysis {
	analysis := model.NLPAnalysis{
		Topics:         ExtractTopicClusters(lex, responses),
		Patterns:       FindSemanticPatterns(lex, responses),
		EmergingTopics: IdentifyEmergingTopics(lex, responses, now),
	}
	analysis.Emotions = make([]model.EmotionResult, 0, len(responses))
	for _, r := range responses {
		analysis.Emotions = append(analysis.Emotions, DetectEmotion(lex, r))
	}

	var highConf int
	for _, e := range analysis.Emotions {
		if e.Intensity > highConfidenceEmotion {
			highConf++
		}
	}
	emotionFraction := 0.0
	if len(analysis.Emotions) > 0 {
		emotionFraction = float64(highConf) / float64(len(analysis.Emotions)) * 100
	}

	diversity := clamp(float64(len(analysis.Topics))*15, 0, 100)
	volume := clamp(float64(len(responses))*2, 0, 100)
	richness := clamp(float64(len(analysis.Patterns))*20, 0, 100)
	analysis.QualityScore = clamp(
		diversity*0.3+volume*0.25+richness*0.2+emotionFraction*0.25, 0, 100)
	return analysis
}
