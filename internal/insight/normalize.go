// Package insight implements the analytics pipeline that turns raw
// conversation responses and sessions into theme insights, quality scores,
// cultural patterns and actionable recommendations. Everything in this
// package is a pure function over its inputs: no stores, no clocks (callers
// pass time.Time where recency matters), no mutation of inputs.
package insight

import (
	"github.com/montanaflynn/stats"

	"pulsecheck/internal/model"
)

// Fallback and threshold constants shared across the pipeline. These values
// are product contracts: downstream insight thresholds depend on them, so
// changing one silently changes every number the product shows.
const (
	// NeutralSentiment is the normalized score used whenever a response has
	// no sentiment at all, and the zero point for sentiment impact.
	NeutralSentiment = 50.0

	// DefaultAvgDuration stands in for the aggregate average duration when
	// sessions exist but none has both timestamps.
	DefaultAvgDuration = 12.3

	quoteMinLength         = 20  // shorter content is non-quotable
	meaningfulLength       = 50  // shorter content counts as generic
	subThemeQuoteMaxLength = 200 // sub-theme representative quote cutoff
	driverContextMaxLength = 150 // sentiment-driver context cutoff

	maxThemeQuotes    = 5
	maxSubThemeQuotes = 3
	maxDriverContexts = 3
	maxDrivers        = 10
)

// NormalizeSentiment maps a raw persisted sentiment onto the canonical 0-100
// scale. Raw scores arrive on either a 0-1 or a 0-100 scale depending on
// origin; nil means the response was never scored and defaults to neutral.
// Every component reads sentiment through this function and only this
// function.
func NormalizeSentiment(raw *float64) float64 {
	if raw == nil {
		return NeutralSentiment
	}
	v := *raw
	if v <= 1 {
		v *= 100
	}
	return clamp(v, 0, 100)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// scoredSentiments collects normalized scores from responses that actually
// carry a sentiment score.
func scoredSentiments(responses []model.Response) []float64 {
	var out []float64
	for i := range responses {
		if responses[i].SentimentScore != nil {
			out = append(out, NormalizeSentiment(responses[i].SentimentScore))
		}
	}
	return out
}

// avgSentiment is the mean of the scored sentiments, defaulting to neutral
// when no response carries a score.
func avgSentiment(responses []model.Response) float64 {
	vals := scoredSentiments(responses)
	return meanOr(vals, NeutralSentiment)
}

func meanOr(vals []float64, fallback float64) float64 {
	if len(vals) == 0 {
		return fallback
	}
	m, err := stats.Mean(vals)
	if err != nil {
		return fallback
	}
	return m
}

// stdevOr is the population standard deviation, or fallback with fewer than
// two samples.
func stdevOr(vals []float64, fallback float64) float64 {
	if len(vals) < 2 {
		return fallback
	}
	sd, err := stats.StandardDeviationPopulation(vals)
	if err != nil {
		return fallback
	}
	return sd
}
