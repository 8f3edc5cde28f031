// Package analyzer implements the heuristic text analyzers behind the
// /analyze endpoint: keyword-ratio sentiment scoring, the five-way viewer
// classifier, and the combined content analyzer.
package analyzer

import (
	"math"

	"github.com/streamlens/content-analysis/internal/domain"
	"github.com/streamlens/content-analysis/internal/textutil"
)

// Sentiment label thresholds on the normalized score.
const (
	positiveThreshold = 0.1
	negativeThreshold = -0.1
)

// Confidence when the text has words but none of them carry sentiment. This
// is distinct from empty text, which scores 0.0 confidence.
const noSentimentConfidence = 0.5

// SentimentAnalyzer scores text polarity against the fixed keyword sets.
type SentimentAnalyzer struct{}

// NewSentimentAnalyzer creates a sentiment analyzer.
func NewSentimentAnalyzer() *SentimentAnalyzer {
	return &SentimentAnalyzer{}
}

// Analyze scores a single text. Deterministic and side-effect free.
//
// score = (pos - neg) / (pos + neg), confidence = (pos + neg) / tokens,
// both rounded to 3 decimals.
func (a *SentimentAnalyzer) Analyze(text string) domain.SentimentResult {
	tokens := textutil.Tokenize(text)
	if len(tokens) == 0 {
		return domain.SentimentResult{Sentiment: domain.SentimentNeutral, Score: 0.0, Confidence: 0.0}
	}

	var pos, neg int
	for _, tok := range tokens {
		if _, ok := positiveWords[tok]; ok {
			pos++
		}
		if _, ok := negativeWords[tok]; ok {
			neg++
		}
	}

	total := pos + neg
	if total == 0 {
		return domain.SentimentResult{
			Sentiment:  domain.SentimentNeutral,
			Score:      0.0,
			Confidence: noSentimentConfidence,
		}
	}

	score := float64(pos-neg) / float64(total)
	confidence := float64(total) / float64(len(tokens))

	label := domain.SentimentNeutral
	switch {
	case score > positiveThreshold:
		label = domain.SentimentPositive
	case score < negativeThreshold:
		label = domain.SentimentNegative
	}

	return domain.SentimentResult{
		Sentiment:  label,
		Score:      round3(score),
		Confidence: round3(confidence),
	}
}

// round3 rounds to 3 decimal places. Idempotent: rounding an already-rounded
// value returns it unchanged.
func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// round1 rounds to 1 decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
