package analyzer

import (
	"github.com/streamlens/content-analysis/internal/domain"
	"github.com/streamlens/content-analysis/internal/textutil"
)

// ContentAnalyzer composes the sentiment analyzer and viewer classifier into
// one combined report.
type ContentAnalyzer struct {
	sentiment *SentimentAnalyzer
	viewer    *ViewerClassifier
}

// NewContentAnalyzer creates a content analyzer.
func NewContentAnalyzer() *ContentAnalyzer {
	return &ContentAnalyzer{
		sentiment: NewSentimentAnalyzer(),
		viewer:    NewViewerClassifier(),
	}
}

// Analyze produces the combined sentiment, viewer classification, and summary
// for one request. Pure composition: the summary word count uses the same
// tokenizer as the sub-analyzers so totals agree.
func (a *ContentAnalyzer) Analyze(text string, messages []string) domain.AnalysisResult {
	sentiment := a.sentiment.Analyze(text)
	viewer := a.viewer.Classify(text, messages)

	return domain.AnalysisResult{
		Sentiment:            sentiment,
		ViewerClassification: viewer,
		AnalysisSummary: domain.AnalysisSummary{
			TotalWords:    textutil.WordCount(text),
			TotalMessages: len(messages),
			OverallTone:   sentiment.Sentiment,
			UserProfile:   viewer.ViewerType,
		},
	}
}
