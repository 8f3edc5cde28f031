// Package domain defines the request and result types exchanged by the
// analysis API. Every value is request-scoped; nothing here is persisted.
package domain

// AnalysisRequest is the body accepted by POST /analyze.
type AnalysisRequest struct {
	Text     string   `json:"text"`
	Messages []string `json:"messages"`
}

// Sentiment labels.
const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
)

// Viewer types, ordered from most to least engaged.
const (
	ViewerPowerUser         = "power_user"
	ViewerCuriousLearner    = "curious_learner"
	ViewerActiveParticipant = "active_participant"
	ViewerCasualViewer      = "casual_viewer"
	ViewerPassiveObserver   = "passive_observer"
)

// SentimentResult holds keyword-ratio sentiment scoring for one text.
type SentimentResult struct {
	Sentiment  string  `json:"sentiment"`  // "positive", "negative", "neutral"
	Score      float64 `json:"score"`      // -1.0 to 1.0, 3 decimals
	Confidence float64 `json:"confidence"` // 0.0 to 1.0, 3 decimals
}

// ViewerMetrics exposes the raw numbers behind a viewer classification so
// results stay observable and testable.
type ViewerMetrics struct {
	MessageCount     int     `json:"message_count"`
	AvgMessageLength float64 `json:"avg_message_length"` // words per message, 1 decimal
	QuestionCount    int     `json:"question_count"`
	EngagementScore  int     `json:"engagement_score"`
}

// ViewerClassification buckets a user into one of five engagement types.
type ViewerClassification struct {
	ViewerType      string        `json:"viewer_type"`
	EngagementLevel string        `json:"engagement_level"`
	Characteristics []string      `json:"characteristics"`
	Metrics         ViewerMetrics `json:"metrics"`
}

// AnalysisSummary is the roll-up block of an analysis result.
type AnalysisSummary struct {
	TotalWords    int    `json:"total_words"`
	TotalMessages int    `json:"total_messages"`
	OverallTone   string `json:"overall_tone"`
	UserProfile   string `json:"user_profile"`
}

// AnalysisResult is the combined report returned by the analyzer.
type AnalysisResult struct {
	Sentiment            SentimentResult      `json:"sentiment"`
	ViewerClassification ViewerClassification `json:"viewer_classification"`
	AnalysisSummary      AnalysisSummary      `json:"analysis_summary"`
}
