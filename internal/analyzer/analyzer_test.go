package analyzer

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streamlens/content-analysis/internal/domain"
)

func TestContentAnalyzer_Composition(t *testing.T) {
	a := NewContentAnalyzer()

	result := a.Analyze("I love this, amazing!", nil)

	assert.Equal(t, domain.SentimentPositive, result.Sentiment.Sentiment)
	assert.Equal(t, domain.ViewerPassiveObserver, result.ViewerClassification.ViewerType)

	// Summary mirrors the sub-analyzers.
	assert.Equal(t, 4, result.AnalysisSummary.TotalWords)
	assert.Equal(t, 0, result.AnalysisSummary.TotalMessages)
	assert.Equal(t, result.Sentiment.Sentiment, result.AnalysisSummary.OverallTone)
	assert.Equal(t, result.ViewerClassification.ViewerType, result.AnalysisSummary.UserProfile)
}

func TestContentAnalyzer_WithMessages(t *testing.T) {
	a := NewContentAnalyzer()

	result := a.Analyze("Terrible experience, I hate it",
		[]string{"Terrible experience", "I hate it"})

	assert.Equal(t, domain.SentimentNegative, result.Sentiment.Sentiment)
	assert.Equal(t, domain.ViewerCasualViewer, result.ViewerClassification.ViewerType)
	assert.Equal(t, 2, result.AnalysisSummary.TotalMessages)
	assert.Equal(t, 5, result.AnalysisSummary.TotalWords)
}

func TestAnalysisResult_JSONRoundTrip(t *testing.T) {
	a := NewContentAnalyzer()
	result := a.Analyze("good good bad", []string{"is this good?", "thanks for the help"})

	data, err := json.Marshal(result)
	require.NoError(t, err)

	var decoded domain.AnalysisResult
	require.NoError(t, json.Unmarshal(data, &decoded))

	// Numeric fields survive serialization exactly; rounding happened once,
	// before marshaling.
	assert.Equal(t, result, decoded)
}

func TestAnalysisResult_JSONShape(t *testing.T) {
	a := NewContentAnalyzer()
	data, err := json.Marshal(a.Analyze("good", nil))
	require.NoError(t, err)

	var m map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Contains(t, m, "sentiment")
	assert.Contains(t, m, "viewer_classification")
	assert.Contains(t, m, "analysis_summary")
}
