package analyzer

import (
	"strings"

	"github.com/streamlens/content-analysis/internal/domain"
	"github.com/streamlens/content-analysis/internal/textutil"
)

// Decision-tree thresholds for viewer classification.
const (
	powerUserMinMessages  = 5
	powerUserMinAvgLength = 10.0
	curiousMinQuestions   = 2
	curiousMinEngagement  = 3
	activeMinWords        = 50
)

// ViewerClassifier buckets a user into an engagement category from their
// message history (or from the single text when no history is supplied).
type ViewerClassifier struct{}

// NewViewerClassifier creates a viewer classifier.
func NewViewerClassifier() *ViewerClassifier {
	return &ViewerClassifier{}
}

// Classify runs the decision tree top to bottom; the first matching branch
// wins. Branch order is part of the API contract: power_user is checked
// before curious_learner even when both would match.
func (c *ViewerClassifier) Classify(text string, messages []string) domain.ViewerClassification {
	var wordCount, questionCount int
	if len(messages) > 0 {
		for _, m := range messages {
			wordCount += textutil.WordCount(m)
			questionCount += strings.Count(m, "?")
		}
	} else {
		wordCount = textutil.WordCount(text)
		questionCount = strings.Count(text, "?")
	}

	messageCount := len(messages)
	avgLength := float64(wordCount) / float64(max(messageCount, 1))

	// Engagement keywords are counted across messages only; a bare text has
	// no engagement score.
	engagementScore := 0
	for _, m := range messages {
		for _, tok := range textutil.Tokenize(m) {
			if _, ok := engagementWords[tok]; ok {
				engagementScore++
			}
		}
	}

	var profile viewerProfile
	switch {
	case messageCount > powerUserMinMessages && avgLength > powerUserMinAvgLength:
		profile = powerUserProfile
	case questionCount > curiousMinQuestions || engagementScore > curiousMinEngagement:
		profile = curiousLearnerProfile
	case wordCount > activeMinWords:
		profile = activeParticipantProfile
	case messageCount > 0:
		profile = casualViewerProfile
	default:
		profile = passiveObserverProfile
	}

	return domain.ViewerClassification{
		ViewerType:      profile.viewerType,
		EngagementLevel: profile.engagementLevel,
		Characteristics: profile.characteristics,
		Metrics: domain.ViewerMetrics{
			MessageCount:     messageCount,
			AvgMessageLength: round1(avgLength),
			QuestionCount:    questionCount,
			EngagementScore:  engagementScore,
		},
	}
}
