package analyzer

// Sentiment keyword sets. These are deliberately data, not control flow, so
// the vocabulary can be extended without touching the scoring path. Matching
// is exact token equality after tokenization, never substring.

var positiveWords = wordSet(
	"good", "great", "excellent", "amazing", "wonderful", "fantastic",
	"love", "best", "awesome", "perfect", "brilliant", "outstanding",
	"superb", "happy", "joy", "beautiful", "like", "enjoy", "positive",
)

var negativeWords = wordSet(
	"bad", "terrible", "awful", "horrible", "worst", "hate", "dislike",
	"poor", "disappointing", "sad", "angry", "annoying", "frustrating",
	"useless", "broken", "fail", "problem", "issue", "negative", "ugly",
)

func wordSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
