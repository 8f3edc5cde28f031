package commentclass

import (
	"strings"

	ahocorasick "github.com/cloudflare/ahocorasick"
)

// fallbackRule pairs a label with the substrings that trigger it. Rules are
// evaluated in slice order and the first hit wins: this is a priority list,
// not independent scoring. Matching is substring containment over the
// lowercased comment, a coarser granularity than the token-equality sets the
// analysis API uses.
type fallbackRule struct {
	label    string
	keywords []string
}

// Rules before the short-comment check.
var primaryRules = []fallbackRule{
	{LabelEmotional, []string{"love", "so good", "amazing", "😍", "❤️", "best"}},
	{LabelImpulsive, []string{"buy", "where can i", "link", "coupon", "price", "order"}},
	{LabelLoyal, []string{"always", "followed", "since day 1", "loyal", "been here"}},
}

// Rules after the short-comment check.
var secondaryRules = []fallbackRule{
	{LabelTrendTriggered, []string{"trend", "viral", "challenge", "tiktok", "meme"}},
	{LabelCritical, []string{"fake", "scam", "worst", "terrible", "hate", "critic"}},
}

// Comments of at most this many whitespace-separated fields are passive
// unless an earlier rule already claimed them.
const shortCommentMaxWords = 2

// FallbackClassifier is the deterministic rule-based classifier used when no
// model credential is available or the upstream call fails. One Aho-Corasick
// automaton covers every rule's keywords; matched keywords map back to rules
// so a comment is scanned once regardless of rule count.
type FallbackClassifier struct {
	matcher   *ahocorasick.Matcher
	keywords  []string
	kwToLabel []string // keyword index -> owning rule label
}

// NewFallbackClassifier builds the automaton from the fixed rule tables.
func NewFallbackClassifier() *FallbackClassifier {
	c := &FallbackClassifier{}
	for _, rule := range primaryRules {
		c.addRule(rule)
	}
	for _, rule := range secondaryRules {
		c.addRule(rule)
	}
	c.matcher = ahocorasick.NewStringMatcher(c.keywords)
	return c
}

func (c *FallbackClassifier) addRule(rule fallbackRule) {
	for _, kw := range rule.keywords {
		c.keywords = append(c.keywords, kw)
		c.kwToLabel = append(c.kwToLabel, rule.label)
	}
}

// Classify resolves a comment to a label. Never fails; the default is
// Passive Viewer.
func (c *FallbackClassifier) Classify(comment string) string {
	lowered := strings.ToLower(comment)

	matched := make(map[string]bool)
	for _, hit := range c.matcher.Match([]byte(lowered)) {
		if hit < len(c.kwToLabel) {
			matched[c.kwToLabel[hit]] = true
		}
	}

	for _, rule := range primaryRules {
		if matched[rule.label] {
			return rule.label
		}
	}
	if len(strings.Fields(lowered)) <= shortCommentMaxWords {
		return LabelPassive
	}
	for _, rule := range secondaryRules {
		if matched[rule.label] {
			return rule.label
		}
	}
	return LabelPassive
}
