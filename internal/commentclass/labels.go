// Package commentclass classifies a single viewer comment into a fixed
// six-label taxonomy, either by sanitizing the output of a hosted language
// model or through deterministic fallback rules.
//
// The taxonomy is a closed set, deliberately disjoint from the analysis
// API's viewer types; the two classifiers share no code.
package commentclass

// The six comment labels.
const (
	LabelEmotional      = "Emotional Viewer"
	LabelImpulsive      = "Impulsive Viewer"
	LabelLoyal          = "Loyal Viewer"
	LabelPassive        = "Passive Viewer"
	LabelTrendTriggered = "Trend-Triggered Viewer"
	LabelCritical       = "Critical Viewer"
)

// Labels lists the taxonomy in its canonical order, which is also the order
// the sanitizer searches model output.
var Labels = []string{
	LabelEmotional,
	LabelImpulsive,
	LabelLoyal,
	LabelPassive,
	LabelTrendTriggered,
	LabelCritical,
}
