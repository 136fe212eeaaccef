// Package sentiment isolates the lexical polarity capability behind a
// narrow interface so the corpus-backed scorer can be swapped in tests.
package sentiment

import "github.com/jonreiter/govader"

// Scorer produces a lexical polarity estimate in [-1, +1] for a text.
type Scorer interface {
	Score(text string) float64
}

// Func adapts a plain function to a Scorer.
type Func func(text string) float64

func (f Func) Score(text string) float64 { return f(text) }

// Vader scores text with the VADER sentiment lexicon.
type Vader struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

// NewVader builds a VADER-backed scorer.
func NewVader() *Vader {
	return &Vader{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

// Score returns the compound polarity of text on the [-1, +1] scale.
func (v *Vader) Score(text string) float64 {
	return v.analyzer.PolarityScores(text).Compound
}
