// Package models defines the domain types for Retrolens.
package models

// Sentiment classes a note color can map to.
const (
	ClassPositive = "positive"
	ClassNegative = "negative"
	ClassNeutral  = "neutral"
)

// Note represents one sticky note from a board export.
type Note struct {
	ID          string  `json:"id,omitempty"`
	Team        string  `json:"team,omitempty"`
	Topic       string  `json:"topic,omitempty"`
	Color       string  `json:"color"` // raw value from the export, normally a hex code
	Text        string  `json:"text"`
	X           float64 `json:"x,omitempty"`
	Y           float64 `json:"y,omitempty"`
	HasPosition bool    `json:"-"`
	Index       int     `json:"-"` // input order, used for deterministic tie-breaks
}

// Group is all notes sharing a team and topic. It is a derived view over the
// loaded notes, never stored independently.
type Group struct {
	Team  string `json:"team"`
	Topic string `json:"topic"`
	// Synthetic marks a proximity-clustered group whose team and topic
	// labels could not be resolved.
	Synthetic bool   `json:"synthetic,omitempty"`
	Notes     []Note `json:"notes"`
}

// Quote is a note text ranked by its lexical polarity.
type Quote struct {
	Text     string  `json:"text"`
	Polarity float64 `json:"polarity"`
}

// GroupSummary is the per-group result row consumed by the reporter.
type GroupSummary struct {
	Team            string  `json:"team"`
	Topic           string  `json:"topic"`
	Count           int     `json:"count"`
	PercentPositive float64 `json:"percent_positive"`
	PercentNegative float64 `json:"percent_negative"`
	Score           int     `json:"score"` // weighted agreement on the 0-100 scale
	TopPositive     []Quote `json:"top_positive,omitempty"`
	TopNegative     []Quote `json:"top_negative,omitempty"`
}
