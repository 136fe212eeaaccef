package internal

import "github.com/starford/retrolens/internal/sentiment"

// Option is a functional option for configuring the pipeline run.
type Option func(*application)

type application struct {
	config *Config
	input  string
	output string
	quotes *int
	scorer sentiment.Scorer
}

// WithConfig sets the application configuration.
func WithConfig(cfg *Config) Option {
	return func(a *application) {
		a.config = cfg
	}
}

// WithInput sets the board export path to read.
func WithInput(path string) Option {
	return func(a *application) {
		a.input = path
	}
}

// WithOutput sets the report path to write.
func WithOutput(path string) Option {
	return func(a *application) {
		a.output = path
	}
}

// WithQuoteCount overrides the configured quotes per polarity.
func WithQuoteCount(n int) Option {
	return func(a *application) {
		a.quotes = &n
	}
}

// WithScorer replaces the default VADER scorer, mainly for tests.
func WithScorer(s sentiment.Scorer) Option {
	return func(a *application) {
		a.scorer = s
	}
}
