// Package analyzer is the pipeline core: it partitions notes into groups and
// reduces each group to percentages, an agreement score, and ranked quotes.
package analyzer

import (
	"sort"

	"github.com/starford/retrolens/internal/models"
	"github.com/starford/retrolens/internal/sentiment"
)

// Palette classifies raw note colors. Colors outside the palette are
// neutral: they count toward a group's population but toward neither
// percentage, and carry no agreement weight.
type Palette interface {
	// Class returns models.ClassPositive, models.ClassNegative, or
	// models.ClassNeutral for unmapped colors.
	Class(color string) string
	// Weight returns the agreement weight of a color on the 0-100 scale and
	// whether the color belongs to the palette.
	Weight(color string) (int, bool)
}

// GroupByTeamTopic partitions notes by (team, topic) in first-seen order.
// Every note lands in exactly one group.
func GroupByTeamTopic(notes []models.Note) []models.Group {
	type key struct{ team, topic string }
	index := make(map[key]int)
	var groups []models.Group
	for _, n := range notes {
		k := key{n.Team, n.Topic}
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, models.Group{Team: n.Team, Topic: n.Topic})
		}
		groups[i].Notes = append(groups[i].Notes, n)
	}
	return groups
}

// Summarize reduces one group to its result row. A group with no notes
// yields zero percentages, a zero score, and empty quote lists.
func Summarize(g models.Group, p Palette, s sentiment.Scorer, quotesPerPolarity int) models.GroupSummary {
	sum := models.GroupSummary{Team: g.Team, Topic: g.Topic, Count: len(g.Notes)}
	if len(g.Notes) == 0 {
		return sum
	}

	var positive, negative, weightTotal int
	for _, n := range g.Notes {
		switch p.Class(n.Color) {
		case models.ClassPositive:
			positive++
		case models.ClassNegative:
			negative++
		}
		if w, ok := p.Weight(n.Color); ok {
			weightTotal += w
		}
	}

	total := float64(len(g.Notes))
	sum.PercentPositive = 100 * float64(positive) / total
	sum.PercentNegative = 100 * float64(negative) / total
	sum.Score = weightTotal / len(g.Notes)

	sum.TopPositive = topQuotes(g.Notes, p, s, models.ClassPositive, quotesPerPolarity)
	sum.TopNegative = topQuotes(g.Notes, p, s, models.ClassNegative, quotesPerPolarity)
	return sum
}

// SummarizeAll reduces every group, preserving group order.
func SummarizeAll(groups []models.Group, p Palette, s sentiment.Scorer, quotesPerPolarity int) []models.GroupSummary {
	summaries := make([]models.GroupSummary, 0, len(groups))
	for _, g := range groups {
		summaries = append(summaries, Summarize(g, p, s, quotesPerPolarity))
	}
	return summaries
}

// topQuotes ranks the notes of one polarity class by lexical score and keeps
// the strongest n. Only notes whose color class matches the polarity are
// candidates. The stable sort keeps input order on ties.
func topQuotes(notes []models.Note, p Palette, s sentiment.Scorer, class string, n int) []models.Quote {
	if n <= 0 {
		return nil
	}
	var quotes []models.Quote
	for _, note := range notes {
		if p.Class(note.Color) != class {
			continue
		}
		quotes = append(quotes, models.Quote{Text: note.Text, Polarity: s.Score(note.Text)})
	}
	sort.SliceStable(quotes, func(i, j int) bool {
		if class == models.ClassNegative {
			return quotes[i].Polarity < quotes[j].Polarity
		}
		return quotes[i].Polarity > quotes[j].Polarity
	})
	if len(quotes) > n {
		quotes = quotes[:n]
	}
	return quotes
}
