package internal

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/starford/retrolens/internal/sentiment"
	"github.com/starford/retrolens/internal/testutil"
)

// lengthScorer makes rankings predictable without the VADER lexicon:
// longer text means stronger polarity.
var lengthScorer = sentiment.Func(func(text string) float64 {
	return float64(len(text)) / 100
})

func TestRun_EndToEnd(t *testing.T) {
	input := testutil.WriteExport(t, [][]string{
		{"Team", "Topic", "BG Color", "Text"},
		{"TeamA", "Flow", "#459C5B", "great work"},
		{"TeamA", "Flow", "#E95E5E", "missed deadline"},
		{"TeamA", "Flow", "#459C5B", "nice job"},
		{"TeamB", "Quality", "#FCF281", "it is what it is"},
	})
	output := filepath.Join(t.TempDir(), "report.csv")

	err := Run(context.Background(),
		WithConfig(NewDefaultConfig()),
		WithInput(input),
		WithOutput(output),
		WithScorer(lengthScorer),
		WithQuoteCount(2),
	)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	rows := readCSV(t, output)
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want header + 2 groups", len(rows))
	}

	teamA := rows[1]
	if teamA[0] != "TeamA" || teamA[1] != "Flow" || teamA[2] != "3" {
		t.Errorf("TeamA row = %v", teamA)
	}
	if teamA[3] != "66.7" || teamA[4] != "33.3" {
		t.Errorf("percentages = %q / %q, want 66.7 / 33.3", teamA[3], teamA[4])
	}
	if teamA[5] != "66" { // (100 + 0 + 100) / 3
		t.Errorf("score = %q, want 66", teamA[5])
	}
	// lengthScorer ranks "great work" above "nice job".
	if teamA[6] != "great work | nice job" {
		t.Errorf("top positive = %q", teamA[6])
	}
	if teamA[7] != "missed deadline" {
		t.Errorf("top negative = %q", teamA[7])
	}

	teamB := rows[2]
	if teamB[0] != "TeamB" || teamB[3] != "0.0" || teamB[4] != "0.0" {
		t.Errorf("TeamB row = %v", teamB)
	}
}

// Notes summed across all groups must equal the loaded notes: grouping never
// drops or double-counts.
func TestRun_NoteCountConserved(t *testing.T) {
	input := testutil.WriteExport(t, [][]string{
		{"Team", "Topic", "BG Color", "Text"},
		{"TeamA", "Flow", "#459C5B", "a"},
		{"TeamA", "Quality", "#AAED92", "b"},
		{"TeamB", "Flow", "#FFC061", "c"},
		{"TeamB", "Flow", "#E95E5E", "d"},
		{"TeamC", "Morale", "#00FF00", "unmapped color still counts"},
	})
	output := filepath.Join(t.TempDir(), "report.csv")

	err := Run(context.Background(),
		WithConfig(NewDefaultConfig()),
		WithInput(input),
		WithOutput(output),
		WithScorer(lengthScorer),
	)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	rows := readCSV(t, output)
	total := 0
	for _, row := range rows[1:] {
		count, err := strconv.Atoi(row[2])
		if err != nil {
			t.Fatalf("bad count %q: %v", row[2], err)
		}
		total += count
	}
	if total != 5 {
		t.Errorf("total notes across groups = %d, want 5", total)
	}
}

func TestRun_PositionalExport(t *testing.T) {
	input := testutil.WriteExport(t, [][]string{
		{"ID", "BG Color", "Text", "Position X", "Position Y"},
		{"1", "#86E6D9", "TeamA", "0", "0"},
		{"2", "#FFFFFF", "Flow", "10", "0"},
		{"3", "#459C5B", "great work", "0", "10"},
		{"4", "#E95E5E", "missed deadline", "10", "10"},
	})
	output := filepath.Join(t.TempDir(), "report.csv")

	err := Run(context.Background(),
		WithConfig(NewDefaultConfig()),
		WithInput(input),
		WithOutput(output),
		WithScorer(lengthScorer),
	)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	rows := readCSV(t, output)
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want header + 1 group", len(rows))
	}
	g := rows[1]
	if g[0] != "TeamA" || g[1] != "Flow" {
		t.Errorf("group identity = %q/%q, want TeamA/Flow", g[0], g[1])
	}
	if g[2] != "2" { // label stickies are identity, not feedback
		t.Errorf("count = %q, want 2", g[2])
	}
}

func TestRun_MissingInputFatal(t *testing.T) {
	err := Run(context.Background(),
		WithConfig(NewDefaultConfig()),
		WithInput(filepath.Join(t.TempDir(), "nope.csv")),
		WithOutput(filepath.Join(t.TempDir(), "report.csv")),
		WithScorer(lengthScorer),
	)
	if err == nil {
		t.Fatal("missing input file should fail")
	}
}

func TestRun_RequiresConfigAndInput(t *testing.T) {
	if err := Run(context.Background()); err == nil {
		t.Fatal("missing config should fail")
	}
	if err := Run(context.Background(), WithConfig(NewDefaultConfig())); err == nil {
		t.Fatal("missing input should fail")
	}
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	return rows
}
