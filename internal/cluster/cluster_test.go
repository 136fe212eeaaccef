package cluster

import (
	"testing"

	"github.com/starford/retrolens/internal/models"
)

var testLabels = Labels{Team: "#86E6D9", Topic: "#FFFFFF"}

func note(i int, color, text string, x, y float64) models.Note {
	return models.Note{Index: i, Color: color, Text: text, X: x, Y: y, HasPosition: true}
}

func TestAssign_TwoClusters(t *testing.T) {
	notes := []models.Note{
		// Cluster around the origin.
		note(0, "#86E6D9", "TeamA", 0, 0),
		note(1, "#FFFFFF", "Flow", 1, 0),
		note(2, "#459C5B", "great work", 0, 1),
		note(3, "#E95E5E", "missed deadline", 1, 1),
		// Cluster far away.
		note(4, "#86E6D9", "TeamB", 100, 100),
		note(5, "#ffffff", "Quality", 101, 100),
		note(6, "#AAED92", "solid reviews", 100, 101),
	}

	groups := Assign(notes, testLabels)
	if len(groups) != 2 {
		t.Fatalf("groups = %d, want 2", len(groups))
	}

	a := groups[0]
	if a.Team != "TeamA" || a.Topic != "Flow" || a.Synthetic {
		t.Errorf("group 0 = %+v", a)
	}
	if len(a.Notes) != 2 {
		t.Fatalf("group 0 notes = %d, want 2 (labels excluded)", len(a.Notes))
	}
	if a.Notes[0].Text != "great work" || a.Notes[1].Text != "missed deadline" {
		t.Errorf("group 0 notes = %v", a.Notes)
	}

	b := groups[1]
	if b.Team != "TeamB" || b.Topic != "Quality" {
		t.Errorf("group 1 = %+v", b)
	}
	if len(b.Notes) != 1 || b.Notes[0].Text != "solid reviews" {
		t.Errorf("group 1 notes = %v", b.Notes)
	}
}

func TestAssign_MissingLabelsSynthetic(t *testing.T) {
	notes := []models.Note{
		note(0, "#459C5B", "one", 0, 0),
		note(1, "#E95E5E", "two", 1, 0),
		note(2, "#FCF281", "three", 0, 1),
	}

	groups := Assign(notes, testLabels)
	if len(groups) != 1 {
		t.Fatalf("groups = %d, want 1", len(groups))
	}
	g := groups[0]
	if !g.Synthetic || g.Team != "Group #0" || g.Topic != "" {
		t.Errorf("group = %+v", g)
	}
	if len(g.Notes) != 3 {
		t.Errorf("notes = %d, want 3", len(g.Notes))
	}
}

func TestAssign_NoteCountPreserved(t *testing.T) {
	notes := []models.Note{
		note(0, "#459C5B", "a", 0, 0),
		note(1, "#459C5B", "b", 2, 0),
		note(2, "#459C5B", "c", 0, 2),
		note(3, "#459C5B", "d", 50, 50),
		note(4, "#459C5B", "e", 52, 50),
		note(5, "#459C5B", "f", 50, 52),
	}
	groups := Assign(notes, testLabels)
	total := 0
	for _, g := range groups {
		total += len(g.Notes)
	}
	if total != len(notes) {
		t.Errorf("total notes across groups = %d, want %d", total, len(notes))
	}
}

func TestAssign_Deterministic(t *testing.T) {
	notes := []models.Note{
		note(0, "#86E6D9", "TeamA", 0, 0),
		note(1, "#FFFFFF", "Flow", 1, 0),
		note(2, "#459C5B", "same spot", 3, 3),
		note(3, "#E95E5E", "same spot too", 3, 3),
	}
	first := Assign(notes, testLabels)
	second := Assign(notes, testLabels)
	if len(first) != len(second) {
		t.Fatalf("group counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Team != second[i].Team || len(first[i].Notes) != len(second[i].Notes) {
			t.Errorf("group %d differs between runs", i)
		}
	}
}

func TestAssign_Empty(t *testing.T) {
	if groups := Assign(nil, testLabels); groups != nil {
		t.Errorf("expected nil groups, got %v", groups)
	}
}

func TestAssign_SingleNote(t *testing.T) {
	groups := Assign([]models.Note{note(0, "#459C5B", "alone", 5, 5)}, testLabels)
	if len(groups) != 1 || len(groups[0].Notes) != 1 {
		t.Fatalf("groups = %+v", groups)
	}
}
