// Package loader reads board-export CSV files into notes.
package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/starford/retrolens/internal/apperr"
	"github.com/starford/retrolens/internal/models"
)

// Columns names the export columns the loader reads. Color and Text are
// always required. Team and Topic are used as a pair: when either is absent
// from the file, the X and Y position columns become required instead so
// notes can be grouped by proximity.
type Columns struct {
	Team  string
	Topic string
	Color string
	Text  string
	ID    string
	X     string
	Y     string
}

// Result is the outcome of loading one export file.
type Result struct {
	Notes        []models.Note
	Skipped      int  // malformed rows dropped
	HasTeamTopic bool // both team and topic columns were present
}

// Load reads the board export at path into notes. Malformed rows are skipped
// and counted, never fatal; a missing required column is.
func Load(path string, cols Columns) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: open input: %w", err)
	}
	defer f.Close()

	return Read(f, cols)
}

// Read parses CSV export data from r. See Load.
func Read(r io.Reader, cols Columns) (*Result, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("loader: %w", apperr.ErrEmptyInput)
	}
	if err != nil {
		return nil, fmt.Errorf("loader: read header: %w", err)
	}

	idx := indexColumns(header)

	color, ok := idx[key(cols.Color)]
	if !ok {
		return nil, fmt.Errorf("loader: %w: %q", apperr.ErrMissingColumn, cols.Color)
	}
	text, ok := idx[key(cols.Text)]
	if !ok {
		return nil, fmt.Errorf("loader: %w: %q", apperr.ErrMissingColumn, cols.Text)
	}

	team, haveTeam := idx[key(cols.Team)]
	topic, haveTopic := idx[key(cols.Topic)]
	x, haveX := idx[key(cols.X)]
	y, haveY := idx[key(cols.Y)]

	res := &Result{HasTeamTopic: haveTeam && haveTopic}
	if !res.HasTeamTopic {
		// Without team/topic the only way to group notes is by position.
		if !haveX || !haveY {
			return nil, fmt.Errorf("loader: %w: need %q and %q, or %q and %q",
				apperr.ErrMissingColumn, cols.Team, cols.Topic, cols.X, cols.Y)
		}
	}
	if !res.HasTeamTopic {
		team, topic = -1, -1
	}

	id, haveID := idx[key(cols.ID)]
	if !haveID {
		id = -1
	}
	if !haveX || !haveY {
		x, y = -1, -1
	}

	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// A row with broken quoting; drop it and keep going.
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				res.Skipped++
				continue
			}
			return nil, fmt.Errorf("loader: read row: %w", err)
		}

		note := models.Note{
			ID:    field(rec, id),
			Team:  field(rec, team),
			Topic: field(rec, topic),
			Color: field(rec, color),
			Text:  field(rec, text),
			Index: len(res.Notes),
		}
		if note.Color == "" || note.Text == "" {
			res.Skipped++
			continue
		}

		if x >= 0 {
			px, errX := strconv.ParseFloat(field(rec, x), 64)
			py, errY := strconv.ParseFloat(field(rec, y), 64)
			if errX == nil && errY == nil {
				note.X, note.Y, note.HasPosition = px, py, true
			} else if !res.HasTeamTopic {
				// Positions are load-bearing here; a note without one
				// cannot be clustered.
				res.Skipped++
				continue
			}
		}

		res.Notes = append(res.Notes, note)
	}

	return res, nil
}

// indexColumns maps lower-cased header names to their positions. The first
// occurrence of a duplicated header wins.
func indexColumns(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		k := key(name)
		if k == "" {
			continue
		}
		if _, dup := idx[k]; !dup {
			idx[k] = i
		}
	}
	return idx
}

func key(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// field returns the trimmed value at position i, or "" when the row is too
// short or the column is absent.
func field(rec []string, i int) string {
	if i < 0 || i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}
