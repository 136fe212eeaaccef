// Package cluster groups sticky notes by spatial proximity for exports that
// carry positions instead of team/topic columns.
//
// Edges between notes are considered closest-first until every note touches
// at least two others; the connected components that result are the groups.
// Each group is then named from the single team-label and topic-label sticky
// it contains.
package cluster

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/starford/retrolens/internal/models"
)

// Labels holds the palette colors that mark a group's team and topic stickies.
type Labels struct {
	Team  string
	Topic string
}

type edge struct {
	dist float64
	a, b int
}

// Assign partitions notes into proximity groups. Groups are ordered by the
// input position of their first note; distance ties break by input order, so
// the result is deterministic for a given input.
func Assign(notes []models.Note, labels Labels) []models.Group {
	n := len(notes)
	if n == 0 {
		return nil
	}

	edges := make([]edge, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, edge{dist: distance(notes[i], notes[j]), a: i, b: j})
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].dist != edges[j].dist {
			return edges[i].dist < edges[j].dist
		}
		if edges[i].a != edges[j].a {
			return edges[i].a < edges[j].a
		}
		return edges[i].b < edges[j].b
	})

	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	degree := make([]int, n)
	for _, e := range edges {
		union(parent, e.a, e.b)
		degree[e.a]++
		degree[e.b]++
		if minDegree(degree) >= 2 {
			break
		}
	}

	// Collect components in order of their first note.
	var order []int
	members := make(map[int][]int, n)
	for i := 0; i < n; i++ {
		root := find(parent, i)
		if _, seen := members[root]; !seen {
			order = append(order, root)
		}
		members[root] = append(members[root], i)
	}

	groups := make([]models.Group, 0, len(order))
	for number, root := range order {
		groups = append(groups, buildGroup(notes, members[root], labels, number))
	}
	return groups
}

// buildGroup names one component from its label stickies and strips them
// from the scored notes.
func buildGroup(notes []models.Note, members []int, labels Labels, number int) models.Group {
	var teamLabels, topicLabels, body []models.Note
	for _, i := range members {
		note := notes[i]
		switch {
		case strings.EqualFold(note.Color, labels.Team):
			teamLabels = append(teamLabels, note)
		case strings.EqualFold(note.Color, labels.Topic):
			topicLabels = append(topicLabels, note)
		default:
			body = append(body, note)
		}
	}

	g := models.Group{Notes: body}
	if len(teamLabels) == 1 && len(topicLabels) == 1 {
		g.Team = teamLabels[0].Text
		g.Topic = topicLabels[0].Text
		return g
	}
	g.Team = fmt.Sprintf("Group #%d", number)
	g.Synthetic = true
	return g
}

func distance(a, b models.Note) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

func minDegree(degree []int) int {
	least := degree[0]
	for _, d := range degree[1:] {
		if d < least {
			least = d
		}
	}
	return least
}

// find returns the component root for i, with path compression.
func find(parent []int, i int) int {
	for parent[i] != i {
		parent[i] = parent[parent[i]]
		i = parent[i]
	}
	return i
}

func union(parent []int, a, b int) {
	ra, rb := find(parent, a), find(parent, b)
	if ra != rb {
		parent[rb] = ra
	}
}
