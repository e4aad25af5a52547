package badges

import (
	"sort"

	"github.com/pathwise-ed/pathwise/internal/curriculum"
)

// DepthMap holds the graph depth for each topic and the quartile boundaries.
type DepthMap struct {
	Depths     map[string]int // topic ID → depth (longest prerequisite path from a root)
	Boundaries [3]int         // Q1/Q2, Q2/Q3, Q3/Q4 boundaries
}

// ComputeDepthMap computes prerequisite depths for every topic in the catalog
// and the quartile boundaries over them.
// Depth = longest path from any root topic to this topic.
func ComputeDepthMap(c *curriculum.Catalog) *DepthMap {
	topics := c.Topics()
	depths := make(map[string]int, len(topics))

	// Kahn's ordering resolves every prerequisite before its dependents.
	// Dangling prerequisite references are skipped; topics trapped in a
	// cycle never get a depth and fall back to 0 on lookup.
	indegree := make(map[string]int, len(topics))
	dependents := make(map[string][]string)
	for _, t := range topics {
		for _, pid := range t.Prerequisites {
			if _, ok := c.Topic(pid); !ok {
				continue
			}
			indegree[t.ID]++
			dependents[pid] = append(dependents[pid], t.ID)
		}
	}

	queue := make([]string, 0, len(topics))
	for _, t := range topics {
		if indegree[t.ID] == 0 {
			queue = append(queue, t.ID)
		}
	}

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		topic, _ := c.Topic(id)
		depth := 0
		for _, pid := range topic.Prerequisites {
			if d, ok := depths[pid]; ok && d+1 > depth {
				depth = d + 1
			}
		}
		depths[id] = depth

		for _, next := range dependents[id] {
			indegree[next]--
			if indegree[next] == 0 {
				queue = append(queue, next)
			}
		}
	}

	// Collect all depths and sort for quartile computation.
	vals := make([]int, 0, len(depths))
	for _, d := range depths {
		vals = append(vals, d)
	}
	sort.Ints(vals)

	n := len(vals)
	var boundaries [3]int
	if n > 0 {
		boundaries = [3]int{
			vals[n/4],   // Q1/Q2 boundary
			vals[n/2],   // Q2/Q3 boundary
			vals[3*n/4], // Q3/Q4 boundary
		}
	}

	return &DepthMap{Depths: depths, Boundaries: boundaries}
}

// RarityForTopic returns the rarity based on a topic's prerequisite depth.
func (dm *DepthMap) RarityForTopic(topicID string) Rarity {
	depth := dm.Depths[topicID]
	switch {
	case depth > dm.Boundaries[2]:
		return RarityLegendary
	case depth > dm.Boundaries[1]:
		return RarityEpic
	case depth > dm.Boundaries[0]:
		return RarityRare
	default:
		return RarityCommon
	}
}
