package curriculum

import (
	"fmt"
	"strings"
)

// Audit checks the catalog for structural defects. Traversal operations
// tolerate all of these at read time; Audit exists so catalog authors
// hear about them. Returns a combined error describing every problem
// found, or nil.
func (c *Catalog) Audit() error {
	return auditTopics(c.topics)
}

func auditTopics(topics []Topic) error {
	var errs []string

	idSet := make(map[string]bool, len(topics))
	for _, t := range topics {
		if t.ID == "" {
			errs = append(errs, "topic with empty id")
			continue
		}
		if idSet[t.ID] {
			errs = append(errs, fmt.Sprintf("duplicate topic id: %q", t.ID))
		}
		idSet[t.ID] = true
	}

	for _, t := range topics {
		for _, pid := range t.Prerequisites {
			if pid == t.ID {
				errs = append(errs, fmt.Sprintf("topic %q lists itself as a prerequisite", t.ID))
				continue
			}
			if !idSet[pid] {
				errs = append(errs, fmt.Sprintf("topic %q references nonexistent prerequisite %q", t.ID, pid))
			}
		}
		if t.EstimatedHours <= 0 {
			errs = append(errs, fmt.Sprintf("topic %q: estimated hours must be > 0, got %v", t.ID, t.EstimatedHours))
		}
	}

	// Cycle detection with Kahn's algorithm: whatever survives with a
	// positive in-degree after peeling is part of a cycle.
	inDegree := make(map[string]int, len(topics))
	dependents := make(map[string][]string)
	for _, t := range topics {
		known := 0
		for _, pid := range t.Prerequisites {
			if pid == t.ID || !idSet[pid] {
				continue
			}
			known++
			dependents[pid] = append(dependents[pid], t.ID)
		}
		inDegree[t.ID] = known
	}

	var queue []string
	for _, t := range topics {
		if inDegree[t.ID] == 0 {
			queue = append(queue, t.ID)
		}
	}

	visited := 0
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		visited++
		for _, dep := range dependents[id] {
			inDegree[dep]--
			if inDegree[dep] == 0 {
				queue = append(queue, dep)
			}
		}
	}

	if visited < len(idSet) {
		var cycleIDs []string
		for _, t := range topics {
			if inDegree[t.ID] > 0 {
				cycleIDs = append(cycleIDs, t.ID)
			}
		}
		errs = append(errs, fmt.Sprintf("prerequisite cycle involving topics: %s", strings.Join(cycleIDs, ", ")))
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog audit failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
