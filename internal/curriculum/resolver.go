package curriculum

// PrerequisiteChain returns the full transitive prerequisite closure of
// a topic, ordered so every id precedes all ids that depend on it. The
// target itself is not included and no id appears twice.
//
// An unknown id yields an empty chain. Prerequisite ids that reference
// no catalog topic are skipped. Cycle defense: ids are marked visited
// before their own prerequisites are expanded, so re-encountering one
// truncates that branch instead of recursing; traversal terminates on
// any catalog, well-formed or not.
func (c *Catalog) PrerequisiteChain(id string) []string {
	target, ok := c.byID[id]
	if !ok {
		return nil
	}

	visited := map[string]bool{id: true}
	var chain []string

	var expand func(prereqIDs []string)
	expand = func(prereqIDs []string) {
		for _, pid := range prereqIDs {
			if visited[pid] {
				continue
			}
			p, ok := c.byID[pid]
			if !ok {
				continue
			}
			visited[pid] = true
			expand(p.Prerequisites)
			chain = append(chain, pid)
		}
	}
	expand(target.Prerequisites)

	return chain
}
