package curriculum

// Traversal marks for the path builder's iterative DFS.
const (
	colorUnvisited = iota
	colorInProgress
	colorDone
)

// LearningPath returns the active topics matching (grade, subject),
// each exactly once, ordered so that every prerequisite that is itself
// part of the result precedes its dependents. Seeds are taken in
// (sort order, id) order, which makes the result deterministic and
// stable across calls on the same catalog.
//
// Prerequisite edges pointing outside the filtered subset (other
// grade/subject, or inactive) are ignored: they neither pull in the
// remote topic nor block the dependent. A prerequisite encountered
// while still in progress is a cycle; it is not re-entered, and the
// topic is still emitted once when its own frame completes. An
// unmatched pair yields an empty result.
func (c *Catalog) LearningPath(grade, subject string) []Topic {
	group := c.byGroup[GradeSubject{GradeID: grade, SubjectID: subject}]
	if len(group) == 0 {
		return nil
	}

	inGroup := make(map[string]*Topic, len(group))
	for _, t := range group {
		inGroup[t.ID] = t
	}

	type frame struct {
		topic *Topic
		next  int
	}

	color := make(map[string]int, len(group))
	result := make([]Topic, 0, len(group))

	for _, seed := range group {
		if color[seed.ID] != colorUnvisited {
			continue
		}
		color[seed.ID] = colorInProgress
		stack := []frame{{topic: seed}}

		for len(stack) > 0 {
			f := &stack[len(stack)-1]
			if f.next < len(f.topic.Prerequisites) {
				pid := f.topic.Prerequisites[f.next]
				f.next++
				p, ok := inGroup[pid]
				if !ok || color[pid] != colorUnvisited {
					continue
				}
				color[pid] = colorInProgress
				stack = append(stack, frame{topic: p})
				continue
			}
			color[f.topic.ID] = colorDone
			result = append(result, *f.topic)
			stack = stack[:len(stack)-1]
		}
	}

	return result
}
