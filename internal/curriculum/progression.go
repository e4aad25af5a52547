package curriculum

import "fmt"

// PathValidation is the result of checking an ordered topic sequence.
// Errors are structural problems that make the path invalid; warnings
// are advisory and never flip Valid.
type PathValidation struct {
	Valid    bool
	Errors   []string
	Warnings []string
}

// maxDifficultyStep is the largest tier change between consecutive
// topics that passes without a warning.
const maxDifficultyStep = 1

// ValidateLearningPath checks an ordered sequence of topic ids for
// structural problems: empty input, unknown ids, duplicates, and
// prerequisites appearing after their dependents. Difficulty smoothness
// is assessed as well, but only ever contributes warnings.
func (c *Catalog) ValidateLearningPath(ids []string) PathValidation {
	v := PathValidation{Valid: true}

	if len(ids) == 0 {
		v.Valid = false
		v.Errors = append(v.Errors, "learning path is empty")
		return v
	}

	firstIndex := make(map[string]int, len(ids))
	for i, id := range ids {
		if _, seen := firstIndex[id]; seen {
			v.Errors = append(v.Errors, fmt.Sprintf("duplicate topic %q in path", id))
			continue
		}
		firstIndex[id] = i
		if _, ok := c.byID[id]; !ok {
			v.Errors = append(v.Errors, fmt.Sprintf("unknown topic %q", id))
		}
	}

	// A prerequisite listed after its dependent breaks the ordering
	// contract. Prerequisites absent from the sequence are fine: a path
	// is not required to carry the full closure.
	for i, id := range ids {
		if firstIndex[id] != i {
			continue
		}
		t, ok := c.byID[id]
		if !ok {
			continue
		}
		for _, pid := range t.Prerequisites {
			if j, inPath := firstIndex[pid]; inPath && j > i {
				v.Errors = append(v.Errors, fmt.Sprintf("topic %q appears before its prerequisite %q", id, pid))
			}
		}
	}

	diff := c.ValidateDifficultyProgression(ids)
	v.Warnings = append(v.Warnings, diff.Warnings...)

	v.Valid = len(v.Errors) == 0
	return v
}

// ValidateDifficultyProgression checks only the difficulty smoothness
// of a sequence. A change of more than one tier between consecutive
// topics produces a warning naming both topics; warnings never
// invalidate the result. Unknown ids, however, are errors and do.
func (c *Catalog) ValidateDifficultyProgression(ids []string) PathValidation {
	v := PathValidation{Valid: true}

	reported := make(map[string]bool)
	for _, id := range ids {
		if _, ok := c.byID[id]; !ok && !reported[id] {
			reported[id] = true
			v.Errors = append(v.Errors, fmt.Sprintf("unknown topic %q", id))
		}
	}

	for i := 1; i < len(ids); i++ {
		prev, okPrev := c.byID[ids[i-1]]
		cur, okCur := c.byID[ids[i]]
		if !okPrev || !okCur {
			continue
		}
		step := int(cur.Difficulty) - int(prev.Difficulty)
		switch {
		case step > maxDifficultyStep:
			v.Warnings = append(v.Warnings, fmt.Sprintf(
				"difficulty jump from %q (%s) to %q (%s)",
				prev.ID, prev.Difficulty, cur.ID, cur.Difficulty))
		case step < -maxDifficultyStep:
			v.Warnings = append(v.Warnings, fmt.Sprintf(
				"difficulty drop from %q (%s) to %q (%s)",
				prev.ID, prev.Difficulty, cur.ID, cur.Difficulty))
		}
	}

	v.Valid = len(v.Errors) == 0
	return v
}
