package curriculum

// Eligibility is the result of a prerequisite check for one topic
// against one learner's completed set.
type Eligibility struct {
	// CanStart is true when every direct prerequisite is completed.
	CanStart bool

	// Missing lists the direct prerequisite ids not yet completed, in
	// the topic's declaration order.
	Missing []string

	// Recommended lists advisory warm-up topics: active topics in the
	// same grade and subject at a strictly lower difficulty sharing at
	// least one skill tag, excluding completed topics and direct
	// prerequisites. Never affects CanStart.
	Recommended []string

	// Chain is the full prerequisite closure, for traceability.
	Chain []string
}

// CheckPrerequisites reports whether a topic may be started given a
// completed-topic set. An unknown topic id yields CanStart=false with
// empty lists. Output is fully determined by the catalog snapshot and
// the completed set.
func (c *Catalog) CheckPrerequisites(id string, completed map[string]bool) Eligibility {
	target, ok := c.byID[id]
	if !ok {
		return Eligibility{}
	}

	var missing []string
	for _, pid := range target.Prerequisites {
		if !completed[pid] {
			missing = append(missing, pid)
		}
	}

	return Eligibility{
		CanStart:    len(missing) == 0,
		Missing:     missing,
		Recommended: c.recommendWarmups(target, completed),
		Chain:       c.PrerequisiteChain(id),
	}
}

// recommendWarmups selects warm-up candidates from the target's grade
// and subject: active topics at a strictly lower difficulty sharing a
// skill tag, excluding completed topics and direct prerequisites.
func (c *Catalog) recommendWarmups(target *Topic, completed map[string]bool) []string {
	direct := make(map[string]bool, len(target.Prerequisites))
	for _, pid := range target.Prerequisites {
		direct[pid] = true
	}

	group := c.byGroup[GradeSubject{GradeID: target.GradeID, SubjectID: target.SubjectID}]
	var recommended []string
	for _, t := range group {
		if t.ID == target.ID {
			continue
		}
		if t.Difficulty >= target.Difficulty {
			continue
		}
		if completed[t.ID] || direct[t.ID] {
			continue
		}
		if !sharesSkill(t, target) {
			continue
		}
		recommended = append(recommended, t.ID)
	}
	return recommended
}

func sharesSkill(a, b *Topic) bool {
	for _, s := range a.Skills {
		if b.HasSkill(s) {
			return true
		}
	}
	return false
}
