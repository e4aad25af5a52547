package analytics

import (
	"github.com/pathwise-ed/pathwise/internal/curriculum"
	"github.com/pathwise-ed/pathwise/internal/progress"
)

// Summary aggregates a learner's progress across the catalog. Counts cover
// active topics only; hours spent include every recorded completion.
type Summary struct {
	TotalTopics     int
	CompletedTopics int
	ForcedTopics    int
	HoursSpent      float64
	HoursRemaining  float64
	Groups          []GroupProgress
	Ready           []curriculum.Topic
}

// GroupProgress is the completion breakdown for one grade/subject pair.
type GroupProgress struct {
	Group          curriculum.GradeSubject
	Total          int
	Completed      int
	HoursRemaining float64
}

// Percent returns the completion percentage for the group.
func (g GroupProgress) Percent() float64 {
	if g.Total == 0 {
		return 0
	}
	return float64(g.Completed) / float64(g.Total) * 100
}

// BuildSummary computes a progress summary for the learner state over the
// catalog. Ready holds the topics the learner can start right now, in group
// order.
func BuildSummary(c *curriculum.Catalog, st *progress.State) Summary {
	completed := st.CompletedSet()
	summary := Summary{HoursSpent: st.TotalHours()}

	for _, comp := range st.Completions() {
		if comp.Forced {
			summary.ForcedTopics++
		}
	}

	for _, group := range c.Groups() {
		gp := GroupProgress{Group: group}
		for _, topic := range c.GroupTopics(group.GradeID, group.SubjectID) {
			gp.Total++
			if completed[topic.ID] {
				gp.Completed++
				continue
			}
			gp.HoursRemaining += topic.EstimatedHours
			if c.CheckPrerequisites(topic.ID, completed).CanStart {
				summary.Ready = append(summary.Ready, topic)
			}
		}
		summary.TotalTopics += gp.Total
		summary.CompletedTopics += gp.Completed
		summary.HoursRemaining += gp.HoursRemaining
		summary.Groups = append(summary.Groups, gp)
	}

	return summary
}
