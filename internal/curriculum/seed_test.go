package curriculum

import (
	"testing"
)

func TestDefault_TopicCount(t *testing.T) {
	c := Default()
	if c.Len() != 36 {
		t.Errorf("got %d topics, want 36", c.Len())
	}
}

func TestDefault_SharedInstance(t *testing.T) {
	if Default() != Default() {
		t.Error("Default should return the same catalog instance")
	}
}

func TestDefault_PrereqsStayWithinEarlierOrSameGrade(t *testing.T) {
	gradeRank := map[string]int{"k": 0, "1": 1, "2": 2}
	for _, topic := range Default().Topics() {
		for _, pid := range topic.Prerequisites {
			prereq, ok := Default().Topic(pid)
			if !ok {
				t.Fatalf("topic %q has unknown prerequisite %q", topic.ID, pid)
			}
			if gradeRank[prereq.GradeID] > gradeRank[topic.GradeID] {
				t.Errorf("topic %q (grade %s) depends on later-grade topic %q (grade %s)",
					topic.ID, topic.GradeID, pid, prereq.GradeID)
			}
		}
	}
}

func TestDefault_RetiredTopicsAreInactiveOnly(t *testing.T) {
	var inactive []string
	for _, topic := range Default().Topics() {
		if !topic.Active {
			inactive = append(inactive, topic.ID)
		}
	}
	if len(inactive) != 1 || inactive[0] != "2-math-legacy-abacus" {
		t.Errorf("got inactive topics %v, want only 2-math-legacy-abacus", inactive)
	}
}

func TestDefault_EveryTopicHasSkills(t *testing.T) {
	for _, topic := range Default().Topics() {
		if len(topic.Skills) == 0 {
			t.Errorf("topic %q has no skill tags", topic.ID)
		}
	}
}
