package curriculum

import (
	"testing"
)

func TestLearningPath_TopologicalOrder(t *testing.T) {
	c := Default()
	path := c.LearningPath("k", "math")
	if len(path) != 10 {
		t.Fatalf("got %d topics, want 10", len(path))
	}

	pos := make(map[string]int, len(path))
	for i, topic := range path {
		if _, dup := pos[topic.ID]; dup {
			t.Fatalf("topic %q appears twice in path", topic.ID)
		}
		pos[topic.ID] = i
	}

	for i, topic := range path {
		for _, pid := range topic.Prerequisites {
			j, inPath := pos[pid]
			if !inPath {
				continue
			}
			if j > i {
				t.Errorf("topic %q (index %d) precedes its prerequisite %q (index %d)",
					topic.ID, i, pid, j)
			}
		}
	}
}

func TestLearningPath_CoversWholeGroup(t *testing.T) {
	c := Default()
	for _, g := range c.Groups() {
		path := c.LearningPath(g.GradeID, g.SubjectID)
		group := c.GroupTopics(g.GradeID, g.SubjectID)
		if len(path) != len(group) {
			t.Errorf("%s/%s: path has %d topics, group has %d",
				g.GradeID, g.SubjectID, len(path), len(group))
		}
		seen := make(map[string]bool, len(path))
		for _, topic := range path {
			seen[topic.ID] = true
		}
		for _, topic := range group {
			if !seen[topic.ID] {
				t.Errorf("%s/%s: path is missing %q", g.GradeID, g.SubjectID, topic.ID)
			}
		}
	}
}

func TestLearningPath_Deterministic(t *testing.T) {
	c := Default()
	first := c.LearningPath("1", "math")
	second := c.LearningPath("1", "math")
	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Errorf("index %d: %q vs %q", i, first[i].ID, second[i].ID)
		}
	}
}

func TestLearningPath_ExcludesInactive(t *testing.T) {
	c := Default()
	path := c.LearningPath("2", "math")
	if len(path) != 6 {
		t.Fatalf("got %d topics in 2/math path, want 6", len(path))
	}
	for _, topic := range path {
		if topic.ID == "2-math-legacy-abacus" {
			t.Error("retired topic should not appear in a learning path")
		}
	}
}

func TestLearningPath_IgnoresCrossGroupEdges(t *testing.T) {
	c := Default()

	// 1-math-place-value requires a kindergarten topic. The edge must
	// neither pull the kindergarten topic in nor block place-value.
	path := c.LearningPath("1", "math")
	if len(path) != 9 {
		t.Fatalf("got %d topics in 1/math path, want 9", len(path))
	}
	found := false
	for _, topic := range path {
		if topic.GradeID != "1" || topic.SubjectID != "math" {
			t.Errorf("path contains out-of-group topic %q (%s/%s)",
				topic.ID, topic.GradeID, topic.SubjectID)
		}
		if topic.ID == "1-math-place-value" {
			found = true
		}
	}
	if !found {
		t.Error("1-math-place-value should appear despite its cross-grade prerequisite")
	}
}

func TestLearningPath_UnknownPair(t *testing.T) {
	c := Default()
	if path := c.LearningPath("9", "latin"); len(path) != 0 {
		t.Errorf("unknown pair: got %d topics, want 0", len(path))
	}
}

func TestLearningPath_CycleStillEmitsEachTopicOnce(t *testing.T) {
	topics := []Topic{
		{ID: "a", GradeID: "k", SubjectID: "math", EstimatedHours: 1, SortOrder: 10, Prerequisites: []string{"b"}, Active: true},
		{ID: "b", GradeID: "k", SubjectID: "math", EstimatedHours: 1, SortOrder: 20, Prerequisites: []string{"a"}, Active: true},
		{ID: "c", GradeID: "k", SubjectID: "math", EstimatedHours: 1, SortOrder: 30, Active: true},
	}
	c := NewCatalog(topics)

	path := c.LearningPath("k", "math")
	if len(path) != 3 {
		t.Fatalf("got %d topics, want 3 (cycle members emitted once each)", len(path))
	}
	seen := make(map[string]bool)
	for _, topic := range path {
		if seen[topic.ID] {
			t.Errorf("topic %q emitted twice", topic.ID)
		}
		seen[topic.ID] = true
	}
	for _, id := range []string{"a", "b", "c"} {
		if !seen[id] {
			t.Errorf("topic %q missing from path", id)
		}
	}
}
