package curriculum

import (
	"slices"
	"testing"
)

func TestPrerequisiteChain_NoPrereqs(t *testing.T) {
	c := Default()
	chain := c.PrerequisiteChain("k-math-counting-1-10")
	if len(chain) != 0 {
		t.Errorf("root topic: got chain %v, want empty", chain)
	}
}

func TestPrerequisiteChain_TransitiveClosure(t *testing.T) {
	c := Default()

	// simple-subtraction -> simple-addition -> {counting-1-10, number-recognition}
	chain := c.PrerequisiteChain("k-math-simple-subtraction")
	want := []string{"k-math-counting-1-10", "k-math-number-recognition", "k-math-simple-addition"}
	if !slices.Equal(chain, want) {
		t.Errorf("got chain %v, want %v", chain, want)
	}

	// story-problems pulls in both arithmetic branches; the shared
	// ancestors appear once.
	chain = c.PrerequisiteChain("k-math-story-problems")
	want = []string{
		"k-math-counting-1-10",
		"k-math-number-recognition",
		"k-math-simple-addition",
		"k-math-simple-subtraction",
	}
	if !slices.Equal(chain, want) {
		t.Errorf("got chain %v, want %v", chain, want)
	}
}

func TestPrerequisiteChain_SharedAncestorOnce(t *testing.T) {
	// Diamond: a depends on b and c, both of which depend on d.
	topics := []Topic{
		{ID: "d", GradeID: "k", SubjectID: "math", EstimatedHours: 1, Active: true},
		{ID: "b", GradeID: "k", SubjectID: "math", EstimatedHours: 1, Prerequisites: []string{"d"}, Active: true},
		{ID: "c", GradeID: "k", SubjectID: "math", EstimatedHours: 1, Prerequisites: []string{"d"}, Active: true},
		{ID: "a", GradeID: "k", SubjectID: "math", EstimatedHours: 1, Prerequisites: []string{"b", "c"}, Active: true},
	}
	c := NewCatalog(topics)

	chain := c.PrerequisiteChain("a")
	want := []string{"d", "b", "c"}
	if !slices.Equal(chain, want) {
		t.Errorf("got chain %v, want %v", chain, want)
	}
}

func TestPrerequisiteChain_PrereqsPrecedeDependents(t *testing.T) {
	c := Default()
	for _, topic := range c.Topics() {
		chain := c.PrerequisiteChain(topic.ID)

		pos := make(map[string]int, len(chain))
		for i, id := range chain {
			if _, dup := pos[id]; dup {
				t.Errorf("chain of %q contains %q twice", topic.ID, id)
			}
			pos[id] = i
		}
		if _, selfIncluded := pos[topic.ID]; selfIncluded {
			t.Errorf("chain of %q includes the topic itself", topic.ID)
		}

		for i, id := range chain {
			entry, ok := c.Topic(id)
			if !ok {
				t.Fatalf("chain of %q contains unknown id %q", topic.ID, id)
			}
			for _, pid := range entry.Prerequisites {
				j, inChain := pos[pid]
				if !inChain {
					t.Errorf("chain of %q: %q is present but its prerequisite %q is not", topic.ID, id, pid)
					continue
				}
				if j > i {
					t.Errorf("chain of %q: %q (index %d) precedes its prerequisite %q (index %d)",
						topic.ID, id, i, pid, j)
				}
			}
		}
	}
}

func TestPrerequisiteChain_UnknownTopic(t *testing.T) {
	c := Default()
	if chain := c.PrerequisiteChain("nonexistent"); len(chain) != 0 {
		t.Errorf("unknown topic: got chain %v, want empty", chain)
	}
}

func TestPrerequisiteChain_SkipsDanglingPrereq(t *testing.T) {
	topics := []Topic{
		{ID: "a", GradeID: "k", SubjectID: "math", EstimatedHours: 1, Active: true},
		{ID: "b", GradeID: "k", SubjectID: "math", EstimatedHours: 1, Prerequisites: []string{"a", "ghost"}, Active: true},
	}
	c := NewCatalog(topics)

	chain := c.PrerequisiteChain("b")
	want := []string{"a"}
	if !slices.Equal(chain, want) {
		t.Errorf("got chain %v, want %v", chain, want)
	}
}

func TestPrerequisiteChain_CycleTerminates(t *testing.T) {
	topics := []Topic{
		{ID: "a", GradeID: "k", SubjectID: "math", EstimatedHours: 1, Prerequisites: []string{"b"}, Active: true},
		{ID: "b", GradeID: "k", SubjectID: "math", EstimatedHours: 1, Prerequisites: []string{"a"}, Active: true},
	}
	c := NewCatalog(topics)

	chain := c.PrerequisiteChain("a")
	if !slices.Equal(chain, []string{"b"}) {
		t.Errorf("chain of a: got %v, want [b]", chain)
	}
	chain = c.PrerequisiteChain("b")
	if !slices.Equal(chain, []string{"a"}) {
		t.Errorf("chain of b: got %v, want [a]", chain)
	}
}
