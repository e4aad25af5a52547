package curriculum

import (
	"slices"
	"testing"
)

func TestCheckPrerequisites_NothingCompleted(t *testing.T) {
	c := Default()
	elig := c.CheckPrerequisites("k-math-simple-addition", map[string]bool{})

	if elig.CanStart {
		t.Error("simple-addition should be blocked with nothing completed")
	}
	wantMissing := []string{"k-math-counting-1-10", "k-math-number-recognition"}
	if !slices.Equal(elig.Missing, wantMissing) {
		t.Errorf("got missing %v, want %v", elig.Missing, wantMissing)
	}
	if !slices.Equal(elig.Chain, wantMissing) {
		t.Errorf("got chain %v, want %v", elig.Chain, wantMissing)
	}
}

func TestCheckPrerequisites_AllCompleted(t *testing.T) {
	c := Default()
	completed := map[string]bool{
		"k-math-counting-1-10":      true,
		"k-math-number-recognition": true,
	}
	elig := c.CheckPrerequisites("k-math-simple-addition", completed)

	if !elig.CanStart {
		t.Errorf("simple-addition should be startable, missing: %v", elig.Missing)
	}
	if len(elig.Missing) != 0 {
		t.Errorf("got missing %v, want empty", elig.Missing)
	}
}

func TestCheckPrerequisites_PartiallyCompleted(t *testing.T) {
	c := Default()
	completed := map[string]bool{"k-math-counting-1-10": true}
	elig := c.CheckPrerequisites("k-math-simple-addition", completed)

	if elig.CanStart {
		t.Error("one of two prerequisites should not unlock the topic")
	}
	want := []string{"k-math-number-recognition"}
	if !slices.Equal(elig.Missing, want) {
		t.Errorf("got missing %v, want %v", elig.Missing, want)
	}
}

func TestCheckPrerequisites_RootAlwaysStartable(t *testing.T) {
	c := Default()
	elig := c.CheckPrerequisites("k-math-counting-1-10", map[string]bool{})
	if !elig.CanStart {
		t.Error("a topic without prerequisites should always be startable")
	}
}

func TestCheckPrerequisites_UnknownTopic(t *testing.T) {
	c := Default()
	elig := c.CheckPrerequisites("nonexistent", map[string]bool{})
	if elig.CanStart {
		t.Error("unknown topic should not be startable")
	}
	if len(elig.Missing) != 0 || len(elig.Recommended) != 0 || len(elig.Chain) != 0 {
		t.Errorf("unknown topic should yield empty lists, got %+v", elig)
	}
}

func TestCheckPrerequisites_RecommendsWarmups(t *testing.T) {
	c := Default()

	// For simple-addition (intermediate, skills addition/number-sense)
	// the only lower-difficulty skill-mate that is not already a direct
	// prerequisite is counting-11-20.
	elig := c.CheckPrerequisites("k-math-simple-addition", map[string]bool{})
	want := []string{"k-math-counting-11-20"}
	if !slices.Equal(elig.Recommended, want) {
		t.Errorf("got recommended %v, want %v", elig.Recommended, want)
	}
}

func TestCheckPrerequisites_RecommendationsExcludeCompleted(t *testing.T) {
	c := Default()
	completed := map[string]bool{"k-math-counting-11-20": true}
	elig := c.CheckPrerequisites("k-math-simple-addition", completed)
	if len(elig.Recommended) != 0 {
		t.Errorf("completed warm-ups should not be recommended, got %v", elig.Recommended)
	}
}

func TestCheckPrerequisites_RecommendationsOrderedBySortOrder(t *testing.T) {
	c := Default()

	// comparing-quantities shares number-sense with two beginner
	// topics that are not its direct prerequisites.
	elig := c.CheckPrerequisites("k-math-comparing-quantities", map[string]bool{})
	want := []string{"k-math-number-recognition", "k-math-counting-11-20"}
	if !slices.Equal(elig.Recommended, want) {
		t.Errorf("got recommended %v, want %v", elig.Recommended, want)
	}

	// Recommendations are advisory: the topic stays blocked by its
	// missing prerequisite regardless.
	if elig.CanStart {
		t.Error("comparing-quantities should be blocked without counting-1-10")
	}
}

func TestCheckPrerequisites_InactiveNeverRecommended(t *testing.T) {
	c := Default()

	// intro-fractions (advanced, 2/math) sits above the retired
	// abacus unit, which shares number-sense but must stay hidden.
	elig := c.CheckPrerequisites("2-math-intro-fractions", map[string]bool{})
	for _, id := range elig.Recommended {
		if id == "2-math-legacy-abacus" {
			t.Error("retired topic should never be recommended")
		}
	}
}
