package progress

import (
	"sort"
	"time"
)

// Completion is one finished topic in a learner's record.
type Completion struct {
	TopicID     string
	HoursSpent  float64
	CompletedAt time.Time
	Forced      bool
}

// State is one learner's progress: every topic they have completed.
// Replaying completion events in sequence order rebuilds it exactly.
type State struct {
	completions map[string]Completion
}

// NewState returns an empty progress state.
func NewState() *State {
	return &State{completions: make(map[string]Completion)}
}

// Apply folds one completion into the state. A topic's first
// completion is authoritative; repeats are ignored.
func (st *State) Apply(c Completion) {
	if _, ok := st.completions[c.TopicID]; ok {
		return
	}
	st.completions[c.TopicID] = c
}

// Completed reports whether the topic has been completed.
func (st *State) Completed(topicID string) bool {
	_, ok := st.completions[topicID]
	return ok
}

// Completion returns the completion record for a topic.
func (st *State) Completion(topicID string) (Completion, bool) {
	c, ok := st.completions[topicID]
	return c, ok
}

// CompletedSet returns the completed topic ids as a set. The map is a
// fresh copy; callers may mutate it.
func (st *State) CompletedSet() map[string]bool {
	set := make(map[string]bool, len(st.completions))
	for id := range st.completions {
		set[id] = true
	}
	return set
}

// Len returns the number of completed topics.
func (st *State) Len() int {
	return len(st.completions)
}

// TotalHours returns the sum of hours spent across all completions.
func (st *State) TotalHours() float64 {
	var total float64
	for _, c := range st.completions {
		total += c.HoursSpent
	}
	return total
}

// Completions returns all completions ordered by completion time, then
// topic id for equal times.
func (st *State) Completions() []Completion {
	list := make([]Completion, 0, len(st.completions))
	for _, c := range st.completions {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool {
		if !list[i].CompletedAt.Equal(list[j].CompletedAt) {
			return list[i].CompletedAt.Before(list[j].CompletedAt)
		}
		return list[i].TopicID < list[j].TopicID
	})
	return list
}
