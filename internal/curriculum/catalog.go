package curriculum

import (
	"slices"
	"sort"
)

// Catalog is an immutable snapshot of the topic catalog with
// precomputed indices. All graph operations hang off it, so multiple
// snapshots (tests, tenant curricula, reloads) coexist safely and every
// operation is a pure function of one snapshot.
type Catalog struct {
	topics  []Topic
	byID    map[string]*Topic
	byGroup map[GradeSubject][]*Topic
}

// NewCatalog builds a catalog from a slice of topics. The slice is
// copied; later mutation of the input does not affect the catalog.
// Duplicate ids are tolerated (the last one wins); Audit reports them.
func NewCatalog(topics []Topic) *Catalog {
	c := &Catalog{
		topics:  slices.Clone(topics),
		byID:    make(map[string]*Topic, len(topics)),
		byGroup: make(map[GradeSubject][]*Topic),
	}

	for i := range c.topics {
		c.byID[c.topics[i].ID] = &c.topics[i]
	}

	// Group active topics by (grade, subject). Prerequisite edges that
	// leave a group are ignored by the path builder, so the groups only
	// ever need active members.
	for i := range c.topics {
		t := &c.topics[i]
		if !t.Active {
			continue
		}
		key := GradeSubject{GradeID: t.GradeID, SubjectID: t.SubjectID}
		c.byGroup[key] = append(c.byGroup[key], t)
	}
	for _, group := range c.byGroup {
		sort.Slice(group, func(i, j int) bool {
			if group[i].SortOrder != group[j].SortOrder {
				return group[i].SortOrder < group[j].SortOrder
			}
			return group[i].ID < group[j].ID
		})
	}

	return c
}

// Topic returns the topic with the given id.
func (c *Catalog) Topic(id string) (Topic, bool) {
	t, ok := c.byID[id]
	if !ok {
		return Topic{}, false
	}
	return *t, true
}

// Topics returns all topics, active and inactive, in load order.
func (c *Catalog) Topics() []Topic {
	return slices.Clone(c.topics)
}

// Len returns the total number of topics in the catalog.
func (c *Catalog) Len() int {
	return len(c.topics)
}

// GroupTopics returns the active topics for a (grade, subject) pair,
// ordered by sort order then id. An unmatched pair yields an empty
// result.
func (c *Catalog) GroupTopics(grade, subject string) []Topic {
	group := c.byGroup[GradeSubject{GradeID: grade, SubjectID: subject}]
	result := make([]Topic, len(group))
	for i, t := range group {
		result[i] = *t
	}
	return result
}

// Groups returns every (grade, subject) pair that has at least one
// active topic, sorted by grade then subject.
func (c *Catalog) Groups() []GradeSubject {
	keys := make([]GradeSubject, 0, len(c.byGroup))
	for key := range c.byGroup {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].GradeID != keys[j].GradeID {
			return keys[i].GradeID < keys[j].GradeID
		}
		return keys[i].SubjectID < keys[j].SubjectID
	})
	return keys
}
