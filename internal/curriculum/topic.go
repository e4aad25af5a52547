package curriculum

import "fmt"

// Difficulty represents a topic's difficulty tier.
// Tiers are ordered: comparisons between them are meaningful.
type Difficulty int

const (
	DifficultyBeginner Difficulty = iota
	DifficultyIntermediate
	DifficultyAdvanced
	DifficultyMastery
)

// AllDifficulties returns all tiers in ascending order.
func AllDifficulties() []Difficulty {
	return []Difficulty{
		DifficultyBeginner,
		DifficultyIntermediate,
		DifficultyAdvanced,
		DifficultyMastery,
	}
}

// String returns the canonical lowercase name used in catalog documents.
func (d Difficulty) String() string {
	switch d {
	case DifficultyBeginner:
		return "beginner"
	case DifficultyIntermediate:
		return "intermediate"
	case DifficultyAdvanced:
		return "advanced"
	case DifficultyMastery:
		return "mastery"
	default:
		return fmt.Sprintf("difficulty(%d)", int(d))
	}
}

// DisplayName returns a human-readable label for the tier.
func (d Difficulty) DisplayName() string {
	switch d {
	case DifficultyBeginner:
		return "Beginner"
	case DifficultyIntermediate:
		return "Intermediate"
	case DifficultyAdvanced:
		return "Advanced"
	case DifficultyMastery:
		return "Mastery"
	default:
		return d.String()
	}
}

// ParseDifficulty parses a canonical tier name.
func ParseDifficulty(s string) (Difficulty, error) {
	switch s {
	case "beginner":
		return DifficultyBeginner, nil
	case "intermediate":
		return DifficultyIntermediate, nil
	case "advanced":
		return DifficultyAdvanced, nil
	case "mastery":
		return DifficultyMastery, nil
	default:
		return 0, fmt.Errorf("unknown difficulty %q", s)
	}
}

// Topic is a single unit of curriculum content belonging to one grade
// and one subject.
type Topic struct {
	ID             string
	Name           string
	GradeID        string
	SubjectID      string
	Difficulty     Difficulty
	EstimatedHours float64
	Prerequisites  []string
	Skills         []string
	SortOrder      int
	Active         bool
}

// HasSkill reports whether the topic carries the given skill tag.
func (t Topic) HasSkill(skill string) bool {
	for _, s := range t.Skills {
		if s == skill {
			return true
		}
	}
	return false
}

// GradeSubject identifies one (grade, subject) topic group.
type GradeSubject struct {
	GradeID   string
	SubjectID string
}
