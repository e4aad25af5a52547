package badges

// BadgeType identifies the category of achievement.
type BadgeType string

const (
	BadgeTopic     BadgeType = "topic"
	BadgeMilestone BadgeType = "milestone"
	BadgePath      BadgeType = "path"
)

// AllBadgeTypes returns all badge types in display order.
func AllBadgeTypes() []BadgeType {
	return []BadgeType{BadgeTopic, BadgeMilestone, BadgePath}
}

// DisplayName returns a human-readable label for the badge type.
func (t BadgeType) DisplayName() string {
	switch t {
	case BadgeTopic:
		return "Topic"
	case BadgeMilestone:
		return "Milestone"
	case BadgePath:
		return "Path"
	default:
		return string(t)
	}
}

// Icon returns the display icon for the badge type.
func (t BadgeType) Icon() string {
	switch t {
	case BadgeTopic:
		return "⭐"
	case BadgeMilestone:
		return "🏅"
	case BadgePath:
		return "🗺️"
	default:
		return "✦"
	}
}
