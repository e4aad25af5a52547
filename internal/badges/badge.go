package badges

import "time"

// Badge represents a single badge earned.
type Badge struct {
	Type      BadgeType
	Rarity    Rarity
	TopicID   string // empty for milestone and path badges
	TopicName string // empty for milestone and path badges
	Reason    string // human-readable reason, e.g. "Completed Simple Addition"
	AwardedAt time.Time
}
