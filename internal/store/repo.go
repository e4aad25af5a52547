package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	LearnerID string    // restrict to one learner ("" = all learners)
	Limit     int       // max results (0 = unlimited)
	After     int64     // sequence > After
	Before    int64     // sequence < Before
	From      time.Time // timestamp >= From
	To        time.Time // timestamp <= To
	Ascending bool      // oldest first (replay order) instead of newest first
}

// TopicCompletion is one completed topic inside a progress snapshot.
type TopicCompletion struct {
	HoursSpent  float64   `json:"hours_spent"`
	CompletedAt time.Time `json:"completed_at"`
	Forced      bool      `json:"forced,omitempty"`
}

// SnapshotData captures one learner's full progress state.
type SnapshotData struct {
	Version     int                        `json:"version"`
	Completions map[string]TopicCompletion `json:"completions"`
}

// Snapshot represents a point-in-time capture of learner progress.
type Snapshot struct {
	ID        int
	LearnerID string
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages progress snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// LatestFor returns the learner's most recent snapshot, or nil if
	// none exist.
	LatestFor(ctx context.Context, learnerID string) (*Snapshot, error)

	// Prune deletes all but the learner's N most recent snapshots.
	Prune(ctx context.Context, learnerID string, keep int) error
}

// Learner is a registered profile.
type Learner struct {
	ID        string
	Name      string
	Grade     string
	CreatedAt time.Time
}

// LearnerRepo manages learner profiles.
type LearnerRepo interface {
	// Create registers a new profile under a fresh id. Names are
	// unique; creating a duplicate fails. grade may be empty.
	Create(ctx context.Context, name, grade string) (*Learner, error)

	// Get returns the profile with the given id, or nil if none exists.
	Get(ctx context.Context, id string) (*Learner, error)

	// ByName returns the profile with the given name, or nil if none
	// exists.
	ByName(ctx context.Context, name string) (*Learner, error)

	// All returns every profile ordered by creation time.
	All(ctx context.Context) ([]*Learner, error)
}

// CompletionEventData captures the data for a single topic completion.
type CompletionEventData struct {
	LearnerID  string
	TopicID    string
	TopicName  string
	HoursSpent float64
	Forced     bool
}

// CompletionEventRecord is a stored topic completion.
type CompletionEventRecord struct {
	LearnerID  string
	TopicID    string
	TopicName  string
	HoursSpent float64
	Forced     bool
	Sequence   int64
	Timestamp  time.Time
}

// BadgeEventData captures the data for a single badge award.
type BadgeEventData struct {
	LearnerID string
	BadgeType string
	Rarity    string
	TopicID   *string
	TopicName *string
	Reason    string
}

// BadgeEventRecord is a stored badge award.
type BadgeEventRecord struct {
	LearnerID string
	BadgeType string
	Rarity    string
	TopicID   *string
	TopicName *string
	Reason    string
	Sequence  int64
	Timestamp time.Time
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendCompletion records a topic completion and returns the
	// sequence number it was assigned.
	AppendCompletion(ctx context.Context, data CompletionEventData) (int64, error)

	// QueryCompletions returns completion events, newest first unless
	// opts.Ascending is set.
	QueryCompletions(ctx context.Context, opts QueryOpts) ([]CompletionEventRecord, error)

	// AppendBadge records a badge award and returns the sequence
	// number it was assigned.
	AppendBadge(ctx context.Context, data BadgeEventData) (int64, error)

	// QueryBadges returns badge events, newest first unless
	// opts.Ascending is set.
	QueryBadges(ctx context.Context, opts QueryOpts) ([]BadgeEventRecord, error)

	// BadgeCounts returns one learner's award counts by badge type
	// plus the total.
	BadgeCounts(ctx context.Context, learnerID string) (map[string]int, int, error)
}
