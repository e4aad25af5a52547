package progress

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pathwise-ed/pathwise/internal/curriculum"
	"github.com/pathwise-ed/pathwise/internal/store"
)

const (
	// snapshotInterval is the number of completions applied since the
	// last snapshot that triggers a new one.
	snapshotInterval = 10

	// snapshotKeep is how many snapshots survive pruning per learner.
	snapshotKeep = 5
)

// ErrAlreadyCompleted is returned when a completion is recorded for a
// topic the learner has already finished.
var ErrAlreadyCompleted = errors.New("topic already completed")

// PrerequisiteError reports a completion blocked by unmet
// prerequisites.
type PrerequisiteError struct {
	TopicID string
	Missing []string
}

func (e *PrerequisiteError) Error() string {
	return fmt.Sprintf("prerequisites not met for %s: missing %s",
		e.TopicID, strings.Join(e.Missing, ", "))
}

// Service manages one learner's progress against a catalog snapshot.
// State is restored from the latest snapshot plus any newer completion
// events, and every mutation is appended to the event log before it
// touches in-memory state.
type Service struct {
	catalog   *curriculum.Catalog
	events    store.EventRepo
	snaps     store.SnapshotRepo
	learnerID string

	state         *State
	lastSeq       int64
	sinceSnapshot int
}

// NewService creates a progress service for one learner, restoring
// state from storage.
func NewService(ctx context.Context, catalog *curriculum.Catalog, learnerID string, events store.EventRepo, snaps store.SnapshotRepo) (*Service, error) {
	s := &Service{
		catalog:   catalog,
		events:    events,
		snaps:     snaps,
		learnerID: learnerID,
		state:     NewState(),
	}

	var after int64
	if s.snaps != nil {
		snap, err := s.snaps.LatestFor(ctx, learnerID)
		if err != nil {
			return nil, fmt.Errorf("load snapshot: %w", err)
		}
		if snap != nil {
			for id, tc := range snap.Data.Completions {
				s.state.Apply(Completion{
					TopicID:     id,
					HoursSpent:  tc.HoursSpent,
					CompletedAt: tc.CompletedAt,
					Forced:      tc.Forced,
				})
			}
			after = snap.Sequence
			s.lastSeq = snap.Sequence
		}
	}

	records, err := s.events.QueryCompletions(ctx, store.QueryOpts{
		LearnerID: learnerID,
		After:     after,
		Ascending: true,
	})
	if err != nil {
		return nil, fmt.Errorf("replay completions: %w", err)
	}
	for _, rec := range records {
		s.state.Apply(Completion{
			TopicID:     rec.TopicID,
			HoursSpent:  rec.HoursSpent,
			CompletedAt: rec.Timestamp,
			Forced:      rec.Forced,
		})
		s.lastSeq = rec.Sequence
	}
	s.sinceSnapshot = len(records)

	return s, nil
}

// LearnerID returns the learner this service operates on.
func (s *Service) LearnerID() string {
	return s.learnerID
}

// State returns the learner's current progress state.
func (s *Service) State() *State {
	return s.state
}

// Eligibility checks a topic against the learner's current completed
// set.
func (s *Service) Eligibility(topicID string) curriculum.Eligibility {
	return s.catalog.CheckPrerequisites(topicID, s.state.CompletedSet())
}

// Complete records a topic completion. The topic must exist and must
// not be completed already; unless force is set, its prerequisites
// must all be completed too. A forced completion with missing
// prerequisites is flagged in the event log. When hours is zero or
// negative, the topic's estimated hours are recorded instead.
//
// The returned eligibility reflects the check made before recording,
// so callers can report what a force overrode.
func (s *Service) Complete(ctx context.Context, topicID string, hours float64, force bool) (curriculum.Eligibility, error) {
	topic, ok := s.catalog.Topic(topicID)
	if !ok {
		return curriculum.Eligibility{}, fmt.Errorf("unknown topic %q", topicID)
	}
	if s.state.Completed(topicID) {
		return curriculum.Eligibility{}, fmt.Errorf("topic %q: %w", topicID, ErrAlreadyCompleted)
	}

	elig := s.catalog.CheckPrerequisites(topicID, s.state.CompletedSet())
	if !elig.CanStart && !force {
		return elig, &PrerequisiteError{TopicID: topicID, Missing: elig.Missing}
	}

	if hours <= 0 {
		hours = topic.EstimatedHours
	}
	forced := force && !elig.CanStart

	seq, err := s.events.AppendCompletion(ctx, store.CompletionEventData{
		LearnerID:  s.learnerID,
		TopicID:    topicID,
		TopicName:  topic.Name,
		HoursSpent: hours,
		Forced:     forced,
	})
	if err != nil {
		return elig, fmt.Errorf("record completion: %w", err)
	}

	s.state.Apply(Completion{
		TopicID:     topicID,
		HoursSpent:  hours,
		CompletedAt: time.Now().UTC(),
		Forced:      forced,
	})
	s.lastSeq = seq
	s.sinceSnapshot++
	s.maybeSnapshot(ctx)

	return elig, nil
}

// maybeSnapshot persists a snapshot once enough completions have
// accumulated since the last one. Snapshot failures are silent; the
// event log stays authoritative.
func (s *Service) maybeSnapshot(ctx context.Context) {
	if s.snaps == nil || s.sinceSnapshot < snapshotInterval {
		return
	}

	completions := make(map[string]store.TopicCompletion, s.state.Len())
	for _, c := range s.state.Completions() {
		completions[c.TopicID] = store.TopicCompletion{
			HoursSpent:  c.HoursSpent,
			CompletedAt: c.CompletedAt,
			Forced:      c.Forced,
		}
	}

	snap := &store.Snapshot{
		LearnerID: s.learnerID,
		Sequence:  s.lastSeq,
		Timestamp: time.Now(),
		Data: store.SnapshotData{
			Version:     1,
			Completions: completions,
		},
	}
	if err := s.snaps.Save(ctx, snap); err != nil {
		return
	}
	s.sinceSnapshot = 0
	_ = s.snaps.Prune(ctx, s.learnerID, snapshotKeep)
}
