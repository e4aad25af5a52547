package badges

import (
	"context"
	"fmt"
	"time"

	"github.com/pathwise-ed/pathwise/internal/curriculum"
	"github.com/pathwise-ed/pathwise/internal/store"
)

// milestones are the completion counts that earn a milestone badge.
var milestones = map[int]bool{5: true, 10: true, 25: true, 50: true, 100: true}

// Service evaluates and records badge awards as topics are completed.
type Service struct {
	catalog *curriculum.Catalog
	depth   *DepthMap
	events  store.EventRepo
}

// NewService creates a badge service with a precomputed depth map.
func NewService(catalog *curriculum.Catalog, events store.EventRepo) *Service {
	return &Service{
		catalog: catalog,
		depth:   ComputeDepthMap(catalog),
		events:  events,
	}
}

// EvaluateCompletion returns the badges earned by completing topic, persisting
// each one. completed must already include the new completion.
func (s *Service) EvaluateCompletion(ctx context.Context, learnerID string, topic curriculum.Topic, completed map[string]bool) []Badge {
	now := time.Now()
	awards := []Badge{{
		Type:      BadgeTopic,
		Rarity:    s.depth.RarityForTopic(topic.ID),
		TopicID:   topic.ID,
		TopicName: topic.Name,
		Reason:    fmt.Sprintf("Completed %s", topic.Name),
		AwardedAt: now,
	}}

	if milestones[len(completed)] {
		awards = append(awards, Badge{
			Type:      BadgeMilestone,
			Rarity:    MilestoneRarity(len(completed)),
			Reason:    fmt.Sprintf("%d topics completed", len(completed)),
			AwardedAt: now,
		})
	}

	if s.pathComplete(topic.GradeID, topic.SubjectID, completed) {
		awards = append(awards, Badge{
			Type:      BadgePath,
			Rarity:    RarityEpic,
			Reason:    fmt.Sprintf("Finished the grade %s %s path", topic.GradeID, topic.SubjectID),
			AwardedAt: now,
		})
	}

	for i := range awards {
		s.persist(ctx, learnerID, &awards[i])
	}
	return awards
}

// Counts returns the learner's badge totals grouped by type.
func (s *Service) Counts(ctx context.Context, learnerID string) (map[string]int, int, error) {
	if s.events == nil {
		return map[string]int{}, 0, nil
	}
	return s.events.BadgeCounts(ctx, learnerID)
}

// Recent returns the learner's most recent badge awards, newest first.
func (s *Service) Recent(ctx context.Context, learnerID string, limit int) ([]store.BadgeEventRecord, error) {
	if s.events == nil {
		return nil, nil
	}
	return s.events.QueryBadges(ctx, store.QueryOpts{LearnerID: learnerID, Limit: limit})
}

// pathComplete reports whether every active topic in the grade/subject group
// is completed.
func (s *Service) pathComplete(gradeID, subjectID string, completed map[string]bool) bool {
	group := s.catalog.GroupTopics(gradeID, subjectID)
	if len(group) == 0 {
		return false
	}
	for _, t := range group {
		if !completed[t.ID] {
			return false
		}
	}
	return true
}

func (s *Service) persist(ctx context.Context, learnerID string, b *Badge) {
	if s.events == nil {
		return
	}
	data := store.BadgeEventData{
		LearnerID: learnerID,
		BadgeType: string(b.Type),
		Rarity:    string(b.Rarity),
		Reason:    b.Reason,
	}
	if b.TopicID != "" {
		data.TopicID = &b.TopicID
		data.TopicName = &b.TopicName
	}
	_, _ = s.events.AppendBadge(ctx, data)
}
