package store

import (
	"context"
	"fmt"

	"github.com/pathwise-ed/pathwise/ent"
	"github.com/pathwise-ed/pathwise/ent/badgeevent"
)

func (r *eventRepo) AppendBadge(ctx context.Context, data BadgeEventData) (int64, error) {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.BadgeEvent.Create().
		SetSequence(seqNum).
		SetLearnerID(data.LearnerID).
		SetBadgeType(data.BadgeType).
		SetRarity(data.Rarity).
		SetReason(data.Reason)

	if data.TopicID != nil {
		builder = builder.SetTopicID(*data.TopicID)
	}
	if data.TopicName != nil {
		builder = builder.SetTopicName(*data.TopicName)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("save badge event: %w", err)
	}
	return seqNum, nil
}

func (r *eventRepo) QueryBadges(ctx context.Context, opts QueryOpts) ([]BadgeEventRecord, error) {
	query := r.client.BadgeEvent.Query()
	if opts.Ascending {
		query = query.Order(ent.Asc(badgeevent.FieldSequence))
	} else {
		query = query.Order(ent.Desc(badgeevent.FieldSequence))
	}

	if opts.LearnerID != "" {
		query = query.Where(badgeevent.LearnerID(opts.LearnerID))
	}
	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(badgeevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(badgeevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(badgeevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(badgeevent.TimestampLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query badge events: %w", err)
	}

	records := make([]BadgeEventRecord, len(events))
	for i, e := range events {
		records[i] = BadgeEventRecord{
			LearnerID: e.LearnerID,
			BadgeType: e.BadgeType,
			Rarity:    e.Rarity,
			TopicID:   e.TopicID,
			TopicName: e.TopicName,
			Reason:    e.Reason,
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
		}
	}
	return records, nil
}

func (r *eventRepo) BadgeCounts(ctx context.Context, learnerID string) (map[string]int, int, error) {
	events, err := r.client.BadgeEvent.Query().
		Where(badgeevent.LearnerID(learnerID)).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("query badge counts: %w", err)
	}

	byType := make(map[string]int)
	for _, e := range events {
		byType[e.BadgeType]++
	}

	return byType, len(events), nil
}
