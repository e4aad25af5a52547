package store

import (
	"context"
	"fmt"

	"github.com/pathwise-ed/pathwise/ent"
	"github.com/pathwise-ed/pathwise/ent/completionevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence
// counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendCompletion(ctx context.Context, data CompletionEventData) (int64, error) {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.CompletionEvent.Create().
		SetSequence(seqNum).
		SetLearnerID(data.LearnerID).
		SetTopicID(data.TopicID).
		SetTopicName(data.TopicName).
		SetHoursSpent(data.HoursSpent).
		SetForced(data.Forced).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("save completion event: %w", err)
	}
	return seqNum, nil
}

func (r *eventRepo) QueryCompletions(ctx context.Context, opts QueryOpts) ([]CompletionEventRecord, error) {
	query := r.client.CompletionEvent.Query()
	if opts.Ascending {
		query = query.Order(ent.Asc(completionevent.FieldSequence))
	} else {
		query = query.Order(ent.Desc(completionevent.FieldSequence))
	}

	if opts.LearnerID != "" {
		query = query.Where(completionevent.LearnerID(opts.LearnerID))
	}
	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(completionevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(completionevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(completionevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(completionevent.TimestampLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query completion events: %w", err)
	}

	records := make([]CompletionEventRecord, len(events))
	for i, e := range events {
		records[i] = CompletionEventRecord{
			LearnerID:  e.LearnerID,
			TopicID:    e.TopicID,
			TopicName:  e.TopicName,
			HoursSpent: e.HoursSpent,
			Forced:     e.Forced,
			Sequence:   e.Sequence,
			Timestamp:  e.Timestamp,
		}
	}
	return records, nil
}
