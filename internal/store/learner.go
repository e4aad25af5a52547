package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pathwise-ed/pathwise/ent"
	"github.com/pathwise-ed/pathwise/ent/learner"
)

// learnerRepo implements LearnerRepo using the ent client.
type learnerRepo struct {
	client *ent.Client
}

func (r *learnerRepo) Create(ctx context.Context, name, grade string) (*Learner, error) {
	create := r.client.Learner.Create().
		SetID(uuid.NewString()).
		SetName(name)
	if grade != "" {
		create = create.SetGrade(grade)
	}
	l, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("learner %q already exists", name)
		}
		return nil, fmt.Errorf("create learner: %w", err)
	}
	return entLearnerToLearner(l), nil
}

func (r *learnerRepo) Get(ctx context.Context, id string) (*Learner, error) {
	l, err := r.client.Learner.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get learner: %w", err)
	}
	return entLearnerToLearner(l), nil
}

func (r *learnerRepo) ByName(ctx context.Context, name string) (*Learner, error) {
	l, err := r.client.Learner.Query().
		Where(learner.Name(name)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query learner by name: %w", err)
	}
	return entLearnerToLearner(l), nil
}

func (r *learnerRepo) All(ctx context.Context) ([]*Learner, error) {
	list, err := r.client.Learner.Query().
		Order(ent.Asc(learner.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query learners: %w", err)
	}

	learners := make([]*Learner, len(list))
	for i, l := range list {
		learners[i] = entLearnerToLearner(l)
	}
	return learners, nil
}

// entLearnerToLearner converts an ent Learner to a store Learner.
func entLearnerToLearner(l *ent.Learner) *Learner {
	return &Learner{
		ID:        l.ID,
		Name:      l.Name,
		Grade:     l.Grade,
		CreatedAt: l.CreatedAt,
	}
}
