package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"assistant-widget/internal/model"
	"assistant-widget/internal/user"
)

func (r *implRepository) CreateContribution(ctx context.Context, username string, c model.Contribution) (model.Contribution, error) {
	ref := r.contributions(username).Doc(c.ID)
	if _, err := ref.Create(ctx, c); err != nil {
		r.l.Errorf(ctx, "user.repository.firestore.CreateContribution: %v", err)
		return model.Contribution{}, err
	}
	return c, nil
}

func (r *implRepository) ListContributions(ctx context.Context, username string) ([]model.Contribution, error) {
	docs, err := r.contributions(username).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx).GetAll()
	if err != nil {
		r.l.Errorf(ctx, "user.repository.firestore.ListContributions: %v", err)
		return nil, err
	}

	out := make([]model.Contribution, 0, len(docs))
	for _, doc := range docs {
		var c model.Contribution
		if err := doc.DataTo(&c); err != nil {
			r.l.Errorf(ctx, "user.repository.firestore.ListContributions: decode %s: %v", doc.Ref.ID, err)
			return nil, err
		}
		c.ID = doc.Ref.ID
		out = append(out, c)
	}
	return out, nil
}

func (r *implRepository) UpdateContributionStatus(ctx context.Context, username, id string, s model.ContributionStatus) error {
	_, err := r.contributions(username).Doc(id).Update(ctx, []firestore.Update{
		{Path: "status", Value: s},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return user.ErrContributionNotFound
		}
		r.l.Errorf(ctx, "user.repository.firestore.UpdateContributionStatus: %v", err)
		return err
	}
	return nil
}
