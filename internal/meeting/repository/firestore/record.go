package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"assistant-widget/internal/meeting"
	"assistant-widget/internal/meeting/repository"
	"assistant-widget/internal/model"
	pkgLog "assistant-widget/pkg/log"
)

const meetingsCollection = "meetings"

type implRepository struct {
	l      pkgLog.Logger
	client *firestore.Client
}

var _ repository.Repository = &implRepository{}

func New(l pkgLog.Logger, client *firestore.Client) repository.Repository {
	return &implRepository{
		l:      l,
		client: client,
	}
}

func (r *implRepository) meetings() *firestore.CollectionRef {
	return r.client.Collection(meetingsCollection)
}

func (r *implRepository) Create(ctx context.Context, rec model.MeetingRecord) (model.MeetingRecord, error) {
	if _, err := r.meetings().Doc(rec.ID).Create(ctx, rec); err != nil {
		r.l.Errorf(ctx, "meeting.repository.firestore.Create: %v", err)
		return model.MeetingRecord{}, err
	}
	return rec, nil
}

func (r *implRepository) List(ctx context.Context, username string) ([]model.MeetingRecord, error) {
	docs, err := r.meetings().
		Where("username", "==", username).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx).GetAll()
	if err != nil {
		r.l.Errorf(ctx, "meeting.repository.firestore.List: %v", err)
		return nil, err
	}

	out := make([]model.MeetingRecord, 0, len(docs))
	for _, doc := range docs {
		var rec model.MeetingRecord
		if err := doc.DataTo(&rec); err != nil {
			r.l.Errorf(ctx, "meeting.repository.firestore.List: decode %s: %v", doc.Ref.ID, err)
			return nil, err
		}
		rec.ID = doc.Ref.ID
		out = append(out, rec)
	}
	return out, nil
}

func (r *implRepository) Delete(ctx context.Context, id string) error {
	// Existence is checked explicitly: a blind delete succeeds even when
	// the document never existed.
	if _, err := r.meetings().Doc(id).Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return meeting.ErrRecordNotFound
		}
		r.l.Errorf(ctx, "meeting.repository.firestore.Delete: get: %v", err)
		return err
	}
	if _, err := r.meetings().Doc(id).Delete(ctx); err != nil {
		r.l.Errorf(ctx, "meeting.repository.firestore.Delete: %v", err)
		return err
	}
	return nil
}
