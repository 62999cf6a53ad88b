package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"assistant-widget/internal/model"
	"assistant-widget/internal/task"
	"assistant-widget/internal/task/repository"
)

func (r *implRepository) Create(ctx context.Context, username string, t model.Task) (model.Task, error) {
	if _, err := r.tasks(username).Doc(t.ID).Create(ctx, t); err != nil {
		r.l.Errorf(ctx, "task.repository.firestore.Create: %v", err)
		return model.Task{}, err
	}
	return t, nil
}

func (r *implRepository) List(ctx context.Context, username string) ([]model.Task, error) {
	docs, err := r.tasks(username).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx).GetAll()
	if err != nil {
		r.l.Errorf(ctx, "task.repository.firestore.List: %v", err)
		return nil, err
	}

	out := make([]model.Task, 0, len(docs))
	for _, doc := range docs {
		var t model.Task
		if err := doc.DataTo(&t); err != nil {
			r.l.Errorf(ctx, "task.repository.firestore.List: decode %s: %v", doc.Ref.ID, err)
			return nil, err
		}
		t.ID = doc.Ref.ID
		out = append(out, t)
	}
	return out, nil
}

func (r *implRepository) GetByUniqueID(ctx context.Context, username, uniqueTaskID string) (model.Task, error) {
	return r.getOne(ctx, username, "uniqueTaskId", uniqueTaskID)
}

func (r *implRepository) GetByQuestion(ctx context.Context, username, question string) (model.Task, error) {
	return r.getOne(ctx, username, "taskQuestion", question)
}

func (r *implRepository) getOne(ctx context.Context, username, field, value string) (model.Task, error) {
	docs, err := r.tasks(username).
		Where(field, "==", value).
		Limit(1).
		Documents(ctx).GetAll()
	if err != nil {
		r.l.Errorf(ctx, "task.repository.firestore.getOne(%s): %v", field, err)
		return model.Task{}, err
	}
	if len(docs) == 0 {
		return model.Task{}, task.ErrTaskNotFound
	}

	var t model.Task
	if err := docs[0].DataTo(&t); err != nil {
		r.l.Errorf(ctx, "task.repository.firestore.getOne(%s): decode: %v", field, err)
		return model.Task{}, err
	}
	t.ID = docs[0].Ref.ID
	return t, nil
}

func (r *implRepository) Update(ctx context.Context, username, id string, opt repository.UpdateOption) error {
	updates := make([]firestore.Update, 0, 2)
	if opt.Status != nil {
		updates = append(updates, firestore.Update{Path: "status", Value: *opt.Status})
	}
	if opt.Meeting != nil {
		updates = append(updates, firestore.Update{Path: "isMeeting", Value: *opt.Meeting})
	}
	if len(updates) == 0 {
		return nil
	}

	_, err := r.tasks(username).Doc(id).Update(ctx, updates)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return task.ErrTaskNotFound
		}
		r.l.Errorf(ctx, "task.repository.firestore.Update: %v", err)
		return err
	}
	return nil
}

func (r *implRepository) Delete(ctx context.Context, username, id string) error {
	if _, err := r.tasks(username).Doc(id).Delete(ctx); err != nil {
		r.l.Errorf(ctx, "task.repository.firestore.Delete: %v", err)
		return err
	}
	return nil
}
