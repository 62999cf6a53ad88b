package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"assistant-widget/internal/model"
	"assistant-widget/internal/user"
	"assistant-widget/internal/user/repository"
)

func (r *implRepository) Create(ctx context.Context, u model.User) error {
	_, err := r.users().Doc(u.Username).Create(ctx, u)
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return user.ErrUsernameTaken
		}
		r.l.Errorf(ctx, "user.repository.firestore.Create: %v", err)
		return err
	}
	return nil
}

func (r *implRepository) Get(ctx context.Context, username string) (model.User, error) {
	snap, err := r.users().Doc(username).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return model.User{}, user.ErrUserNotFound
		}
		r.l.Errorf(ctx, "user.repository.firestore.Get: %v", err)
		return model.User{}, err
	}

	var u model.User
	if err := snap.DataTo(&u); err != nil {
		r.l.Errorf(ctx, "user.repository.firestore.Get: decode: %v", err)
		return model.User{}, err
	}
	return u, nil
}

func (r *implRepository) Update(ctx context.Context, username string, opt repository.UpdateOption) error {
	updates := make([]firestore.Update, 0, 4)
	if opt.Prompt != nil {
		updates = append(updates, firestore.Update{Path: "prompt", Value: *opt.Prompt})
	}
	if opt.UserPrompt != nil {
		updates = append(updates, firestore.Update{Path: "userPrompt", Value: *opt.UserPrompt})
	}
	if opt.DailyTasks != nil {
		updates = append(updates, firestore.Update{Path: "dailyTasks", Value: *opt.DailyTasks})
	}
	if opt.Google != nil {
		updates = append(updates, firestore.Update{Path: "google", Value: *opt.Google})
	}
	if len(updates) == 0 {
		return nil
	}

	_, err := r.users().Doc(username).Update(ctx, updates)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return user.ErrUserNotFound
		}
		r.l.Errorf(ctx, "user.repository.firestore.Update: %v", err)
		return err
	}
	return nil
}

func (r *implRepository) Count(ctx context.Context) (int64, error) {
	docs, err := r.users().Select().Documents(ctx).GetAll()
	if err != nil {
		r.l.Errorf(ctx, "user.repository.firestore.Count: %v", err)
		return 0, err
	}
	return int64(len(docs)), nil
}
