package firestore

import (
	"cloud.google.com/go/firestore"

	"assistant-widget/internal/task/repository"
	pkgLog "assistant-widget/pkg/log"
)

const (
	usersCollection = "users"
	tasksCollection = "tasks"
)

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

func (r *implRepository) tasks(username string) *firestore.CollectionRef {
	return r.client.Collection(usersCollection).Doc(username).Collection(tasksCollection)
}
