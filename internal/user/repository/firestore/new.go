package firestore

import (
	"cloud.google.com/go/firestore"

	"assistant-widget/internal/user/repository"
	pkgLog "assistant-widget/pkg/log"
)

const (
	usersCollection         = "users"
	contributionsCollection = "contributions"
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

func (r *implRepository) users() *firestore.CollectionRef {
	return r.client.Collection(usersCollection)
}

func (r *implRepository) contributions(username string) *firestore.CollectionRef {
	return r.users().Doc(username).Collection(contributionsCollection)
}
