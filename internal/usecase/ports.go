package usecase

import (
	"context"

	"github.com/hangarhq/hangar/internal/domain"
)

// Repository defines the read/insert operations every entity kind needs.
// Implementations report absence as domain.ErrNotFound and wrap transient
// failures in domain.StorageError.
type Repository[T domain.Entity[T]] interface {
	Add(ctx context.Context, entity T) (T, error)
	FindByID(ctx context.Context, id string) (T, error)
	List(ctx context.Context) ([]T, error)
}

// Mutator defines wholesale replacement and removal. Entity kinds without an
// update/delete surface simply never provide one.
type Mutator[T domain.Entity[T]] interface {
	Update(ctx context.Context, entity T) (T, error)
	Delete(ctx context.Context, id string) error
}

// KeyLookup finds an entity by its natural uniqueness key.
type KeyLookup[T domain.Entity[T]] interface {
	FindByKey(ctx context.Context, key string) (T, error)
}

// AirplaneRepository is the full persistence surface for airplanes.
type AirplaneRepository interface {
	Repository[domain.Airplane]
	Mutator[domain.Airplane]
}

// UserRepository is the persistence surface for users. Users are never
// updated or deleted, but are looked up by email.
type UserRepository interface {
	Repository[domain.User]
	KeyLookup[domain.User]
}

// Publisher broadcasts entity lifecycle events. Publishing is best-effort
// and never fails the triggering operation.
type Publisher interface {
	Publish(ctx context.Context, event domain.Event) error
}
