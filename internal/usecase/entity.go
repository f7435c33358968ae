package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/hangarhq/hangar/internal/domain"
)

// entityUsecase runs the validate → invariant-check → persist pipeline for
// one entity kind. Validation is purely structural and never touches storage;
// when a uniqueness key is configured, the key lookup is the only read a
// create performs.
type entityUsecase[T domain.Entity[T]] struct {
	resource string
	repo     Repository[T]
	mut      Mutator[T]
	validate func(T) []domain.Violation
	key      func(T) string
	lookup   KeyLookup[T]
	events   Publisher
	newID    func() string

	// eventBody projects the entity into the shape events carry. Entities
	// holding secrets set this to a stripped view; nil broadcasts the
	// entity as stored.
	eventBody func(T) any
}

func (uc *entityUsecase[T]) Create(ctx context.Context, entity T) (T, error) {
	var zero T

	if violations := uc.validate(entity); len(violations) > 0 {
		return zero, domain.ValidationError{Violations: violations}
	}

	if uc.key != nil {
		key := uc.key(entity)
		_, err := uc.lookup.FindByKey(ctx, key)
		if err == nil {
			return zero, domain.DuplicateKeyError{Key: key}
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return zero, err
		}
	}

	entity = entity.WithID(uc.newID())

	stored, err := uc.repo.Add(ctx, entity)
	if err != nil {
		return zero, err
	}

	uc.notify(ctx, domain.EventCreated, stored.EntityID(), uc.broadcast(stored))
	return stored, nil
}

// Update replaces the stored record wholesale. Validation and existence are
// independent gates: invalid input fails before storage is consulted, and an
// absent identifier reports not-found even when the fields are valid.
func (uc *entityUsecase[T]) Update(ctx context.Context, entity T) (T, error) {
	var zero T

	if violations := uc.validate(entity); len(violations) > 0 {
		return zero, domain.ValidationError{Violations: violations}
	}

	if _, err := uc.repo.FindByID(ctx, entity.EntityID()); err != nil {
		return zero, err
	}

	stored, err := uc.mut.Update(ctx, entity)
	if err != nil {
		return zero, err
	}

	uc.notify(ctx, domain.EventUpdated, stored.EntityID(), uc.broadcast(stored))
	return stored, nil
}

// Delete removes the record if present. Deleting an absent identifier is a
// successful no-op.
func (uc *entityUsecase[T]) Delete(ctx context.Context, id string) error {
	if _, err := uc.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return err
	}

	if err := uc.mut.Delete(ctx, id); err != nil {
		return err
	}

	uc.notify(ctx, domain.EventDeleted, id, nil)
	return nil
}

func (uc *entityUsecase[T]) Get(ctx context.Context, id string) (T, error) {
	return uc.repo.FindByID(ctx, id)
}

func (uc *entityUsecase[T]) List(ctx context.Context) ([]T, error) {
	return uc.repo.List(ctx)
}

func (uc *entityUsecase[T]) broadcast(entity T) any {
	if uc.eventBody != nil {
		return uc.eventBody(entity)
	}
	return entity
}

func (uc *entityUsecase[T]) notify(ctx context.Context, eventType, id string, body any) {
	if uc.events == nil {
		return
	}
	event := domain.Event{
		Type:     eventType,
		Resource: uc.resource,
		ID:       id,
		Body:     body,
	}
	if err := uc.events.Publish(ctx, event); err != nil {
		slog.WarnContext(
			ctx, "failed to publish event",
			slog.String("error", err.Error()),
			slog.String("resource", uc.resource),
			slog.String("type", eventType),
		)
	}
}
