package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/hangarhq/hangar/internal/domain"
)

// --- mocks ---

type mockAirplaneRepo struct {
	items []domain.Airplane
}

func (m *mockAirplaneRepo) Add(ctx context.Context, a domain.Airplane) (domain.Airplane, error) {
	m.items = append(m.items, a)
	return a, nil
}

func (m *mockAirplaneRepo) Update(ctx context.Context, a domain.Airplane) (domain.Airplane, error) {
	for i, item := range m.items {
		if item.ID == a.ID {
			m.items[i] = a
			return a, nil
		}
	}
	return domain.Airplane{}, domain.NotFoundError{Resource: "airplane"}
}

func (m *mockAirplaneRepo) Delete(ctx context.Context, id string) error {
	for i, item := range m.items {
		if item.ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *mockAirplaneRepo) FindByID(ctx context.Context, id string) (domain.Airplane, error) {
	for _, item := range m.items {
		if item.ID == id {
			return item, nil
		}
	}
	return domain.Airplane{}, domain.NotFoundError{Resource: "airplane"}
}

func (m *mockAirplaneRepo) List(ctx context.Context) ([]domain.Airplane, error) {
	return append([]domain.Airplane(nil), m.items...), nil
}

// failingAirplaneRepo reports the same storage failure from every method.
type failingAirplaneRepo struct {
	err error
}

func (m *failingAirplaneRepo) Add(ctx context.Context, a domain.Airplane) (domain.Airplane, error) {
	return domain.Airplane{}, m.err
}

func (m *failingAirplaneRepo) Update(ctx context.Context, a domain.Airplane) (domain.Airplane, error) {
	return domain.Airplane{}, m.err
}

func (m *failingAirplaneRepo) Delete(ctx context.Context, id string) error {
	return m.err
}

func (m *failingAirplaneRepo) FindByID(ctx context.Context, id string) (domain.Airplane, error) {
	return domain.Airplane{}, m.err
}

func (m *failingAirplaneRepo) List(ctx context.Context) ([]domain.Airplane, error) {
	return nil, m.err
}

// laggingAirplaneRepo has a read view behind its writes: FindByID still
// reports a row that Update sees as gone.
type laggingAirplaneRepo struct{}

func (laggingAirplaneRepo) Add(ctx context.Context, a domain.Airplane) (domain.Airplane, error) {
	return a, nil
}

func (laggingAirplaneRepo) Update(ctx context.Context, a domain.Airplane) (domain.Airplane, error) {
	return domain.Airplane{}, domain.NotFoundError{Resource: "airplane"}
}

func (laggingAirplaneRepo) Delete(ctx context.Context, id string) error {
	return nil
}

func (laggingAirplaneRepo) FindByID(ctx context.Context, id string) (domain.Airplane, error) {
	return domain.Airplane{ID: id, Model: "A320", Weight: "42600 Kg", Manufacturer: "Airbus"}, nil
}

func (laggingAirplaneRepo) List(ctx context.Context) ([]domain.Airplane, error) {
	return nil, nil
}

type mockPublisher struct {
	events []domain.Event
}

func (m *mockPublisher) Publish(ctx context.Context, event domain.Event) error {
	m.events = append(m.events, event)
	return nil
}

// --- tests ---

func TestAirplaneCreateRoundTrip(t *testing.T) {
	repo := &mockAirplaneRepo{}
	uc := NewAirplaneUsecase(repo, nil)

	input := domain.Airplane{Model: "B737-800", Weight: "41140 Kg", Manufacturer: "Boeing"}

	first, err := uc.Create(context.Background(), input)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if first.ID == "" {
		t.Fatalf("expected a generated identifier")
	}
	if first.Model != input.Model || first.Weight != input.Weight || first.Manufacturer != input.Manufacturer {
		t.Fatalf("expected fields to round-trip unchanged, got %+v", first)
	}

	second, err := uc.Create(context.Background(), input)
	if err != nil {
		t.Fatalf("second create failed: %v", err)
	}
	if second.ID == first.ID {
		t.Fatalf("expected distinct identifiers, got %s twice", first.ID)
	}
}

func TestAirplaneCreateInvalidSkipsStorage(t *testing.T) {
	repo := &mockAirplaneRepo{}
	uc := NewAirplaneUsecase(repo, nil)

	_, err := uc.Create(context.Background(), domain.Airplane{Weight: "41140 Kg", Manufacturer: "Boeing"})

	var verr domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(verr.Violations) != 1 || verr.Violations[0].Message != "Model is required" {
		t.Fatalf("unexpected violations: %+v", verr.Violations)
	}
	if len(repo.items) != 0 {
		t.Fatalf("storage must not be touched on validation failure")
	}
}

func TestAirplaneUpdateGates(t *testing.T) {
	repo := &mockAirplaneRepo{items: []domain.Airplane{
		{ID: "existing", Model: "A320", Weight: "42600 Kg", Manufacturer: "Airbus"},
	}}
	uc := NewAirplaneUsecase(repo, nil)

	// invalid fields on an existing id fail validation, not existence
	_, err := uc.Update(context.Background(), domain.Airplane{ID: "existing", Model: "A320neo"})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}

	// valid fields on an absent id report not-found, not validation
	_, err = uc.Update(context.Background(), domain.Airplane{ID: "missing", Model: "A320neo", Weight: "44000 Kg", Manufacturer: "Airbus"})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not-found, got %v", err)
	}
	if errors.Is(err, domain.ErrValidation) {
		t.Fatalf("not-found must not be a validation error")
	}

	updated, err := uc.Update(context.Background(), domain.Airplane{ID: "existing", Model: "A320neo", Weight: "44000 Kg", Manufacturer: "Airbus"})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Model != "A320neo" {
		t.Fatalf("expected stored value to be replaced, got %+v", updated)
	}
	if repo.items[0].Model != "A320neo" {
		t.Fatalf("expected repository to hold the new value")
	}
}

func TestAirplaneDeleteIdempotent(t *testing.T) {
	repo := &mockAirplaneRepo{items: []domain.Airplane{
		{ID: "a", Model: "B747", Weight: "183500 Kg", Manufacturer: "Boeing"},
	}}
	uc := NewAirplaneUsecase(repo, nil)

	if err := uc.Delete(context.Background(), "missing"); err != nil {
		t.Fatalf("deleting an absent id must succeed, got %v", err)
	}
	if len(repo.items) != 1 {
		t.Fatalf("deleting an absent id must be a no-op")
	}

	if err := uc.Delete(context.Background(), "a"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if len(repo.items) != 0 {
		t.Fatalf("expected record to be removed")
	}

	if err := uc.Delete(context.Background(), "a"); err != nil {
		t.Fatalf("second delete must also succeed, got %v", err)
	}
}

func TestAirplaneListStable(t *testing.T) {
	repo := &mockAirplaneRepo{}
	uc := NewAirplaneUsecase(repo, nil)

	for _, model := range []string{"B737-800", "A320", "E190"} {
		if _, err := uc.Create(context.Background(), domain.Airplane{Model: model, Weight: "1 Kg", Manufacturer: "x"}); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	first, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	second, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(first) != 3 || len(second) != 3 {
		t.Fatalf("expected 3 items, got %d and %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("expected identical ordered sequences, diverged at %d", i)
		}
	}
	if first[0].Model != "B737-800" || first[2].Model != "E190" {
		t.Fatalf("expected insertion order, got %+v", first)
	}
}

func TestAirplaneStorageFailurePropagates(t *testing.T) {
	repo := &failingAirplaneRepo{err: domain.StorageError{Err: errors.New("connection refused")}}
	uc := NewAirplaneUsecase(repo, nil)
	valid := domain.Airplane{ID: "a", Model: "A320", Weight: "42600 Kg", Manufacturer: "Airbus"}

	if _, err := uc.Create(context.Background(), valid); !errors.Is(err, domain.ErrStorageUnavailable) {
		t.Fatalf("create must surface the storage failure, got %v", err)
	}
	if _, err := uc.Update(context.Background(), valid); !errors.Is(err, domain.ErrStorageUnavailable) {
		t.Fatalf("update must surface the storage failure, got %v", err)
	}
	if err := uc.Delete(context.Background(), "a"); !errors.Is(err, domain.ErrStorageUnavailable) {
		t.Fatalf("delete must surface the storage failure, got %v", err)
	}
	if _, err := uc.Get(context.Background(), "a"); !errors.Is(err, domain.ErrStorageUnavailable) {
		t.Fatalf("get must surface the storage failure, got %v", err)
	}
	if _, err := uc.List(context.Background()); !errors.Is(err, domain.ErrStorageUnavailable) {
		t.Fatalf("list must surface the storage failure, got %v", err)
	}
}

func TestAirplaneUpdateVanishedRow(t *testing.T) {
	uc := NewAirplaneUsecase(laggingAirplaneRepo{}, nil)

	// the existence gate sees a stale row; the store must still report the
	// absence instead of claiming success
	_, err := uc.Update(context.Background(), domain.Airplane{
		ID: "ghost", Model: "A320neo", Weight: "44000 Kg", Manufacturer: "Airbus",
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not-found from the store, got %v", err)
	}
}

func TestAirplaneLifecycleEvents(t *testing.T) {
	repo := &mockAirplaneRepo{}
	events := &mockPublisher{}
	uc := NewAirplaneUsecase(repo, events)

	created, err := uc.Create(context.Background(), domain.Airplane{Model: "B787", Weight: "119950 Kg", Manufacturer: "Boeing"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := uc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if len(events.events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events.events))
	}
	if events.events[0].Type != domain.EventCreated || events.events[1].Type != domain.EventDeleted {
		t.Fatalf("unexpected event types: %+v", events.events)
	}
	if events.events[0].Resource != "airplane" || events.events[0].ID != created.ID {
		t.Fatalf("unexpected event payload: %+v", events.events[0])
	}
}
