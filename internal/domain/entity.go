package domain

// Entity is implemented by identifier-keyed records. WithID returns a copy
// with the identifier set; entities are value records and never mutated in
// place.
type Entity[T any] interface {
	EntityID() string
	WithID(id string) T
}
