package entities

import "github.com/rodrigogurgel/catalog-sub001/domain/core/valueobjects"

// Store owns categories, products and offers. Only its identity is modeled.
type Store struct {
	id valueobjects.ID
}

// NewStore creates a store reference
func NewStore(id valueobjects.ID) *Store {
	return &Store{id: id}
}

// ID returns the store identifier
func (s *Store) ID() valueobjects.ID {
	return s.id
}
