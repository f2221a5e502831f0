// Package note holds the notes collection and its rules.
package note

import (
	"fmt"

	"github.com/ribgsilva/phonebook-api/business/v1/errs"
	"github.com/ribgsilva/phonebook-api/persistence/v1/memory"
)

// Store owns the notes of the process
type Store struct {
	notes *memory.Collection[Note]
}

// Option configures a Store
type Option func(*options)

type options struct {
	seed []Note
}

// WithSeed starts the store with notes
func WithSeed(notes ...Note) Option {
	return func(o *options) {
		o.seed = append(o.seed, notes...)
	}
}

// NewStore creates a store, empty unless seeded
func NewStore(opts ...Option) *Store {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return &Store{notes: memory.New(o.seed...)}
}

// List returns every note in insertion order
func (s *Store) List() []Note {
	return s.notes.Snapshot()
}

// Find returns the note with id, wrapping errs.ErrNotFound when there is none
func (s *Store) Find(id int) (Note, error) {
	n, ok := s.notes.Find(func(n Note) bool { return n.Id == id })
	if !ok {
		return Note{}, fmt.Errorf("note with id %d: %w", id, errs.ErrNotFound)
	}
	return n, nil
}

// Create validates newN and appends it with the next sequential id
func (s *Store) Create(newN NewNote) (Note, error) {
	if newN.Content == "" {
		return Note{}, errs.Validation(ReasonContentMissing)
	}

	var created Note
	err := s.notes.Update(func(current []Note) ([]Note, error) {
		created = Note{
			Id:        nextID(current),
			Content:   newN.Content,
			Important: truthy(newN.Important),
		}
		return memory.Append(current, created), nil
	})
	return created, err
}

// Delete removes the note with id. Missing ids are not an error
func (s *Store) Delete(id int) {
	_ = s.notes.Update(func(current []Note) ([]Note, error) {
		return memory.Filter(current, func(n Note) bool { return n.Id != id }), nil
	})
}

// Count is the number of notes
func (s *Store) Count() int {
	return s.notes.Len()
}

// nextID is one more than the highest id in notes, 1 when empty
func nextID(notes []Note) int {
	highest := 0
	for _, n := range notes {
		if n.Id > highest {
			highest = n.Id
		}
	}
	return highest + 1
}
