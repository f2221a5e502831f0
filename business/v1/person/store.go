// Package person holds the phonebook and its rules.
package person

import (
	"fmt"
	"html"
	"math/rand"
	"time"

	"github.com/ribgsilva/phonebook-api/business/v1/errs"
	"github.com/ribgsilva/phonebook-api/persistence/v1/memory"
)

// MaxID bounds the random ids: they are drawn from [0, MaxID)
const MaxID = 1_000_000

// dateLayout matches javascript's Date.prototype.toString
const dateLayout = "Mon Jan 02 2006 15:04:05 GMT-0700 (MST)"

// Store owns the phonebook of the process
type Store struct {
	persons  *memory.Collection[Person]
	idSource func() int
}

// Option configures a Store
type Option func(*options)

type options struct {
	seed     []Person
	idSource func() int
}

// WithSeed starts the store with persons
func WithSeed(persons ...Person) Option {
	return func(o *options) {
		o.seed = append(o.seed, persons...)
	}
}

// WithIDSource replaces the random id draw. ids colliding with stored ones are drawn again
func WithIDSource(src func() int) Option {
	return func(o *options) {
		o.idSource = src
	}
}

// NewStore creates a store, empty unless seeded
func NewStore(opts ...Option) *Store {
	o := options{idSource: randomID}
	for _, opt := range opts {
		opt(&o)
	}
	return &Store{persons: memory.New(o.seed...), idSource: o.idSource}
}

func randomID() int {
	return rand.Intn(MaxID)
}

// List returns every person in insertion order
func (s *Store) List() []Person {
	return s.persons.Snapshot()
}

// Find returns the person with id, wrapping errs.ErrNotFound when there is none
func (s *Store) Find(id int) (Person, error) {
	p, ok := s.persons.Find(func(p Person) bool { return p.Id == id })
	if !ok {
		return Person{}, fmt.Errorf("person with id %d: %w", id, errs.ErrNotFound)
	}
	return p, nil
}

// Create validates newP, checks the name is not taken and appends it under a fresh random id
func (s *Store) Create(newP NewPerson) (Person, error) {
	if newP.Name == "" || newP.Number == "" {
		return Person{}, errs.Validation(ReasonNameOrNumberMissing)
	}

	var created Person
	err := s.persons.Update(func(current []Person) ([]Person, error) {
		for _, p := range current {
			if p.Name == newP.Name {
				return nil, errs.Validation(ReasonNameNotUnique)
			}
		}
		created = Person{
			Id:     s.freeID(current),
			Name:   newP.Name,
			Number: newP.Number,
		}
		return memory.Append(current, created), nil
	})
	if err != nil {
		return Person{}, err
	}
	return created, nil
}

// freeID draws until the id is not used in persons
func (s *Store) freeID(persons []Person) int {
	used := make(map[int]struct{}, len(persons))
	for _, p := range persons {
		used[p.Id] = struct{}{}
	}
	for {
		id := s.idSource()
		if _, taken := used[id]; !taken {
			return id
		}
	}
}

// Delete removes the person with id. Missing ids are not an error
func (s *Store) Delete(id int) {
	_ = s.persons.Update(func(current []Person) ([]Person, error) {
		return memory.Filter(current, func(p Person) bool { return p.Id != id }), nil
	})
}

// Count is the number of persons
func (s *Store) Count() int {
	return s.persons.Len()
}

// Info is the html summary of the phonebook at now
func (s *Store) Info(now time.Time) string {
	return fmt.Sprintf("<p>Phonebook has info for %d people</p><p>%s</p>",
		s.Count(), html.EscapeString(now.Format(dateLayout)))
}
