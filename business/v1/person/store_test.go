package person

import (
	"errors"
	"testing"
	"time"

	"github.com/ribgsilva/phonebook-api/business/v1/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sequence returns the ids in order, then repeats the last one
func sequence(ids ...int) func() int {
	i := 0
	return func() int {
		id := ids[i]
		if i < len(ids)-1 {
			i++
		}
		return id
	}
}

func TestCreateRandomIDInRange(t *testing.T) {
	s := NewStore(WithSeed(Seed()...))

	for i := 0; i < 20; i++ {
		p, err := s.Create(NewPerson{Name: string(rune('a' + i)), Number: "1"})
		require.NoError(t, err)
		assert.GreaterOrEqual(t, p.Id, 0)
		assert.Less(t, p.Id, MaxID)
	}

	seen := map[int]bool{}
	for _, p := range s.List() {
		assert.False(t, seen[p.Id], "duplicate id %d", p.Id)
		seen[p.Id] = true
	}
}

func TestCreateRedrawsOnCollision(t *testing.T) {
	s := NewStore(WithSeed(Seed()...), WithIDSource(sequence(1, 2, 4, 42)))

	p, err := s.Create(NewPerson{Name: "Grace Hopper", Number: "555"})
	require.NoError(t, err)
	assert.Equal(t, 42, p.Id)
}

func TestCreateValidation(t *testing.T) {
	s := NewStore(WithSeed(Seed()...))

	for _, np := range []NewPerson{{Name: "x"}, {Number: "1"}, {}} {
		_, err := s.Create(np)
		v, ok := errs.AsValidation(err)
		require.True(t, ok, "expected validation error for %+v, got %v", np, err)
		assert.Equal(t, ReasonNameOrNumberMissing, v.Reason)
	}

	for _, number := range []string{"1", "040-123456", "other"} {
		_, err := s.Create(NewPerson{Name: "Arto Hellas", Number: number})
		v, ok := errs.AsValidation(err)
		require.True(t, ok)
		assert.Equal(t, ReasonNameNotUnique, v.Reason)
	}

	_, err := s.Create(NewPerson{Name: "arto hellas", Number: "1"})
	assert.NoError(t, err, "names are compared exactly")
	assert.Equal(t, 5, s.Count())
}

func TestFindDeleteRoundTrip(t *testing.T) {
	s := NewStore()
	created, err := s.Create(NewPerson{Name: "Ada", Number: "1"})
	require.NoError(t, err)

	found, err := s.Find(created.Id)
	require.NoError(t, err)
	assert.Equal(t, created, found)

	s.Delete(created.Id)
	s.Delete(created.Id)
	_, err = s.Find(created.Id)
	assert.True(t, errors.Is(err, errs.ErrNotFound))
	assert.Equal(t, 0, s.Count())
}

func TestInfo(t *testing.T) {
	s := NewStore(WithSeed(Seed()...))
	now := time.Date(2026, time.October, 14, 9, 30, 0, 0, time.UTC)

	assert.Equal(t,
		"<p>Phonebook has info for 4 people</p><p>Wed Oct 14 2026 09:30:00 GMT+0000 (UTC)</p>",
		s.Info(now))
}
