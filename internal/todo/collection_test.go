package todo

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/idilsaglam/tasklist/internal/model"
)

type recorder struct {
	name  string
	calls *[]string
}

func (r *recorder) ItemsChanged() { *r.calls = append(*r.calls, r.name) }

// funcListener is not comparable and must be rejected.
type funcListener struct{ fn func() }

func (f funcListener) ItemsChanged() { f.fn() }

type CollectionSuite struct {
	suite.Suite
	c     *Collection
	calls []string
}

func (s *CollectionSuite) SetupTest() {
	c, err := New(nil)
	s.Require().NoError(err)
	s.c = c
	s.calls = nil
}

func TestCollectionSuite(t *testing.T) {
	suite.Run(t, new(CollectionSuite))
}

func (s *CollectionSuite) listener(name string) *recorder {
	return &recorder{name: name, calls: &s.calls}
}

func (s *CollectionSuite) add(title string) model.Item {
	it, err := s.c.AddItem(title)
	s.Require().NoError(err)
	return it
}

func (s *CollectionSuite) TestAddItem() {
	s.Run("appends a pending item", func() {
		it := s.add("Buy milk")
		s.Equal(1, s.c.Count())
		items := s.c.Items()
		s.Require().Len(items, 1)
		s.Equal("Buy milk", items[0].Title)
		s.False(items[0].Completed)
		s.Equal(it.ID, items[0].ID)
	})

	s.Run("rejects blank titles without notifying", func() {
		l := s.listener("a")
		s.Require().NoError(s.c.Subscribe(l))
		before := s.c.Count()

		_, err := s.c.AddItem("   ")
		s.Require().ErrorIs(err, ErrInvalidArgument)
		s.Require().ErrorIs(err, model.ErrEmptyTitle)
		s.Equal(before, s.c.Count())
		s.Empty(s.calls)
	})
}

func (s *CollectionSuite) TestIDsStrictlyIncrease() {
	var last int
	seen := map[int]bool{}
	for i := 0; i < 20; i++ {
		it := s.add("item")
		s.Greater(it.ID, last)
		s.False(seen[it.ID])
		seen[it.ID] = true
		last = it.ID
		if i%3 == 0 {
			s.Require().NoError(s.c.DeleteItem(it.ID))
		}
	}

	// ids are never reused after deletion
	a := s.add("a")
	s.Require().NoError(s.c.DeleteItem(a.ID))
	b := s.add("b")
	s.Greater(b.ID, a.ID)
}

func (s *CollectionSuite) TestUpdateItem() {
	a := s.add("a")
	b := s.add("b")

	s.Run("flips only the matching item", func() {
		s.Require().NoError(s.c.UpdateItem(a.ID, true))
		got, ok := s.c.Item(a.ID)
		s.Require().True(ok)
		s.True(got.Completed)
		other, _ := s.c.Item(b.ID)
		s.False(other.Completed)
	})

	s.Run("unknown id is a silent no-op", func() {
		l := s.listener("l")
		s.Require().NoError(s.c.Subscribe(l))
		before := s.c.Items()

		s.Require().NoError(s.c.UpdateItem(999, true))
		s.Equal(before, s.c.Items())
		s.Empty(s.calls)
	})
}

func (s *CollectionSuite) TestDeleteItem() {
	a := s.add("a")
	b := s.add("b")
	l := s.listener("l")
	s.Require().NoError(s.c.Subscribe(l))

	s.Require().NoError(s.c.DeleteItem(a.ID))
	s.Equal(1, s.c.Count())
	s.Equal([]string{"l"}, s.calls)
	_, ok := s.c.Item(a.ID)
	s.False(ok)

	s.Run("deleting an absent id keeps the count and does not notify", func() {
		s.Require().NoError(s.c.DeleteItem(a.ID))
		s.Equal(1, s.c.Count())
		s.Equal([]string{"l"}, s.calls)
	})

	remaining := s.c.Items()
	s.Require().Len(remaining, 1)
	s.Equal(b.ID, remaining[0].ID)
}

func (s *CollectionSuite) TestSnapshotIsolation() {
	s.add("a")
	snap := s.c.Items()
	snap[0].Title = "mutated"
	snap[0].Completed = true

	items := s.c.Items()
	s.Require().Len(items, 1)
	s.Equal("a", items[0].Title)
	s.False(items[0].Completed)
}

func (s *CollectionSuite) TestListeners() {
	s.Run("notified once per mutation in registration order", func() {
		first, second := s.listener("first"), s.listener("second")
		s.Require().NoError(s.c.Subscribe(first))
		s.Require().NoError(s.c.Subscribe(second))

		it := s.add("a")
		s.Require().NoError(s.c.UpdateItem(it.ID, true))
		s.Require().NoError(s.c.DeleteItem(it.ID))

		s.Equal([]string{"first", "second", "first", "second", "first", "second"}, s.calls)
	})

	s.Run("duplicate subscribe is rejected", func() {
		s.calls = nil
		l := s.listener("dup")
		s.Require().NoError(s.c.Subscribe(l))
		s.Require().ErrorIs(s.c.Subscribe(l), ErrAlreadySubscribed)
		s.add("b")
		count := 0
		for _, c := range s.calls {
			if c == "dup" {
				count++
			}
		}
		s.Equal(1, count)
	})

	s.Run("unsubscribe stops notifications", func() {
		s.calls = nil
		l := s.listener("gone")
		s.Require().NoError(s.c.Subscribe(l))
		s.True(s.c.Unsubscribe(l))
		s.False(s.c.Unsubscribe(l))
		s.add("c")
		s.NotContains(s.calls, "gone")
	})

	s.Run("non comparable listeners are rejected", func() {
		err := s.c.Subscribe(funcListener{fn: func() {}})
		s.Require().ErrorIs(err, ErrInvalidArgument)
		s.Require().ErrorIs(s.c.Subscribe(nil), ErrInvalidArgument)
	})
}

type mutatingListener struct {
	c   *Collection
	err error
}

func (m *mutatingListener) ItemsChanged() {
	_, m.err = m.c.AddItem("nested")
}

func (s *CollectionSuite) TestReentrantMutationRejected() {
	m := &mutatingListener{c: s.c}
	s.Require().NoError(s.c.Subscribe(m))

	s.add("outer")
	s.Require().ErrorIs(m.err, ErrReentrantMutation)
	s.Require().ErrorIs(m.err, ErrInvalidState)
	s.Equal(1, s.c.Count())
}

func (s *CollectionSuite) TestSeed() {
	c, err := New([]model.Item{
		{ID: 50, Title: " a ", Completed: true},
		{ID: 50, Title: "b"},
	})
	s.Require().NoError(err)
	items := c.Items()
	s.Require().Len(items, 2)
	s.Equal(1, items[0].ID)
	s.Equal("a", items[0].Title)
	s.True(items[0].Completed)
	s.Equal(2, items[1].ID)

	done, pending := c.Stats()
	s.Equal(1, done)
	s.Equal(1, pending)

	_, err = New([]model.Item{{Title: ""}})
	s.Require().ErrorIs(err, ErrInvalidArgument)
}
