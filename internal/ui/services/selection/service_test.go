package selection

import (
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"icsselect/internal/domain"
	"icsselect/internal/eventbus"
	"icsselect/internal/logic"
)

func TestNewServiceSelectsEverything(t *testing.T) {
	s := NewService(nil, 45)
	assert.Equal(t, 45, s.Len())
	assert.Equal(t, 45, s.Count())
	for i := 0; i < 45; i++ {
		assert.True(t, s.IsSelected(i))
	}
}

func TestToggleFlipsOneFlag(t *testing.T) {
	s := NewService(nil, 10)

	require.NoError(t, s.Toggle(5))
	assert.False(t, s.IsSelected(5))
	assert.Equal(t, 9, s.Count())

	require.NoError(t, s.Toggle(5))
	assert.True(t, s.IsSelected(5))
	assert.Equal(t, 10, s.Count())
}

func TestToggleOutOfRange(t *testing.T) {
	s := NewService(nil, 3)

	for _, idx := range []int{-1, 3, 100} {
		err := s.Toggle(idx)
		var idxErr *IndexError
		require.ErrorAs(t, err, &idxErr)
		assert.Equal(t, idx, idxErr.Index)
		assert.Equal(t, 3, idxErr.Len)
	}
	assert.Equal(t, []bool{true, true, true}, s.Flags())
}

func TestSetAllIsScopedToPage(t *testing.T) {
	s := NewService(nil, 45)
	pages, err := logic.Pages(45, 20)
	require.NoError(t, err)

	require.NoError(t, s.SetAll(pages[1], false))
	assert.Equal(t, 25, s.Count())
	assert.Equal(t, 20, s.CountIn(pages[0]))
	assert.Equal(t, 0, s.CountIn(pages[1]))
	assert.Equal(t, 5, s.CountIn(pages[2]))

	require.NoError(t, s.SetAll(pages[1], true))
	assert.Equal(t, 45, s.Count())
}

func TestSetAllRejectsOutOfRangePage(t *testing.T) {
	s := NewService(nil, 10)
	var idxErr *IndexError

	assert.ErrorAs(t, s.SetAll(domain.Page{Start: 5, End: 11}, false), &idxErr)
	assert.ErrorAs(t, s.SetAll(domain.Page{Start: -1, End: 2}, false), &idxErr)
	assert.ErrorAs(t, s.SetAll(domain.Page{Start: 4, End: 2}, false), &idxErr)
	assert.Equal(t, 10, s.Count())
}

func TestFlagsReturnsCopy(t *testing.T) {
	s := NewService(nil, 2)
	flags := s.Flags()
	flags[0] = false
	assert.True(t, s.IsSelected(0))
}

func TestMutationsPublishSelectionChanged(t *testing.T) {
	bus := eventbus.New()
	got := make(chan eventbus.SelectionChangedEvent, 4)
	bus.Subscribe(eventbus.EventSelectionChanged, func(e eventbus.DomainEvent) {
		got <- e.(eventbus.SelectionChangedEvent)
	})

	s := NewService(bus, 5)
	require.NoError(t, s.Toggle(2))
	require.NoError(t, s.SetAll(domain.Page{Start: 0, End: 5}, false))
	// already cleared: no event
	require.NoError(t, s.SetAll(domain.Page{Start: 0, End: 5}, false))
	bus.Close()

	require.Len(t, got, 2)
	first := <-got
	assert.Equal(t, []int{2}, first.Indices)
	assert.False(t, first.Selected)
	assert.Equal(t, 4, first.Total)

	second := <-got
	assert.Equal(t, []int{0, 1, 3, 4}, second.Indices)
	assert.Zero(t, second.Total)

	select {
	case <-got:
		t.Fatal("unexpected extra event")
	case <-time.After(10 * time.Millisecond):
	}
}

func TestSetAllIdempotentProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("SetAll twice equals SetAll once", prop.ForAll(
		func(total, size int, toggles []int, value bool) bool {
			once := NewService(nil, total)
			twice := NewService(nil, total)
			for _, idx := range toggles {
				_ = once.Toggle(idx % total)
				_ = twice.Toggle(idx % total)
			}

			pages, err := logic.Pages(total, size)
			if err != nil {
				return false
			}
			page := pages[len(toggles)%len(pages)]

			if once.SetAll(page, value) != nil {
				return false
			}
			if twice.SetAll(page, value) != nil || twice.SetAll(page, value) != nil {
				return false
			}

			a, b := once.Flags(), twice.Flags()
			for i := range a {
				if a[i] != b[i] {
					return false
				}
			}
			return true
		},
		gen.IntRange(1, 200),
		gen.IntRange(1, 30),
		gen.SliceOf(gen.IntRange(0, 1000)),
		gen.Bool(),
	))

	properties.TestingRun(t)
}
