package compose_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leadscope/domain/core"
	"leadscope/ui/compose"
)

// TestQueueDrainFIFO tests that queued callbacks run in append order,
// exactly once, when the registry constructs.
func TestQueueDrainFIFO(t *testing.T) {
	q := &compose.Queue{}
	var order []string

	require.NoError(t, q.Defer(func(r *compose.Registry) {
		order = append(order, "first")
		r.Register(staticFragment("one", "<p>1</p>"))
	}))
	require.NoError(t, q.Defer(func(r *compose.Registry) {
		order = append(order, "second")
		r.Register(staticFragment("two", "<p>2</p>"))
	}))
	assert.Equal(t, 2, q.Len())
	assert.False(t, q.Drained())

	r := compose.NewRegistryWithQueue(q)

	assert.Equal(t, []string{"first", "second"}, order)
	assert.True(t, q.Drained())
	assert.Equal(t, 0, q.Len())
	assert.Equal(t, 2, r.Len())
}

// TestQueueDeferAfterDrain tests the ordering contract: deferring after the
// drain point is rejected loudly instead of silently dropped.
func TestQueueDeferAfterDrain(t *testing.T) {
	q := &compose.Queue{}
	compose.NewRegistryWithQueue(q)

	err := q.Defer(func(*compose.Registry) {})
	assert.ErrorIs(t, err, core.ErrQueueDrained)
}

// TestQueueEquivalentToDirectRegistration tests drain idempotence: for
// name-disjoint fragment sets, queue-then-drain yields the same registry
// contents as registering directly after construction.
func TestQueueEquivalentToDirectRegistration(t *testing.T) {
	names := []string{"profile", "score", "summary"}

	q := &compose.Queue{}
	for _, name := range names {
		name := name
		require.NoError(t, q.Defer(func(r *compose.Registry) {
			r.Register(staticFragment(name, "<p>"+name+"</p>"))
		}))
	}
	queued := compose.NewRegistryWithQueue(q)

	direct := compose.NewRegistryWithQueue(nil)
	for _, name := range names {
		direct.Register(staticFragment(name, "<p>"+name+"</p>"))
	}

	assert.ElementsMatch(t, queued.Names(), direct.Names())
	for _, name := range names {
		_, ok := queued.Get(name)
		assert.True(t, ok, "queued registry missing %s", name)
	}
}

// TestQueueOrderIndependenceAcrossDisjointSets tests that any append order
// of name-disjoint registrations produces the same final registry.
func TestQueueOrderIndependenceAcrossDisjointSets(t *testing.T) {
	build := func(order []string) []string {
		q := &compose.Queue{}
		for _, name := range order {
			name := name
			require.NoError(t, q.Defer(func(r *compose.Registry) {
				r.Register(staticFragment(name, ""))
			}))
		}
		return compose.NewRegistryWithQueue(q).Names()
	}

	a := build([]string{"x", "y", "z"})
	b := build([]string{"z", "x", "y"})
	assert.ElementsMatch(t, a, b)
}

// TestRegistryAcceptsDirectRegistrationAfterDrain tests that the registry
// keeps accepting registrations for the rest of its life.
func TestRegistryAcceptsDirectRegistrationAfterDrain(t *testing.T) {
	q := &compose.Queue{}
	require.NoError(t, q.Defer(func(r *compose.Registry) {
		r.Register(staticFragment("early", ""))
	}))

	r := compose.NewRegistryWithQueue(q)
	r.Register(staticFragment("late", ""))

	_, okEarly := r.Get("early")
	_, okLate := r.Get("late")
	assert.True(t, okEarly)
	assert.True(t, okLate)
}
