package seqstore

import (
	"math/rand"
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/require"
)

// TestStoreMatchesSliceModel drives a store and a plain slice through the
// same randomized operation sequence and requires identical observable
// state throughout.
func TestStoreMatchesSliceModel(t *testing.T) {
	const ops = 2000
	rng := rand.New(rand.NewSource(1))
	fz := fuzz.NewWithSeed(2)

	s := New[int]()
	defer s.Release()
	var model []int

	for op := 0; op < ops; op++ {
		var v int
		fz.Fuzz(&v)

		switch k := rng.Intn(5); {
		case len(model) == 0 || k == 0:
			s.Push(v)
			model = append(model, v)
		case k == 1:
			i := rng.Intn(len(model) + 1)
			s.Insert(i, v)
			model = append(model[:i], append([]int{v}, model[i:]...)...)
		case k == 2 || k == 3:
			i := rng.Intn(len(model))
			got := s.Remove(i)
			require.Equal(t, model[i], got, "Remove(%d) at op %d", i, op)
			model = append(model[:i], model[i+1:]...)
		default:
			i := rng.Intn(len(model))
			s.Set(i, v)
			model[i] = v
		}

		require.Equal(t, len(model), s.Len(), "length at op %d", op)
		require.Equal(t, requiredExtents(len(model)), s.extents, "extents at op %d", op)

		if op%64 == 0 {
			for i, want := range model {
				require.Equal(t, want, s.Get(i), "element %d at op %d", i, op)
			}
		}
	}

	require.True(t, Equal(s, FromSlice(model)), "final state diverged from model")
}
