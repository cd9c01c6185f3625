package harness

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func noop(out *Sink) error { return nil }

func TestRegistry_ListPreservesOrder(t *testing.T) {
	reg := NewRegistry()
	for _, name := range []string{"numbers", "strings", "arrays", "closures"} {
		require.NoError(t, reg.Register(name, noop))
	}

	assert.Equal(t, []string{"numbers", "strings", "arrays", "closures"}, reg.List())
	assert.Equal(t, 4, reg.Len())
}

func TestRegistry_ListReturnsCopy(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register("a", noop))

	names := reg.List()
	names[0] = "mutated"

	assert.Equal(t, []string{"a"}, reg.List())
}

func TestRegistry_DuplicateName(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register("numbers", noop, WithTitle("Numbers")))

	err := reg.Register("numbers", func(out *Sink) error {
		out.Write("replacement")
		return nil
	}, WithTitle("Other"))
	require.Error(t, err)

	var dup *DuplicateNameError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, "numbers", dup.Name)
	assert.True(t, errors.Is(err, ErrDuplicateName))
	assert.True(t, IsDuplicateName(err))

	// Registry unchanged: still one entry, original title.
	assert.Equal(t, []string{"numbers"}, reg.List())
	lesson, err := reg.Get("numbers")
	require.NoError(t, err)
	assert.Equal(t, "Numbers", lesson.Title)
}

func TestRegistry_InvalidLesson(t *testing.T) {
	reg := NewRegistry()

	err := reg.Register("", noop)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidLesson))

	err = reg.Register("nobody", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidLesson))
	assert.Contains(t, err.Error(), "nobody")

	assert.Equal(t, 0, reg.Len())
}

func TestRegistry_GetNotFound(t *testing.T) {
	reg := NewRegistry()

	_, err := reg.Get("bogus")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.True(t, IsNotFound(err))
	assert.Contains(t, err.Error(), `"bogus"`)
}

func TestRegistry_TitleDefaultsToName(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register("closures", noop))

	lesson, err := reg.Get("closures")
	require.NoError(t, err)
	assert.Equal(t, "closures", lesson.Title)
}

func TestRegistry_LessonsInOrder(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register("b", noop))
	require.NoError(t, reg.Register("a", noop))

	lessons := reg.Lessons()
	require.Len(t, lessons, 2)
	assert.Equal(t, "b", lessons[0].Name)
	assert.Equal(t, "a", lessons[1].Name)
}

func TestLessonID_Deterministic(t *testing.T) {
	r1 := NewRegistry()
	r2 := NewRegistry()
	require.NoError(t, r1.Register("numbers", noop))
	require.NoError(t, r2.Register("numbers", noop))
	require.NoError(t, r1.Register("strings", noop))

	n1, _ := r1.Get("numbers")
	n2, _ := r2.Get("numbers")
	s1, _ := r1.Get("strings")

	assert.Equal(t, n1.ID, n2.ID)
	assert.NotEqual(t, n1.ID, s1.ID)
	assert.Equal(t, 5, int(n1.ID.Version()))
	assert.Equal(t, LessonID("numbers"), n1.ID)
}

// distinctNames draws a list of unique, non-empty lesson names.
func distinctNames(t *rapid.T) []string {
	return rapid.SliceOfNDistinct(
		rapid.StringMatching(`[a-z][a-zA-Z0-9]{0,11}`),
		0, 20,
		rapid.ID[string],
	).Draw(t, "names")
}

func TestRegistry_PropertyOrderPreserved(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		names := distinctNames(rt)

		reg := NewRegistry()
		for _, name := range names {
			if err := reg.Register(name, noop); err != nil {
				rt.Fatalf("register %q: %v", name, err)
			}
		}

		got := reg.List()
		if len(got) != len(names) {
			rt.Fatalf("List() has %d names, want %d", len(got), len(names))
		}
		for i := range names {
			if got[i] != names[i] {
				rt.Fatalf("List()[%d] = %q, want %q", i, got[i], names[i])
			}
		}
	})
}

func TestRegistry_PropertyDuplicateLeavesRegistryUnchanged(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		names := distinctNames(rt)
		if len(names) == 0 {
			return
		}

		reg := NewRegistry()
		for _, name := range names {
			if err := reg.Register(name, noop); err != nil {
				rt.Fatalf("register %q: %v", name, err)
			}
		}
		before := fmt.Sprint(reg.List())

		dup := rapid.SampledFrom(names).Draw(rt, "dup")
		err := reg.Register(dup, noop)
		if !IsDuplicateName(err) {
			rt.Fatalf("Register(%q) = %v, want DuplicateNameError", dup, err)
		}
		if after := fmt.Sprint(reg.List()); after != before {
			rt.Fatalf("registry changed: %s -> %s", before, after)
		}
	})
}
