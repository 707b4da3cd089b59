package registry

import (
	"fmt"
	"sync"
	"testing"

	"github.com/arthur-debert/woah/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type factory func() string

func TestRegistryRegisterAndGet(t *testing.T) {
	reg := New[factory]()
	assert.Equal(t, 0, reg.Count())

	require.NoError(t, reg.Register("bedrock", func() string { return "bedrock" }))
	assert.True(t, reg.Has("bedrock"))
	assert.False(t, reg.Has("other"))

	got, err := reg.Get("bedrock")
	require.NoError(t, err)
	assert.Equal(t, "bedrock", got())

	_, err = reg.Get("other")
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
	assert.Equal(t, "other", errors.GetErrorDetails(err)["name"])
}

func TestRegistryRejectsBadNames(t *testing.T) {
	reg := New[int]()

	err := reg.Register("", 1)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	require.NoError(t, reg.Register("a", 1))
	err = reg.Register("a", 2)
	assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists))

	v, err := reg.Get("a")
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}

func TestRegistryListSorted(t *testing.T) {
	reg := New[int]()
	for i, name := range []string{"zeta", "alpha", "mid"} {
		require.NoError(t, reg.Register(name, i))
	}
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, reg.List())
	assert.Equal(t, 3, reg.Count())
}

func TestRegistryConcurrency(t *testing.T) {
	reg := New[int]()
	const goroutines = 10
	const perGoroutine = 100

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for g := 0; g < goroutines; g++ {
		go func(g int) {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				assert.NoError(t, reg.Register(fmt.Sprintf("g%d_%d", g, i), g*1000+i))
			}
		}(g)
	}
	wg.Wait()

	assert.Equal(t, goroutines*perGoroutine, reg.Count())
}

func TestMustRegister(t *testing.T) {
	reg := New[int]()
	assert.NotPanics(t, func() { MustRegister(reg, "a", 1) })
	assert.Panics(t, func() { MustRegister(reg, "a", 2) })
}
