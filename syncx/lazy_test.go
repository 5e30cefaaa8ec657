package syncx

import (
	"errors"
	"github.com/stretchr/testify/assert"
	"sync"
	"sync/atomic"
	"testing"
)

func TestLazy_Get(t *testing.T) {
	var calls int
	l := NewLazy(func() (int, error) {
		calls++
		return 3, nil
	})
	assert.False(t, l.Done(), "Nothing should be computed before the first call")

	val, err := l.Get()
	assert.NoError(t, err)
	assert.Equal(t, 3, val)
	assert.True(t, l.Done())
	assert.Equal(t, 3, l.Value(), "The same value should be returned again")
	assert.Equal(t, 1, calls, "Compute should only be called once")
}

func TestLazy_Get_Error(t *testing.T) {
	var (
		ErrTesting = errors.New("test")
		calls      int
	)
	l := NewLazy(func() (string, error) {
		calls++
		return "", ErrTesting
	})
	for i := 0; i < 3; i++ {
		_, err := l.Get()
		assert.ErrorIs(t, err, ErrTesting, "Errors should be cached too")
	}
	assert.Equal(t, 1, calls)
}

func TestLazy_Get_Concurrent(t *testing.T) {
	var (
		calls atomic.Int32
		wg    sync.WaitGroup
		start = make(chan struct{})
	)
	l := NewLazy(func() (int, error) {
		calls.Add(1)
		return 42, nil
	})
	results := make([]int, 10)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			results[i] = l.Value()
		}()
	}
	close(start)
	wg.Wait()
	assert.Equal(t, int32(1), calls.Load())
	for _, result := range results {
		assert.Equal(t, 42, result)
	}
}

func TestNewLazy_Nil(t *testing.T) {
	assert.Panics(t, func() {
		NewLazy[int](nil)
	})
}
