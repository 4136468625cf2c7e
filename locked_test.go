package delegate

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLockedBasicOperations(t *testing.T) {
	resetSeedLog(t)
	obj := &seedObject{}

	l := NewLocked[Unit, Unit]()
	l.Add(Action(f1)).Add(Action(f2)).Add(Action(f1)).Add(Must(ActionMethod(obj, (*seedObject).M)))
	require.Equal(t, 3, l.Len())

	l.Invoke(Unit{})
	assert.Equal(t, []string{"f1", "f2", "m"}, seedLog.entries)

	l.Remove(Action(f2))
	assert.Equal(t, 2, l.Len())

	l.Replace(Action(f3))
	assert.Equal(t, 1, l.Len())
}

func TestLockedTargetMayMutate(t *testing.T) {
	l := NewLocked[Unit, Unit]()

	var calls int
	var selfRemoving func()
	selfRemoving = func() {
		calls++
		l.Remove(Action(selfRemoving))
	}
	l.Add(Action(selfRemoving))

	// Would deadlock if Invoke held the lock while calling targets.
	l.Invoke(Unit{})
	l.Invoke(Unit{})

	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, l.Len())
}

func TestLockedSubscription(t *testing.T) {
	l := NewLocked[int, Unit]()

	var sum atomic.Int64
	sub := l.Subscribe(Handler(func(n int) { sum.Add(int64(n)) }))

	l.Invoke(2)
	sub.Close()
	sub.Close()
	l.Invoke(3)

	assert.Equal(t, int64(2), sum.Load())
	assert.Equal(t, 0, l.Len())
}

func ignoreInt(int) {}

func TestLockedConcurrentUse(t *testing.T) {
	l := NewLocked[int, Unit]()

	var hits atomic.Int64
	counterTarget := Handler(func(int) { hits.Add(1) })
	l.Add(counterTarget)

	const workers = 8
	const rounds = 200

	var wg sync.WaitGroup
	wg.Add(workers * 2)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < rounds; j++ {
				l.Invoke(j)
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < rounds; j++ {
				l.Add(counterTarget)
				l.Remove(Handler(ignoreInt))
				_ = l.Len()
			}
		}()
	}

	wg.Wait()

	assert.Equal(t, 1, l.Len())
	assert.Equal(t, int64(workers*rounds), hits.Load())
}
