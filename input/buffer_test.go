package input

import (
	"sync"
	"testing"

	"github.com/battlesnakeio/arena/rules"
	"github.com/stretchr/testify/require"
)

func TestBufferLastWriteWins(t *testing.T) {
	b := NewBuffer()
	b.Push(0, rules.DirectionUp)
	b.Push(0, rules.DirectionLeft)
	b.Push(1, rules.DirectionDown)

	require.Equal(t, map[int]rules.Direction{
		0: rules.DirectionLeft,
		1: rules.DirectionDown,
	}, b.Drain())
	require.Empty(t, b.Drain())
}

func TestBufferPushAll(t *testing.T) {
	b := NewBuffer()
	b.Push(0, rules.DirectionUp)
	b.PushAll(map[int]rules.Direction{0: rules.DirectionDown, 2: rules.DirectionRight})

	require.Equal(t, map[int]rules.Direction{
		0: rules.DirectionDown,
		2: rules.DirectionRight,
	}, b.Drain())
}

func TestBufferConcurrentProducers(t *testing.T) {
	b := NewBuffer()
	wg := sync.WaitGroup{}
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				b.Push(i, rules.DirectionUp)
			}
		}(i)
	}

	drained := map[int]rules.Direction{}
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	for {
		for i, d := range b.Drain() {
			drained[i] = d
		}
		select {
		case <-done:
			for i, d := range b.Drain() {
				drained[i] = d
			}
			require.Len(t, drained, 4)
			return
		default:
		}
	}
}
