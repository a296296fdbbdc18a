package store_test

import (
	"testing"

	"github.com/battlesnakeio/arena/rules"
	"github.com/battlesnakeio/arena/store"
	"github.com/battlesnakeio/arena/store/storetest"
	"github.com/stretchr/testify/require"
)

func TestInMemStore(t *testing.T) {
	storetest.Suite(t, store.InMemStore())
}

func TestInstrumentedStore(t *testing.T) {
	storetest.Suite(t, store.InstrumentStore(store.InMemStore()))
}

func TestBounds(t *testing.T) {
	tests := []struct {
		n, limit, offset int
		start, end       int
	}{
		{n: 5, limit: 10, offset: 0, start: 0, end: 5},
		{n: 5, limit: 2, offset: 1, start: 1, end: 3},
		{n: 5, limit: 1, offset: -1, start: 4, end: 5},
		{n: 5, limit: 3, offset: -10, start: 0, end: 3},
		{n: 5, limit: 3, offset: 5, start: 0, end: 0},
		{n: 0, limit: 3, offset: 0, start: 0, end: 0},
		{n: 5, limit: 0, offset: 0, start: 0, end: 0},
	}
	for _, test := range tests {
		start, end := store.Bounds(test.n, test.limit, test.offset)
		require.Equal(t, test.start, start, "%+v", test)
		require.Equal(t, test.end, end, "%+v", test)
	}
}

func TestPage(t *testing.T) {
	frames := []*rules.Frame{{Turn: 0}, {Turn: 1}, {Turn: 2}}
	require.Equal(t, []*rules.Frame{{Turn: 2}}, store.Page(frames, 1, -1))
	require.Empty(t, store.Page(frames, 1, 3))
}
