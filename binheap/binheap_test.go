package binheap_test

import (
	"math/rand"
	"testing"

	"github.com/PlotoZypresse/heapix"
	"github.com/PlotoZypresse/heapix/binheap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ heapix.Queue[int] = (*binheap.Heap[int])(nil)

func TestInsertAndGetMin(t *testing.T) {
	tests := []struct {
		name    string
		items   []heapix.Item[int]
		want    heapix.Item[int]
		wantLen int
	}{
		{
			name:    "single item",
			items:   []heapix.Item[int]{{ID: 0, Key: 42}},
			want:    heapix.Item[int]{ID: 0, Key: 42},
			wantLen: 1,
		},
		{
			name: "later insert becomes min",
			items: []heapix.Item[int]{
				{ID: 5, Key: 69},
				{ID: 3, Key: 8},
			},
			want:    heapix.Item[int]{ID: 3, Key: 8},
			wantLen: 2,
		},
		{
			name: "min stays put",
			items: []heapix.Item[int]{
				{ID: 0, Key: 20},
				{ID: 1, Key: 10},
				{ID: 2, Key: 30},
			},
			want:    heapix.Item[int]{ID: 1, Key: 10},
			wantLen: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := binheap.New[int]()
			for _, item := range tt.items {
				require.NoError(t, h.Insert(item.ID, item.Key))
			}
			got, ok := h.GetMin()
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantLen, h.Len())
		})
	}
}

func TestGetMinDoesNotMutate(t *testing.T) {
	h := binheap.New[int]()
	require.NoError(t, h.Insert(0, 20))
	require.NoError(t, h.Insert(1, 10))

	first, ok := h.GetMin()
	require.True(t, ok)
	second, ok := h.GetMin()
	require.True(t, ok)
	assert.Equal(t, first, second)
	assert.Equal(t, 2, h.Len())
}

func TestDeleteMin(t *testing.T) {
	h := binheap.New[int]()
	require.NoError(t, h.Insert(0, 20))
	require.NoError(t, h.Insert(1, 10))
	require.NoError(t, h.Insert(2, 30))

	item, ok := h.DeleteMin()
	require.True(t, ok)
	assert.Equal(t, heapix.Item[int]{ID: 1, Key: 10}, item)

	item, ok = h.GetMin()
	require.True(t, ok)
	assert.Equal(t, heapix.Item[int]{ID: 0, Key: 20}, item)
	assert.Equal(t, 2, h.Len())
}

func TestDeleteMinEmpty(t *testing.T) {
	h := binheap.New[int]()
	_, ok := h.DeleteMin()
	assert.False(t, ok)
}

func TestDecreaseKey(t *testing.T) {
	h := binheap.New[int]()
	require.NoError(t, h.Insert(0, 100))
	require.NoError(t, h.Insert(1, 200))
	require.NoError(t, h.Insert(2, 300))

	require.NoError(t, h.DecreaseKey(2, 50))

	item, ok := h.GetMin()
	require.True(t, ok)
	assert.Equal(t, heapix.Item[int]{ID: 2, Key: 50}, item)
}

func TestContractViolations(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(t *testing.T, h *binheap.Heap[int])
		op      func(h *binheap.Heap[int]) error
		wantErr error
	}{
		{
			name: "duplicate id",
			setup: func(t *testing.T, h *binheap.Heap[int]) {
				require.NoError(t, h.Insert(1, 10))
			},
			op:      func(h *binheap.Heap[int]) error { return h.Insert(1, 20) },
			wantErr: heapix.ErrDuplicateID,
		},
		{
			name:    "negative id",
			op:      func(h *binheap.Heap[int]) error { return h.Insert(-4, 5) },
			wantErr: heapix.ErrNegativeID,
		},
		{
			name:    "decrease key of absent id",
			op:      func(h *binheap.Heap[int]) error { return h.DecreaseKey(7, 1) },
			wantErr: heapix.ErrIDNotPresent,
		},
		{
			name: "decrease key to equal key",
			setup: func(t *testing.T, h *binheap.Heap[int]) {
				require.NoError(t, h.Insert(1, 10))
			},
			op:      func(h *binheap.Heap[int]) error { return h.DecreaseKey(1, 10) },
			wantErr: heapix.ErrKeyNotDecreasing,
		},
		{
			name: "decrease key to larger key",
			setup: func(t *testing.T, h *binheap.Heap[int]) {
				require.NoError(t, h.Insert(1, 10))
			},
			op:      func(h *binheap.Heap[int]) error { return h.DecreaseKey(1, 99) },
			wantErr: heapix.ErrKeyNotDecreasing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := binheap.New[int]()
			if tt.setup != nil {
				tt.setup(t, h)
			}
			before := h.Len()
			err := tt.op(h)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, before, h.Len(), "a rejected call must not change the heap")
		})
	}
}

func TestBuildMatchesSequentialInsert(t *testing.T) {
	rng := rand.New(rand.NewSource(23))
	perm := rng.Perm(256)

	items := make([]heapix.Item[int], len(perm))
	sequential := binheap.NewWithCapacity[int](len(perm), len(perm))
	for id, key := range perm {
		items[id] = heapix.Item[int]{ID: id, Key: key}
		require.NoError(t, sequential.Insert(id, key))
	}

	built, err := binheap.Build(items)
	require.NoError(t, err)
	require.Equal(t, sequential.Len(), built.Len())

	// Internal layouts may differ; the pop streams must not.
	for item := range heapix.Drain[int](built) {
		want, ok := sequential.DeleteMin()
		require.True(t, ok)
		require.Equal(t, want, item)
	}
	require.True(t, sequential.IsEmpty())
}

func TestBuildRejectsBadIDs(t *testing.T) {
	_, err := binheap.Build([]heapix.Item[int]{{ID: 0, Key: 1}, {ID: 0, Key: 2}})
	assert.ErrorIs(t, err, heapix.ErrDuplicateID)

	_, err = binheap.Build([]heapix.Item[int]{{ID: -1, Key: 1}})
	assert.ErrorIs(t, err, heapix.ErrNegativeID)
}

func TestClearInvalidatesAndReuses(t *testing.T) {
	h := binheap.New[int]()
	require.NoError(t, h.Insert(0, 3))
	require.NoError(t, h.Insert(1, 1))

	h.Clear()
	require.True(t, h.IsEmpty())
	assert.ErrorIs(t, h.DecreaseKey(0, 1), heapix.ErrIDNotPresent)

	require.NoError(t, h.Insert(0, 7))
	item, ok := h.GetMin()
	require.True(t, ok)
	assert.Equal(t, heapix.Item[int]{ID: 0, Key: 7}, item)
}

func TestFloatKeys(t *testing.T) {
	h := binheap.New[float64]()
	require.NoError(t, h.Insert(0, 2.5))
	require.NoError(t, h.Insert(1, 3.5))
	require.NoError(t, h.Insert(2, 0.5))

	require.NoError(t, h.DecreaseKey(1, -1.5))

	var got []float64
	for item := range heapix.Drain[float64](h) {
		got = append(got, item.Key)
	}
	assert.Equal(t, []float64{-1.5, 0.5, 2.5}, got)
}

func TestMixedWorkloadStaysSorted(t *testing.T) {
	rng := rand.New(rand.NewSource(29))
	h := binheap.New[int]()
	live := make(map[int]int)
	nextID := 0

	for op := 0; op < 2000; op++ {
		switch r := rng.Intn(10); {
		case r < 6:
			id := nextID
			nextID++
			key := rng.Intn(1 << 20)
			require.NoError(t, h.Insert(id, key))
			live[id] = key
		default:
			item, ok := h.DeleteMin()
			require.Equal(t, len(live) > 0, ok)
			if ok {
				for _, k := range live {
					require.LessOrEqual(t, item.Key, k)
				}
				delete(live, item.ID)
			}
		}
		require.Equal(t, len(live), h.Len())
	}
}
