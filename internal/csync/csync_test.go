package csync

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap_SetGetKeys(t *testing.T) {
	m := NewMap[string, int]()
	m.Set("a", 1)
	m.Set("b", 2)

	v, ok := m.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Equal(t, 2, m.Len())
	assert.ElementsMatch(t, []string{"a", "b"}, m.Keys())

	m.Set("a", 3)
	v, _ = m.Get("a")
	assert.Equal(t, 3, v)
	assert.Equal(t, 2, m.Len())
}

func TestMap_DeleteFunc(t *testing.T) {
	m := NewMap[string, int]()
	m.Set("a", 1)

	assert.False(t, m.DeleteFunc("a", func(v int) bool { return v == 2 }))
	assert.False(t, m.DeleteFunc("missing", func(int) bool { return true }))
	assert.True(t, m.DeleteFunc("a", func(v int) bool { return v == 1 }))
	assert.Equal(t, 0, m.Len())
}

func TestSlice_TrimFront(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want []int
	}{
		{name: "zero", n: 0, want: []int{1, 2, 3, 4}},
		{name: "negative", n: -2, want: []int{1, 2, 3, 4}},
		{name: "some", n: 2, want: []int{3, 4}},
		{name: "all", n: 4, want: []int{}},
		{name: "past_end", n: 10, want: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSlice[int]()
			s.Append(1, 2, 3, 4)
			s.TrimFront(tt.n)
			assert.Equal(t, tt.want, s.ToSlice())
		})
	}
}

func TestSlice_Clear(t *testing.T) {
	s := NewSlice[string]()
	s.Append("x", "y")
	require.Equal(t, 2, s.Len())

	s.Clear()
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.ToSlice())
}

func TestSlice_ConcurrentAppend(t *testing.T) {
	s := NewSlice[int]()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.Append(i)
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 50, s.Len())
}
