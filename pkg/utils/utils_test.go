package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAssert(t *testing.T) {
	require.NotPanics(t, func() { Assert(true) })
	require.PanicsWithValue(t, "tinyld: fatal: Assert Failed", func() { Assert(false) })
	require.PanicsWithValue(t, "tinyld: fatal: cursor 3 != 4", func() { Assertf(false, "cursor %d != %d", 3, 4) })
}

func TestRemoveIf(t *testing.T) {
	got := RemoveIf([]int{1, 2, 3, 4, 5}, func(i int) bool { return i%2 == 0 })
	require.Equal(t, []int{1, 3, 5}, got)
	require.Empty(t, RemoveIf([]int{}, func(int) bool { return true }))
}
