package graft

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStopOnFirstError(t *testing.T) {
	var visited []string

	parse := func(s string) (int, error) {
		visited = append(visited, s)
		return strconv.Atoi(s)
	}

	got, err := stopOnFirstError([]string{"1", "2", "3"}, parse)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, got)

	visited = nil

	got, err = stopOnFirstError([]string{"1", "x", "3"}, parse)
	require.Error(t, err)
	assert.Nil(t, got)
	assert.Equal(t, []string{"1", "x"}, visited, "items after the failure are not visited")

	got, err = stopOnFirstError(nil, parse)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCollectOrRecover(t *testing.T) {
	errOdd := errors.New("odd")

	even := func(n int) (int, error) {
		if n%2 != 0 {
			return 0, errOdd
		}

		return n, nil
	}

	got, errs := collectOrRecover([]int{2, 4}, even, []int{-1})
	assert.Equal(t, []int{2, 4}, got)
	assert.Empty(t, errs)

	got, errs = collectOrRecover([]int{1, 2, 3}, even, []int{-1})
	assert.Equal(t, []int{-1}, got, "any failure yields the fallback")
	assert.Equal(t, []error{errOdd, errOdd}, errs, "every failure is collected")

	got, errs = collectOrRecover([]int{1}, even, nil)
	assert.Nil(t, got)
	assert.Len(t, errs, 1)
}
