package cli

import (
	"strconv"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInts(t *testing.T) {
	got, err := parseInts([]string{"1", " -2 ", "30"})
	require.NoError(t, err)
	assert.Equal(t, []int{1, -2, 30}, got)

	_, err = parseInts([]string{"1", "two"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `value 1 ("two")`)
	var numErr *strconv.NumError
	assert.True(t, errors.As(err, &numErr))
}

func TestParseIntGrid(t *testing.T) {
	got, err := parseIntGrid([]string{"1,2", "3,4", ""})
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 2}, {3, 4}, {}}, got)

	_, err = parseIntGrid([]string{"1,2", "3,x"})
	assert.ErrorContains(t, err, "row 1")
}

func TestParseFloatGrid(t *testing.T) {
	got, err := parseFloatGrid([]string{"1,2.5;3,4", "5,6"})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 2.5}, {3, 4}, {5, 6}}, got)

	_, err = parseFloatGrid([]string{"1;x"})
	assert.ErrorContains(t, err, "row 1 col 0")
}
