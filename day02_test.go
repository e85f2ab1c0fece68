package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDay2(t *testing.T) {
	got, err := day2a("11-22\n")
	require.NoError(t, err)
	assert.Equal(t, answer(33), got)

	got, err = day2a("95-115,998-1012")
	require.NoError(t, err)
	assert.Equal(t, answer(1109), got)
}

func TestDay2BadToken(t *testing.T) {
	_, err := day2a("11-22,oops")
	assert.ErrorContains(t, err, "oops")
}
