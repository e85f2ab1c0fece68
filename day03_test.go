package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoltage(t *testing.T) {
	for bank, want := range map[string]uint64{
		"987654321111111": 98,
		"811111111111119": 89,
		"234234234234278": 78,
		"818181911112111": 92,
		"19":              19,
		"91":              91,
		"00":              0,
	} {
		got, err := joltage(bank)
		require.NoError(t, err, bank)
		assert.Equal(t, want, got, bank)
	}
}

func TestJoltageInvalid(t *testing.T) {
	_, err := joltage("7")
	assert.Error(t, err)
	_, err = joltage("12a4")
	assert.Error(t, err)
}
