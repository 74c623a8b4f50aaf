package ftd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankTopN(t *testing.T) {
	records := []FailRecord{
		{Symbol: "A", FTDValue: 100},
		{Symbol: "B", FTDValue: 500},
		{Symbol: "C", FTDValue: 300},
		{Symbol: "D", FTDValue: 400},
		{Symbol: "E", FTDValue: 200},
	}

	top, err := Rank(records, 3)
	require.NoError(t, err)
	require.Len(t, top, 3)
	assert.Equal(t, "B", top[0].Symbol)
	assert.Equal(t, "D", top[1].Symbol)
	assert.Equal(t, "C", top[2].Symbol)

	// Input order untouched.
	assert.Equal(t, "A", records[0].Symbol)
}

func TestRankStableTies(t *testing.T) {
	records := []FailRecord{
		{Symbol: "FIRST", FTDValue: 100},
		{Symbol: "SECOND", FTDValue: 100},
		{Symbol: "THIRD", FTDValue: 100},
	}

	top, err := Rank(records, 3)
	require.NoError(t, err)
	assert.Equal(t, "FIRST", top[0].Symbol)
	assert.Equal(t, "SECOND", top[1].Symbol)
	assert.Equal(t, "THIRD", top[2].Symbol)
}

func TestRankFewerThanN(t *testing.T) {
	records := []FailRecord{{Symbol: "A", FTDValue: 1}}

	top, err := Rank(records, 10)
	require.NoError(t, err)
	assert.Len(t, top, 1)

	top, err = Rank(nil, 10)
	require.NoError(t, err)
	assert.Empty(t, top)
}

func TestRankInvalidCount(t *testing.T) {
	for _, n := range []int{0, -1} {
		_, err := Rank([]FailRecord{{Symbol: "A"}}, n)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidCount))
	}
}
