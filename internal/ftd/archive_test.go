package ftd

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArchive(t *testing.T) {
	payload := buildArchive(t, []string{"cnsfails202401a.txt"}, [][]byte{[]byte(sampleFile)})

	rows, err := ParseArchive(context.Background(), payload)
	require.NoError(t, err)
	require.Len(t, rows, 5) // header discarded

	first := rows[0]
	assert.Equal(t, "20240111", first.SettlementDate)
	assert.Equal(t, "037833100", first.CUSIP)
	assert.Equal(t, "AAPL", first.Symbol)
	assert.Equal(t, "2000", first.QuantityFails)
	assert.Equal(t, "APPLE INC", first.Company)
	assert.Equal(t, "180.00", first.Price)
	assert.True(t, first.Complete())
}

func TestParseArchiveLatin1(t *testing.T) {
	// 0xE9 is é in Latin-1 and invalid as a standalone UTF-8 byte.
	line := append([]byte("h|h|h|h|h|h\n20240112|123|NST|10|NESTL"), 0xE9)
	line = append(line, []byte(" SA|5.00\n")...)
	payload := buildArchive(t, []string{"data.txt"}, [][]byte{line})

	rows, err := ParseArchive(context.Background(), payload)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "NESTLÉ SA", rows[0].Company)
}

func TestParseArchiveShortAndLongRows(t *testing.T) {
	data := "h|h|h|h|h|h\n" +
		"20240112|123|ABC\n" +
		"20240112|456|DEF|100|DEF CORP|1.00|extra1|extra2\n"
	payload := buildArchive(t, []string{"data.txt"}, [][]byte{[]byte(data)})

	rows, err := ParseArchive(context.Background(), payload)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	short := rows[0]
	assert.False(t, short.Complete())
	assert.Equal(t, "ABC", short.Symbol)
	assert.Empty(t, short.QuantityFails)
	assert.Empty(t, short.Price)

	long := rows[1]
	assert.True(t, long.Complete())
	assert.Equal(t, "1.00", long.Price)
	assert.Equal(t, []string{"extra1", "extra2"}, long.Extra)
}

func TestParseArchiveFirstMemberOnly(t *testing.T) {
	payload := buildArchive(t,
		[]string{"first.txt", "second.txt"},
		[][]byte{
			[]byte("h|h|h|h|h|h\n20240112|1|AAA|10|A CO|1.00\n"),
			[]byte("h|h|h|h|h|h\n20240112|2|BBB|20|B CO|2.00\n"),
		})

	rows, err := ParseArchive(context.Background(), payload)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "AAA", rows[0].Symbol)
}

func TestParseArchiveNotAZip(t *testing.T) {
	_, err := ParseArchive(context.Background(), []byte("plain text, not a zip"))
	assert.Error(t, err)
}

func TestParseArchiveNoMembers(t *testing.T) {
	payload := buildArchive(t, nil, nil)
	_, err := ParseArchive(context.Background(), payload)
	assert.Error(t, err)
}
