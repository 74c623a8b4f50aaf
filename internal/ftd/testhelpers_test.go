package ftd

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

// buildArchive zips the given members in order, name -> raw bytes.
func buildArchive(t *testing.T, names []string, contents [][]byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for i, name := range names {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write(contents[i])
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())

	return buf.Bytes()
}

// sampleFile is a small well-formed pipe-delimited member.
const sampleFile = "SettlementDate|CUSIP|Symbol|QuantityFails|Company|Price\n" +
	"20240111|037833100|AAPL|2000|APPLE INC|180.00\n" +
	"20240112|037833100|AAPL|1000|APPLE INC|2.50\n" +
	"20240112|594918104|MSFT|300|MICROSOFT CORP|388.47\n" +
	"20240112|78462F103|SPY|400|SPDR S&P 500 ETF TRUST|470.00\n" +
	"20240112|12345X999|BADP|500|BROKEN PRICE CO|.\n"
