package ftd

import (
	"archive/zip"
	"bytes"
	"context"

	"github.com/rotisserie/eris"
	"golang.org/x/text/encoding/charmap"

	"github.com/quantitativesqueezing/ftdfetcher/internal/fetcher"
)

// ParseArchive decodes a zip bundle containing one pipe-delimited text
// member into raw records. Only the first file member by archive order is
// read. Bytes are decoded as Latin-1, which accepts any byte value, and the
// header row is discarded without validation.
func ParseArchive(ctx context.Context, payload []byte) ([]RawRecord, error) {
	zr, err := zip.NewReader(bytes.NewReader(payload), int64(len(payload)))
	if err != nil {
		return nil, eris.Wrap(err, "archive: open zip")
	}

	var member *zip.File
	for _, f := range zr.File {
		if !f.FileInfo().IsDir() {
			member = f
			break
		}
	}
	if member == nil {
		return nil, eris.New("archive: zip has no file members")
	}

	rc, err := member.Open()
	if err != nil {
		return nil, eris.Wrapf(err, "archive: open member %s", member.Name)
	}
	defer rc.Close() //nolint:errcheck

	text := charmap.ISO8859_1.NewDecoder().Reader(rc)

	rowCh, errCh := fetcher.StreamRows(ctx, text, fetcher.RowOptions{
		Delimiter:  '|',
		HasHeader:  true,
		LazyQuotes: true,
	})

	var records []RawRecord
	for tokens := range rowCh {
		records = append(records, newRawRecord(tokens))
	}
	if err := <-errCh; err != nil {
		return nil, eris.Wrapf(err, "archive: parse member %s", member.Name)
	}

	return records, nil
}
