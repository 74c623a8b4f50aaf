package fetcher

import (
	"context"
	"encoding/csv"
	"io"

	"github.com/rotisserie/eris"
)

// RowOptions configures the streaming delimited-text parser.
type RowOptions struct {
	Delimiter  rune // default ','
	HasHeader  bool // if true, the first row is discarded
	LazyQuotes bool
}

// StreamRows reads delimited text and sends rows to a channel. Rows may have
// any number of fields. Caller must consume the returned row channel. Errors
// are sent on the error channel. Both channels are closed when processing
// completes.
func StreamRows(ctx context.Context, r io.Reader, opts RowOptions) (<-chan []string, <-chan error) {
	rowCh := make(chan []string, 64)
	errCh := make(chan error, 1)

	go func() {
		defer close(rowCh)
		defer close(errCh)

		reader := csv.NewReader(r)
		if opts.Delimiter != 0 {
			reader.Comma = opts.Delimiter
		}
		reader.LazyQuotes = opts.LazyQuotes
		reader.FieldsPerRecord = -1 // allow variable fields

		first := true
		for {
			if ctx.Err() != nil {
				errCh <- eris.Wrap(ctx.Err(), "rows: context cancelled")
				return
			}

			record, err := reader.Read()
			if err == io.EOF {
				return
			}
			if err != nil {
				errCh <- eris.Wrap(err, "rows: read row")
				return
			}

			if first && opts.HasHeader {
				first = false
				continue
			}
			first = false

			select {
			case rowCh <- record:
			case <-ctx.Done():
				errCh <- eris.Wrap(ctx.Err(), "rows: context cancelled")
				return
			}
		}
	}()

	return rowCh, errCh
}
