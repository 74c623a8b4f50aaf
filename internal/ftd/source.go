package ftd

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/quantitativesqueezing/ftdfetcher/internal/fetcher"
)

// Source fetches the most recent published fails-to-deliver archive by
// trying candidate periods in order.
type Source struct {
	fetcher     fetcher.Fetcher
	baseURL     string
	archivePath string
}

// NewSource creates a Source. archivePath is where the raw successful
// payload is persisted as an audit copy; empty disables the copy.
func NewSource(f fetcher.Fetcher, baseURL, archivePath string) *Source {
	return &Source{fetcher: f, baseURL: baseURL, archivePath: archivePath}
}

// FetchLatest tries each candidate period for the reference date in order
// and returns the first payload that downloads. Later candidates are never
// attempted after a success. Any download failure, HTTP status or transport,
// abandons that candidate and advances; a failed candidate is never retried
// here. When every candidate fails the returned error is an *ExhaustedError
// carrying the attempted URLs.
func (s *Source) FetchLatest(ctx context.Context, today time.Time) ([]byte, Period, error) {
	log := zap.L().With(zap.String("component", "source"))

	candidates := Candidates(today)
	urls := make([]string, len(candidates))
	for i, p := range candidates {
		urls[i] = p.URL(s.baseURL)
	}

	for i, p := range candidates {
		log.Info("trying candidate period",
			zap.String("period", p.String()),
			zap.String("url", urls[i]),
		)

		body, err := s.fetcher.Download(ctx, urls[i])
		if err != nil {
			log.Warn("candidate not accessible, trying next",
				zap.String("period", p.String()),
				zap.Error(err),
			)
			continue
		}

		payload, err := io.ReadAll(body)
		_ = body.Close()
		if err != nil {
			log.Warn("candidate read failed, trying next",
				zap.String("period", p.String()),
				zap.Error(err),
			)
			continue
		}

		log.Info("downloaded fails-to-deliver archive",
			zap.String("period", p.String()),
			zap.Int("bytes", len(payload)),
		)

		if s.archivePath != "" {
			if err := os.WriteFile(s.archivePath, payload, 0o644); err != nil {
				return nil, Period{}, eris.Wrapf(err, "source: write audit copy %s", s.archivePath)
			}
		}

		return payload, p, nil
	}

	return nil, Period{}, &ExhaustedError{URLs: urls}
}
