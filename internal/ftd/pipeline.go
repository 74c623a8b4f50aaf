package ftd

import (
	"context"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// Report is the outcome of one pipeline run.
type Report struct {
	Period     Period       `json:"period"`
	URL        string       `json:"url"`
	LatestDate string       `json:"latest_date"`
	RowsParsed int          `json:"rows_parsed"`
	RowsOnDate int          `json:"rows_on_date"`
	Records    []FailRecord `json:"records"`
}

// Pipeline wires the fetch, parse, normalize, classify, and rank stages.
// Each run is independent and purely a function of the reference date plus
// remote content.
type Pipeline struct {
	source     *Source
	classifier *Classifier
}

// NewPipeline creates a Pipeline.
func NewPipeline(source *Source, classifier *Classifier) *Pipeline {
	return &Pipeline{source: source, classifier: classifier}
}

// Top fetches the most recent file for the reference date and returns the
// top n single-stock records by FTD value. The count is validated before
// any network access.
func (p *Pipeline) Top(ctx context.Context, today time.Time, n int) (*Report, error) {
	if n <= 0 {
		return nil, ErrInvalidCount
	}

	payload, period, err := p.source.FetchLatest(ctx, today)
	if err != nil {
		return nil, err
	}

	rows, err := ParseArchive(ctx, payload)
	if err != nil {
		return nil, eris.Wrapf(err, "pipeline: parse %s", period)
	}

	records, latest, err := Normalize(rows)
	if err != nil {
		return nil, err
	}

	singles := make([]FailRecord, 0, len(records))
	for _, r := range records {
		if p.classifier.IsSingleStock(r.Symbol, r.Company) {
			singles = append(singles, r)
		}
	}

	top, err := Rank(singles, n)
	if err != nil {
		return nil, err
	}

	zap.L().Info("pipeline complete",
		zap.String("period", period.String()),
		zap.String("latest_date", latest),
		zap.Int("rows_parsed", len(rows)),
		zap.Int("rows_on_date", len(records)),
		zap.Int("single_stocks", len(singles)),
		zap.Int("returned", len(top)),
	)

	return &Report{
		Period:     period,
		URL:        period.URL(p.source.baseURL),
		LatestDate: latest,
		RowsParsed: len(rows),
		RowsOnDate: len(records),
		Records:    top,
	}, nil
}
