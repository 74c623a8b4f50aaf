package ftd

import (
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// parseNumber strictly coerces a published numeric field. Unlike the
// tolerant default-valued parsing used elsewhere, a failure here must drop
// the whole row, so the ok flag is reported.
func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Normalize coerces quantity and price to numbers, computes the derived FTD
// value, and filters the working set to the latest settlement date present
// among surviving rows. Rows missing either required number are dropped
// silently. Returns ErrEmptyPayload only when the input itself is empty; an
// empty result after the date filter is a valid degenerate outcome.
func Normalize(rows []RawRecord) ([]FailRecord, string, error) {
	if len(rows) == 0 {
		return nil, "", ErrEmptyPayload
	}

	records := make([]FailRecord, 0, len(rows))
	latest := ""
	dropped := 0

	for _, row := range rows {
		qty, okQty := parseNumber(row.QuantityFails)
		price, okPrice := parseNumber(row.Price)
		if !okQty || !okPrice {
			dropped++
			continue
		}

		r := FailRecord{
			SettlementDate: row.SettlementDate,
			CUSIP:          row.CUSIP,
			Symbol:         row.Symbol,
			QuantityFails:  qty,
			Company:        row.Company,
			Price:          price,
			FTDValue:       qty * price,
		}
		records = append(records, r)

		// YYYYMMDD strings compare correctly without a calendar parse.
		if r.SettlementDate > latest {
			latest = r.SettlementDate
		}
	}

	if dropped > 0 {
		zap.L().Debug("dropped rows with unusable numeric fields", zap.Int("dropped", dropped))
	}

	current := make([]FailRecord, 0, len(records))
	for _, r := range records {
		if r.SettlementDate == latest {
			current = append(current, r)
		}
	}

	return current, latest, nil
}
