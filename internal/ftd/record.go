package ftd

// rawColumns is the positional schema of the published pipe-delimited file.
// The header row's actual text is never consulted.
const rawColumns = 6

// RawRecord is one tokenized line of the decoded payload. Only the first six
// tokens are column-mapped; short rows keep the available prefix and Extra
// holds any trailing tokens, which are never used downstream.
type RawRecord struct {
	SettlementDate string
	CUSIP          string
	Symbol         string
	QuantityFails  string
	Company        string
	Price          string
	Extra          []string

	present int
}

// newRawRecord maps tokens positionally onto the schema.
func newRawRecord(tokens []string) RawRecord {
	r := RawRecord{present: len(tokens)}
	if r.present > rawColumns {
		r.present = rawColumns
		r.Extra = tokens[rawColumns:]
	}

	fields := []*string{&r.SettlementDate, &r.CUSIP, &r.Symbol, &r.QuantityFails, &r.Company, &r.Price}
	for i := 0; i < r.present; i++ {
		*fields[i] = tokens[i]
	}
	return r
}

// Complete reports whether all six named columns were present.
func (r RawRecord) Complete() bool {
	return r.present == rawColumns
}

// FailRecord is a normalized settlement-fail row. It exists only if both
// QuantityFails and Price parsed to valid numbers; FTDValue is always
// recomputed from those two fields.
type FailRecord struct {
	SettlementDate string  `json:"settlement_date"`
	CUSIP          string  `json:"cusip"`
	Symbol         string  `json:"symbol"`
	QuantityFails  float64 `json:"quantity_fails"`
	Company        string  `json:"company"`
	Price          float64 `json:"price"`
	FTDValue       float64 `json:"ftd_value"`
}
