package ftd

import "sort"

// Rank returns the top n records by FTD value, descending. The sort is
// stable, so exact ties keep their original relative order. Sorting happens
// on the raw numeric values; display formatting is a presentation concern
// applied later. Returns ErrInvalidCount for n <= 0.
func Rank(records []FailRecord, n int) ([]FailRecord, error) {
	if n <= 0 {
		return nil, ErrInvalidCount
	}

	ranked := make([]FailRecord, len(records))
	copy(ranked, records)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].FTDValue > ranked[j].FTDValue
	})

	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked, nil
}
