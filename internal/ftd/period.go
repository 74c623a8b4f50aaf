// Package ftd implements the CNS fails-to-deliver pipeline: period
// resolution, archive parsing, normalization, single-stock classification,
// and ranking.
package ftd

import (
	"fmt"
	"strings"
	"time"
)

// Half identifies which half of the month a reporting window covers.
type Half int

const (
	// FirstHalf covers settlement days 1-15, published with an "a" suffix.
	FirstHalf Half = iota
	// SecondHalf covers the remainder of the month, published with a "b" suffix.
	SecondHalf
)

// Suffix returns the file-name suffix the half maps to.
func (h Half) Suffix() string {
	if h == SecondHalf {
		return "b"
	}
	return "a"
}

// Period identifies one half-month fails-to-deliver reporting window.
type Period struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
	Half  Half       `json:"half"`
}

// Filename returns the published archive name, e.g. cnsfails202401a.zip.
func (p Period) Filename() string {
	return fmt.Sprintf("cnsfails%04d%02d%s.zip", p.Year, int(p.Month), p.Half.Suffix())
}

// URL maps the period onto the remote store rooted at base.
func (p Period) URL(base string) string {
	return strings.TrimSuffix(base, "/") + "/" + p.Filename()
}

// String returns a compact label like 2024-01a.
func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d%s", p.Year, int(p.Month), p.Half.Suffix())
}

// Candidates returns the four half-month periods to try for the given
// reference date, most-likely-current first: the current month's first and
// second halves, then the previous month's second and first halves.
// Publication lags the settlement window, so the fallback order matters more
// than a single best guess. Pure date arithmetic, no ambient clock.
func Candidates(today time.Time) []Period {
	year, month := today.Year(), today.Month()

	prevYear, prevMonth := year, month-1
	if month == time.January {
		prevYear, prevMonth = year-1, time.December
	}

	return []Period{
		{Year: year, Month: month, Half: FirstHalf},
		{Year: year, Month: month, Half: SecondHalf},
		{Year: prevYear, Month: prevMonth, Half: SecondHalf},
		{Year: prevYear, Month: prevMonth, Half: FirstHalf},
	}
}
