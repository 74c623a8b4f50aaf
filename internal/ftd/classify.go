package ftd

import (
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// Rules holds the classification data: a whitelist of symbols that are
// always treated as single stocks, and the substrings that mark an issuer
// name as fund-like. Kept as data so tuning never requires a code change.
type Rules struct {
	Whitelist    []string `yaml:"whitelist"`
	FundPatterns []string `yaml:"fund_patterns"`
}

// DefaultRules returns the built-in classification heuristic.
func DefaultRules() Rules {
	return Rules{
		// Broad-market trackers intentionally retained for comparison.
		Whitelist: []string{"SPY", "QQQ", "USO", "LQD"},
		FundPatterns: []string{
			// Common ETF/ETN/fund families
			"etf", "etn", "spdr", "ishares", "vanguard", "invesco", "proshares",
			"global x", "direxion", "wisdomtree", "xtrackers", "vaneck", "pacer",
			"ark", "first trust", "schwab", "select sector", "index",
			// Generic fund terms
			"fund", "trust unit", "unit investment trust", "closed end", "open end",
			// Wealth/private equity terms
			"private equity", "wealth fund", "family office", "sovereign wealth",
			// Bond/fixed income keywords (to exclude bond funds/ETFs/notes)
			"bond", "treasury", "muni", "municipal", "note", "preferred", "fixed income",
			// Other structures often not single operating companies
			"depositary receipt", "adr", "ads", "unit trust", "capital trust", "income trust",
			"reit", "real estate", "partnership", " lp ", " llp ", " mlp ", " etp ",
		},
	}
}

// LoadRules reads classification rules from a YAML file.
func LoadRules(path string) (Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Rules{}, eris.Wrapf(err, "classify: read rules %s", path)
	}

	var rules Rules
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return Rules{}, eris.Wrapf(err, "classify: parse rules %s", path)
	}
	if len(rules.FundPatterns) == 0 {
		return Rules{}, eris.Errorf("classify: rules %s define no fund patterns", path)
	}

	return rules, nil
}

// Classifier decides whether a record names a single operating company or a
// fund-like/structured product. Best effort, never errors.
type Classifier struct {
	whitelist map[string]struct{}
	patterns  []string
}

// NewClassifier compiles rules into a classifier.
func NewClassifier(rules Rules) *Classifier {
	c := &Classifier{
		whitelist: make(map[string]struct{}, len(rules.Whitelist)),
		patterns:  make([]string, 0, len(rules.FundPatterns)),
	}
	for _, sym := range rules.Whitelist {
		c.whitelist[strings.ToUpper(strings.TrimSpace(sym))] = struct{}{}
	}
	for _, p := range rules.FundPatterns {
		c.patterns = append(c.patterns, strings.ToLower(p))
	}
	return c
}

// IsSingleStock reports whether the symbol/company pair looks like a single
// operating company. Whitelisted symbols short-circuit all other logic. The
// company name is lowercased and padded with spaces so short tokens like
// "lp" match on word-ish boundaries. Empty inputs classify as true.
func (c *Classifier) IsSingleStock(symbol, company string) bool {
	sym := strings.ToUpper(strings.TrimSpace(symbol))
	if _, ok := c.whitelist[sym]; ok {
		return true
	}

	name := " " + strings.ToLower(company) + " "
	for _, p := range c.patterns {
		if strings.Contains(name, p) {
			return false
		}
	}
	return true
}
