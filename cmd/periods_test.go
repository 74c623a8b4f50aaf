package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantitativesqueezing/ftdfetcher/internal/config"
)

func TestPeriodsCommand(t *testing.T) {
	orig := cfg
	origDate := periodsDate
	t.Cleanup(func() { cfg = orig; periodsDate = origDate })

	cfg = &config.Config{
		FTD: config.FTDConfig{BaseURL: "https://example.com/ftd"},
	}
	periodsDate = "2024-01-10"

	var buf bytes.Buffer
	periodsCmd.SetOut(&buf)
	require.NoError(t, periodsCmd.RunE(periodsCmd, nil))

	out := buf.String()
	assert.Contains(t, out, "1. 2024-01a  https://example.com/ftd/cnsfails202401a.zip")
	assert.Contains(t, out, "3. 2023-12b  https://example.com/ftd/cnsfails202312b.zip")
	assert.Contains(t, out, "4. 2023-12a")
}

func TestPeriodsCommandBadDate(t *testing.T) {
	orig := cfg
	origDate := periodsDate
	t.Cleanup(func() { cfg = orig; periodsDate = origDate })

	cfg = &config.Config{}
	periodsDate = "01/10/2024"

	err := periodsCmd.RunE(periodsCmd, nil)
	assert.Error(t, err)
}
