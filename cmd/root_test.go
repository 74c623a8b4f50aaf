package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantitativesqueezing/ftdfetcher/internal/config"
)

func TestRootCommand_HasSubcommands(t *testing.T) {
	cmds := rootCmd.Commands()

	names := make(map[string]bool)
	for _, c := range cmds {
		names[c.Name()] = true
	}

	expected := []string{"top", "periods", "serve", "history"}
	for _, name := range expected {
		assert.True(t, names[name], "expected subcommand %q not found", name)
	}
}

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "ftdfetcher", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
}

func TestTopCommand_Flags(t *testing.T) {
	flag := topCmd.Flags().Lookup("no-export")
	require.NotNil(t, flag, "top command should have --no-export flag")
	assert.Equal(t, "false", flag.DefValue)
}

func TestServeCommand_Flags(t *testing.T) {
	flag := serveCmd.Flags().Lookup("port")
	require.NotNil(t, flag, "serve command should have --port flag")
	assert.Equal(t, "0", flag.DefValue)
}

func TestPeriodsCommand_Flags(t *testing.T) {
	flag := periodsCmd.Flags().Lookup("date")
	require.NotNil(t, flag, "periods command should have --date flag")
}

func TestBuildPipeline(t *testing.T) {
	orig := cfg
	t.Cleanup(func() { cfg = orig })

	cfg = &config.Config{
		FTD: config.FTDConfig{
			BaseURL:     "https://example.com/ftd",
			UserAgent:   "test",
			TimeoutSecs: 5,
		},
	}

	p, err := buildPipeline()
	require.NoError(t, err)
	assert.NotNil(t, p)
}

func TestBuildPipeline_BadRulesPath(t *testing.T) {
	orig := cfg
	t.Cleanup(func() { cfg = orig })

	cfg = &config.Config{
		FTD: config.FTDConfig{
			BaseURL:   "https://example.com/ftd",
			RulesPath: "/nonexistent/rules.yaml",
		},
	}

	_, err := buildPipeline()
	assert.Error(t, err)
}
