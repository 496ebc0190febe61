package config_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cero-lang/cero/config"
	"github.com/cero-lang/cero/source"
)

func TestLoadDefaultsOnEmptyDocument(t *testing.T) {
	cfg, err := config.Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, source.DefaultTabWidth, cfg.TabWidth)
	assert.Equal(t, source.MaxLength, cfg.MaxSourceLength)
	assert.False(t, cfg.WarningsAsErrors)
}

func TestLoadOverridesGivenFields(t *testing.T) {
	doc := "tabWidth: 8\nwarningsAsErrors: true\n"
	cfg, err := config.Load(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.TabWidth)
	assert.True(t, cfg.WarningsAsErrors)
	assert.Equal(t, source.MaxLength, cfg.MaxSourceLength)
}

func TestLoadRejectsZeroTabWidth(t *testing.T) {
	_, err := config.Load(strings.NewReader("tabWidth: 0\n"))
	require.Error(t, err)
}

func TestLoadRejectsOversizedMaxSourceLength(t *testing.T) {
	_, err := config.Load(strings.NewReader("maxSourceLength: 99999999999\n"))
	require.Error(t, err)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	_, err := config.Load(strings.NewReader("tabWidth: [oops\n"))
	require.Error(t, err)
}
