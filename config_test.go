package quizdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.False(t, cfg.InsertNoneOfTheAbove)
	assert.Equal(t, DefaultTheme, cfg.Syntax.Theme)
	assert.Equal(t, DefaultLang, cfg.Syntax.DefaultLang)

	cfg = DefaultConfig(WithTheme("dracula"), WithDefaultLang("go"), WithNoneOfTheAbove(true), nil)
	assert.True(t, cfg.InsertNoneOfTheAbove)
	assert.Equal(t, "dracula", cfg.Syntax.Theme)
	assert.Equal(t, "go", cfg.Syntax.DefaultLang)
}

func TestParseConfigYAML(t *testing.T) {
	cfg, err := ParseConfig([]byte("insert_none_of_the_above: true\nsyntax:\n  theme: monokai\n"))
	require.NoError(t, err)
	assert.True(t, cfg.InsertNoneOfTheAbove)
	assert.Equal(t, "monokai", cfg.Syntax.Theme)
	assert.Equal(t, DefaultLang, cfg.Syntax.DefaultLang)
}

func TestParseConfigJSON(t *testing.T) {
	cfg, err := ParseConfig([]byte(`{"syntax": {"default_lang": "rust"}}`))
	require.NoError(t, err)
	assert.False(t, cfg.InsertNoneOfTheAbove)
	assert.Equal(t, DefaultTheme, cfg.Syntax.Theme)
	assert.Equal(t, "rust", cfg.Syntax.DefaultLang)
}

func TestParseConfigRejectsGarbage(t *testing.T) {
	_, err := ParseConfig([]byte("syntax: [1, 2"))
	require.Error(t, err)
}
