package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/foomo/notion-jarkup/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv(config.EnvLogLevel, "error")
	var out bytes.Buffer
	cmd := rootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestConvertCommand(t *testing.T) {
	t.Run("html", func(t *testing.T) {
		out, err := execute(t, "convert", "page", "--fixture", "testdata/page.json", "--format", "html")
		require.NoError(t, err)
		assert.Equal(t, "<h1>Recipes</h1><p>Try the <strong>carbonara</strong></p><hr/>\n", out)
	})

	t.Run("unsupported placeholders", func(t *testing.T) {
		out, err := execute(t, "convert", "page", "--fixture", "testdata/page.json", "--format", "html", "--unsupported")
		require.NoError(t, err)
		assert.Contains(t, out, `<p class="unsupported">`)
	})

	t.Run("json", func(t *testing.T) {
		out, err := execute(t, "convert", "page", "--fixture", "testdata/page.json")
		require.NoError(t, err)
		var components []map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &components))
		require.Len(t, components, 3)
		assert.Equal(t, "Heading", components[0]["type"])
		assert.Equal(t, "Divider", components[2]["type"])
	})

	t.Run("markdown", func(t *testing.T) {
		out, err := execute(t, "convert", "page", "--fixture", "testdata/page.json", "-f", "markdown")
		require.NoError(t, err)
		assert.Contains(t, out, "# Recipes")
		assert.Contains(t, out, "Try the **carbonara**")
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := execute(t, "convert", "page", "--fixture", "testdata/page.json", "-f", "pdf")
		assert.Error(t, err)
	})

	t.Run("token required without fixture", func(t *testing.T) {
		t.Setenv(config.EnvNotionToken, "")
		_, err := execute(t, "convert", "page")
		assert.ErrorContains(t, err, config.EnvNotionToken)
	})
}

func TestPreviewCommandRejectsBadURL(t *testing.T) {
	_, err := execute(t, "preview", "mailto:someone@example.com")
	assert.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, appName)
}

func TestNewLogger(t *testing.T) {
	_, err := newLogger("debug")
	require.NoError(t, err)

	_, err = newLogger("chatty")
	assert.Error(t, err)
}
