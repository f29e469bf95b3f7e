package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sigstat-io/sigstat/pkg/stats"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "sigstat.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)

	assert.Equal(t, FormatTable, cfg.Output.Format)
	assert.Equal(t, 4, cfg.Output.Precision)
	assert.False(t, cfg.Output.NoColor)
	assert.Equal(t, "sample", cfg.Stats.Weighting)

	w, err := cfg.Weighting()
	require.NoError(t, err)
	assert.Equal(t, stats.Sample, w)
}

func TestLoadFromFile(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
output:
  format: json
  precision: 6
  no_color: true
stats:
  weighting: population
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, FormatJSON, cfg.Output.Format)
	assert.Equal(t, 6, cfg.Output.Precision)
	assert.True(t, cfg.Output.NoColor)

	w, err := cfg.Weighting()
	require.NoError(t, err)
	assert.Equal(t, stats.Population, w)
}

func TestLoadValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{name: "bad_format", content: "output:\n  format: xml\n", wantErr: ErrInvalidFormat},
		{name: "negative_precision", content: "output:\n  precision: -1\n", wantErr: ErrInvalidPrecision},
		{name: "huge_precision", content: "output:\n  precision: 40\n", wantErr: ErrInvalidPrecision},
		{name: "bad_weighting", content: "stats:\n  weighting: bessel\n", wantErr: stats.ErrInvalidWeighting},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Load(writeConfig(t, tt.content))
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
