package commands

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sigstat-io/sigstat/pkg/stats"
)

func TestParseSamples(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected []float64
		wantErr  bool
	}{
		{name: "whitespace_separated", input: "1 2.5 -3", expected: []float64{1, 2.5, -3}},
		{name: "comma_separated", input: "1,2.5,-3", expected: []float64{1, 2.5, -3}},
		{name: "mixed_separators", input: "1, 2.5\n-3\t4", expected: []float64{1, 2.5, -3, 4}},
		{name: "scientific_notation", input: "1e3 -2.5e-2", expected: []float64{1000, -0.025}},
		{name: "empty_input", input: "", expected: []float64{}},
		{name: "invalid_token", input: "1 two 3", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := parseSamples([]byte(tt.input))
			if tt.wantErr {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	t.Run("known_values_sample", func(t *testing.T) {
		t.Parallel()

		got, err := summarize([]float64{1, 2, 3, 4, 5}, stats.Sample)
		require.NoError(t, err)

		assert.Equal(t, 5, got.Count)
		assert.InDelta(t, 1.0, got.Min, 0.0001)
		assert.InDelta(t, 5.0, got.Max, 0.0001)
		assert.InDelta(t, 3.0, got.Mean, 0.0001)
		assert.InDelta(t, 3.0, got.Median, 0.0001)
		assert.InDelta(t, 2.5, got.Variance, 0.0001)
		assert.InDelta(t, 1.5811, got.StdDev, 0.0001)
		assert.Equal(t, "sample", got.Weighting)
	})

	t.Run("known_values_population", func(t *testing.T) {
		t.Parallel()

		got, err := summarize([]float64{1, 2, 3, 4, 5}, stats.Population)
		require.NoError(t, err)

		assert.InDelta(t, 2.0, got.Variance, 0.0001)
		assert.InDelta(t, 1.4142, got.StdDev, 0.0001)
	})

	t.Run("single_sample_fails", func(t *testing.T) {
		t.Parallel()

		_, err := summarize([]float64{7.0}, stats.Sample)
		require.ErrorIs(t, err, stats.ErrTooFewSamples)
	})

	t.Run("single_population_succeeds", func(t *testing.T) {
		t.Parallel()

		got, err := summarize([]float64{7.0}, stats.Population)
		require.NoError(t, err)
		assert.InDelta(t, 0, got.Variance, 0.0001)
	})

	t.Run("empty_fails", func(t *testing.T) {
		t.Parallel()

		_, err := summarize(nil, stats.Population)
		require.ErrorIs(t, err, stats.ErrTooFewSamples)
	})
}

func TestRenderTable(t *testing.T) {
	t.Parallel()

	result, err := summarize([]float64{1, 2, 3, 4, 5}, stats.Sample)
	require.NoError(t, err)

	var buf bytes.Buffer

	renderErr := result.render(&buf, "table", 4)
	require.NoError(t, renderErr)

	out := buf.String()
	assert.Contains(t, out, "sample weighting, n=5")
	assert.Contains(t, out, "mean")
	assert.Contains(t, out, "3.0000")
	assert.Contains(t, out, "2.5000")
}

func TestRenderCSV(t *testing.T) {
	t.Parallel()

	result, err := summarize([]float64{1, 2, 3, 4, 5}, stats.Population)
	require.NoError(t, err)

	var buf bytes.Buffer

	renderErr := result.render(&buf, "csv", 2)
	require.NoError(t, renderErr)

	out := buf.String()
	assert.Contains(t, out, "statistic,value\n")
	assert.Contains(t, out, "weighting,population\n")
	assert.Contains(t, out, "count,5\n")
	assert.Contains(t, out, "variance,2.00\n")
	assert.Contains(t, out, "stddev,1.41\n")
}

func TestRenderJSON(t *testing.T) {
	t.Parallel()

	result, err := summarize([]float64{1, 2, 3, 4, 5}, stats.Sample)
	require.NoError(t, err)

	var buf bytes.Buffer

	renderErr := result.render(&buf, "json", 4)
	require.NoError(t, renderErr)

	var decoded summary

	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, *result, decoded)
}

func TestRenderUnknownFormat(t *testing.T) {
	t.Parallel()

	result, err := summarize([]float64{1, 2}, stats.Sample)
	require.NoError(t, err)

	renderErr := result.render(&bytes.Buffer{}, "xml", 4)
	require.Error(t, renderErr)
}
