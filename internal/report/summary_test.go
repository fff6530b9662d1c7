package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevinwuu/flightlag/internal/analysis"
)

func TestWriteSummaryFormat(t *testing.T) {
	var buf bytes.Buffer
	err := WriteSummary(&buf, []analysis.SessionReport{
		{Name: "A", AvgDelay: 20, WindSpeed: 5.2, Humidity: 60},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "A")
	assert.Contains(t, out, "Avg delay is 20 min")
	assert.Contains(t, out, "Wind speed is 5.2 m/s")
	assert.Contains(t, out, "Humidity is 60%")
}

func TestWriteSummaryPreservesOrder(t *testing.T) {
	var buf bytes.Buffer
	err := WriteSummary(&buf, []analysis.SessionReport{
		{Name: "second_session", AvgDelay: 1},
		{Name: "first_session", AvgDelay: 2},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Less(t, strings.Index(out, "second_session"), strings.Index(out, "first_session"))
}

func TestWriteSummaryEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSummary(&buf, nil))
	assert.Empty(t, buf.String())
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "60", formatNumber(60))
	assert.Equal(t, "5.2", formatNumber(5.2))
	assert.Equal(t, "0", formatNumber(0))
}
