package heatmap

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/cloudposse/gridtable/pkg/perf"
)

func TestBar(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		maxValue float64
		width    int
		utf8     bool
		expected string
	}{
		{"full", 10, 10, 4, true, "████"},
		{"half", 5, 10, 4, true, "██"},
		{"ascii", 5, 10, 4, false, "##"},
		{"tiny values get one block", 0.1, 10, 4, true, "█"},
		{"clamped above max", 20, 10, 3, false, "###"},
		{"zero value", 0, 10, 4, true, ""},
		{"zero max", 5, 0, 4, true, ""},
		{"zero width", 5, 10, 0, true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Bar(tt.value, tt.maxValue, tt.width, tt.utf8))
		})
	}
}

func TestIntensity(t *testing.T) {
	assert.Equal(t, " ", Intensity(0, true))
	assert.Equal(t, "█", Intensity(1, true))
	assert.Equal(t, "@", Intensity(2, false))
	assert.Equal(t, " ", Intensity(-1, false))
	assert.Equal(t, "▄", Intensity(0.5, true))
}

func TestColor(t *testing.T) {
	assert.Equal(t, "green", Color(0))
	assert.Equal(t, "yellow", Color(0.5))
	assert.Equal(t, "red", Color(0.9))
	assert.Equal(t, "red", Color(1))
}

func TestPerfBars(t *testing.T) {
	stats := []perf.Stat{
		{Name: "a", P95: 10 * time.Millisecond},
		{Name: "b", P95: 5 * time.Millisecond},
		{Name: "c"},
	}

	bars := PerfBars(stats, 4, false)

	assert.Equal(t, []string{"<fg=red>####</>", "<fg=yellow>##</>", ""}, bars)
	assert.Equal(t, []string{"", ""}, PerfBars([]perf.Stat{{Name: "x"}, {Name: "y"}}, 4, true))
}
