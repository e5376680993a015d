// Package heatmap draws proportional bars for timing summaries.
package heatmap

import (
	"strings"
	"time"

	"github.com/cloudposse/gridtable/pkg/perf"
)

const (
	// DefaultBarWidth is the width of a bar for the largest value.
	DefaultBarWidth = 20

	fullBlock  = "█"
	asciiBlock = "#"
)

// Heat levels from cold to hot, as markup colors.
var heatColors = []string{"green", "yellow", "red"}

var (
	heatChars      = []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}
	asciiHeatChars = []rune{' ', '.', ':', '-', '=', '+', '*', '#', '@'}
)

// Bar returns a bar of up to width blocks proportional to value/maxValue.
// Non-zero values always get at least one block.
func Bar(value, maxValue float64, width int, utf8 bool) string {
	if maxValue <= 0 || value <= 0 || width <= 0 {
		return ""
	}

	ratio := min(value/maxValue, 1)
	barWidth := int(ratio * float64(width))
	if barWidth < 1 {
		barWidth = 1
	}

	block := asciiBlock
	if utf8 {
		block = fullBlock
	}
	return strings.Repeat(block, barWidth)
}

// Intensity returns a single glyph whose height follows value in [0, 1].
func Intensity(value float64, utf8 bool) string {
	chars := asciiHeatChars
	if utf8 {
		chars = heatChars
	}

	value = max(0, min(value, 1))
	return string(chars[int(value*float64(len(chars)-1))])
}

// Color returns the markup color for value in [0, 1].
func Color(value float64) string {
	value = max(0, min(value, 1))
	i := int(value * float64(len(heatColors)))
	if i >= len(heatColors) {
		i = len(heatColors) - 1
	}
	return heatColors[i]
}

// PerfBars returns one colored bar per stat, proportional to its P95 time.
// The bars carry markup and are meant to be drawn inside a table cell.
func PerfBars(stats []perf.Stat, width int, utf8 bool) []string {
	var slowest time.Duration
	for _, s := range stats {
		slowest = max(slowest, s.P95)
	}

	bars := make([]string, len(stats))
	for i, s := range stats {
		bar := Bar(float64(s.P95), float64(slowest), width, utf8)
		if bar == "" {
			continue
		}
		bars[i] = "<fg=" + Color(float64(s.P95)/float64(slowest)) + ">" + bar + "</>"
	}
	return bars
}
