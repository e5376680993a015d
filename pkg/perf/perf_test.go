package perf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudposse/gridtable/pkg/schema"
)

func TestTrack_DisabledRecordsNothing(t *testing.T) {
	Reset()
	Enable(false)

	Track(nil, "perf.disabled")()

	assert.Empty(t, Snapshot())
}

func TestTrack_EnabledGlobally(t *testing.T) {
	Reset()
	Enable(true)
	t.Cleanup(func() { Enable(false) })

	for i := 0; i < 3; i++ {
		Track(nil, "perf.enabled")()
	}

	stats := Snapshot()
	require.Len(t, stats, 1)
	assert.Equal(t, "perf.enabled", stats[0].Name)
	assert.Equal(t, int64(3), stats[0].Count)
	assert.LessOrEqual(t, stats[0].P50, stats[0].Max)
}

func TestTrack_EnabledThroughConfig(t *testing.T) {
	Reset()
	Enable(false)
	cfg := &schema.Configuration{Settings: schema.Settings{Perf: true}}

	Track(cfg, "perf.b")()
	Track(cfg, "perf.a")()

	stats := Snapshot()
	require.Len(t, stats, 2)
	assert.Equal(t, "perf.a", stats[0].Name)
	assert.Equal(t, "perf.b", stats[1].Name)
}
