package flatecs

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &m))
		out = append(out, m)
	}
	return out
}

// go test -run ^TestWorldLogsGrowth$ . -count 1
func TestWorldLogsGrowth(t *testing.T) {
	var buf bytes.Buffer
	bufLogger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	w, _, _, _, _ := setupWorld(t, WithLogger(bufLogger), WithInitialCapacity(2), WithMaxCapacity(4))

	for range 4 {
		mustCreate(t, w)
	}
	_, err := w.CreateEntity()
	require.Error(t, err)

	lines := decodeLines(t, &buf)
	var msgs []string
	for _, l := range lines {
		msgs = append(msgs, l["message"].(string))
	}
	assert.Equal(t, []string{"layout committed", "entity storage grown", "entity storage cannot grow"}, msgs)
	assert.Equal(t, float64(2), lines[1]["old_capacity"])
	assert.Equal(t, float64(4), lines[1]["new_capacity"])
	assert.Equal(t, "warn", lines[2]["level"])
}

// go test -run ^TestWorldLoggerEntity$ . -count 1
func TestWorldLoggerEntity(t *testing.T) {
	w, infoID, hp := setupInfoWorld(t)
	e, err := w.CreateNamedEntity("bat")
	require.NoError(t, err)
	require.NoError(t, AddAs(w, e, hp, Health{Current: 1, Max: 1}))

	var buf bytes.Buffer
	bufLogger := zerolog.New(&buf)
	wl := NewWorldLogger(&bufLogger, w)
	require.NoError(t, wl.LogEntity(zerolog.InfoLevel, e))

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	entry := lines[0]
	assert.Equal(t, float64(e), entry["entity_id"])
	assert.Equal(t, true, entry["alive"])
	assert.Equal(t, "bat", entry["name"])
	assert.Equal(t, []any{float64(AliveFlag)}, entry["flags"])
	comps := entry["components"].([]any)
	require.Len(t, comps, 2)
	assert.Equal(t, float64(infoID), comps[0].(map[string]any)["component_id"])
	assert.Equal(t, "Health", comps[1].(map[string]any)["component_name"])

	assert.Error(t, wl.LogEntity(zerolog.InfoLevel, EntityID(50)))
}

// go test -run ^TestWorldLoggerLayout$ . -count 1
func TestWorldLoggerLayout(t *testing.T) {
	w, _, _, _, _ := setupWorld(t)
	mustCreate(t, w)

	var buf bytes.Buffer
	bufLogger := zerolog.New(&buf)
	wl := NewWorldLogger(&bufLogger, w)
	wl.LogLayout(zerolog.InfoLevel)
	wl.LogWorld(zerolog.InfoLevel)

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 2)
	assert.Equal(t, float64(3), lines[0]["total_components"])
	assert.Equal(t, float64(2), lines[0]["total_flags"])
	assert.Equal(t, float64(32), lines[0]["record_size"])
	assert.Equal(t, float64(1), lines[1]["alive_count"])
	assert.Equal(t, float64(32), lines[1]["capacity"])
}

// go test -run ^TestNewLogger$ . -count 1
func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(Config{LogLevel: "warn"}, &buf)
	require.NoError(t, err)
	logger.Info().Msg("hidden")
	logger.Warn().Msg("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")

	_, err = NewLogger(Config{LogLevel: "loud"}, &buf)
	assert.Error(t, err)
}
