package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreGlobal(t *testing.T) {
	t.Helper()
	prev := log.Logger
	prevLvl := zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = prev
		zerolog.SetGlobalLevel(prevLvl)
	})
}

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, lvl)

	lvl, err = ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, lvl)

	_, err = ParseLevel("loud")
	assert.Error(t, err)
}

func TestConsoleWritesToWriter(t *testing.T) {
	restoreGlobal(t)
	var buf bytes.Buffer
	require.NoError(t, Console(&buf, "info"))

	log.Debug().Msg("hidden")
	log.Info().Str("calc_id", "c1").Msg("budget calculated")

	out := buf.String()
	assert.Contains(t, out, "budget calculated")
	assert.Contains(t, out, "c1")
	assert.NotContains(t, out, "hidden")
}

func TestFileAppendsJSON(t *testing.T) {
	restoreGlobal(t)
	path := filepath.Join(t.TempDir(), "state", "cbudget.log")

	c, err := File(path, "warn")
	require.NoError(t, err)
	log.Info().Msg("skipped")
	log.Warn().Msg("invalid budget input")
	require.NoError(t, c.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"invalid budget input"`)
	assert.NotContains(t, string(data), "skipped")
}
