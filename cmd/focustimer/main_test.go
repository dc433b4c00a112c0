package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	conf := "store:\n" +
		"  driver: sqlite\n" +
		"  dsn: " + filepath.Join(dir, "focustimer.db") + "\n" +
		"logger:\n" +
		"  dir: " + filepath.Join(dir, "logs") + "\n" +
		"display:\n" +
		"  locale: es\n" +
		"  timezone: UTC\n"
	path := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(conf), 0o644))
	return path
}

func run(t *testing.T, config string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", config}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCommandTree(t *testing.T) {
	root := newRootCmd()
	names := make([]string, 0)
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"serve", "timer", "stats", "sessions", "settings", "export", "import", "demo", "clear"} {
		assert.Contains(t, names, want)
	}
}

func TestParseAt(t *testing.T) {
	at, err := parseAt("2026-10-19T08:00:00Z")
	require.NoError(t, err)
	assert.True(t, at.Equal(time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC)))

	_, err = parseAt("monday")
	assert.Error(t, err)
}

func TestCLI_SessionsAndSettings(t *testing.T) {
	config := writeConfig(t)

	out, err := run(t, config, "sessions", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "no sessions")

	out, err = run(t, config, "sessions", "add", "--start", "2026-10-19T09:00:00Z", "--end", "2026-10-19T10:30:00Z")
	require.NoError(t, err)
	assert.Contains(t, out, "session saved")

	out, err = run(t, config, "sessions", "list", "-q", "19/10/2026")
	require.NoError(t, err)
	assert.Contains(t, out, "09:00:00-10:30:00")
	assert.Contains(t, out, "local")

	out, err = run(t, config, "stats", "weekly", "--at", "2026-10-21T12:00:00Z")
	require.NoError(t, err)
	assert.Contains(t, out, `"totalSeconds": 5400`)

	_, err = run(t, config, "settings", "set", "200")
	assert.Error(t, err)

	out, err = run(t, config, "settings", "set", "40", "false")
	require.NoError(t, err)
	assert.Contains(t, out, `"weeklyGoal": 40`)

	out, err = run(t, config, "settings", "get")
	require.NoError(t, err)
	assert.Contains(t, out, `"exitFullscreenOnPause": false`)
}

func TestCLI_ExportImportRoundTrip(t *testing.T) {
	source := writeConfig(t)

	_, err := run(t, source, "demo", "--seed", "7")
	require.NoError(t, err)

	backup := filepath.Join(t.TempDir(), "backup.json")
	_, err = run(t, source, "export", "json", "--out", backup)
	require.NoError(t, err)

	csvOut, err := run(t, source, "export", "csv")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(csvOut, "Fecha,Inicio,Fin,Duración (min)"))

	target := writeConfig(t)
	out, err := run(t, target, "import", backup)
	require.NoError(t, err)
	assert.Contains(t, out, "skipped 0")

	out, err = run(t, target, "import", backup)
	require.NoError(t, err)
	assert.Contains(t, out, "imported 0 sessions")
}

func TestCLI_ClearNeedsConfirmation(t *testing.T) {
	config := writeConfig(t)

	_, err := run(t, config, "clear")
	assert.Error(t, err)

	out, err := run(t, config, "clear", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "all data cleared")
}
