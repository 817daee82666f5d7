package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"drawdata/internal/dataset"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"SIGMA", "COUNT", "MARKER_SIZE", "LABEL", "DIR", "SEED", "LOG_FILE", "LOG_LEVEL", "CONFIG"} {
		t.Setenv(EnvPrefix+k, "")
		os.Unsetenv(EnvPrefix + k)
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 10.0, cfg.Sigma)
	assert.Equal(t, 5, cfg.Count)
	assert.Equal(t, dataset.DefaultMarkerSize, cfg.MarkerSize)
	assert.Equal(t, dataset.Blue, cfg.InitialLabel())
	require.NoError(t, cfg.Validate())
}

func TestLoadMissingFile(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "none.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)
	p := filepath.Join(t.TempDir(), "config.toml")
	data := `
sigma = 4.5
count = 20
label = "green"
dir = "/data"

[log]
file = "/tmp/drawdata.log"
level = "debug"
`
	require.NoError(t, os.WriteFile(p, []byte(data), 0o644))

	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, 4.5, cfg.Sigma)
	assert.Equal(t, 20, cfg.Count)
	assert.Equal(t, dataset.Green, cfg.InitialLabel())
	assert.Equal(t, "/data", cfg.Dir)
	assert.Equal(t, "/tmp/drawdata.log", cfg.Log.File)
	lvl, err := cfg.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, lvl)
	assert.Equal(t, dataset.DefaultMarkerSize, cfg.MarkerSize)
}

func TestEnvOverridesFile(t *testing.T) {
	clearEnv(t)
	p := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(p, []byte("sigma = 4.5\ncount = 20\n"), 0o644))
	t.Setenv("DRAWDATA_SIGMA", "7")
	t.Setenv("DRAWDATA_LABEL", "RED")
	t.Setenv("DRAWDATA_SEED", "99")

	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, 7.0, cfg.Sigma)
	assert.Equal(t, 20, cfg.Count)
	assert.Equal(t, dataset.Red, cfg.InitialLabel())
	assert.Equal(t, uint64(99), cfg.Seed)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		file string
		env  map[string]string
	}{
		{"bad toml", "sigma = [", nil},
		{"bad sigma env", "", map[string]string{"DRAWDATA_SIGMA": "wide"}},
		{"bad count env", "", map[string]string{"DRAWDATA_COUNT": "1.5"}},
		{"unknown label", `label = "purple"`, nil},
		{"erase is not a label", "", map[string]string{"DRAWDATA_LABEL": "erase"}},
		{"bad log level", "[log]\nlevel = \"loud\"\n", nil},
		{"negative count", "count = -1", nil},
		{"infinite sigma env", "", map[string]string{"DRAWDATA_SIGMA": "inf"}},
		{"zero marker", "marker_size = 0", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			p := filepath.Join(t.TempDir(), "config.toml")
			require.NoError(t, os.WriteFile(p, []byte(tt.file), 0o644))
			_, err := Load(p)
			assert.Error(t, err)
		})
	}
}

func TestDefaultPathFromEnv(t *testing.T) {
	t.Setenv("DRAWDATA_CONFIG", "/etc/drawdata.toml")
	assert.Equal(t, "/etc/drawdata.toml", DefaultPath())
}
