package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultsApplyWithNoFile(t *testing.T) {
	cfg, err := Load("", nil)
	require.NoError(t, err)
	require.Equal(t, "NOCALL", cfg.Callsign)
	require.Equal(t, 25, cfg.RatioNum)
	require.Equal(t, 9600, cfg.Baud)
}

func TestFileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lorett.yaml")
	require.NoError(t, os.WriteFile(path, []byte("callsign: N0CALL\nbaud: 115200\n"), 0o644))

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	require.Equal(t, "N0CALL", cfg.Callsign)
	require.Equal(t, 115200, cfg.Baud)
}

func TestOverridesWinOverFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lorett.yaml")
	require.NoError(t, os.WriteFile(path, []byte("baud: 115200\n"), 0o644))

	cfg, err := Load(path, map[string]any{"baud": 57600})
	require.NoError(t, err)
	require.Equal(t, 57600, cfg.Baud)
}

func TestEnvOverridesDefaults(t *testing.T) {
	t.Setenv("LORETT_CALLSIGN", "ENVCALL")
	cfg, err := Load("", nil)
	require.NoError(t, err)
	require.Equal(t, "ENVCALL", cfg.Callsign)
}

func TestInvalidRatioRejected(t *testing.T) {
	_, err := Load("", map[string]any{"ratio_num": 9, "ratio_den": 5})
	require.Error(t, err)
}

func TestRatioHelper(t *testing.T) {
	cfg := Config{RatioNum: 1, RatioDen: 4}
	require.Equal(t, 1, cfg.Ratio().Num)
	require.Equal(t, 4, cfg.Ratio().Den)
}
