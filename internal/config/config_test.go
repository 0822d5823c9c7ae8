package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", dir)
	return dir
}

func TestLoadDefaults(t *testing.T) {
	chdirTemp(t)
	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, "data", cfg.Assets.Dir)
	require.Equal(t, 960, cfg.Window.Width)
	require.Equal(t, 544, cfg.Window.Height)
	require.Equal(t, 16*time.Millisecond, cfg.Loop.FrameDelay)
	require.True(t, cfg.Haptics.Enabled)
	require.False(t, cfg.Server.Enabled)
	require.Equal(t, ":8080", cfg.Server.Addr)
	require.False(t, cfg.Tray.Enabled)
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := chdirTemp(t)
	file := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(file, []byte(`
log:
  level: debug
loop:
  frame_delay: 5ms
server:
  enabled: true
  addr: 127.0.0.1:9000
`), 0o644))
	t.Setenv("PADSCOPE_ASSETS_DIR", "/opt/padscope/data")

	cfg, err := Load(viper.New(), file)
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, 5*time.Millisecond, cfg.Loop.FrameDelay)
	require.True(t, cfg.Server.Enabled)
	require.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	require.Equal(t, "/opt/padscope/data", cfg.Assets.Dir)
}

func TestLoadSearchesWorkingDirectory(t *testing.T) {
	dir := chdirTemp(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "padscope.yaml"), []byte("tray:\n  enabled: true\n"), 0o644))

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	require.True(t, cfg.Tray.Enabled)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	dir := chdirTemp(t)
	_, err := Load(viper.New(), filepath.Join(dir, "nope.yaml"))
	require.Error(t, err)
}

func TestFlagsOverrideEnv(t *testing.T) {
	chdirTemp(t)
	t.Setenv("PADSCOPE_LOG_LEVEL", "warn")

	fs := pflag.NewFlagSet("padscope", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"--log-level=error", "--serve", "--haptics=false"}))

	v := viper.New()
	require.NoError(t, BindFlags(v, fs))
	cfg, err := Load(v, "")
	require.NoError(t, err)
	require.Equal(t, "error", cfg.Log.Level)
	require.True(t, cfg.Server.Enabled)
	require.False(t, cfg.Haptics.Enabled)
}

func TestUnsetFlagsKeepEnv(t *testing.T) {
	chdirTemp(t)
	t.Setenv("PADSCOPE_LOG_LEVEL", "warn")

	fs := pflag.NewFlagSet("padscope", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(nil))

	v := viper.New()
	require.NoError(t, BindFlags(v, fs))
	cfg, err := Load(v, "")
	require.NoError(t, err)
	require.Equal(t, "warn", cfg.Log.Level)
}

func TestValidate(t *testing.T) {
	chdirTemp(t)
	base, err := Load(viper.New(), "")
	require.NoError(t, err)
	require.NoError(t, base.Validate())

	bad := base
	bad.Window.Width = 0
	require.Error(t, bad.Validate())

	bad = base
	bad.Server.Enabled = true
	bad.Server.Addr = ""
	require.Error(t, bad.Validate())

	bad = base
	bad.Assets.Dir = ""
	require.Error(t, bad.Validate())
}
