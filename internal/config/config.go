// Package config loads padscope settings from defaults, an optional config
// file, PADSCOPE_* environment variables and command-line flags, in
// increasing priority.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	EnvPrefix = "PADSCOPE"
	FileName  = "padscope"
)

type Log struct {
	Level string `mapstructure:"level"`
}

type Assets struct {
	Dir string `mapstructure:"dir"`
}

type Window struct {
	Title  string `mapstructure:"title"`
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
}

type Loop struct {
	FrameDelay time.Duration `mapstructure:"frame_delay"`
}

type Haptics struct {
	Enabled bool `mapstructure:"enabled"`
}

type Server struct {
	Enabled bool   `mapstructure:"enabled"`
	Addr    string `mapstructure:"addr"`
}

type Tray struct {
	Enabled bool `mapstructure:"enabled"`
}

type Config struct {
	Log     Log     `mapstructure:"log"`
	Assets  Assets  `mapstructure:"assets"`
	Window  Window  `mapstructure:"window"`
	Loop    Loop    `mapstructure:"loop"`
	Haptics Haptics `mapstructure:"haptics"`
	Server  Server  `mapstructure:"server"`
	Tray    Tray    `mapstructure:"tray"`
}

// SetDefaults registers every key with its default value.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("assets.dir", "data")
	v.SetDefault("window.title", "Game Controller Test")
	v.SetDefault("window.width", 960)
	v.SetDefault("window.height", 544)
	v.SetDefault("loop.frame_delay", 16*time.Millisecond)
	v.SetDefault("haptics.enabled", true)
	v.SetDefault("server.enabled", false)
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("tray.enabled", false)
}

// RegisterFlags adds the command-line flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "config file (default ./padscope.yaml or <user config dir>/padscope/padscope.yaml)")
	fs.String("log-level", "info", "log level: debug, info, warn or error")
	fs.String("assets", "data", "directory holding controllermap.bmp, button.bmp and axis.bmp")
	fs.Bool("serve", false, "serve the live view over HTTP and websocket")
	fs.String("listen", ":8080", "address of the live view server")
	fs.Bool("haptics", true, "drive LED and rumble from stick and trigger input")
	fs.Bool("tray", false, "show a system tray icon")
}

var flagKeys = map[string]string{
	"log-level": "log.level",
	"assets":    "assets.dir",
	"serve":     "server.enabled",
	"listen":    "server.addr",
	"haptics":   "haptics.enabled",
	"tray":      "tray.enabled",
}

// BindFlags binds the flags added by RegisterFlags to their keys.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag %q: %w", name, err)
		}
	}
	return nil
}

// Load reads file, or searches the default locations when file is empty,
// and decodes the result. A missing file is only an error when named
// explicitly.
func Load(v *viper.Viper, file string) (Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(FileName)
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, FileName))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the application cannot run with.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Loop.FrameDelay < 0 {
		return fmt.Errorf("invalid frame delay %s", c.Loop.FrameDelay)
	}
	if c.Assets.Dir == "" {
		return errors.New("assets directory is empty")
	}
	if c.Server.Enabled && c.Server.Addr == "" {
		return errors.New("server enabled without an address")
	}
	return nil
}
