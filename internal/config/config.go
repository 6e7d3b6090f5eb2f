package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const (
	KeyEchoStatus = "status"
	KeyEchoOff    = "off"
)

type EditorOptions struct {
	Welcome        string `toml:"welcome"`
	TabWidth       int    `toml:"tab-width"`
	FallbackWidth  int    `toml:"fallback-width"`
	FallbackHeight int    `toml:"fallback-height"`
	KeyEcho        string `toml:"key-echo"`
}

type LogOptions struct {
	Debug bool   `toml:"debug"`
	File  string `toml:"file"`
}

type Config struct {
	Editor EditorOptions     `toml:"editor"`
	Log    LogOptions        `toml:"log"`
	Keymap map[string]string `toml:"keymap"`
}

func Default() Config {
	return Config{
		Editor: EditorOptions{
			Welcome:        "MrCat Editor",
			TabWidth:       4,
			FallbackWidth:  80,
			FallbackHeight: 24,
			KeyEcho:        KeyEchoStatus,
		},
		Keymap: map[string]string{
			"ctrl+q": "quit",
			"up":     "move_up",
			"down":   "move_down",
			"left":   "move_left",
			"right":  "move_right",
			"pgup":   "page_up",
			"pgdn":   "page_down",
			"home":   "line_start",
			"end":    "line_end",
		},
	}
}

func Load() (Config, error) {
	cfg := Default()
	path, err := ConfigPath()
	if err != nil {
		return cfg, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	var userCfg Config
	if _, err := toml.Decode(string(data), &userCfg); err != nil {
		return cfg, err
	}

	if userCfg.Editor.Welcome != "" {
		cfg.Editor.Welcome = userCfg.Editor.Welcome
	}
	if userCfg.Editor.TabWidth > 0 {
		cfg.Editor.TabWidth = userCfg.Editor.TabWidth
	}
	if userCfg.Editor.FallbackWidth > 0 {
		cfg.Editor.FallbackWidth = userCfg.Editor.FallbackWidth
	}
	if userCfg.Editor.FallbackHeight > 0 {
		cfg.Editor.FallbackHeight = userCfg.Editor.FallbackHeight
	}
	if userCfg.Editor.KeyEcho != "" {
		cfg.Editor.KeyEcho = userCfg.Editor.KeyEcho
	}
	if userCfg.Log.Debug {
		cfg.Log.Debug = userCfg.Log.Debug
	}
	if userCfg.Log.File != "" {
		cfg.Log.File = userCfg.Log.File
	}
	for k, v := range userCfg.Keymap {
		cfg.Keymap[k] = v
	}

	return cfg, nil
}

func ConfigDir() (string, error) {
	if v := os.Getenv("MRCAT_CONFIG_HOME"); v != "" {
		return filepath.Join(v), nil
	}
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "mrcat"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "mrcat"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}
