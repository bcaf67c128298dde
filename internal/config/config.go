package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

var (
	cfgMux  sync.RWMutex
	Relic   *RelicCfg
	Version = "dev"
)

const configPath = "config/relicrater.yaml"

type RelicCfg struct {
	Debug struct {
		Log bool `yaml:"log"`
	} `yaml:"debug"`
	LogSaveDirectory string `yaml:"logSaveDirectory"`
	StorePath        string `yaml:"storePath"`
	Server           struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
	Capture struct {
		WindowTitle     string `yaml:"windowTitle"`
		SourceDirectory string `yaml:"sourceDirectory"`
	} `yaml:"capture"`
	Discord struct {
		Enabled    bool   `yaml:"enabled"`
		WebhookURL string `yaml:"webhookUrl"`
	} `yaml:"discord"`
	Telegram struct {
		Enabled bool   `yaml:"enabled"`
		ChatID  int64  `yaml:"chatId"`
		Token   string `yaml:"token"`
	} `yaml:"telegram"`
	Ngrok struct {
		Enabled       bool   `yaml:"enabled"`
		Authtoken     string `yaml:"authtoken"`
		Region        string `yaml:"region"`
		Domain        string `yaml:"domain"`
		BasicAuthUser string `yaml:"basicAuthUser"`
		BasicAuthPass string `yaml:"basicAuthPass"`
	} `yaml:"ngrok"`
}

func defaultConfig() *RelicCfg {
	cfg := &RelicCfg{}
	cfg.LogSaveDirectory = "logs"
	cfg.StorePath = filepath.Join("config", "store.json")
	cfg.Server.Port = 8093
	cfg.Capture.WindowTitle = "Honkai: Star Rail"
	cfg.Capture.SourceDirectory = "captures"
	return cfg
}

// Load reads config/relicrater.yaml. A missing file is a first run: defaults
// are applied and written back so the user has something to edit.
func Load() error {
	cfgMux.Lock()
	defer cfgMux.Unlock()

	r, err := os.Open(configPath)
	if os.IsNotExist(err) {
		Relic = defaultConfig()
		return saveLocked()
	}
	if err != nil {
		return fmt.Errorf("error loading %s: %w", configPath, err)
	}
	defer r.Close()

	cfg := defaultConfig()
	d := yaml.NewDecoder(r)
	if err = d.Decode(cfg); err != nil {
		return fmt.Errorf("error reading config %s: %w", configPath, err)
	}

	if cfg.Server.Port <= 0 {
		cfg.Server.Port = 8093
	}
	if cfg.StorePath == "" {
		cfg.StorePath = filepath.Join("config", "store.json")
	}

	Relic = cfg
	return nil
}

// Save writes the current configuration back to disk.
func Save() error {
	cfgMux.Lock()
	defer cfgMux.Unlock()
	return saveLocked()
}

func saveLocked() error {
	if Relic == nil {
		return fmt.Errorf("config is not loaded")
	}

	text, err := yaml.Marshal(Relic)
	if err != nil {
		return fmt.Errorf("error marshalling config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}
	if err := os.WriteFile(configPath, text, 0644); err != nil {
		return fmt.Errorf("error writing config: %w", err)
	}

	return nil
}
