package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"
)

// DefaultRateLimit is the outbound request rate when nothing sets one. It is
// set before the file is decoded so an explicit 0 (unlimited) is kept.
const DefaultRateLimit = 2.0

type Config struct {
	Server struct {
		Addr            string        `yaml:"addr"             env:"SERVER_ADDR"             env-default:":8080"`
		ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
		WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	} `yaml:"server"`

	Scraper struct {
		BaseURL   string        `yaml:"base_url"   env:"SCRAPER_BASE_URL"   env-default:"https://ru.wiktionary.org/api/rest_v1/page/html"`
		UserAgent string        `yaml:"user_agent" env:"SCRAPER_USER_AGENT" env-default:"DictionaryBot/1.0"`
		Timeout   time.Duration `yaml:"timeout"    env:"SCRAPER_TIMEOUT"    env-default:"10s"`
		RateLimit float64       `yaml:"rate_limit" env:"SCRAPER_RATE_LIMIT"`
	} `yaml:"scraper"`

	Log struct {
		Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
		Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
	} `yaml:"log"`
}

// LoadConfig reads the YAML file at path, then applies environment overrides
// and defaults. An empty path searches the default locations; if none exists
// the configuration comes from the environment and defaults only.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		locations := []string{
			"config.yaml",
			"config.yml",
			filepath.Join(os.Getenv("HOME"), ".config/wikidef/config.yaml"),
			"/etc/wikidef/config.yaml",
		}

		for _, loc := range locations {
			if _, err := os.Stat(loc); err == nil {
				path = loc
				break
			}
		}
	}

	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	config := newConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if err := cleanenv.ReadEnv(config); err != nil {
		return nil, fmt.Errorf("error reading environment: %w", err)
	}

	return config, nil
}

// Default returns a configuration built from the environment and defaults.
func Default() (*Config, error) {
	config := newConfig()
	if err := cleanenv.ReadEnv(config); err != nil {
		return nil, fmt.Errorf("error reading environment: %w", err)
	}
	return config, nil
}

func newConfig() *Config {
	config := &Config{}
	config.Scraper.RateLimit = DefaultRateLimit
	return config
}
