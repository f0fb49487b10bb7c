package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
)

const (
	DefaultLanguage = "en"
	DefaultDataDir  = "plugins/CitizensCMD"
	DefaultFile     = "citizenscmd.toml"
)

type Config struct {
	Language    string `toml:"language"`
	DataDir     string `toml:"data_dir"`
	DatabaseURL string `toml:"database_url"`
	NoColor     bool   `toml:"no_color"`
}

// Load reads .env, then the optional TOML file, then the environment, and
// validates the result.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env is optional when the environment already provides the variables (Docker, CI).
	}

	cfg := &Config{
		Language: DefaultLanguage,
		DataDir:  DefaultDataDir,
	}

	path := os.Getenv("CITIZENSCMD_CONFIG")
	if path == "" {
		path = DefaultFile
	}
	if err := cfg.readFile(path); err != nil {
		return nil, err
	}
	cfg.applyEnv()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// readFile overlays the TOML file at path. A missing file is not an error.
func (c *Config) readFile(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("config: invalid %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("CITIZENSCMD_LANG"); v != "" {
		c.Language = v
	}
	if v := os.Getenv("CITIZENSCMD_DATA_DIR"); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.DatabaseURL = v
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		c.NoColor = true
	}
}

// Validate re-checks the configuration after command-line overrides.
func (c *Config) Validate() error {
	return c.validate()
}

// validate checks every rule on the loaded configuration.
func (c *Config) validate() error {
	c.Language = strings.TrimSpace(c.Language)
	if c.Language == "" {
		return errors.New("config: CITIZENSCMD_LANG must not be empty")
	}
	if _, err := language.Parse(c.Language); err != nil {
		return fmt.Errorf("config: invalid CITIZENSCMD_LANG (%q): %w", c.Language, err)
	}

	if strings.TrimSpace(c.DataDir) == "" {
		return errors.New("config: CITIZENSCMD_DATA_DIR must not be empty")
	}

	if strings.TrimSpace(c.DatabaseURL) == "" {
		// No database: publishing is disabled.
		return nil
	}

	parsed, err := url.Parse(c.DatabaseURL)
	if err != nil {
		return fmt.Errorf("config: invalid DATABASE_URL (%q): %w", c.DatabaseURL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config: invalid DATABASE_URL (%q): missing scheme or host", c.DatabaseURL)
	}

	return nil
}
