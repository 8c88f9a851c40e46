package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"
)

const (
	defaultConfigFile    = "config/i18n-js.yml"
	defaultExportDir     = "public/javascripts"
	defaultLocalesDir    = "config/locales"
	defaultDefaultLocale = "en"
)

type Config struct {
	ConfigFile       string
	ExportDir        string
	LocalesDir       string
	AvailableLocales []string
	DefaultLocale    string
	DatabaseURL      string
	Migrate          bool
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env is optional when the variables come from the environment.
	}

	cfg := &Config{
		ConfigFile:       os.Getenv("I18N_JS_CONFIG"),
		ExportDir:        os.Getenv("I18N_JS_EXPORT_DIR"),
		LocalesDir:       os.Getenv("I18N_JS_LOCALES_DIR"),
		AvailableLocales: splitList(os.Getenv("I18N_JS_AVAILABLE_LOCALES")),
		DefaultLocale:    os.Getenv("I18N_JS_DEFAULT_LOCALE"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		Migrate:          strings.EqualFold(strings.TrimSpace(os.Getenv("I18N_JS_MIGRATE")), "true"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate fills in defaults and checks locale tags and the database URL.
func (c *Config) validate() error {
	if strings.TrimSpace(c.ConfigFile) == "" {
		c.ConfigFile = defaultConfigFile
	}
	if strings.TrimSpace(c.ExportDir) == "" {
		c.ExportDir = defaultExportDir
	}
	if strings.TrimSpace(c.LocalesDir) == "" {
		c.LocalesDir = defaultLocalesDir
	}
	if strings.TrimSpace(c.DefaultLocale) == "" {
		c.DefaultLocale = defaultDefaultLocale
	}

	if _, err := language.Parse(c.DefaultLocale); err != nil {
		return fmt.Errorf("config: invalid I18N_JS_DEFAULT_LOCALE (%q): %w", c.DefaultLocale, err)
	}
	for _, l := range c.AvailableLocales {
		if _, err := language.Parse(l); err != nil {
			return fmt.Errorf("config: I18N_JS_AVAILABLE_LOCALES has an invalid locale (%q): %w", l, err)
		}
	}

	if strings.TrimSpace(c.DatabaseURL) == "" {
		c.Migrate = false
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

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
