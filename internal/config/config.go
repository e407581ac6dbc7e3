package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/dgallion1/ziransort/internal/natcmp"
	"golang.org/x/text/language"
)

type Config struct {
	Port string

	// Auth
	APIKey string

	// Ordering defaults
	Locale        string
	NumberPolicy  string
	ChinesePolicy string

	// Request limits
	MaxUploadBytes int64
	MaxSortItems   int

	// Document parsing
	PDFFallbackPdftotext bool
	CSVKeyColumn         int
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8091"),

		APIKey: os.Getenv("ZIRANSORT_API_KEY"),

		Locale:        envOr("ZIRANSORT_LOCALE", "zh"),
		NumberPolicy:  envOr("ZIRANSORT_NUMBER_POLICY", "numberFirst"),
		ChinesePolicy: envOr("ZIRANSORT_CHINESE_POLICY", "mixed"),

		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 20<<20), // 20MB
		MaxSortItems:   envInt("MAX_SORT_ITEMS", 100000),

		PDFFallbackPdftotext: envBool("PDF_FALLBACK_PDFTOTEXT", true),
		CSVKeyColumn:         envInt("CSV_KEY_COLUMN", 0),
	}

	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 20 << 20
	}
	if cfg.MaxSortItems <= 0 {
		cfg.MaxSortItems = 100000
	}
	if cfg.CSVKeyColumn < 0 {
		cfg.CSVKeyColumn = 0
	}

	return cfg
}

func (c Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("ZIRANSORT_API_KEY is required")
	}
	if _, err := language.Parse(c.Locale); err != nil {
		return fmt.Errorf("ZIRANSORT_LOCALE: %w", err)
	}
	if _, err := c.Options(); err != nil {
		return err
	}
	return nil
}

// Options returns the default comparison options.
func (c Config) Options() (natcmp.Options, error) {
	opts, err := natcmp.ParseOptions(natcmp.Options{}, c.NumberPolicy, c.ChinesePolicy)
	if err != nil {
		return natcmp.Options{}, fmt.Errorf("ordering policy: %w", err)
	}
	return opts, nil
}

// LanguageTag returns the collation locale, falling back to Chinese.
func (c Config) LanguageTag() language.Tag {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.Chinese
	}
	return tag
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
