package config

import (
	"testing"

	"github.com/dgallion1/ziransort/internal/natcmp"
	"golang.org/x/text/language"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ZIRANSORT_LOCALE", "")
	t.Setenv("MAX_SORT_ITEMS", "-3")
	t.Setenv("PDF_FALLBACK_PDFTOTEXT", "not-a-bool")

	cfg := Load()
	if cfg.Port != "8091" {
		t.Errorf("expected default port, got %q", cfg.Port)
	}
	if cfg.Locale != "zh" {
		t.Errorf("expected default locale zh, got %q", cfg.Locale)
	}
	if cfg.MaxSortItems != 100000 {
		t.Errorf("expected MaxSortItems reset to default, got %d", cfg.MaxSortItems)
	}
	if !cfg.PDFFallbackPdftotext {
		t.Error("expected invalid bool to fall back to true")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ZIRANSORT_API_KEY", "secret")
	t.Setenv("ZIRANSORT_NUMBER_POLICY", "stringFirst")
	t.Setenv("ZIRANSORT_CHINESE_POLICY", "last")
	t.Setenv("ZIRANSORT_LOCALE", "zh-Hant")
	t.Setenv("MAX_UPLOAD_BYTES", "1024")

	cfg := Load()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
	opts, err := cfg.Options()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := natcmp.Options{NumberString: natcmp.StringFirst, ChineseNumber: natcmp.ChineseLast}
	if opts != want {
		t.Errorf("expected %+v, got %+v", want, opts)
	}
	if cfg.MaxUploadBytes != 1024 {
		t.Errorf("expected MaxUploadBytes 1024, got %d", cfg.MaxUploadBytes)
	}
	if cfg.LanguageTag() != language.MustParse("zh-Hant") {
		t.Errorf("unexpected language tag %v", cfg.LanguageTag())
	}
}

func TestValidate(t *testing.T) {
	valid := Config{APIKey: "k", Locale: "zh", NumberPolicy: "numberFirst", ChinesePolicy: "mixed"}
	if err := valid.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing api key", func(c *Config) { c.APIKey = "" }},
		{"bad locale", func(c *Config) { c.Locale = "not a locale!" }},
		{"bad number policy", func(c *Config) { c.NumberPolicy = "numbers" }},
		{"bad chinese policy", func(c *Config) { c.ChinesePolicy = "middle" }},
	}
	for _, tt := range tests {
		c := valid
		tt.mutate(&c)
		if err := c.Validate(); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
}
