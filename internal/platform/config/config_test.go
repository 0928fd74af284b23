package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	if cfg.APIBaseURL == "" || cfg.HTTPTimeout <= 0 || cfg.PageSize <= 0 {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HR_API_BASE_URL", "http://api.internal:9000/v2")
	t.Setenv("HR_HTTP_TIMEOUT", "3s")
	t.Setenv("HR_DEBUG_HTTP", "true")
	t.Setenv("HR_PAGE_SIZE", "25")

	cfg := Load()
	if cfg.APIBaseURL != "http://api.internal:9000/v2" {
		t.Fatalf("unexpected base url %q", cfg.APIBaseURL)
	}
	if cfg.HTTPTimeout != 3*time.Second || !cfg.DebugHTTP || cfg.PageSize != 25 {
		t.Fatalf("unexpected overrides %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "missing base url", mutate: func(c *Config) { c.APIBaseURL = "" }, wantErr: true},
		{name: "garbage base url", mutate: func(c *Config) { c.APIBaseURL = "::" }, wantErr: true},
		{name: "zero timeout", mutate: func(c *Config) { c.HTTPTimeout = 0 }, wantErr: true},
		{name: "zero page size", mutate: func(c *Config) { c.PageSize = 0 }, wantErr: true},
		{
			name: "debug logging in production",
			mutate: func(c *Config) {
				c.Environment = "production"
				c.DebugHTTP = true
			},
			wantErr: true,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			cfg := Config{
				APIBaseURL:  "http://localhost:8080/api/v1",
				Environment: "development",
				HTTPTimeout: 15 * time.Second,
				PageSize:    10,
			}
			tc.mutate(&cfg)
			if err := cfg.Validate(); (err != nil) != tc.wantErr {
				t.Fatalf("Validate() = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}
