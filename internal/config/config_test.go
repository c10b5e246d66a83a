/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mikeb26/teetimes/internal"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 8080 || cfg.Server.ShutdownTimeout != 10*time.Second {
		t.Errorf("server = %+v", cfg.Server)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "json" {
		t.Errorf("log = %+v", cfg.Log)
	}
	if cfg.Ephemeris.BaseURL != internal.EphemerisBaseURL {
		t.Errorf("ephemeris = %+v", cfg.Ephemeris)
	}
	if cfg.DiscordReady() == nil {
		t.Error("DiscordReady: expected missing credentials")
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "teetimes.yaml")
	yaml := "server:\n  port: 9090\nlog:\n  format: console\ncache:\n  bucket: from-file\n"
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("TEETIMES_CACHE_BUCKET", "from-env")
	t.Setenv("TEETIMES_DISCORD_TOKEN", "tok")
	t.Setenv("TEETIMES_DISCORD_APP_ID", "app")
	t.Setenv("TEETIMES_DISCORD_PUBLIC_KEY", "abcd")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 9090 || cfg.Log.Format != "console" {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.Cache.Bucket != "from-env" {
		t.Errorf("cache.bucket = %q; want env override", cfg.Cache.Bucket)
	}
	if err := cfg.DiscordReady(); err != nil {
		t.Errorf("DiscordReady: %v", err)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"port", map[string]string{"TEETIMES_SERVER_PORT": "70000"}},
		{"format", map[string]string{"TEETIMES_LOG_FORMAT": "xml"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Chdir(t.TempDir())
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			if _, err := Load(""); err == nil {
				t.Error("Load: expected validation error")
			}
		})
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load: expected error for an explicit missing file")
	}
}
