package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("MOTION_CONFIG", "")

	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Preview.Width != 960 || c.Preview.Height != 540 {
		t.Errorf("preview size = %dx%d, want 960x540", c.Preview.Width, c.Preview.Height)
	}
	if c.Article.Layout != "desktop" {
		t.Errorf("layout = %q, want desktop", c.Article.Layout)
	}
	if c.Log.SlogLevel() != slog.LevelInfo {
		t.Errorf("log level = %v, want info", c.Log.SlogLevel())
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "motion.yaml")
	data := []byte("preview:\n  width: 320\n  title: demo\narticle:\n  layout: mobile\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("MOTION_CONFIG", path)
	t.Setenv("MOTION_LOG_LEVEL", "debug")

	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Preview.Width != 320 {
		t.Errorf("width = %d, want 320", c.Preview.Width)
	}
	if c.Preview.Height != 540 {
		t.Errorf("height = %d, want default 540", c.Preview.Height)
	}
	if c.Preview.Title != "demo" {
		t.Errorf("title = %q, want demo", c.Preview.Title)
	}
	if c.Article.Layout != "mobile" {
		t.Errorf("layout = %q, want mobile", c.Article.Layout)
	}
	if c.Log.SlogLevel() != slog.LevelDebug {
		t.Errorf("log level = %v, want debug", c.Log.SlogLevel())
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	t.Setenv("MOTION_CONFIG", filepath.Join(t.TempDir(), "nope.yaml"))
	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}
