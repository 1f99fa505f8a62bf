package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
)

// setupHome points the config directory at a temp dir and resets Viper.
func setupHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	viper.Reset()
	t.Cleanup(viper.Reset)
	return home
}

func TestLoad_Defaults(t *testing.T) {
	setupHome(t)
	if err := Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got, want := Current(), DefaultPreferences(); got != want {
		t.Errorf("Current() = %+v, want %+v", got, want)
	}
	if got := ThumbnailTTL(); got != 5*time.Minute {
		t.Errorf("ThumbnailTTL() = %v, want 5m", got)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	setupHome(t)
	t.Setenv("SELTRACK_CLICK_DELAY", "250ms")
	t.Setenv("SELTRACK_RECORD_NODES", "false")
	if err := Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	p := Current()
	if p.ClickDelay != 250*time.Millisecond {
		t.Errorf("ClickDelay = %v, want 250ms", p.ClickDelay)
	}
	if p.RecordNodes {
		t.Error("RecordNodes = true, want false")
	}
}

func TestSet_PersistsAndReloads(t *testing.T) {
	home := setupHome(t)
	if err := Load(); err != nil {
		t.Fatal(err)
	}

	if err := Set(KeyHoverDelay, "2s"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := Set(KeyDetailOnHover, "false"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	if _, err := os.Stat(filepath.Join(home, ".seltrack", "config.yaml")); err != nil {
		t.Fatalf("config file not written: %v", err)
	}

	viper.Reset()
	if err := Load(); err != nil {
		t.Fatal(err)
	}
	p := Current()
	if p.HoverDelay != 2*time.Second {
		t.Errorf("HoverDelay = %v, want 2s", p.HoverDelay)
	}
	if p.DetailOnHover {
		t.Error("DetailOnHover = true, want false")
	}
}

func TestSet_Rejects(t *testing.T) {
	setupHome(t)
	tests := []struct {
		key, value string
	}{
		{"colour", "red"},
		{KeyClickDelay, "soon"},
		{KeyClickDelay, "-1s"},
		{KeyRecordNodes, "maybe"},
	}
	for _, tt := range tests {
		if err := Set(tt.key, tt.value); err == nil {
			t.Errorf("Set(%q, %q) succeeded, want error", tt.key, tt.value)
		}
	}
}

func TestStatePath(t *testing.T) {
	home := setupHome(t)
	t.Setenv("SELTRACK_STATE", "")
	if err := Load(); err != nil {
		t.Fatal(err)
	}

	got, err := StatePath()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(home, ".seltrack", "state", "state.yaml"); got != want {
		t.Errorf("StatePath() = %q, want %q", got, want)
	}

	viper.Set(KeyStateFile, "/tmp/elsewhere.yaml")
	if got, _ := StatePath(); got != "/tmp/elsewhere.yaml" {
		t.Errorf("StatePath() = %q, want override", got)
	}
}
