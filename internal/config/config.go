package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"time"

	"github.com/spf13/viper"

	"github.com/agentx-labs/seltrack/internal/branding"
	"github.com/agentx-labs/seltrack/internal/userdata"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Configuration keys.
const (
	KeyRecordNodes                  = "record_nodes"
	KeyUpdateWhenSelectionInTracker = "update_when_selection_in_tracker"
	KeyDetailOnHover                = "detail_on_hover"
	KeyClickDelay                   = "click_delay"
	KeyHoverDelay                   = "hover_delay"
	KeyStateFile                    = "state_file"
	KeyProjectDir                   = "project_dir"
	KeyThumbnailTTL                 = "thumbnail_ttl"
)

type keyKind int

const (
	kindString keyKind = iota
	kindBool
	kindDuration
)

type keySpec struct {
	name string
	kind keyKind
	def  any
}

var keys = []keySpec{
	{KeyRecordNodes, kindBool, true},
	{KeyUpdateWhenSelectionInTracker, kindBool, false},
	{KeyDetailOnHover, kindBool, true},
	{KeyClickDelay, kindDuration, "700ms"},
	{KeyHoverDelay, kindDuration, "1s"},
	{KeyStateFile, kindString, ""},
	{KeyProjectDir, kindString, ""},
	{KeyThumbnailTTL, kindDuration, "5m"},
}

// Preferences are the settings that shape how selections are tracked and
// how tracker lists react to the pointer.
type Preferences struct {
	// RecordNodes records scene nodes, not only assets, when selected.
	RecordNodes bool
	// UpdateWhenSelectionInTracker moves the history cursor when an entry is
	// clicked in a tracker list.
	UpdateWhenSelectionInTracker bool
	// DetailOnHover shows entry details after hovering for HoverDelay.
	DetailOnHover bool
	ClickDelay    time.Duration
	HoverDelay    time.Duration
}

// DefaultPreferences returns the preferences used when nothing is
// configured.
func DefaultPreferences() Preferences {
	return Preferences{
		RecordNodes:   true,
		DetailOnHover: true,
		ClickDelay:    700 * time.Millisecond,
		HoverDelay:    time.Second,
	}
}

// Dir returns the path to the config directory (~/.seltrack/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.seltrack/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, userdata.DirPermNormal); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() error {
	for _, k := range keys {
		viper.SetDefault(k.name, k.def)
	}
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// A missing config file is fine; defaults apply.
		if _, statErr := os.Stat(FilePath()); os.IsNotExist(statErr) {
			return nil
		}
		return fmt.Errorf("reading config file: %w", err)
	}
	return nil
}

// Current returns the preferences from the loaded configuration.
func Current() Preferences {
	return Preferences{
		RecordNodes:                  viper.GetBool(KeyRecordNodes),
		UpdateWhenSelectionInTracker: viper.GetBool(KeyUpdateWhenSelectionInTracker),
		DetailOnHover:                viper.GetBool(KeyDetailOnHover),
		ClickDelay:                   viper.GetDuration(KeyClickDelay),
		HoverDelay:                   viper.GetDuration(KeyHoverDelay),
	}
}

// StatePath returns the configured state file, defaulting to the one under
// the state directory.
func StatePath() (string, error) {
	if p := viper.GetString(KeyStateFile); p != "" {
		return p, nil
	}
	return userdata.GetStatePath()
}

// ProjectDir is the project root used to check asset existence offline.
func ProjectDir() string {
	return viper.GetString(KeyProjectDir)
}

// ThumbnailTTL is how long resolved thumbnails are cached.
func ThumbnailTTL() time.Duration {
	return viper.GetDuration(KeyThumbnailTTL)
}

// Keys returns every known configuration key.
func Keys() []string {
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = k.name
	}
	return out
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set validates and writes a config key-value pair and saves the config
// file.
func Set(key, value string) error {
	i := slices.IndexFunc(keys, func(k keySpec) bool { return k.name == key })
	if i < 0 {
		return fmt.Errorf("unknown config key %q", key)
	}
	if err := checkValue(keys[i].kind, value); err != nil {
		return fmt.Errorf("invalid value for %s: %w", key, err)
	}

	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

func checkValue(kind keyKind, value string) error {
	switch kind {
	case kindBool:
		_, err := strconv.ParseBool(value)
		return err
	case kindDuration:
		d, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		if d < 0 {
			return fmt.Errorf("duration must not be negative")
		}
	}
	return nil
}
