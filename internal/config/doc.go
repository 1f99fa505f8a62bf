// Package config manages user-level settings stored at ~/.seltrack/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the tracker preferences and the location of the state file.
package config
