// Package userdata locates the ~/.seltrack/state/ directory that holds the
// persisted tracker state, and checks its permissions.
package userdata
