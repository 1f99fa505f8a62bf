// Package registry owns the tracker's services. A Registry is built once at
// startup and handed to every consumer; it also persists the services to a
// YAML state file and restores them from it.
package registry
