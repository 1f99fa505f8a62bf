// Package platform wraps filesystem operations whose behavior differs by
// operating system: permission bits, which Windows ignores, and replacing a
// file atomically.
package platform
