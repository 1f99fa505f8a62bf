// Package host defines the boundary between seltrack and the authoring tool
// it runs inside. Live object handles, containers, stable identifiers and the
// read-only queries and best-effort actions the tracker needs are expressed as
// small interfaces here; concrete hosts live in subpackages (memhost for tests
// and demos, offline for the CLI) or in the embedding application.
package host
