package registry

import (
	"context"
	"fmt"
	"os"
	"time"

	slogcontext "github.com/veqryn/slog-context"
	"go.yaml.in/yaml/v3"

	"github.com/agentx-labs/seltrack/internal/entry"
	"github.com/agentx-labs/seltrack/internal/platform"
	"github.com/agentx-labs/seltrack/internal/userdata"
)

// State is the on-disk form of a registry. Every entry is written once in
// Entries; services refer to entries by ID, so an entry shared between
// services is restored as one value.
type State struct {
	Format   string                  `yaml:"format"`
	SavedAt  string                  `yaml:"saved_at,omitempty"`
	Entries  []entry.Snapshot        `yaml:"entries"`
	Services map[string]ServiceState `yaml:"services"`
}

// ServiceState lists the entries of one service, in internal order.
type ServiceState struct {
	SizeLimit int      `yaml:"size_limit"`
	Entries   []string `yaml:"entries"`
}

// Snapshot captures the persistent services.
func (r *Registry) Snapshot() *State {
	st := &State{
		Format:   FormatVersion,
		SavedAt:  r.now().UTC().Format(time.RFC3339),
		Entries:  []entry.Snapshot{},
		Services: make(map[string]ServiceState),
	}

	seen := make(map[*entry.Entry]string)
	for _, s := range r.persistent() {
		ids := []string{}
		for _, e := range s.Stored() {
			id, ok := seen[e]
			if !ok {
				snap := e.Snapshot()
				id = snap.ID
				seen[e] = id
				st.Entries = append(st.Entries, snap)
			}
			ids = append(ids, id)
		}
		st.Services[s.Name()] = ServiceState{
			SizeLimit: s.SizeLimit(),
			Entries:   ids,
		}
	}
	return st
}

// Apply replaces the persistent services' contents with st. Entries that
// cannot be rebuilt, and references to unknown entries, are skipped.
func (r *Registry) Apply(ctx context.Context, st *State) {
	logger := slogcontext.FromCtx(ctx)

	byID := make(map[string]*entry.Entry, len(st.Entries))
	for _, snap := range st.Entries {
		e, err := entry.Restore(snap)
		if err != nil {
			logger.Warn("skipping unreadable entry", "id", snap.ID, "error", err)
			continue
		}
		byID[snap.ID] = e
	}

	for _, s := range r.persistent() {
		ss, ok := st.Services[s.Name()]
		if !ok {
			s.Restore(nil)
			continue
		}
		entries := make([]*entry.Entry, 0, len(ss.Entries))
		for _, id := range ss.Entries {
			e, ok := byID[id]
			if !ok {
				logger.Warn("skipping reference to unknown entry", "service", s.Name(), "id", id)
				continue
			}
			entries = append(entries, e)
		}
		s.Restore(entries)
	}
}

// Save writes the persistent services to path. The file is replaced
// atomically and readable only by its owner.
func (r *Registry) Save(ctx context.Context, path string) error {
	data, err := yaml.Marshal(r.Snapshot())
	if err != nil {
		return fmt.Errorf("encoding state: %w", err)
	}

	if err := platform.WriteFileAtomic(path, data, userdata.DirPermSecure, userdata.FilePermSecure); err != nil {
		return fmt.Errorf("saving state: %w", err)
	}

	slogcontext.FromCtx(ctx).Debug("saved state", "path", path, "bytes", len(data))
	return nil
}

// ReadState reads, validates and decodes the state file at path. Schema
// violations are reported as *ValidationError.
func ReadState(ctx context.Context, path string) (*State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading state file: %w", err)
	}

	res, err := Validate(data)
	if err != nil {
		return nil, fmt.Errorf("validating state file %s: %w", path, err)
	}
	if !res.Valid {
		return nil, &ValidationError{File: path, Issues: res.Issues}
	}

	var st State
	if err := yaml.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("parsing state file %s: %w", path, err)
	}

	newer, err := CheckFormat(st.Format)
	if err != nil {
		return nil, fmt.Errorf("state file %s: %w", path, err)
	}
	if newer {
		slogcontext.FromCtx(ctx).Warn("state file was written by a newer version; unknown data is dropped on save",
			"path", path, "format", st.Format)
	}
	return &st, nil
}

// Load restores the persistent services from path. A missing file is
// reported with an error wrapping fs.ErrNotExist.
func (r *Registry) Load(ctx context.Context, path string) error {
	st, err := ReadState(ctx, path)
	if err != nil {
		return err
	}
	r.Apply(ctx, st)

	slogcontext.FromCtx(ctx).Debug("loaded state", "path", path, "entries", len(st.Entries))
	return nil
}
