package entry

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/agentx-labs/seltrack/internal/host"
)

// Snapshot is the persisted form of an entry. The live handle is never
// persisted; restored entries resolve it lazily.
type Snapshot struct {
	ID        string             `yaml:"id"`
	Kind      string             `yaml:"kind"`
	StableID  string             `yaml:"stable_id"`
	Name      string             `yaml:"name"`
	Icon      string             `yaml:"icon,omitempty"`
	Favorite  bool               `yaml:"favorite,omitempty"`
	Container *ContainerSnapshot `yaml:"container,omitempty"`
	Transient bool               `yaml:"transient,omitempty"`
	AssetPath string             `yaml:"asset_path,omitempty"`
	TypeName  string             `yaml:"type_name,omitempty"`
}

// ContainerSnapshot is the persisted form of host.Container.
type ContainerSnapshot struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name,omitempty"`
	Path string `yaml:"path,omitempty"`
}

// Snapshot captures e for persistence. Entries without an ID get one.
func (e *Entry) Snapshot() Snapshot {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	s := Snapshot{
		ID:        e.ID.String(),
		Kind:      e.Kind.String(),
		StableID:  e.StableID.String(),
		Name:      e.name,
		Icon:      string(e.icon),
		Favorite:  e.favorite,
		Transient: e.transient,
		AssetPath: e.assetPath,
		TypeName:  e.typeName,
	}
	if !e.container.IsZero() {
		s.Container = &ContainerSnapshot{
			ID:   e.container.ID,
			Name: e.container.Name,
			Path: e.container.Path,
		}
	}
	return s
}

// Restore rebuilds a detached entry from its snapshot.
func Restore(s Snapshot) (*Entry, error) {
	id, err := uuid.Parse(s.ID)
	if err != nil {
		return nil, fmt.Errorf("parsing entry id %q: %w", s.ID, err)
	}
	kind, err := ParseKind(s.Kind)
	if err != nil {
		return nil, err
	}
	sid, err := host.ParseStableID(s.StableID)
	if err != nil {
		return nil, err
	}

	e := &Entry{
		ID:        id,
		Kind:      kind,
		StableID:  sid,
		name:      s.Name,
		icon:      host.Icon(s.Icon),
		favorite:  s.Favorite,
		transient: s.Transient,
		assetPath: s.AssetPath,
		typeName:  s.TypeName,
	}
	if s.Container != nil {
		e.container = host.Container{
			ID:   s.Container.ID,
			Name: s.Container.Name,
			Path: s.Container.Path,
		}
	}
	return e, nil
}
