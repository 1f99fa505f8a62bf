package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentx-labs/seltrack/internal/entry"
	"github.com/agentx-labs/seltrack/internal/host"
	"github.com/agentx-labs/seltrack/internal/host/memhost"
	"github.com/agentx-labs/seltrack/internal/registry"
	"github.com/agentx-labs/seltrack/internal/service"
)

type scene struct {
	host *memhost.Host
	main host.Container
}

func newScene() *scene {
	h := memhost.New()
	return &scene{host: h, main: h.AddContainer("Main", "Scenes/Main.scene")}
}

func (s *scene) node(name string) *entry.Entry {
	return entry.Classify(s.host, s.host.AddNode(s.main, name, nil))
}

func names(entries []*entry.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name()
	}
	return out
}

func TestLookup(t *testing.T) {
	r := registry.New()

	fav, ok := registry.Lookup[*service.Favorites](r)
	require.True(t, ok)
	assert.Same(t, r.Favorites, fav)

	h, ok := registry.Lookup[*service.History](r)
	require.True(t, ok)
	assert.Same(t, r.History, h)

	s, ok := r.Service(service.NameMostVisited)
	require.True(t, ok)
	assert.Same(t, r.MostVisited, s)

	_, ok = r.Service("nope")
	assert.False(t, ok)

	names := make([]string, 0, 5)
	for _, s := range r.Services() {
		names = append(names, s.Name())
	}
	assert.Equal(t, []string{"history", "most_visited", "favorites", "scene_components", "component_list"}, names)
}

func TestRecordSelection(t *testing.T) {
	s := newScene()
	r := registry.New()

	r.RecordSelection(nil)
	assert.Empty(t, r.History.Entries())
	assert.Equal(t, 0, r.MostVisited.Observations())

	a, b := s.node("A"), s.node("B")
	r.RecordSelection(a)
	r.RecordSelection(b)
	r.RecordSelection(a)

	assert.Len(t, r.History.Entries(), 2)
	assert.Equal(t, 3, r.MostVisited.Observations())
	assert.Equal(t, "A", r.MostVisited.Entries()[0].Name())

	assert.Equal(t, "B", r.JumpToPrevious().Name())
	assert.Equal(t, "A", r.JumpToNext().Name())
}

func TestRecordComponent(t *testing.T) {
	s := newScene()
	n := s.host.AddNode(s.main, "Crate", nil)
	r := registry.New()

	r.RecordComponent(entry.Classify(s.host, s.host.AddComponent(n, "Rigidbody", false)))
	r.RecordComponent(entry.Classify(s.host, s.host.AddComponent(n, "Rigidbody", false)))
	assert.Len(t, r.SceneComponents.Entries(), 1)
}
