package registry

import (
	"time"

	"github.com/agentx-labs/seltrack/internal/entry"
	"github.com/agentx-labs/seltrack/internal/service"
)

// Registry holds one instance of every service.
type Registry struct {
	History         *service.History
	MostVisited     *service.MostVisited
	Favorites       *service.Favorites
	SceneComponents *service.SceneComponents
	ComponentList   *service.ComponentList

	now func() time.Time
}

// Option configures a Registry.
type Option func(*Registry)

// WithClock sets the clock used to stamp saved state.
func WithClock(now func() time.Time) Option {
	return func(r *Registry) { r.now = now }
}

// New returns a registry with empty services.
func New(opts ...Option) *Registry {
	r := &Registry{
		History:         service.NewHistory(),
		MostVisited:     service.NewMostVisited(),
		Favorites:       service.NewFavorites(),
		SceneComponents: service.NewSceneComponents(),
		ComponentList:   service.NewComponentList(),
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Services returns every service in display order.
func (r *Registry) Services() []service.Service {
	return []service.Service{
		r.History,
		r.MostVisited,
		r.Favorites,
		r.SceneComponents,
		r.ComponentList,
	}
}

// Service returns the service registered under name.
func (r *Registry) Service(name string) (service.Service, bool) {
	for _, s := range r.Services() {
		if s.Name() == name {
			return s, true
		}
	}
	return nil, false
}

// Lookup returns the registry's service of type T.
func Lookup[T service.Service](r *Registry) (T, bool) {
	for _, s := range r.Services() {
		if t, ok := s.(T); ok {
			return t, true
		}
	}
	var zero T
	return zero, false
}

// persistent lists the services written to the state file, in file order.
func (r *Registry) persistent() []service.Persistent {
	return []service.Persistent{
		r.History,
		r.MostVisited,
		r.Favorites,
		r.SceneComponents,
	}
}

// RecordSelection records a selected entry into the history and the
// most-visited ranking.
func (r *Registry) RecordSelection(e *entry.Entry) {
	if e == nil {
		return
	}
	r.History.Record(e)
	r.MostVisited.Record(e)
}

// RecordComponent records a component-type entry into the scene components.
func (r *Registry) RecordComponent(e *entry.Entry) {
	r.SceneComponents.Record(e)
}

// JumpToPrevious moves the history cursor one entry back.
func (r *Registry) JumpToPrevious() *entry.Entry {
	return r.History.PreviousSelection()
}

// JumpToNext moves the history cursor one entry forward.
func (r *Registry) JumpToNext() *entry.Entry {
	return r.History.NextSelection()
}
