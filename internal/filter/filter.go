// Package filter narrows tracker lists by keyword, display-name glob and
// lifecycle state.
package filter

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gobwas/glob"
	"golang.org/x/text/cases"

	"github.com/agentx-labs/seltrack/internal/entry"
	"github.com/agentx-labs/seltrack/internal/host"
)

// Query is a compiled filter. A zero-option query with an empty search
// matches everything. A Query is not safe for concurrent use.
type Query struct {
	keywords []string
	pattern  glob.Glob
	states   []entry.RefState
	fold     cases.Caser
}

// Option configures a Query.
type Option func(*Query) error

// WithGlob keeps entries whose display name matches pattern, e.g.
// "Main/*Enemy*".
func WithGlob(pattern string) Option {
	return func(q *Query) error {
		if pattern == "" {
			return nil
		}
		g, err := glob.Compile(pattern)
		if err != nil {
			return fmt.Errorf("compiling glob %q: %w", pattern, err)
		}
		q.pattern = g
		return nil
	}
}

// WithStates keeps entries in one of the named states. No names means any
// state.
func WithStates(names ...string) Option {
	return func(q *Query) error {
		for _, name := range names {
			s, err := entry.ParseRefState(name)
			if err != nil {
				return err
			}
			q.states = append(q.states, s)
		}
		return nil
	}
}

// New compiles a query. search is split on whitespace; an entry matches
// when any keyword occurs in its display name, ignoring case.
func New(search string, opts ...Option) (*Query, error) {
	q := &Query{fold: cases.Fold()}
	for _, kw := range strings.Fields(search) {
		q.keywords = append(q.keywords, q.fold.String(kw))
	}
	for _, opt := range opts {
		if err := opt(q); err != nil {
			return nil, err
		}
	}
	return q, nil
}

// Match reports whether e passes every part of the query. The state part
// resolves e against env.
func (q *Query) Match(e *entry.Entry, env host.Queries) bool {
	if e == nil {
		return false
	}
	label := e.DisplayName()
	if !q.matchKeywords(label) {
		return false
	}
	if q.pattern != nil && !q.pattern.Match(label) {
		return false
	}
	if len(q.states) > 0 && !slices.Contains(q.states, e.State(env)) {
		return false
	}
	return true
}

func (q *Query) matchKeywords(label string) bool {
	if len(q.keywords) == 0 {
		return true
	}
	if label == "" {
		return false
	}
	folded := q.fold.String(label)
	for _, kw := range q.keywords {
		if strings.Contains(folded, kw) {
			return true
		}
	}
	return false
}

// Apply returns the entries that match, in their original order.
func (q *Query) Apply(entries []*entry.Entry, env host.Queries) []*entry.Entry {
	var out []*entry.Entry
	for _, e := range entries {
		if q.Match(e, env) {
			out = append(out, e)
		}
	}
	return out
}

// InState returns a predicate for Service.RemoveFunc that selects entries
// currently in one of states, e.g. to clear deleted records.
func InState(env host.Queries, states ...entry.RefState) func(*entry.Entry) bool {
	return func(e *entry.Entry) bool {
		return slices.Contains(states, e.State(env))
	}
}
