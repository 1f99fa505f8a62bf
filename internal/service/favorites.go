package service

import (
	"slices"

	"github.com/agentx-labs/seltrack/internal/entry"
)

// Favorites is the user's favorites list. While an editor is open, touched
// entries are staged in a working copy that is either applied or rolled back
// to the baseline captured when editing began.
type Favorites struct {
	base
	entries []*entry.Entry

	baseline    []*entry.Entry
	hasBaseline bool
	editing     bool

	// preStaged maps each entry touched since the baseline was stored to
	// its favorite flag before the first touch.
	preStaged map[*entry.Entry]bool
}

// NewFavorites returns an empty favorites list.
func NewFavorites() *Favorites {
	return &Favorites{base: base{cursor: -1}}
}

func (f *Favorites) Name() string   { return NameFavorites }
func (f *Favorites) SizeLimit() int { return 0 }
func (f *Favorites) Editing() bool  { return f.editing }

// Entries returns the working set, most recent first.
func (f *Favorites) Entries() []*entry.Entry {
	return reversed(f.entries)
}

// StoreOriginalFavorites snapshots the current list as the rollback
// baseline.
func (f *Favorites) StoreOriginalFavorites() {
	f.baseline = slices.Clone(f.entries)
	f.hasBaseline = true
	f.preStaged = nil
}

// OpenEditor stores the baseline and starts staging edits.
func (f *Favorites) OpenEditor() {
	f.StoreOriginalFavorites()
	f.editing = true
}

// CloseEditor applies the staged edits and stops staging.
func (f *Favorites) CloseEditor() {
	if !f.editing {
		return
	}
	f.editing = false
	f.ApplyChanges()
}

// RecordFavorite sets e's favorite flag and records it.
func (f *Favorites) RecordFavorite(e *entry.Entry, favorite bool) {
	if e == nil {
		return
	}
	f.stage(e)
	e.SetFavorite(favorite)
	f.Record(e)
}

// Record adds e. While editing, e is staged whatever its flag: an equal
// entry is replaced in place and takes e's flag, otherwise e is appended. Outside editing only
// favorites are added, and an equal entry moves to the most recent position.
func (f *Favorites) Record(e *entry.Entry) {
	if e == nil {
		return
	}
	i := indexOf(f.entries, e)

	switch {
	case f.editing:
		f.stage(e)
		if i >= 0 {
			if old := f.entries[i]; old != e {
				f.stage(old)
				old.SetFavorite(e.IsFavorite())
			}
			f.entries[i] = e
		} else {
			f.entries = append(f.entries, e)
		}
	case e.IsFavorite():
		if i >= 0 {
			f.entries = slices.Delete(f.entries, i, i+1)
		}
		f.entries = append(f.entries, e)
	default:
		return
	}
	f.updated.Fire()
}

// stage remembers e's flag the first time it is touched after a baseline
// was stored, so DiscardChanges can put it back.
func (f *Favorites) stage(e *entry.Entry) {
	if !f.hasBaseline {
		return
	}
	if f.preStaged == nil {
		f.preStaged = make(map[*entry.Entry]bool)
	}
	if _, ok := f.preStaged[e]; !ok {
		f.preStaged[e] = e.IsFavorite()
	}
}

// ApplyChanges drops staged entries that are no longer favorites and makes
// the result the new baseline.
func (f *Favorites) ApplyChanges() {
	f.entries = slices.DeleteFunc(f.entries, func(e *entry.Entry) bool {
		return !e.IsFavorite()
	})
	f.StoreOriginalFavorites()
	f.updated.Fire()
}

// DiscardChanges restores the baseline. Baseline entries are favorites by
// definition and get their flag back; entries staged from outside the
// baseline get the flag they had before staging.
func (f *Favorites) DiscardChanges() error {
	if !f.hasBaseline {
		return ErrNoBaseline
	}
	for e, was := range f.preStaged {
		if !slices.Contains(f.baseline, e) {
			e.SetFavorite(was)
		}
	}
	f.entries = slices.Clone(f.baseline)
	for _, e := range f.entries {
		e.SetFavorite(true)
	}
	f.preStaged = nil
	f.updated.Fire()
	return nil
}

// Remove clears e's favorite flag and drops every equal entry.
func (f *Favorites) Remove(e *entry.Entry) {
	if e == nil {
		return
	}
	e.SetFavorite(false)
	f.RemoveFunc(equalTo(e))
}

// RemoveAll clears the list.
func (f *Favorites) RemoveAll() {
	f.RemoveFunc(func(*entry.Entry) bool { return true })
}

// RemoveFunc drops the entries matching pred and clears their flags.
func (f *Favorites) RemoveFunc(pred func(*entry.Entry) bool) {
	f.entries = slices.DeleteFunc(f.entries, func(e *entry.Entry) bool {
		if !pred(e) {
			return false
		}
		e.SetFavorite(false)
		return true
	})
	f.updated.Fire()
}

// Stored returns the committed list, oldest first. While editing that is
// the baseline, not the working copy.
func (f *Favorites) Stored() []*entry.Entry {
	if f.editing {
		return slices.Clone(f.baseline)
	}
	return slices.Clone(f.entries)
}

// Restore replaces the list and ends any editing session. Restored entries
// are flagged as favorites.
func (f *Favorites) Restore(entries []*entry.Entry) {
	f.entries = nonNil(entries)
	for _, e := range f.entries {
		e.SetFavorite(true)
	}
	f.baseline = nil
	f.hasBaseline = false
	f.editing = false
	f.preStaged = nil
	f.updated.Fire()
}

var _ Persistent = (*Favorites)(nil)
