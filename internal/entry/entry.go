// Package entry models one tracked object: a stable identity, a possibly
// absent live handle, cached display information and a lifecycle state that
// is resolved lazily against the host.
//
// Entries come in four kinds (free nodes, nodes inside an isolated
// content-editing context, persisted assets and sub-objects attached to a
// node). Kind-specific behaviour lives in a single dispatch table rather than
// in per-kind types, so every operation handles every kind in one place.
package entry

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/agentx-labs/seltrack/internal/host"
)

// Kind tags the entry variant.
type Kind uint8

const (
	KindFreeNode Kind = iota
	KindIsolatedNode
	KindAsset
	KindSubObject
)

var kindNames = [...]string{
	KindFreeNode:     "node",
	KindIsolatedNode: "isolated-node",
	KindAsset:        "asset",
	KindSubObject:    "component",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, error) {
	for i, name := range kindNames {
		if name == s {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown entry kind %q", s)
}

// Entry is the state-bearing record for one tracked object.
type Entry struct {
	// ID identifies the record itself across save/load cycles. It plays no
	// part in equality.
	ID       uuid.UUID
	Kind     Kind
	StableID host.StableID

	ref       host.Object
	name      string
	icon      host.Icon
	favorite  bool
	container host.Container
	transient bool
	assetPath string
	typeName  string
}

// Ref returns the live handle, or nil once the host no longer owns it.
func (e *Entry) Ref() host.Object {
	if !host.Live(e.ref) {
		return nil
	}
	return e.ref
}

// Name is the object name captured at creation or last resolution.
func (e *Entry) Name() string { return e.name }

// Icon is the thumbnail captured at creation or last resolution.
func (e *Entry) Icon() host.Icon { return e.icon }

func (e *Entry) IsFavorite() bool          { return e.favorite }
func (e *Entry) SetFavorite(v bool)        { e.favorite = v }
func (e *Entry) Container() host.Container { return e.container }

// Transient reports whether the object was created during a transient
// execution session.
func (e *Entry) Transient() bool { return e.transient }

// AssetPath is the backing asset for assets and isolated-context nodes.
func (e *Entry) AssetPath() string { return e.assetPath }

// TypeName is the runtime type of a sub-object entry.
func (e *Entry) TypeName() string { return e.typeName }

// DisplayName is the label shown for the entry. It never needs the live
// handle.
func (e *Entry) DisplayName() string {
	return e.variant().displayName(e)
}

// Equal reports whether e and other track the same logical object.
//
// Two live entries are equal when they hold the same object (sub-objects:
// the same runtime type, so all components of one type are interchangeable).
// A live entry never equals a detached one, even with the same StableID,
// because that id may denote another instance across session boundaries.
// Two detached entries compare by StableID, or for isolated-context nodes by
// asset path and label.
func (e *Entry) Equal(other *Entry) bool {
	if e == nil || other == nil {
		return false
	}
	if e == other {
		return true
	}

	live, otherLive := host.Live(e.ref), host.Live(other.ref)
	if live != otherLive {
		return false
	}
	v := e.variant()
	if live {
		return v.sameLive(e, other)
	}
	return v.sameDetached(e, other)
}

func (e *Entry) String() string {
	return fmt.Sprintf("%s %q (%s)", e.Kind, e.DisplayName(), e.StableID)
}

func (e *Entry) variant() variant {
	if v, ok := variants[e.Kind]; ok {
		return v
	}
	return variants[KindFreeNode]
}

// capture caches everything displayable about obj so it survives the
// handle going away.
func (e *Entry) capture(env host.Queries, obj host.Object) {
	e.ref = obj
	e.name = obj.Name()
	e.icon = env.Thumbnail(e.StableID, obj)
}
