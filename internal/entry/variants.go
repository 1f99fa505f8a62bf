package entry

import (
	"context"

	"github.com/agentx-labs/seltrack/internal/host"
)

// variant holds the kind-specific rules of an entry.
type variant struct {
	resolve      func(e *Entry, env host.Queries) Resolution
	sameLive     func(e, other *Entry) bool
	sameDetached func(e, other *Entry) bool
	displayName  func(e *Entry) string
	ping         func(ctx context.Context, e *Entry, h host.Host)
	open         func(ctx context.Context, e *Entry, h host.Host)
}

// variants is filled in init: the actions refer back to Refresh, which
// reads the table.
var variants map[Kind]variant

func init() {
	variants = map[Kind]variant{
		KindFreeNode: {
			resolve:      resolveNode,
			sameLive:     sameObject,
			sameDetached: sameStableID,
			displayName:  containerLabel,
			ping:         pingRef,
			open:         openNode,
		},
		KindIsolatedNode: {
			resolve:      resolveIsolated,
			sameLive:     sameObject,
			sameDetached: sameIsolatedContent,
			displayName:  containerLabel,
			ping:         pingRef,
			open:         openIsolated,
		},
		KindAsset: {
			resolve:      resolveAsset,
			sameLive:     sameObject,
			sameDetached: sameStableID,
			displayName:  func(e *Entry) string { return e.name },
			ping:         pingRef,
			open:         openAsset,
		},
		KindSubObject: {
			resolve:      resolveSubObject,
			sameLive:     sameComponentType,
			sameDetached: sameStableID,
			displayName:  func(e *Entry) string { return e.typeName },
			ping:         pingComponentHolders,
			open:         openComponentScript,
		},
	}
}

func sameObject(e, other *Entry) bool {
	return e.ref == other.ref
}

func sameStableID(e, other *Entry) bool {
	return e.Kind == other.Kind && e.StableID == other.StableID
}

// sameComponentType ignores which node hosts the component.
func sameComponentType(e, other *Entry) bool {
	a, ok := e.ref.(host.Component)
	if !ok {
		return false
	}
	b, ok := other.ref.(host.Component)
	if !ok {
		return false
	}
	return a.TypeName() == b.TypeName()
}

func sameIsolatedContent(e, other *Entry) bool {
	return other.Kind == KindIsolatedNode &&
		e.assetPath == other.assetPath &&
		containerLabel(e) == containerLabel(other)
}

func containerLabel(e *Entry) string {
	if e.container.Name == "" {
		return e.name
	}
	return e.container.Name + "/" + e.name
}
