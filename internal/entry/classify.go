package entry

import (
	"github.com/google/uuid"

	"github.com/agentx-labs/seltrack/internal/host"
)

// Classify builds an entry for a freshly selected object. It returns nil
// for objects that cannot be tracked; callers treat that as a no-op.
//
// Rules, first match wins:
//  1. a node with a scene-object identifier (template instances included)
//     is a free node;
//  2. a node in the persistent container is a free node;
//  3. a node seen while an isolated editing context is open is isolated
//     content of that context's asset;
//  4. anything identified as a persisted asset or template asset is an
//     asset;
//  5. a component attached to a node is a sub-object.
func Classify(env host.Queries, obj host.Object) *Entry {
	if !host.Live(obj) {
		return nil
	}
	id := env.ResolveStableID(obj)

	if n, ok := obj.(host.Node); ok {
		if id.Kind == host.IDSceneObject {
			return newNode(env, n, id)
		}
		if n.Container().Same(env.PersistentContainer()) {
			return newNode(env, n, id)
		}
		if ic, open := env.IsolatedContext(); open {
			return newIsolated(env, n, id, ic)
		}
	}

	if id.Kind.IsAsset() {
		return newAsset(env, obj, id)
	}

	if c, ok := obj.(host.Component); ok && host.Live(c.Owner()) {
		return newSubObject(env, c, id)
	}
	return nil
}

func newEntry(env host.Queries, kind Kind, obj host.Object, id host.StableID) *Entry {
	e := &Entry{
		ID:       uuid.New(),
		Kind:     kind,
		StableID: id,
	}
	e.capture(env, obj)
	return e
}

func newNode(env host.Queries, n host.Node, id host.StableID) *Entry {
	e := newEntry(env, KindFreeNode, n, id)
	e.container = n.Container()
	e.transient = env.InTransientSession()
	return e
}

func newIsolated(env host.Queries, n host.Node, id host.StableID, ic host.IsolatedContext) *Entry {
	e := newEntry(env, KindIsolatedNode, n, id)
	e.container = ic.Container
	e.assetPath = ic.AssetPath
	e.transient = env.InTransientSession()
	return e
}

func newAsset(env host.Queries, obj host.Object, id host.StableID) *Entry {
	e := newEntry(env, KindAsset, obj, id)
	e.assetPath = env.AssetPath(obj)
	return e
}

func newSubObject(env host.Queries, c host.Component, id host.StableID) *Entry {
	e := newEntry(env, KindSubObject, c, id)
	e.typeName = c.TypeName()
	e.container = c.Owner().Container()
	return e
}
