package host

import (
	"fmt"
	"strconv"
	"strings"
)

// IDKind classifies what a StableID points at.
type IDKind int

const (
	IDNone IDKind = iota
	IDImportedAsset
	IDSceneObject
	IDSourceAsset
)

// String returns the lowercase name of the kind.
func (k IDKind) String() string {
	switch k {
	case IDImportedAsset:
		return "imported-asset"
	case IDSceneObject:
		return "scene-object"
	case IDSourceAsset:
		return "source-asset"
	default:
		return "none"
	}
}

// IsAsset reports whether the identifier names a persisted asset or a
// persisted template asset.
func (k IDKind) IsAsset() bool {
	return k == IDImportedAsset || k == IDSourceAsset
}

const stableIDPrefix = "sid1-"

// StableID identifies an object slot within its container (scene, asset
// database or isolated editing context) independently of the live handle.
// Two handles with equal StableIDs are only candidates for being the same
// object: container-scoped identifiers are reused across transient
// execution sessions.
type StableID struct {
	Kind      IDKind
	Container string
	Object    uint64
	Template  uint64
}

// IsZero reports whether the identifier is unset.
func (id StableID) IsZero() bool {
	return id == StableID{}
}

// String encodes the identifier as sid1-<kind>-<container>-<object>-<template>.
func (id StableID) String() string {
	return fmt.Sprintf("%s%d-%s-%d-%d", stableIDPrefix, int(id.Kind), id.Container, id.Object, id.Template)
}

// ParseStableID decodes the form produced by StableID.String. The container
// part may itself contain dashes.
func ParseStableID(s string) (StableID, error) {
	rest, ok := strings.CutPrefix(s, stableIDPrefix)
	if !ok {
		return StableID{}, fmt.Errorf("parsing stable id %q: missing %q prefix", s, stableIDPrefix)
	}

	kindPart, rest, ok := strings.Cut(rest, "-")
	if !ok {
		return StableID{}, fmt.Errorf("parsing stable id %q: truncated", s)
	}
	kind, err := strconv.Atoi(kindPart)
	if err != nil || kind < int(IDNone) || kind > int(IDSourceAsset) {
		return StableID{}, fmt.Errorf("parsing stable id %q: invalid kind %q", s, kindPart)
	}

	i := strings.LastIndex(rest, "-")
	if i < 0 {
		return StableID{}, fmt.Errorf("parsing stable id %q: truncated", s)
	}
	template, err := strconv.ParseUint(rest[i+1:], 10, 64)
	if err != nil {
		return StableID{}, fmt.Errorf("parsing stable id %q: invalid template part: %w", s, err)
	}
	rest = rest[:i]

	i = strings.LastIndex(rest, "-")
	if i < 0 {
		return StableID{}, fmt.Errorf("parsing stable id %q: truncated", s)
	}
	object, err := strconv.ParseUint(rest[i+1:], 10, 64)
	if err != nil {
		return StableID{}, fmt.Errorf("parsing stable id %q: invalid object part: %w", s, err)
	}

	return StableID{
		Kind:      IDKind(kind),
		Container: rest[:i],
		Object:    object,
		Template:  template,
	}, nil
}
