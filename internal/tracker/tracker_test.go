package tracker_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	slogcontext "github.com/veqryn/slog-context"

	"github.com/agentx-labs/seltrack/internal/config"
	"github.com/agentx-labs/seltrack/internal/entry"
	"github.com/agentx-labs/seltrack/internal/host"
	"github.com/agentx-labs/seltrack/internal/host/memhost"
	"github.com/agentx-labs/seltrack/internal/registry"
	"github.com/agentx-labs/seltrack/internal/tracker"
)

type fixture struct {
	host  *memhost.Host
	main  host.Container
	reg   *registry.Registry
	prefs config.Preferences
	saves int
	err   error
	tr    *tracker.Tracker
}

func newFixture() *fixture {
	h := memhost.New()
	f := &fixture{
		host:  h,
		main:  h.AddContainer("Main", "Scenes/Main.scene"),
		reg:   registry.New(),
		prefs: config.DefaultPreferences(),
	}
	f.tr = tracker.New(h, f.reg,
		tracker.WithPreferences(func() config.Preferences { return f.prefs }),
		tracker.WithSaveHook(func(context.Context) error {
			f.saves++
			return f.err
		}),
	)
	return f
}

func names(entries []*entry.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.DisplayName()
	}
	return out
}

func TestOnObjectSelected(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	player := f.host.AddNode(f.main, "Player", nil)
	f.host.AddComponent(player, "Transform", false)
	f.host.AddComponent(player, "PlayerController", true)

	e := f.tr.OnObjectSelected(ctx, player)
	require.NotNil(t, e)

	assert.Equal(t, []string{"Main/Player"}, names(f.reg.History.Entries()))
	assert.Equal(t, []string{"Main/Player"}, names(f.reg.MostVisited.Entries()))
	assert.Equal(t, []string{"Transform", "PlayerController"}, names(f.reg.ComponentList.Entries()))
}

func TestOnObjectSelected_ComponentListFollowsSelection(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	a := f.host.AddNode(f.main, "A", nil)
	f.host.AddComponent(a, "Rigidbody", false)
	asset := f.host.AddAsset("Assets/Red.mat", "Red", host.IDImportedAsset)

	updates := 0
	f.reg.ComponentList.OnUpdated().Subscribe(func() { updates++ })

	f.tr.OnObjectSelected(ctx, a)
	require.Len(t, f.reg.ComponentList.Entries(), 1)

	f.tr.OnObjectSelected(ctx, asset)
	assert.Empty(t, f.reg.ComponentList.Entries())
	assert.Equal(t, 2, updates)
}

func TestOnObjectSelected_Gating(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.prefs.RecordNodes = false
	n := f.host.AddNode(f.main, "Player", nil)
	asset := f.host.AddAsset("Assets/Red.mat", "Red", host.IDImportedAsset)

	assert.Nil(t, f.tr.OnObjectSelected(ctx, nil))
	assert.Nil(t, f.tr.OnObjectSelected(ctx, n), "nodes are not recorded")
	assert.NotNil(t, f.tr.OnObjectSelected(ctx, asset), "assets still are")

	f.host.Destroy(n)
	f.prefs.RecordNodes = true
	assert.Nil(t, f.tr.OnObjectSelected(ctx, n), "dead objects are untrackable")

	assert.Equal(t, []string{"Red"}, names(f.reg.History.Entries()))
}

func TestOnContainerOpened(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	a := f.host.AddNode(f.main, "A", nil)
	b := f.host.AddNode(f.main, "B", a)
	f.host.AddComponent(a, "Transform", false)
	f.host.AddComponent(a, "Rigidbody", false)
	f.host.AddComponent(b, "Transform", false)
	f.host.AddComponent(b, "Enemy", true)

	updates := 0
	f.reg.SceneComponents.OnUpdated().Subscribe(func() { updates++ })

	require.NoError(t, f.tr.OnContainerOpened(ctx, f.main))

	assert.Equal(t, []string{"Transform", "Rigidbody", "Enemy"}, names(f.reg.SceneComponents.Entries()))
	assert.Equal(t, 1, updates)
	assert.Equal(t, 1, f.saves)

	// Rescanning adds nothing new.
	require.NoError(t, f.tr.RefreshSceneComponents(ctx))
	assert.Len(t, f.reg.SceneComponents.Entries(), 3)
	assert.Equal(t, 2, f.saves)
}

func TestOnContainerOpened_UnloadedIsSkipped(t *testing.T) {
	f := newFixture()
	n := f.host.AddNode(f.main, "A", nil)
	f.host.AddComponent(n, "Transform", false)
	f.host.SetLoaded(f.main, false)

	var buf bytes.Buffer
	ctx := slogcontext.NewCtx(context.Background(), slog.New(slog.NewTextHandler(&buf, nil)))
	require.NoError(t, f.tr.OnContainerOpened(ctx, f.main))

	assert.Empty(t, f.reg.SceneComponents.Entries())
	assert.Zero(t, f.saves)
	assert.Contains(t, buf.String(), "not loaded")
}

func TestOnContainerOpened_SaveError(t *testing.T) {
	f := newFixture()
	f.err = errors.New("disk full")

	err := f.tr.OnContainerOpened(context.Background(), f.main)
	require.Error(t, err)
	assert.ErrorIs(t, err, f.err)
}

func TestPreviousNext(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	a := f.host.AddNode(f.main, "A", nil)
	b := f.host.AddNode(f.main, "B", nil)
	c := f.host.AddNode(f.main, "C", nil)
	for _, n := range []host.Object{a, b, c} {
		f.tr.OnObjectSelected(ctx, n)
	}

	assert.Equal(t, "Main/B", f.tr.Previous(ctx).DisplayName())
	assert.Equal(t, "Main/A", f.tr.Previous(ctx).DisplayName())
	assert.Equal(t, "Main/A", f.tr.Previous(ctx).DisplayName(), "stops at the oldest")
	assert.Equal(t, "Main/B", f.tr.Next(ctx).DisplayName())
	assert.Equal(t, []host.Object{b, a, a, b}, f.host.Selected())

	// The host echoes the selection back; recording the entry under the
	// cursor keeps the cursor in place.
	f.tr.OnObjectSelected(ctx, b)
	assert.Equal(t, 1, f.reg.History.CurrentSelectionIndex())
}

func TestPrevious_PingsGoneEntryNowhere(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	a := f.host.AddNode(f.main, "A", nil)
	b := f.host.AddNode(f.main, "B", nil)
	f.tr.OnObjectSelected(ctx, a)
	f.tr.OnObjectSelected(ctx, b)
	f.host.Destroy(a)

	e := f.tr.Previous(ctx)
	require.NotNil(t, e)
	assert.Empty(t, f.host.Selected())
	assert.Empty(t, f.host.Pinged())
}

func TestPrevious_EmptyHistory(t *testing.T) {
	f := newFixture()
	assert.Nil(t, f.tr.Previous(context.Background()))
	assert.Nil(t, f.tr.Next(context.Background()))
}
