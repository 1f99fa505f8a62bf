package cli

import (
	"context"
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"
	slogcontext "github.com/veqryn/slog-context"

	"github.com/agentx-labs/seltrack/internal/config"
	"github.com/agentx-labs/seltrack/internal/entry"
	"github.com/agentx-labs/seltrack/internal/host"
	"github.com/agentx-labs/seltrack/internal/host/memhost"
	"github.com/agentx-labs/seltrack/internal/interact"
	"github.com/agentx-labs/seltrack/internal/registry"
	"github.com/agentx-labs/seltrack/internal/service"
	"github.com/agentx-labs/seltrack/internal/tracker"
)

var demoSave bool

func init() {
	demoCmd.Flags().BoolVar(&demoSave, "save", false, "Write the resulting state to the state file")
	rootCmd.AddCommand(demoCmd)
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a scripted session against an in-memory host",
	Long: `Run a scripted editing session against an in-memory host: open a scene,
select a few objects and assets, favorite one, navigate the history and
double-click an entry. The resulting lists are printed, and with --save
written to the state file.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.StatePath()
		if err != nil {
			return fmt.Errorf("resolving state path: %w", err)
		}
		reg := registry.New()
		save := func(ctx context.Context) error {
			if !demoSave {
				return nil
			}
			return reg.Save(ctx, path)
		}

		if err := runDemo(cmd.Context(), cmd.OutOrStdout(), reg, save); err != nil {
			return err
		}
		if demoSave {
			if err := reg.Save(cmd.Context(), path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\nSaved state to %s\n", path)
		}
		return nil
	},
}

// runDemo drives a tracker through a fixed session and prints every list.
func runDemo(ctx context.Context, w io.Writer, reg *registry.Registry, save tracker.SaveFunc) error {
	logger := slogcontext.FromCtx(ctx)
	mem := memhost.New()
	h := host.WithThumbnailCache(mem, 0, config.ThumbnailTTL())
	tr := tracker.New(h, reg,
		tracker.WithPreferences(config.Current),
		tracker.WithSaveHook(save),
	)

	main := mem.AddContainer("Main", "Scenes/Main.scene")
	level := mem.AddContainer("Level2", "Scenes/Level2.scene")
	mem.SetLoaded(level, false)

	player := mem.AddNode(main, "Player", nil)
	mem.AddComponent(player, "Transform", false)
	mem.AddComponent(player, "PlayerController", true)
	camera := mem.AddNode(main, "Camera", player)
	mem.AddComponent(camera, "Transform", false)
	mem.AddComponent(camera, "Camera", false)
	boss := mem.AddNode(level, "Boss", nil)
	audio := mem.AddNode(mem.PersistentContainer(), "AudioManager", nil)
	mat := mem.AddAsset("Assets/Materials/Red.mat", "Red", host.IDImportedAsset)

	if err := tr.OnContainerOpened(ctx, main); err != nil {
		return err
	}
	for _, obj := range []host.Object{player, mat, camera, audio, player, boss} {
		tr.OnObjectSelected(ctx, obj)
	}

	fav := reg.Favorites
	fav.OpenEditor()
	fav.RecordFavorite(reg.History.Entries()[0], true)
	fav.CloseEditor()

	if e := tr.Previous(ctx); e != nil {
		logger.Info("jumped back", "entry", e.DisplayName())
	}

	// Double-click the camera row, then let the host echo the resulting
	// selection back.
	entries := reg.History.Entries()
	i := slices.IndexFunc(entries, func(e *entry.Entry) bool { return e.Ref() == host.Object(camera) })
	if i >= 0 {
		el := interact.NewElement(h, reg.History, i, entries[i], interact.WithPreferences(config.Current))
		el.Click(ctx, 2)
		el.Close()
	}
	if sel := mem.Selected(); len(sel) > 0 {
		tr.OnObjectSelected(ctx, sel[len(sel)-1])
	}

	for _, svc := range reg.Services() {
		fmt.Fprintf(w, "\n== %s ==\n", svc.Name())
		views := viewEntries(svc.Entries(), h, nil, svc.CurrentSelectionIndex())
		if svc.Name() == service.NameMostVisited {
			views = nil
			for i, r := range reg.MostVisited.Ranked() {
				v := newView(i, r.Entry, h)
				v.Count = r.Count
				views = append(views, v)
			}
		}
		if err := printViews(w, views, false, svc.Name() == service.NameMostVisited); err != nil {
			return err
		}
	}
	return nil
}
