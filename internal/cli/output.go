package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/agentx-labs/seltrack/internal/entry"
	"github.com/agentx-labs/seltrack/internal/filter"
	"github.com/agentx-labs/seltrack/internal/host"
)

var printer = message.NewPrinter(language.English)

// entryView is the listed form of an entry. Index is the entry's position
// in the unfiltered list, as accepted by the remove commands.
type entryView struct {
	Index    int    `json:"index"`
	ID       string `json:"id"`
	Kind     string `json:"kind"`
	Name     string `json:"name"`
	State    string `json:"state"`
	Favorite bool   `json:"favorite,omitempty"`
	Count    int    `json:"count,omitempty"`
	Current  bool   `json:"current,omitempty"`
}

// listFlags are the filter and output flags shared by list commands.
type listFlags struct {
	search string
	glob   string
	states []string
	json   bool
}

func (f *listFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.search, "search", "", "Keep entries whose name contains any of the space-separated keywords")
	fs.StringVar(&f.glob, "glob", "", "Keep entries whose name matches the glob pattern")
	fs.StringSliceVar(&f.states, "state", nil, "Keep entries in the given states (loaded, unloaded, deleted, ...)")
	fs.BoolVar(&f.json, "json", false, "Output in JSON format")
}

func (f *listFlags) query() (*filter.Query, error) {
	return filter.New(f.search, filter.WithGlob(f.glob), filter.WithStates(f.states...))
}

// viewEntries builds views for entries that pass q, keeping their original
// indexes. cursor is the list's current selection index, or -1.
func viewEntries(entries []*entry.Entry, env host.Queries, q *filter.Query, cursor int) []entryView {
	var out []entryView
	for i, e := range entries {
		if q != nil && !q.Match(e, env) {
			continue
		}
		v := newView(i, e, env)
		v.Current = i == cursor
		out = append(out, v)
	}
	return out
}

func newView(i int, e *entry.Entry, env host.Queries) entryView {
	return entryView{
		Index:    i,
		ID:       e.ID.String(),
		Kind:     e.Kind.String(),
		Name:     e.DisplayName(),
		State:    e.State(env).String(),
		Favorite: e.IsFavorite(),
	}
}

func printViews(w io.Writer, views []entryView, asJSON, withCount bool) error {
	if asJSON {
		if views == nil {
			views = []entryView{}
		}
		data, err := json.MarshalIndent(views, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling entries: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}

	if len(views) == 0 {
		fmt.Fprintln(w, "No entries.")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	header := table.Row{"#", "Name", "Kind", "State", "Fav"}
	if withCount {
		header = append(header, "Count")
	}
	t.AppendHeader(header)
	for _, v := range views {
		index := strconv.Itoa(v.Index)
		if v.Current {
			index = ">" + index
		}
		fav := ""
		if v.Favorite {
			fav = "*"
		}
		row := table.Row{index, v.Name, v.Kind, v.State, fav}
		if withCount {
			row = append(row, v.Count)
		}
		t.AppendRow(row)
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
	})
	style := table.StyleLight
	style.Options.DrawBorder = false
	t.SetStyle(style)
	t.Render()

	printer.Fprintf(w, "%d entries\n", len(views))
	return nil
}

// pickIndex parses a display index argument for a list of n entries.
func pickIndex(arg string, n int) (int, error) {
	i, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid index %q: %w", arg, err)
	}
	if i < 0 || i >= n {
		return 0, fmt.Errorf("index %d out of range (%d entries)", i, n)
	}
	return i, nil
}
