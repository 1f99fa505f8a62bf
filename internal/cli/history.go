package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentx-labs/seltrack/internal/config"
	"github.com/agentx-labs/seltrack/internal/entry"
	"github.com/agentx-labs/seltrack/internal/filter"
	"github.com/agentx-labs/seltrack/internal/tracker"
)

var (
	historyList        listFlags
	historyClearStates []string
)

func init() {
	historyList.register(historyListCmd)
	historyClearCmd.Flags().StringSliceVar(&historyClearStates, "state", nil, "Only remove entries in the given states, e.g. deleted,destroyed")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyClearCmd)
	historyCmd.AddCommand(historyRemoveCmd)
	historyCmd.AddCommand(historyPrevCmd)
	historyCmd.AddCommand(historyNextCmd)
	rootCmd.AddCommand(historyCmd)
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect and edit the selection history",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded selections, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		q, err := historyList.query()
		if err != nil {
			return err
		}
		h := s.reg.History
		views := viewEntries(h.Entries(), s.host, q, h.CurrentSelectionIndex())
		return printViews(cmd.OutOrStdout(), views, historyList.json, false)
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every selection, or those in the given states",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		h := s.reg.History
		before := h.Len()

		if len(historyClearStates) == 0 {
			h.RemoveAll()
		} else {
			states := make([]entry.RefState, 0, len(historyClearStates))
			for _, name := range historyClearStates {
				st, err := entry.ParseRefState(name)
				if err != nil {
					return err
				}
				states = append(states, st)
			}
			h.RemoveFunc(filter.InState(s.host, states...))
		}

		if err := s.save(cmd); err != nil {
			return err
		}
		printer.Fprintf(cmd.OutOrStdout(), "Removed %d of %d entries\n", before-h.Len(), before)
		return nil
	},
}

var historyRemoveCmd = &cobra.Command{
	Use:   "remove <index>",
	Short: "Remove the selection at the given list index",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		entries := s.reg.History.Entries()
		i, err := pickIndex(args[0], len(entries))
		if err != nil {
			return err
		}
		s.reg.History.Remove(entries[i])
		if err := s.save(cmd); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", entries[i].DisplayName())
		return nil
	},
}

var historyPrevCmd = &cobra.Command{
	Use:   "prev",
	Short: "Show the selection a backward jump leads to",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runJump(cmd, (*tracker.Tracker).Previous)
	},
}

var historyNextCmd = &cobra.Command{
	Use:   "next",
	Short: "Show the selection a forward jump leads to",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runJump(cmd, (*tracker.Tracker).Next)
	},
}

func runJump(cmd *cobra.Command, jump func(*tracker.Tracker, context.Context) *entry.Entry) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	tr := tracker.New(s.host, s.reg, tracker.WithPreferences(config.Current))
	e := jump(tr, cmd.Context())
	if e == nil {
		fmt.Fprintln(cmd.OutOrStdout(), "History is empty.")
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", e.DisplayName(), e.State(s.host))
	return nil
}
