package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var mostVisitedList listFlags

func init() {
	mostVisitedList.register(mostVisitedListCmd)
	mostVisitedCmd.AddCommand(mostVisitedListCmd)
	mostVisitedCmd.AddCommand(mostVisitedRemoveCmd)
	rootCmd.AddCommand(mostVisitedCmd)
}

var mostVisitedCmd = &cobra.Command{
	Use:     "most-visited",
	Aliases: []string{"mv"},
	Short:   "Inspect the most-visited ranking",
}

var mostVisitedListCmd = &cobra.Command{
	Use:   "list",
	Short: "List entries by how often they were selected recently",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		q, err := mostVisitedList.query()
		if err != nil {
			return err
		}

		var views []entryView
		for i, r := range s.reg.MostVisited.Ranked() {
			if !q.Match(r.Entry, s.host) {
				continue
			}
			v := newView(i, r.Entry, s.host)
			v.Count = r.Count
			views = append(views, v)
		}
		return printViews(cmd.OutOrStdout(), views, mostVisitedList.json, true)
	},
}

var mostVisitedRemoveCmd = &cobra.Command{
	Use:   "remove <index>",
	Short: "Drop every observation of the entry at the given rank",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		entries := s.reg.MostVisited.Entries()
		i, err := pickIndex(args[0], len(entries))
		if err != nil {
			return err
		}
		s.reg.MostVisited.Remove(entries[i])
		if err := s.save(cmd); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", entries[i].DisplayName())
		return nil
	},
}
