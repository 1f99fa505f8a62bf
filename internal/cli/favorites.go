package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var favoritesList listFlags

func init() {
	favoritesList.register(favoritesListCmd)
	favoritesCmd.AddCommand(favoritesListCmd)
	favoritesCmd.AddCommand(favoritesAddCmd)
	favoritesCmd.AddCommand(favoritesRemoveCmd)
	rootCmd.AddCommand(favoritesCmd)
}

var favoritesCmd = &cobra.Command{
	Use:     "favorites",
	Aliases: []string{"fav"},
	Short:   "Manage favorite entries",
}

var favoritesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List favorites, most recently added first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		q, err := favoritesList.query()
		if err != nil {
			return err
		}
		views := viewEntries(s.reg.Favorites.Entries(), s.host, q, -1)
		return printViews(cmd.OutOrStdout(), views, favoritesList.json, false)
	},
}

var favoritesAddCmd = &cobra.Command{
	Use:   "add <history-index>",
	Short: "Mark the history entry at the given index as a favorite",
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
		e := entries[i]
		if e.IsFavorite() {
			fmt.Fprintf(cmd.OutOrStdout(), "%s is already a favorite\n", e.DisplayName())
			return nil
		}

		fav := s.reg.Favorites
		fav.OpenEditor()
		fav.RecordFavorite(e, true)
		fav.CloseEditor()
		if err := s.save(cmd); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Added %s to favorites\n", e.DisplayName())
		return nil
	},
}

var favoritesRemoveCmd = &cobra.Command{
	Use:   "remove <index>",
	Short: "Remove the favorite at the given list index",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		entries := s.reg.Favorites.Entries()
		i, err := pickIndex(args[0], len(entries))
		if err != nil {
			return err
		}
		s.reg.Favorites.Remove(entries[i])
		if err := s.save(cmd); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %s from favorites\n", entries[i].DisplayName())
		return nil
	},
}
