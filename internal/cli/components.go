package cli

import (
	"github.com/spf13/cobra"
)

var componentsList listFlags

func init() {
	componentsList.register(componentsListCmd)
	componentsCmd.AddCommand(componentsListCmd)
	rootCmd.AddCommand(componentsCmd)
}

var componentsCmd = &cobra.Command{
	Use:   "components",
	Short: "Inspect component types seen in opened containers",
}

var componentsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List one entry per component type, in discovery order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		q, err := componentsList.query()
		if err != nil {
			return err
		}
		views := viewEntries(s.reg.SceneComponents.Entries(), s.host, q, -1)
		return printViews(cmd.OutOrStdout(), views, componentsList.json, false)
	},
}
