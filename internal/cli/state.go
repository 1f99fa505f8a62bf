package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentx-labs/seltrack/internal/config"
	"github.com/agentx-labs/seltrack/internal/registry"
	"github.com/agentx-labs/seltrack/internal/service"
	"github.com/agentx-labs/seltrack/internal/userdata"
)

var stateDoctorFix bool

func init() {
	stateDoctorCmd.Flags().BoolVar(&stateDoctorFix, "fix", false, "Repair directory and file permissions")

	stateCmd.AddCommand(stateValidateCmd)
	stateCmd.AddCommand(stateShowPathCmd)
	stateCmd.AddCommand(stateDoctorCmd)
	rootCmd.AddCommand(stateCmd)
}

var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Inspect the persisted state file",
}

var stateShowPathCmd = &cobra.Command{
	Use:   "show-path",
	Short: "Print the state file location",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.StatePath()
		if err != nil {
			return fmt.Errorf("resolving state path: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

var stateValidateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a state file against the schema and format version",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.StatePath()
		if err != nil {
			return fmt.Errorf("resolving state path: %w", err)
		}
		if len(args) == 1 {
			path = args[0]
		}
		return runStateValidate(cmd, path)
	},
}

func runStateValidate(cmd *cobra.Command, path string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "State validation: %s\n", path)

	result, err := registry.ValidateFile(path)
	if err != nil {
		fmt.Fprintf(out, "  [FAIL] %v\n", err)
		return fmt.Errorf("state validation failed: %w", err)
	}
	if !result.Valid {
		printer.Fprintf(out, "  [FAIL] %d validation issue(s):\n", len(result.Issues))
		for _, issue := range result.Issues {
			fmt.Fprintf(out, "    - %s\n", issue)
		}
		return fmt.Errorf("state file %s has %d validation issue(s)", path, len(result.Issues))
	}

	st, err := registry.ReadState(cmd.Context(), path)
	if err != nil {
		fmt.Fprintf(out, "  [FAIL] %v\n", err)
		return err
	}
	printer.Fprintf(out, "  [ OK ] format %s, %d entries\n", st.Format, len(st.Entries))
	for _, name := range []string{service.NameHistory, service.NameMostVisited, service.NameFavorites, service.NameSceneComponents} {
		if svc, ok := st.Services[name]; ok {
			printer.Fprintf(out, "         %-16s %d\n", name, len(svc.Entries))
		}
	}
	return nil
}

var stateDoctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the state directory and file permissions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.StatePath()
		if err != nil {
			return fmt.Errorf("resolving state path: %w", err)
		}
		return userdata.CheckState(cmd.OutOrStdout(), path, stateDoctorFix)
	},
}
