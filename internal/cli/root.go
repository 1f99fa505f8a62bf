package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	slogcontext "github.com/veqryn/slog-context"

	"github.com/agentx-labs/seltrack/internal/branding"
	"github.com/agentx-labs/seltrack/internal/config"
	"github.com/agentx-labs/seltrack/internal/logging"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` keeps the history, most-visited ranking, favorites and
component lists recorded while working in an authoring tool, and lets you
inspect and edit the persisted state from the command line.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(); err != nil {
			return err
		}
		logger, err := logging.BaseLogger(cmd)
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		cmd.SetContext(slogcontext.NewCtx(ctx, logger))
		return nil
	},
}

func init() {
	logging.RegisterFlags(rootCmd)
	rootCmd.PersistentFlags().String("state-file", "", "state file to use instead of the configured one")
	if err := viper.BindPFlag(config.KeyStateFile, rootCmd.PersistentFlags().Lookup("state-file")); err != nil {
		panic(fmt.Sprintf("binding --state-file: %v", err))
	}
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	err := rootCmd.ExecuteContext(context.Background())
	if err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", err)
	}
	return err
}
