package cli

import (
	"github.com/spf13/cobra"
)

const appName = "anima-tools"

// Execute runs the root command with os.Args.
func Execute() error {
	return newRootCommand().Execute()
}

func newRootCommand() *cobra.Command {
	var configFlag string
	var assetsFlag string
	var levelFlag string
	var watchFlag bool

	ctx := newCommandContext(&configFlag, &assetsFlag, &levelFlag, &watchFlag)

	rootCmd := &cobra.Command{
		Use:           appName,
		Short:         "Batch material tools for anima scenes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx.bindLogOutput(cmd)
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&assetsFlag, "assets", "", "Project directory (overrides paths.assets_dir)")
	rootCmd.PersistentFlags().StringVar(&levelFlag, "log-level", "", "Log level (overrides logging.level)")
	rootCmd.PersistentFlags().BoolVar(&watchFlag, "watch", false, "Watch the project for external asset changes (sets paths.watch_assets)")

	rootCmd.AddCommand(newRipCommand(ctx))
	rootCmd.AddCommand(newReplaceCommand(ctx))
	rootCmd.AddCommand(newGatherCommand(ctx))
	rootCmd.AddCommand(newNodesCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
