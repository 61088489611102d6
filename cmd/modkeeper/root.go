package modkeeper

import (
	"embed"

	"github.com/arthur-debert/modkeeper/cmd/modkeeper/commands/config"
	"github.com/arthur-debert/modkeeper/cmd/modkeeper/commands/display"
	"github.com/arthur-debert/modkeeper/cmd/modkeeper/commands/preset"
	"github.com/arthur-debert/modkeeper/cmd/modkeeper/commands/status"
	"github.com/arthur-debert/modkeeper/cmd/modkeeper/commands/update"
	versioncmd "github.com/arthur-debert/modkeeper/cmd/modkeeper/commands/version"
	"github.com/arthur-debert/modkeeper/internal/cli"
	"github.com/arthur-debert/modkeeper/internal/version"
	"github.com/arthur-debert/modkeeper/pkg/cobrax/topics"
	"github.com/arthur-debert/modkeeper/pkg/errors"
	"github.com/arthur-debert/modkeeper/pkg/logging"
	"github.com/arthur-debert/modkeeper/pkg/ui"
	"github.com/spf13/cobra"
)

//go:embed topics
var topicFiles embed.FS

// NewRootCmd creates the root command bound to env
func NewRootCmd(env *cli.Env) *cobra.Command {
	initTemplateFormatting()

	rootCmd := &cobra.Command{
		Use:     "modkeeper",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			env.SetupLogging()
			logger := logging.GetLogger("cli")
			logger.Debug().Str("command", cmd.CommandPath()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.SetIn(env.In)
	rootCmd.SetOut(env.Out)
	rootCmd.SetErr(env.Err)

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&env.Verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVarP(&env.ConfigFile, "config", "c", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVarP(&env.GameDir, "game-dir", "g", "", MsgFlagGameDir)
	rootCmd.PersistentFlags().StringVarP(&env.Format, "format", "f", "auto", MsgFlagFormat)
	_ = rootCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return ui.Formats(), cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: MsgGroupCore})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: MsgGroupMisc})
	rootCmd.SetCompletionCommandGroupID("misc")

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(status.NewCommand(env))
	rootCmd.AddCommand(update.NewCommand(env))
	rootCmd.AddCommand(preset.NewCommand(env))
	rootCmd.AddCommand(display.NewCommand(env))
	rootCmd.AddCommand(versioncmd.NewCommand(env))
	rootCmd.AddCommand(config.NewCommand(env))

	_, err := topics.Install(rootCmd, topicFiles, "topics", topics.Options{
		Extensions: []string{".md"},
		Renderer:   topics.NewMarkdownRenderer(),
		GroupID:    "misc",
	})
	if err != nil {
		logger := logging.GetLogger("cli")
		logger.Warn().Err(err).Msg("help topics unavailable")
	}

	return rootCmd
}
