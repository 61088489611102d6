package preset

import (
	"fmt"

	"github.com/arthur-debert/modkeeper/internal/cli"
	"github.com/arthur-debert/modkeeper/pkg/errors"
	"github.com/arthur-debert/modkeeper/pkg/panel"
	"github.com/spf13/cobra"
)

// NewCommand creates the preset command and its subcommands
func NewCommand(env *cli.Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "preset",
		Aliases: []string{"presets", "enb"},
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "core",
	}

	cmd.AddCommand(newListCmd(env))
	cmd.AddCommand(newInstallCmd(env))
	cmd.AddCommand(newApplyCmd(env))
	cmd.AddCommand(newRemoveCmd(env))
	return cmd
}

func newListCmd(env *cli.Env) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   MsgListShort,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := env.Panel()
			if err != nil {
				return err
			}
			list, err := p.Presets()
			if err != nil {
				return err
			}
			return env.Render(list)
		},
	}
}

func newInstallCmd(env *cli.Env) *cobra.Command {
	var (
		name      string
		overwrite bool
		yes       bool
	)

	cmd := &cobra.Command{
		Use:   "install <dir>",
		Short: MsgInstallShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := env.Panel()
			if err != nil {
				return err
			}

			installed, err := p.InstallPreset(args[0], name, overwrite)
			if errors.IsErrorCode(err, errors.ErrAlreadyExists) && !overwrite && !yes && env.Interactive() {
				ok, cerr := env.Confirm(fmt.Sprintf(MsgConfirmOverwrite, installed), false)
				if cerr != nil {
					return cerr
				}
				if !ok {
					return env.Message(MsgCancelled)
				}
				installed, err = p.InstallPreset(args[0], name, true)
			}
			if err != nil {
				return err
			}
			return env.Message(fmt.Sprintf(MsgInstalled, installed))
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", MsgFlagName)
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, MsgFlagOverwrite)
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, MsgFlagYes)
	return cmd
}

func newApplyCmd(env *cli.Env) *cobra.Command {
	var staged bool

	cmd := &cobra.Command{
		Use:               "apply <name>",
		Short:             MsgApplyShort,
		Long:              MsgApplyLong,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: presetNames(env),
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []panel.Option
			if cmd.Flags().Changed("staged") {
				opts = append(opts, panel.WithStaging(staged))
			}

			p, err := env.Panel(opts...)
			if err != nil {
				return err
			}
			res, err := p.ApplyPreset(args[0])
			if err != nil {
				if res != nil && res.Partial {
					_ = env.Render(res)
				}
				return err
			}
			return env.Render(res)
		},
	}

	cmd.Flags().BoolVar(&staged, "staged", false, MsgFlagStaged)
	return cmd
}

func newRemoveCmd(env *cli.Env) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "remove",
		Short: MsgRemoveShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := env.Panel()
			if err != nil {
				return err
			}

			if !yes && env.Interactive() {
				ok, err := env.Confirm(fmt.Sprintf(MsgConfirmRemove, p.Config().GameDir()), false)
				if err != nil {
					return err
				}
				if !ok {
					return env.Message(MsgCancelled)
				}
			}

			res, err := p.RemovePreset()
			if err != nil {
				if res != nil && res.Partial {
					_ = env.Render(res)
				}
				return err
			}
			return env.Render(res)
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, MsgFlagYes)
	return cmd
}

// presetNames completes preset names from the backup root
func presetNames(env *cli.Env) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		p, err := env.Panel()
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		names, err := p.Registry().List()
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	}
}
