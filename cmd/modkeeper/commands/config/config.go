package config

import (
	"fmt"

	"github.com/arthur-debert/modkeeper/internal/cli"
	"github.com/arthur-debert/modkeeper/pkg/config"
	"github.com/arthur-debert/modkeeper/pkg/errors"
	"github.com/arthur-debert/modkeeper/pkg/filesystem"
	"github.com/arthur-debert/modkeeper/pkg/paths"
	"github.com/spf13/cobra"
)

// NewCommand creates the config command and its subcommands
func NewCommand(env *cli.Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgShort,
		Example: MsgExample,
		GroupID: "misc",
	}

	cmd.AddCommand(newInitCmd(env))
	cmd.AddCommand(newPathCmd(env))
	return cmd
}

func configPath(env *cli.Env) string {
	if env.ConfigFile != "" {
		return paths.ExpandHome(env.ConfigFile)
	}
	return paths.ConfigFile()
}

func newInitCmd(env *cli.Env) *cobra.Command {
	var write, force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: MsgInitShort,
		Long:  MsgInitLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			content := config.GenerateConfigContent()
			if !write {
				_, err := fmt.Fprint(env.Out, content)
				return err
			}

			dst := configPath(env)
			exists, err := filesystem.Exists(env.Fs, dst)
			if err != nil {
				return err
			}
			if exists && !force {
				return errors.Newf(errors.ErrAlreadyExists, "%s already exists; use --force to replace it", dst).
					WithDetail(errors.DetailPath, dst)
			}

			if err := filesystem.WriteFileAtomic(env.Fs, dst, []byte(content), 0644); err != nil {
				return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", dst).
					WithDetail(errors.DetailPath, dst)
			}
			return env.Message(fmt.Sprintf(MsgWritten, dst))
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)
	cmd.Flags().BoolVar(&force, "force", false, MsgFlagForce)
	return cmd
}

func newPathCmd(env *cli.Env) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: MsgPathShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(env.Out, configPath(env))
			return err
		},
	}
}
