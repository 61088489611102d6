package status

import (
	"github.com/arthur-debert/modkeeper/internal/cli"
	"github.com/spf13/cobra"
)

// NewCommand creates the status command
func NewCommand(env *cli.Env) *cobra.Command {
	return &cobra.Command{
		Use:     "status",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := env.Panel()
			if err != nil {
				return err
			}
			return env.Render(p.Status(cmd.Context()))
		},
	}
}
