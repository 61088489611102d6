package version

import (
	"fmt"

	"github.com/arthur-debert/modkeeper/internal/cli"
	"github.com/arthur-debert/modkeeper/internal/version"
	"github.com/spf13/cobra"
)

// Info is the machine-readable form of the version command's output
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
	Modpack string `json:"modpack,omitempty"`
}

// NewCommand creates the version command
func NewCommand(env *cli.Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "version",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := Info{Version: version.Version, Commit: version.Commit, Date: version.Date}

			// The local record is optional here; build info prints without a game dir
			if p, err := env.Panel(); err == nil {
				info.Modpack = p.LocalVersion()
			}

			if env.JSON() {
				return env.Render(info)
			}
			fmt.Fprintf(env.Out, MsgBuildFormat, info.Version, info.Commit, info.Date)
			if info.Modpack != "" {
				fmt.Fprintf(env.Out, MsgLocalFormat, info.Modpack)
			}
			return nil
		},
	}

	cmd.AddCommand(newSetCmd(env))
	return cmd
}

func newSetCmd(env *cli.Env) *cobra.Command {
	return &cobra.Command{
		Use:   "set <version>",
		Short: MsgSetShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := env.Panel()
			if err != nil {
				return err
			}
			if err := p.SetVersion(args[0]); err != nil {
				return err
			}
			return env.Message(fmt.Sprintf(MsgSetDone, p.LocalVersion()))
		},
	}
}
