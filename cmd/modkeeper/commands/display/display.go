package display

import (
	"github.com/arthur-debert/modkeeper/internal/cli"
	"github.com/arthur-debert/modkeeper/pkg/displaytweaks"
	"github.com/arthur-debert/modkeeper/pkg/errors"
	"github.com/spf13/cobra"
)

// NewCommand creates the display command and its subcommands
func NewCommand(env *cli.Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "display",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "core",
	}

	cmd.AddCommand(newShowCmd(env))
	cmd.AddCommand(newSetCmd(env))
	return cmd
}

func newShowCmd(env *cli.Env) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: MsgShowShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := env.Panel()
			if err != nil {
				return err
			}
			s, err := p.DisplaySettings()
			if err != nil {
				return err
			}
			return env.Render(s)
		},
	}
}

func newSetCmd(env *cli.Env) *cobra.Command {
	var (
		resolution string
		fullscreen bool
		borderless bool
		windowed   bool
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: MsgSetShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			var u displaytweaks.Update

			if flags.Changed("resolution") {
				u.Resolution = &resolution
			}
			if flags.Changed("fullscreen") {
				u.Fullscreen = &fullscreen
				if fullscreen && !flags.Changed("borderless") {
					off := false
					u.Borderless = &off
				}
			}
			if flags.Changed("borderless") {
				u.Borderless = &borderless
				if borderless && !flags.Changed("fullscreen") {
					off := false
					u.Fullscreen = &off
				}
			}
			if windowed {
				off := false
				u.Fullscreen, u.Borderless = &off, &off
			}

			if u.Resolution == nil && u.Fullscreen == nil && u.Borderless == nil {
				return errors.New(errors.ErrInvalidInput, MsgErrNothingToSet)
			}

			p, err := env.Panel()
			if err != nil {
				return err
			}
			s, err := p.SetDisplay(u)
			if err != nil {
				return err
			}
			return env.Render(s)
		},
	}

	cmd.Flags().StringVarP(&resolution, "resolution", "r", "", MsgFlagResolution)
	cmd.Flags().BoolVar(&fullscreen, "fullscreen", false, MsgFlagFullscreen)
	cmd.Flags().BoolVar(&borderless, "borderless", false, MsgFlagBorderless)
	cmd.Flags().BoolVar(&windowed, "windowed", false, MsgFlagWindowed)
	cmd.MarkFlagsMutuallyExclusive("windowed", "fullscreen")
	cmd.MarkFlagsMutuallyExclusive("windowed", "borderless")
	return cmd
}
