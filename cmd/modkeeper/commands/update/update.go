package update

import (
	"fmt"

	"github.com/arthur-debert/modkeeper/internal/cli"
	"github.com/arthur-debert/modkeeper/pkg/panel"
	"github.com/arthur-debert/modkeeper/pkg/remote"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// NewCommand creates the update command and its subcommands
func NewCommand(env *cli.Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "update",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "core",
	}

	cmd.AddCommand(newCheckCmd(env))
	cmd.AddCommand(newApplyCmd(env))
	cmd.AddCommand(newOrderCmd(env))
	return cmd
}

func newCheckCmd(env *cli.Env) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: MsgCheckShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := env.Panel()
			if err != nil {
				return err
			}
			return env.Render(p.CheckUpdate(cmd.Context()))
		},
	}
}

func newApplyCmd(env *cli.Env) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "apply",
		Short: MsgApplyShort,
		Long:  MsgApplyLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := env.Panel(panel.WithStatusListener(reconciled(env)))
			if err != nil {
				return err
			}

			var progress remote.ProgressCallback
			if env.Interactive() && !env.JSON() {
				bar := newProgress(env)
				defer bar.stop()
				progress = bar.update
			}

			res, err := p.ApplyUpdate(cmd.Context(), force, progress)
			if err != nil {
				return err
			}
			return env.Render(res)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, MsgFlagForce)
	return cmd
}

func newOrderCmd(env *cli.Env) *cobra.Command {
	return &cobra.Command{
		Use:   "order",
		Short: MsgOrderShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := env.Panel()
			if err != nil {
				return err
			}
			dst, err := p.UpdateOrder(cmd.Context())
			if err != nil {
				return err
			}
			return env.Message(fmt.Sprintf(MsgOrderWritten, dst))
		},
	}
}

// reconciled reports version changes on the error stream so they do not
// mix with rendered results
func reconciled(env *cli.Env) panel.StatusListener {
	return func(st panel.Status) {
		if !env.JSON() {
			fmt.Fprintf(env.Err, MsgVersionChanged+"\n", st.LocalVersion)
		}
	}
}

type progressBar struct {
	bar *pterm.ProgressbarPrinter
}

func newProgress(env *cli.Env) *progressBar {
	bar, err := pterm.DefaultProgressbar.
		WithTotal(100).
		WithTitle(MsgDownloading).
		WithWriter(env.Err).
		Start()
	if err != nil {
		return &progressBar{}
	}
	return &progressBar{bar: bar}
}

func (p *progressBar) update(_, _ int64, percentage int) {
	if p.bar == nil {
		return
	}
	if delta := percentage - p.bar.Current; delta > 0 {
		p.bar.Add(delta)
	}
}

func (p *progressBar) stop() {
	if p.bar != nil {
		_, _ = p.bar.Stop()
	}
}
