package fx

import (
	"fmt"

	"github.com/hance08/tally/internal/app"
	"github.com/hance08/tally/internal/service"
	"github.com/hance08/tally/internal/ui/views"
	"github.com/hance08/tally/internal/utils"
	"github.com/spf13/cobra"
)

func NewFxCmd(a *app.App, skipSetup string) *cobra.Command {
	fxCmd := &cobra.Command{
		Use:   "fx",
		Short: "Maintain the monthly FX rate table.",
		Long: `Postings in a foreign currency are converted to the home currency with the
rate recorded for the transaction's month.`,
	}

	for _, sub := range []*cobra.Command{NewSetCmd(a), NewListCmd(a)} {
		sub.Annotations = map[string]string{skipSetup: "true"}
		fxCmd.AddCommand(sub)
	}

	return fxCmd
}

type setRunner struct {
	app  *app.App
	cmd  *cobra.Command
	args []string
}

func NewSetCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "set <from> <to> <YYYY-MM> <rate>",
		Short: "Record the rate of one currency pair for a month",
		Long: `Record how many units of <to> one unit of <from> is worth in a month.
An existing rate for the same pair and month is replaced.

Example: tally fx set EUR USD 2024-03 1.08`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &setRunner{app: a, cmd: cmd, args: args}
			return runner.Run()
		},
	}
}

func (r *setRunner) Run() error {
	year, month, err := service.ParsePeriod(r.args[2])
	if err != nil {
		return err
	}

	rate, err := utils.ParseAmount(r.args[3])
	if err != nil {
		return fmt.Errorf("invalid rate '%s': %w", r.args[3], err)
	}

	saved, err := r.app.Service.Fx.SetRate(r.cmd.Context(), r.args[0], r.args[1], year, month, rate)
	if err != nil {
		return err
	}

	views.RenderFxRateSaved(saved)
	return nil
}

type listRunner struct {
	app *app.App
	cmd *cobra.Command
}

func NewListCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all recorded FX rates",
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &listRunner{app: a, cmd: cmd}
			return runner.Run()
		},
	}
}

func (r *listRunner) Run() error {
	rates, err := r.app.Service.Fx.ListRates(r.cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to get FX rates: %w", err)
	}
	return views.RenderFxRates(rates)
}
