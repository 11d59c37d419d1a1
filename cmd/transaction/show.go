package transaction

import (
	"github.com/hance08/tally/internal/app"
	"github.com/hance08/tally/internal/ui/views"
	"github.com/spf13/cobra"
)

type showRunner struct {
	app *app.App
	cmd *cobra.Command
}

func NewShowCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <transaction-id>",
		Short: "Show transaction details",
		Long:  `Show a transaction header with both of its postings, including deleted ones.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &showRunner{
				app: a,
				cmd: cmd,
			}
			return runner.Run(args)
		},
	}
}

func (r *showRunner) Run(args []string) error {
	txID, err := parseID(args[0])
	if err != nil {
		return err
	}

	ctx := r.cmd.Context()
	userID := r.app.Config.Defaults.UserID

	tx, err := r.app.Service.Transaction.GetTransaction(ctx, userID, txID)
	if err != nil {
		return err
	}

	home, err := homeCurrency(ctx, r.app, userID)
	if err != nil {
		return err
	}

	names, err := accountNamer(ctx, r.app, userID)
	if err != nil {
		return err
	}

	return views.RenderTransactionDetail(tx, home, names)
}
