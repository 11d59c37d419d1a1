package transaction

import (
	"fmt"

	"github.com/hance08/tally/internal/app"
	"github.com/hance08/tally/internal/constants"
	"github.com/hance08/tally/internal/ui/views"
	"github.com/spf13/cobra"
)

type listFlags struct {
	Limit int
}

type listRunner struct {
	app   *app.App
	cmd   *cobra.Command
	flags *listFlags
}

func NewListCmd(a *app.App) *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "l"},
		Short:   "List recent transactions",
		Long: `List recent transactions of the current user, newest first.

This command displays a table of transactions with their date, type, accounts,
description, amount and home currency amount.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &listRunner{
				app:   a,
				cmd:   cmd,
				flags: flags,
			}
			return runner.Run()
		},
	}

	cmd.Flags().IntVarP(&flags.Limit, "limit", "l", constants.DefaultListLimit, "Maximum number of transactions to display")

	return cmd
}

func (r *listRunner) Run() error {
	if r.flags.Limit <= 0 {
		return fmt.Errorf("--limit must be positive")
	}

	ctx := r.cmd.Context()
	userID := r.app.Config.Defaults.UserID

	transactions, err := r.app.Service.Transaction.ListTransactions(ctx, userID, r.flags.Limit)
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

	return views.NewTransactionListView(names).Render(transactions, home, r.flags.Limit)
}
