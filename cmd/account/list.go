package account

import (
	"fmt"

	"github.com/hance08/tally/internal/app"
	"github.com/hance08/tally/internal/model"
	"github.com/hance08/tally/internal/ui/views"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

type listFlags struct {
	Type string
}

type listRunner struct {
	app   *app.App
	cmd   *cobra.Command
	flags *listFlags
}

func NewListCmd(a *app.App) *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all accounts with their balances",
		Long: `List the current user's accounts. Balances are the sum of active postings
in the account's own currency.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &listRunner{
				app:   a,
				cmd:   cmd,
				flags: flags,
			}
			return runner.Run()
		},
	}

	cmd.Flags().StringVarP(&flags.Type, "type", "t", "", "Filter accounts by type")

	return cmd
}

func (r *listRunner) Run() error {
	ctx := r.cmd.Context()
	userID := r.app.Config.Defaults.UserID

	accounts, err := r.app.Service.Account.ListAccounts(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to get accounts: %w", err)
	}

	if r.flags.Type != "" {
		accType, ok := model.ParseAccountType(r.flags.Type)
		if !ok {
			return fmt.Errorf("invalid account type '%s'", r.flags.Type)
		}
		filtered := accounts[:0]
		for _, acc := range accounts {
			if acc.Type == accType {
				filtered = append(filtered, acc)
			}
		}
		accounts = filtered
	}

	return views.NewAccountListView().Render(accounts, func(id int64) (decimal.Decimal, error) {
		return r.app.Service.Account.AccountBalance(ctx, userID, id)
	})
}
