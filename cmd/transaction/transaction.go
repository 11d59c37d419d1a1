package transaction

import (
	"context"
	"fmt"
	"strconv"

	"github.com/hance08/tally/internal/app"
	"github.com/spf13/cobra"
)

func NewTransactionCmd(a *app.App) *cobra.Command {
	transactionCmd := &cobra.Command{
		Use:     "transaction",
		Aliases: []string{"tx"},
		Short:   "Manage transactions",
		Long:    "Manage transactions: record, view details, list, delete, restore or import them.",
	}

	transactionCmd.AddCommand(NewAddCmd(a))
	transactionCmd.AddCommand(NewShowCmd(a))
	transactionCmd.AddCommand(NewListCmd(a))
	transactionCmd.AddCommand(NewDeleteCmd(a))
	transactionCmd.AddCommand(NewRestoreCmd(a))
	transactionCmd.AddCommand(NewImportCmd(a))

	return transactionCmd
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid transaction ID: %s", arg)
	}
	return id, nil
}

// accountNamer resolves account ids to names for display, falling back to "#id".
func accountNamer(ctx context.Context, a *app.App, userID int64) (func(int64) string, error) {
	accounts, err := a.Service.Account.ListAccounts(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get accounts: %w", err)
	}

	names := make(map[int64]string, len(accounts))
	for _, acc := range accounts {
		names[acc.ID] = acc.Name
	}

	return func(id int64) string {
		if name, ok := names[id]; ok {
			return name
		}
		return fmt.Sprintf("#%d", id)
	}, nil
}

// homeCurrency is the display currency of userID's amount_hc values.
func homeCurrency(ctx context.Context, a *app.App, userID int64) (string, error) {
	u, err := a.Service.User.GetUser(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("failed to get user %d: %w", userID, err)
	}
	return u.HomeCurrency, nil
}
