package account

import (
	"github.com/hance08/tally/internal/app"
	"github.com/spf13/cobra"
)

func NewAccountCmd(a *app.App) *cobra.Command {
	accountCmd := &cobra.Command{
		Use:   "account",
		Short: "It can create accounts and show the list of all accounts.",
		Long:  `It can create accounts and show the list of all accounts of the current user.`,
	}

	accountCmd.AddCommand(NewCreateCmd(a))
	accountCmd.AddCommand(NewListCmd(a))

	return accountCmd
}
