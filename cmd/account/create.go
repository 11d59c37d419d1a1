package account

import (
	"fmt"

	"github.com/hance08/tally/internal/app"
	"github.com/hance08/tally/internal/model"
	"github.com/hance08/tally/internal/ui"
	"github.com/hance08/tally/internal/ui/prompts"
	"github.com/hance08/tally/internal/ui/views"
	"github.com/spf13/cobra"
)

type createFlags struct {
	Name        string
	Type        string
	Currency    string
	Description string
}

// createRunner manages the state and logic for creating an account
type createRunner struct {
	app   *app.App
	cmd   *cobra.Command
	flags *createFlags

	name        string
	accountType model.AccountType
	currency    string
	description string
}

func NewCreateCmd(a *app.App) *cobra.Command {
	flags := &createFlags{}

	cmd := &cobra.Command{
		Use:     "add",
		Aliases: []string{"create"},
		Short:   "Create a new account.",
		Long: `Create an account for the current user.

Asset and liability accounts hold money in one currency, so --currency is
required for them. Income, expense and equity accounts have no currency.

Example: tally account add --name Checking --type asset --currency USD`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &createRunner{
				app:   a,
				cmd:   cmd,
				flags: flags,
			}
			return runner.Run()
		},
	}

	cmd.Flags().StringVarP(&flags.Name, "name", "n", "", "Account name")
	cmd.Flags().StringVarP(&flags.Type, "type", "t", "", "Account type: asset, liability, equity, income, expense")
	cmd.Flags().StringVar(&flags.Currency, "currency", "", "Currency code (asset and liability only)")
	cmd.Flags().StringVarP(&flags.Description, "description", "d", "", "Account description (optional)")

	return cmd
}

func (r *createRunner) Run() error {
	hasFlags := r.cmd.Flags().Changed("name") ||
		r.cmd.Flags().Changed("type")

	if hasFlags || !ui.Interactive() {
		if err := r.flagsMode(); err != nil {
			return err
		}
	} else if err := r.interactiveMode(); err != nil {
		return err
	}

	acc, err := r.app.Service.Account.CreateAccount(
		r.cmd.Context(),
		r.app.Config.Defaults.UserID,
		r.name,
		string(r.accountType),
		r.currency,
		r.description,
	)
	if err != nil {
		return err
	}

	return views.RenderAccountSuccess(acc)
}

func (r *createRunner) flagsMode() error {
	if r.flags.Name == "" || r.flags.Type == "" {
		return fmt.Errorf("both --name and --type are required")
	}

	accType, ok := model.ParseAccountType(r.flags.Type)
	if !ok {
		return fmt.Errorf("invalid account type '%s'", r.flags.Type)
	}

	r.name = r.flags.Name
	r.accountType = accType
	r.currency = r.flags.Currency
	r.description = r.flags.Description
	return nil
}

func (r *createRunner) interactiveMode() error {
	ui.PrintL1Title("Create Account")

	accType, err := prompts.PromptAccountType()
	if err != nil {
		return err
	}
	r.accountType = accType

	if r.name, err = prompts.PromptAccountName(); err != nil {
		return err
	}

	if accType.HasCurrency() {
		if r.currency, err = prompts.PromptCurrency("Account currency", r.app.Config.Defaults.HomeCurrency); err != nil {
			return err
		}
	}

	if r.description, err = prompts.PromptDescription("Description (optional):", false); err != nil {
		return err
	}
	return nil
}
