package transaction

import (
	"fmt"
	"time"

	"github.com/hance08/tally/internal/app"
	"github.com/hance08/tally/internal/constants"
	"github.com/hance08/tally/internal/model"
	"github.com/hance08/tally/internal/posting"
	"github.com/hance08/tally/internal/ui"
	"github.com/hance08/tally/internal/ui/prompts"
	"github.com/hance08/tally/internal/ui/views"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

type addFlags struct {
	Type              string
	Primary           int64
	Secondary         int64
	Amount            float64
	Currency          string
	SecondaryAmount   float64
	SecondaryCurrency string
	Date              string
	Description       string
	ExternalID        string
}

type addRunner struct {
	app   *app.App
	cmd   *cobra.Command
	flags *addFlags

	// prompt is false when stdin is not a terminal; missing fields are then errors.
	prompt   bool
	accounts []*model.Account
	header   posting.Header
}

func NewAddCmd(a *app.App) *cobra.Command {
	flags := &addFlags{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new transaction",
		Long: `Record a new transaction as two balanced postings.

Transaction types and the accounts they take (primary, secondary):
  income               asset, income
  expense              asset, expense
  transfer             asset, asset (same currency)
  credit_card_payment  asset, liability (same currency)
  forex                asset, asset (different currencies)

Fields left out are asked for interactively when running in a terminal.

Examples:
  tally transaction add --type expense --primary 1 --secondary 2 --amount 12.5 --currency USD
  tally transaction add --type forex --primary 3 --secondary 1 --amount 1000 --currency USD \
      --secondary-amount 850 --secondary-currency EUR --date 2024-03-05`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &addRunner{
				app:    a,
				cmd:    cmd,
				flags:  flags,
				prompt: ui.Interactive(),
			}
			return runner.Run()
		},
	}

	cmd.Flags().StringVarP(&flags.Type, "type", "t", "", "Transaction type: income, expense, transfer, credit_card_payment, forex")
	cmd.Flags().Int64VarP(&flags.Primary, "primary", "p", 0, "Primary account ID")
	cmd.Flags().Int64VarP(&flags.Secondary, "secondary", "s", 0, "Secondary account ID")
	cmd.Flags().Float64VarP(&flags.Amount, "amount", "a", 0, "Primary amount (positive)")
	cmd.Flags().StringVar(&flags.Currency, "currency", "", "Primary currency (defaults to the primary account's currency)")
	cmd.Flags().Float64Var(&flags.SecondaryAmount, "secondary-amount", 0, "Secondary amount, forex only")
	cmd.Flags().StringVar(&flags.SecondaryCurrency, "secondary-currency", "", "Secondary currency, forex only (defaults to the secondary account's currency)")
	cmd.Flags().StringVar(&flags.Date, "date", "", "Transaction date YYYY-MM-DD (default today)")
	cmd.Flags().StringVarP(&flags.Description, "description", "d", "", "Transaction description")
	cmd.Flags().StringVar(&flags.ExternalID, "external-id", "", "Idempotency key; a second transaction with the same key is rejected")

	return cmd
}

func (r *addRunner) Run() error {
	ctx := r.cmd.Context()
	userID := r.app.Config.Defaults.UserID

	accounts, err := r.app.Service.Account.ListAccounts(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to get accounts: %w", err)
	}
	r.accounts = accounts

	r.header = posting.Header{
		UserID:      userID,
		Description: r.flags.Description,
		ExternalID:  r.flags.ExternalID,
	}

	if r.prompt {
		ui.PrintL1Title("Record Transaction")
	}

	steps := []func() error{
		r.resolveType,
		r.resolveAccounts,
		r.resolveAmount,
		r.resolveDate,
		r.resolveDescription,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}

	req, err := r.request()
	if err != nil {
		return err
	}

	tx, err := r.app.Service.Transaction.CreateTransaction(ctx, req)
	if err != nil {
		return err
	}

	home, err := homeCurrency(ctx, r.app, userID)
	if err != nil {
		return err
	}
	return views.RenderTransactionCreated(tx, home)
}

func (r *addRunner) changed(name string) bool {
	return r.cmd.Flags().Changed(name)
}

func (r *addRunner) missing(flag string) error {
	return fmt.Errorf("--%s is required when not running in a terminal", flag)
}

func (r *addRunner) resolveType() error {
	if r.changed("type") {
		r.header.Type = model.TxType(r.flags.Type)
		return nil
	}
	if !r.prompt {
		return r.missing("type")
	}

	txType, err := prompts.PromptTransactionType()
	if err != nil {
		return err
	}
	r.header.Type = txType
	return nil
}

func (r *addRunner) resolveAccounts() error {
	leg0, leg1, ok := posting.LegAccountTypes(r.header.Type)
	if !ok {
		// ValidateHeader reports the unknown type.
		r.header.AccountIDPrimary = r.flags.Primary
		r.header.AccountIDSecondary = r.flags.Secondary
		return nil
	}
	roles := views.LegRoles(r.header.Type)

	primary, err := r.resolveAccount("primary", r.flags.Primary, leg0, roles[0], 0)
	if err != nil {
		return err
	}
	secondary, err := r.resolveAccount("secondary", r.flags.Secondary, leg1, roles[1], primary)
	if err != nil {
		return err
	}

	r.header.AccountIDPrimary = primary
	r.header.AccountIDSecondary = secondary
	return nil
}

func (r *addRunner) resolveAccount(flag string, value int64, accType model.AccountType, role string, exclude int64) (int64, error) {
	if r.changed(flag) {
		return value, nil
	}
	if !r.prompt {
		return 0, r.missing(flag)
	}

	candidates := make([]*model.Account, 0, len(r.accounts))
	for _, acc := range r.accounts {
		if acc.ID != exclude {
			candidates = append(candidates, acc)
		}
	}

	ctx := r.cmd.Context()
	userID := r.header.UserID
	acc, err := prompts.PromptAccountSelection(
		candidates,
		[]model.AccountType{accType},
		fmt.Sprintf("Select the %s:", role),
		func(id int64) (decimal.Decimal, error) {
			return r.app.Service.Account.AccountBalance(ctx, userID, id)
		},
	)
	if err != nil {
		return 0, err
	}
	return acc.ID, nil
}

func (r *addRunner) resolveAmount() error {
	var err error

	r.header.CurrencyPrimary = r.flags.Currency
	if !r.changed("currency") {
		r.header.CurrencyPrimary = r.accountCurrency(r.header.AccountIDPrimary)
	}
	if r.header.CurrencyPrimary == "" && r.header.Type.Valid() {
		return fmt.Errorf("--currency is required, the primary account has no currency")
	}

	r.header.AmountOCPrimary = r.flags.Amount
	if !r.changed("amount") {
		if !r.prompt {
			return r.missing("amount")
		}
		if r.header.AmountOCPrimary, err = prompts.PromptTransactionAmount(fmt.Sprintf("Amount (%s):", r.header.CurrencyPrimary)); err != nil {
			return err
		}
	}
	return nil
}

func (r *addRunner) resolveDate() error {
	if r.changed("date") {
		date, err := time.Parse(constants.DateFormat, r.flags.Date)
		if err != nil {
			return fmt.Errorf("invalid date '%s' (want YYYY-MM-DD)", r.flags.Date)
		}
		r.header.Date = date
		return nil
	}
	if !r.prompt {
		// Left zero, the service records today.
		return nil
	}

	date, err := prompts.PromptTransactionDate()
	if err != nil {
		return err
	}
	r.header.Date = date
	return nil
}

func (r *addRunner) resolveDescription() error {
	if r.changed("description") || !r.prompt {
		return nil
	}

	desc, err := prompts.PromptDescription("Description (optional):", false)
	if err != nil {
		return err
	}
	r.header.Description = desc
	return nil
}

func (r *addRunner) request() (posting.Request, error) {
	if r.header.Type != model.TxForex {
		if r.changed("secondary-amount") || r.changed("secondary-currency") {
			return &posting.ForexRequest{
				Header:            r.header,
				AmountOCSecondary: r.flags.SecondaryAmount,
				CurrencySecondary: r.flags.SecondaryCurrency,
			}, nil
		}
		return &posting.SimpleRequest{Header: r.header}, nil
	}

	currency := r.flags.SecondaryCurrency
	if !r.changed("secondary-currency") {
		currency = r.accountCurrency(r.header.AccountIDSecondary)
	}

	amount := r.flags.SecondaryAmount
	if !r.changed("secondary-amount") {
		if !r.prompt {
			return nil, r.missing("secondary-amount")
		}
		var err error
		if amount, err = prompts.PromptTransactionAmount(fmt.Sprintf("Amount received (%s):", currency)); err != nil {
			return nil, err
		}
	}

	return &posting.ForexRequest{
		Header:            r.header,
		AmountOCSecondary: amount,
		CurrencySecondary: currency,
	}, nil
}

// accountCurrency returns the currency of a listed account, or "" when unknown.
func (r *addRunner) accountCurrency(id int64) string {
	for _, acc := range r.accounts {
		if acc.ID == id {
			return acc.Currency
		}
	}
	return ""
}
