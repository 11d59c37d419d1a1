package transaction

import (
	"fmt"

	"github.com/hance08/tally/internal/app"
	"github.com/hance08/tally/internal/ui"
	"github.com/hance08/tally/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type deleteFlags struct {
	Yes bool
}

type deleteRunner struct {
	app   *app.App
	cmd   *cobra.Command
	flags *deleteFlags
}

func NewDeleteCmd(a *app.App) *cobra.Command {
	flags := &deleteFlags{}

	cmd := &cobra.Command{
		Use:   "delete <transaction-id>",
		Short: "Delete a transaction",
		Long: `Delete a transaction and both of its postings. The rows are kept but marked
inactive, so balances ignore them and 'restore' can bring them back.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &deleteRunner{
				app:   a,
				cmd:   cmd,
				flags: flags,
			}
			return runner.Run(args)
		},
	}

	cmd.Flags().BoolVarP(&flags.Yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func (r *deleteRunner) Run(args []string) error {
	txID, err := parseID(args[0])
	if err != nil {
		return err
	}

	ctx := r.cmd.Context()
	userID := r.app.Config.Defaults.UserID

	// Get transaction details first to show what will be deleted
	tx, err := r.app.Service.Transaction.GetTransaction(ctx, userID, txID)
	if err != nil {
		return err
	}
	if !tx.Active {
		return fmt.Errorf("transaction #%d is already deleted", txID)
	}

	if !r.flags.Yes {
		if !ui.Interactive() {
			return fmt.Errorf("refusing to delete without confirmation, pass --yes")
		}

		if err := views.RenderTransactionDeletePreview(tx); err != nil {
			return err
		}

		confirmed, err := ui.Confirm("Do you want to delete this transaction?")
		if err != nil {
			return err
		}
		if !confirmed {
			pterm.Info.Println("Deletion cancelled")
			return nil
		}
	}

	if err := r.app.Service.Transaction.DeactivateTransaction(ctx, userID, txID); err != nil {
		return err
	}

	views.RenderTransactionDeleteSuccess(txID)
	return nil
}

type restoreRunner struct {
	app *app.App
	cmd *cobra.Command
}

func NewRestoreCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "restore <transaction-id>",
		Short: "Restore a deleted transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &restoreRunner{app: a, cmd: cmd}
			return runner.Run(args)
		},
	}
}

func (r *restoreRunner) Run(args []string) error {
	txID, err := parseID(args[0])
	if err != nil {
		return err
	}

	if err := r.app.Service.Transaction.ActivateTransaction(r.cmd.Context(), r.app.Config.Defaults.UserID, txID); err != nil {
		return err
	}

	views.RenderTransactionRestoreSuccess(txID)
	return nil
}
