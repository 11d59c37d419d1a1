package transaction

import (
	"fmt"
	"os"

	"github.com/hance08/tally/internal/app"
	"github.com/hance08/tally/internal/logger"
	"github.com/hance08/tally/internal/service"
	"github.com/hance08/tally/internal/ui/views"
	"github.com/spf13/cobra"
)

type importRunner struct {
	app *app.App
	cmd *cobra.Command
}

func NewImportCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.yaml>",
		Short: "Record many transactions from a YAML file",
		Long: `Record every entry of the file's "transactions" list. Each entry is stored
on its own, so one invalid entry does not stop the others. Entries without
user_id belong to the current user.

Example file:

  transactions:
    - type: expense
      date: 2024-03-05
      description: Groceries
      account_id_primary: 1
      account_id_secondary: 4
      amount_oc_primary: 42.10
      currency_primary: USD`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &importRunner{app: a, cmd: cmd}
			return runner.Run(args[0])
		},
	}
}

func (r *importRunner) Run(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open import file: %w", err)
	}
	defer f.Close()

	records, err := service.ParseImport(f)
	if err != nil {
		return err
	}
	log := logger.FromContext(r.cmd.Context())
	log.Debug().Str("file", path).Int("records", len(records)).Msg("import file parsed")

	result, importErr := r.app.Service.Transaction.Import(r.cmd.Context(), records, r.app.Config.Defaults.UserID)

	if err := views.RenderImportSummary(views.ImportSummaryItem{
		File:    path,
		Created: result.Created,
		Failed:  result.Failed,
	}); err != nil {
		return err
	}

	return importErr
}
