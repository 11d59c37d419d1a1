package views

import (
	"fmt"

	"github.com/hance08/tally/internal/constants"
	"github.com/hance08/tally/internal/model"
	"github.com/hance08/tally/internal/ui"
	"github.com/hance08/tally/internal/utils"
	"github.com/pterm/pterm"
)

func RenderTransactionDeletePreview(tx *model.Transaction) error {
	pterm.Warning.Printf("About to delete transaction #%d:\n", tx.ID)

	deletionInfo := pterm.TableData{
		{"Date", tx.Date.Format(constants.DateFormat)},
		{"Type", TypeLabel(tx.Type)},
		{"Description", tx.Description},
		{"Amount", utils.FormatMoney(tx.AmountOCPrimary, tx.CurrencyPrimary)},
		{"Postings", fmt.Sprint(len(tx.Postings))},
	}

	if err := pterm.DefaultTable.WithData(deletionInfo).Render(); err != nil {
		return err
	}
	pterm.Info.Println("The transaction can be brought back with 'tally transaction restore'.")
	return nil
}

func RenderTransactionDeleteSuccess(id int64) {
	pterm.Success.Printf("Transaction #%d deleted successfully\n", id)
	ui.Separator()
}

func RenderTransactionRestoreSuccess(id int64) {
	pterm.Success.Printf("Transaction #%d restored\n", id)
	ui.Separator()
}
