package views

import (
	"fmt"

	"github.com/hance08/tally/internal/constants"
	"github.com/hance08/tally/internal/model"
	"github.com/hance08/tally/internal/utils"
	"github.com/pterm/pterm"
)

type TransactionListView struct {
	// AccountName resolves an account id for display; unknown ids show as "#id".
	AccountName func(id int64) string
}

func NewTransactionListView(accountName func(int64) string) *TransactionListView {
	return &TransactionListView{AccountName: accountName}
}

func (v *TransactionListView) Render(transactions []*model.Transaction, home string, limit int) error {
	if len(transactions) == 0 {
		pterm.Warning.Println("No transactions found")
		return nil
	}

	pterm.DefaultSection.Printf("Showing recent transactions (limit: %d)", limit)

	tableData := pterm.TableData{
		{"ID", "Date", "Type", "From", "To", "Description", "Amount", "Home"},
	}

	for _, tx := range transactions {
		tableData = append(tableData, []string{
			fmt.Sprintf("%d", tx.ID),
			tx.Date.Format(constants.DateFormat),
			colorByType(tx.Type, TypeLabel(tx.Type)),
			v.name(tx.AccountIDPrimary),
			v.name(tx.AccountIDSecondary),
			tx.Description,
			colorByType(tx.Type, utils.FormatMoney(tx.AmountOCPrimary, tx.CurrencyPrimary)),
			utils.FormatMoney(tx.AmountHC, home),
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}
	pterm.Info.Printf("Total: %d transactions\n", len(transactions))
	return nil
}

func (v *TransactionListView) name(id int64) string {
	if v.AccountName != nil {
		if name := v.AccountName(id); name != "" {
			return name
		}
	}
	return fmt.Sprintf("#%d", id)
}
