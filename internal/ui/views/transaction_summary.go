package views

import (
	"fmt"

	"github.com/hance08/tally/internal/constants"
	"github.com/hance08/tally/internal/model"
	"github.com/hance08/tally/internal/utils"
	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
)

// RenderTransactionCreated prints the stored postings and confirms they balance.
func RenderTransactionCreated(tx *model.Transaction, home string) error {
	pterm.DefaultSection.Println("Transaction Summary")

	roles := LegRoles(tx.Type)
	tableData := pterm.TableData{
		{"Role", "Account ID", "Amount", "Home Amount"},
	}

	total := decimal.Zero
	for i, p := range tx.Postings {
		role := "account"
		if i < len(roles) {
			role = roles[i]
		}
		tableData = append(tableData, []string{
			role,
			fmt.Sprintf("%d", p.AccountID),
			utils.FormatMoney(p.AmountOC, p.Currency),
			utils.FormatMoney(p.AmountHC, home),
		})
		total = total.Add(p.AmountHC)
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Success.Printf("Transaction #%d recorded (postings sum to %s %s)\n", tx.ID, total.String(), home)
	return nil
}

type ImportSummaryItem struct {
	File    string
	Created []*model.Transaction
	Failed  int
}

func RenderImportSummary(data ImportSummaryItem) error {
	pterm.DefaultSection.Printf("Import of %s", data.File)

	tableData := pterm.TableData{
		{"ID", "Type", "Date", "Amount"},
	}
	for _, tx := range data.Created {
		tableData = append(tableData, []string{
			fmt.Sprintf("%d", tx.ID),
			colorByType(tx.Type, TypeLabel(tx.Type)),
			tx.Date.Format(constants.DateFormat),
			utils.FormatMoney(tx.AmountOCPrimary, tx.CurrencyPrimary),
		})
	}
	if len(data.Created) > 0 {
		if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
			return err
		}
	}

	if data.Failed == 0 {
		pterm.Success.Printf("Imported %d transactions\n", len(data.Created))
	} else {
		pterm.Warning.Printf("Imported %d transactions, %d failed\n", len(data.Created), data.Failed)
	}
	return nil
}
