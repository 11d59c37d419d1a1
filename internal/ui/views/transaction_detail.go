package views

import (
	"fmt"

	"github.com/hance08/tally/internal/constants"
	"github.com/hance08/tally/internal/model"
	"github.com/hance08/tally/internal/ui"
	"github.com/hance08/tally/internal/utils"
	"github.com/pterm/pterm"
)

func RenderTransactionDetail(tx *model.Transaction, home string, accountName func(int64) string) error {
	status := green("Active")
	if !tx.Active {
		status = red("Deleted")
		if tx.DeletedAt != nil {
			status += " " + tx.DeletedAt.Format(constants.DateFormat)
		}
	}

	externalID := "-"
	if tx.ExternalID != nil {
		externalID = *tx.ExternalID
	}

	pterm.Println()
	ui.PrintL2Title("Transaction Info")
	infoData := pterm.TableData{
		{"Field", "Value"},
		{"ID", fmt.Sprintf("%d", tx.ID)},
		{"Type", TypeLabel(tx.Type)},
		{"Date", tx.Date.Format(constants.DateFormat)},
		{"Description", tx.Description},
		{"Amount", utils.FormatMoney(tx.AmountOCPrimary, tx.CurrencyPrimary)},
	}
	if tx.AmountOCSecondary != nil && tx.CurrencySecondary != nil {
		infoData = append(infoData, []string{"Exchanged For", utils.FormatMoney(*tx.AmountOCSecondary, *tx.CurrencySecondary)})
	}
	infoData = append(infoData,
		[]string{"Home Amount", utils.FormatMoney(tx.AmountHC, home)},
		[]string{"External ID", externalID},
		[]string{"Status", status},
	)
	if err := pterm.DefaultTable.
		WithHasHeader().
		WithHeaderStyle(pterm.NewStyle(pterm.FgGray)).
		WithData(infoData).
		Render(); err != nil {
		return err
	}

	pterm.Println()
	ui.PrintL2Title("Postings")
	roles := LegRoles(tx.Type)
	postingsData := pterm.TableData{
		{"Role", "Account", "Amount", "FX Rate", "Home Amount"},
	}
	for i, p := range tx.Postings {
		role := "account"
		if i < len(roles) {
			role = roles[i]
		}

		name := ""
		if accountName != nil {
			name = accountName(p.AccountID)
		}
		if name == "" {
			name = fmt.Sprintf("[ID: %d]", p.AccountID)
		}

		amount := utils.FormatMoney(p.AmountOC, p.Currency)
		if p.AmountOC.IsNegative() {
			amount = red(amount)
		} else {
			amount = green(amount)
		}

		postingsData = append(postingsData, []string{
			role,
			name,
			amount,
			p.FxRate.String(),
			utils.FormatMoney(p.AmountHC, home),
		})
	}

	return pterm.DefaultTable.
		WithHasHeader().
		WithHeaderStyle(pterm.NewStyle(pterm.FgGray)).
		WithData(postingsData).
		Render()
}
