package views

import (
	"github.com/hance08/tally/internal/model"
	"github.com/hance08/tally/internal/utils"
	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
)

type AccountListView struct{}

func NewAccountListView() *AccountListView {
	return &AccountListView{}
}

func (v *AccountListView) Render(accounts []*model.Account, balanceGetter func(int64) (decimal.Decimal, error)) error {
	if len(accounts) == 0 {
		pterm.Warning.Println("No accounts found")
		return nil
	}

	tableData := pterm.TableData{{"ID", "Name", "Type", "Currency", "Balance"}}

	for _, acc := range accounts {
		balance := "-"
		if balanceGetter != nil {
			if b, err := balanceGetter(acc.ID); err == nil {
				balance = utils.FormatAmount(b)
			}
		}

		currency := acc.Currency
		if currency == "" {
			currency = "-"
		}

		row := []string{pterm.Sprint(acc.ID), acc.Name, string(acc.Type), currency, balance}
		if !acc.Active {
			for i := range row {
				row[i] = gray(row[i])
			}
		} else {
			switch acc.Type {
			case model.AccountAsset, model.AccountIncome:
				row[1], row[2], row[4] = green(row[1]), green(row[2]), green(row[4])
			case model.AccountLiability, model.AccountExpense:
				row[1], row[2], row[4] = red(row[1]), red(row[2]), red(row[4])
			case model.AccountEquity:
				row[1], row[2], row[4] = gray(row[1]), gray(row[2]), gray(row[4])
			}
		}
		tableData = append(tableData, row)
	}

	pterm.DefaultSection.Printf("Account List")
	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Info.Printf("Total: %d accounts\n", len(accounts))
	return nil
}
