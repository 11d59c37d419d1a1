package views

import (
	"fmt"

	"github.com/hance08/tally/internal/model"
	"github.com/hance08/tally/internal/ui"
	"github.com/pterm/pterm"
)

func RenderAccountSuccess(acc *model.Account) error {
	ui.Separator()

	currency := acc.Currency
	if currency == "" {
		currency = "None"
	}
	descStr := acc.Description
	if descStr == "" {
		descStr = "None"
	}

	tableData := pterm.TableData{
		{pterm.Blue("Account ID"), fmt.Sprintf("%d", acc.ID)},
		{pterm.Blue("Name"), acc.Name},
		{pterm.Blue("Type"), string(acc.Type)},
		{pterm.Blue("Currency"), currency},
		{pterm.Blue("Description"), descStr},
	}

	if err := pterm.DefaultTable.WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Success.Print("Account created successfully!\n")
	return nil
}
