package views

import (
	"github.com/hance08/tally/internal/model"
	"github.com/pterm/pterm"
)

func RenderFxRates(rates []*model.FxRate) error {
	if len(rates) == 0 {
		pterm.Warning.Println("No FX rates recorded, add one with 'tally fx set'")
		return nil
	}

	tableData := pterm.TableData{{"Month", "From", "To", "Rate"}}
	for _, r := range rates {
		tableData = append(tableData, []string{r.Period(), r.FromCurrency, r.ToCurrency, r.Rate.String()})
	}

	pterm.DefaultSection.Printf("FX Rates")
	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}
	pterm.Info.Printf("Total: %d rates\n", len(rates))
	return nil
}

func RenderFxRateSaved(rate *model.FxRate) {
	pterm.Success.Printf("1 %s = %s %s for %s\n", rate.FromCurrency, rate.Rate.String(), rate.ToCurrency, rate.Period())
}
