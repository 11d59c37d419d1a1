package views

import (
	"fmt"

	"github.com/hance08/tally/internal/model"
	"github.com/pterm/pterm"
)

func RenderUserList(users []*model.User, defaultUserID int64) error {
	if len(users) == 0 {
		pterm.Warning.Println("No users found, create one with 'tally user add'")
		return nil
	}

	tableData := pterm.TableData{{"ID", "Name", "Email", "Home Currency", ""}}
	for _, u := range users {
		marker := ""
		if u.ID == defaultUserID {
			marker = green("default")
		}
		email := u.Email
		if email == "" {
			email = "-"
		}
		row := []string{fmt.Sprintf("%d", u.ID), u.Name, email, u.HomeCurrency, marker}
		if !u.Active {
			for i := range row {
				row[i] = gray(row[i])
			}
		}
		tableData = append(tableData, row)
	}

	pterm.DefaultSection.Printf("Users")
	return pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
}
