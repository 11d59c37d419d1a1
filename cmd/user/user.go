package user

import (
	"fmt"

	"github.com/hance08/tally/internal/app"
	"github.com/hance08/tally/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func NewUserCmd(a *app.App, skipSetup string) *cobra.Command {
	userCmd := &cobra.Command{
		Use:   "user",
		Short: "Create users and show the list of all users.",
		Long: `Every account and transaction belongs to one user. A user's home currency
is the currency every posting is also reported in.`,
	}

	for _, sub := range []*cobra.Command{NewAddCmd(a), NewListCmd(a)} {
		sub.Annotations = map[string]string{skipSetup: "true"}
		userCmd.AddCommand(sub)
	}

	return userCmd
}

type addFlags struct {
	Name         string
	Email        string
	HomeCurrency string
}

type addRunner struct {
	app   *app.App
	cmd   *cobra.Command
	flags *addFlags
}

func NewAddCmd(a *app.App) *cobra.Command {
	flags := &addFlags{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new user",
		Long: `Create a new user with a home currency.

Example: tally user add --name Alice --home-currency EUR`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &addRunner{
				app:   a,
				cmd:   cmd,
				flags: flags,
			}
			return runner.Run()
		},
	}

	cmd.Flags().StringVarP(&flags.Name, "name", "n", "", "User name")
	cmd.Flags().StringVarP(&flags.Email, "email", "e", "", "Email address (optional, unique)")
	cmd.Flags().StringVar(&flags.HomeCurrency, "home-currency", "", "Home currency code (defaults to defaults.home_currency)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func (r *addRunner) Run() error {
	home := r.flags.HomeCurrency
	if home == "" {
		home = r.app.Config.Defaults.HomeCurrency
	}

	u, err := r.app.Service.User.CreateUser(r.cmd.Context(), r.flags.Name, r.flags.Email, home)
	if err != nil {
		return err
	}

	pterm.Success.Printf("User #%d '%s' created (home currency %s)\n", u.ID, u.Name, u.HomeCurrency)
	return nil
}

type listRunner struct {
	app *app.App
	cmd *cobra.Command
}

func NewListCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all users",
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &listRunner{app: a, cmd: cmd}
			return runner.Run()
		},
	}
}

func (r *listRunner) Run() error {
	users, err := r.app.Service.User.ListUsers(r.cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to get users: %w", err)
	}
	return views.RenderUserList(users, r.app.Config.Defaults.UserID)
}
