package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hance08/tally/cmd/account"
	"github.com/hance08/tally/cmd/fx"
	"github.com/hance08/tally/cmd/transaction"
	"github.com/hance08/tally/cmd/user"
	"github.com/hance08/tally/internal/app"
	"github.com/hance08/tally/internal/config"
	"github.com/hance08/tally/internal/errhandler"
	"github.com/hance08/tally/internal/logger"
	"github.com/hance08/tally/internal/ui"
	"github.com/hance08/tally/internal/ui/prompts"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/joho/godotenv"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// skipSetup marks commands that must run before a first user exists.
const skipSetup = "skip-setup"

var (
	cfgFile string
	cfg     *config.Config
)

func Execute(migrations fs.FS) {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgLightRed, pterm.FgBlack),
	}

	// Filled in by PersistentPreRunE; subcommands read it only from RunE.
	application := &app.App{}
	cleanup := func() {}

	rootCmd := &cobra.Command{
		Use:   config.AppName,
		Short: "tally is a CLI based personal finance tracker",
		Long: `tally records income, expenses, transfers, credit card payments and currency
exchanges as balanced two-legged transactions in a local SQLite ledger.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := initConfig(); err != nil {
				return err
			}

			loaded, closeFn, err := app.NewApp(cfg, migrations)
			if err != nil {
				return err
			}
			*application = *loaded
			cleanup = closeFn
			cmd.SetContext(logger.WithContext(cmd.Context(), application.Log))

			if _, ok := cmd.Annotations[skipSetup]; ok {
				return nil
			}
			return initFirstUser(cmd.Context(), application)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "set the config file path")
	rootCmd.PersistentFlags().Int64P("user", "u", config.NewDefault().Defaults.UserID, "user to act as (overrides defaults.user_id)")
	_ = viper.BindPFlag("defaults.user_id", rootCmd.PersistentFlags().Lookup("user"))

	rootCmd.AddCommand(user.NewUserCmd(application, skipSetup))
	rootCmd.AddCommand(account.NewAccountCmd(application))
	rootCmd.AddCommand(fx.NewFxCmd(application, skipSetup))
	rootCmd.AddCommand(transaction.NewTransactionCmd(application))
	rootCmd.AddCommand(NewInfoCmd(application, skipSetup))

	cc.Init(&cc.Config{
		RootCmd:  rootCmd,
		Headings: cc.HiCyan + cc.Bold + cc.Underline,
		Commands: cc.HiYellow + cc.Bold,
		Example:  cc.Italic,
		ExecName: cc.Bold,
		Flags:    cc.Bold,
	})

	err := rootCmd.ExecuteContext(context.Background())
	cleanup()
	if err != nil {
		errhandler.HandleError(err)
		os.Exit(1)
	}
}

// initFirstUser creates the ledger's first user on a fresh database. Without a
// terminal it does nothing and commands that need a user report it missing.
func initFirstUser(ctx context.Context, a *app.App) error {
	users, err := a.Service.User.ListUsers(ctx)
	if err != nil {
		return err
	}
	if len(users) > 0 || !ui.Interactive() {
		return nil
	}

	name, home, err := prompts.PromptFirstUser(cfg.Defaults.HomeCurrency)
	if err != nil {
		return err
	}

	u, err := a.Service.User.CreateUser(ctx, name, "", home)
	if err != nil {
		return fmt.Errorf("failed to create first user: %w", err)
	}

	viper.Set("defaults.user_id", u.ID)
	viper.Set("defaults.home_currency", u.HomeCurrency)
	if err := viper.WriteConfig(); err != nil {
		return fmt.Errorf("failed to save config to file: %w", err)
	}
	cfg.Defaults.UserID = u.ID
	cfg.Defaults.HomeCurrency = u.HomeCurrency

	pterm.Success.Printf("Welcome %s! User #%d created with home currency %s\n", u.Name, u.ID, u.HomeCurrency)
	return nil
}

func initConfig() error {
	// A missing .env is the normal case.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		appDir, err := config.AppDataDir()
		if err != nil {
			return fmt.Errorf("error getting app dir: %w", err)
		}

		viper.AddConfigPath(appDir)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")

		if err := createDefaultConfig(appDir); err != nil {
			return fmt.Errorf("failed to ensure config file: %w", err)
		}
	}

	viper.SetEnvPrefix(strings.ToUpper(config.AppName))
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // allow using environment variables to override

	if err := viper.ReadInConfig(); err != nil {
		if cfgFile != "" {
			return fmt.Errorf("failed to read config file: %w", err)
		}

		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return fmt.Errorf("config file error: %w", err)
		}
	}

	cfg = config.NewDefault()
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode into struct, %v", err)
	}

	cfg.ConfigPath = viper.ConfigFileUsed()

	return nil
}

func createDefaultConfig(appDir string) error {
	if err := os.MkdirAll(appDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(appDir, "config.yaml")

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	defaults := config.NewDefault()
	viper.SetDefault("defaults.user_id", defaults.Defaults.UserID)
	viper.SetDefault("defaults.home_currency", defaults.Defaults.HomeCurrency)
	viper.SetDefault("posting.balance_tolerance", defaults.Posting.BalanceTolerance)
	viper.SetDefault("fx.cache_ttl", defaults.Fx.CacheTTL.String())
	viper.SetDefault("log.level", defaults.Log.Level)
	viper.SetDefault("log.format", defaults.Log.Format)

	if err := viper.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
