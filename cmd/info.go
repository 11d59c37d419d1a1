package cmd

import (
	"os"

	"github.com/hance08/tally/internal/app"
	"github.com/hance08/tally/internal/config"
	"github.com/hance08/tally/internal/ui/views"
	"github.com/spf13/cobra"
)

type infoRunner struct {
	app *app.App
}

func NewInfoCmd(a *app.App, skipSetup string) *cobra.Command {
	return &cobra.Command{
		Use:         "info",
		Short:       "Display application information",
		Long:        `Display current configuration, database path, and system details.`,
		Annotations: map[string]string{skipSetup: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &infoRunner{
				app: a,
			}

			return runner.Run()
		},
	}
}

func (r *infoRunner) Run() error {
	cfg := r.app.Config

	configPath := cfg.ConfigPath
	if configPath == "" {
		configPath = "(None, using defaults)"
	}

	dbPath, err := cfg.DatabasePath()
	if err != nil {
		return err
	}

	dbExists := false
	if _, err := os.Stat(dbPath); err == nil {
		dbExists = true
	}

	items := views.SystemInfoItem{
		ConfigPath:       configPath,
		DBPath:           dbPath,
		DBExists:         dbExists,
		DefaultUserID:    cfg.Defaults.UserID,
		HomeCurrency:     cfg.Defaults.HomeCurrency,
		BalanceTolerance: cfg.Posting.BalanceTolerance,
		FxCacheTTL:       cfg.Fx.CacheTTL,
		AppDataDir:       appDataDirOrUnknown(),
	}

	if err := views.RenderSystemInfo(items); err != nil {
		return err
	}
	return nil
}

func appDataDirOrUnknown() string {
	dir, err := config.AppDataDir()
	if err != nil {
		return "Unknown"
	}
	return dir
}
