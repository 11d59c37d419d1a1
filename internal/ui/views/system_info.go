package views

import (
	"time"

	"github.com/hako/durafmt"
	"github.com/pterm/pterm"
)

type SystemInfoItem struct {
	ConfigPath       string
	DBPath           string
	DBExists         bool // true = Found, false = Not Found
	DefaultUserID    int64
	HomeCurrency     string
	BalanceTolerance string
	FxCacheTTL       time.Duration
	AppDataDir       string
}

func RenderSystemInfo(data SystemInfoItem) error {
	dbStatus := green("Found")
	if !data.DBExists {
		dbStatus = red("Not Found (Will be created)")
	}

	configPath := data.ConfigPath
	if configPath == "" {
		configPath = "-"
	}

	tableData := pterm.TableData{
		{"Configuration File", configPath},
		{"Database Path", data.DBPath},
		{"Database Status", dbStatus},
		{"Default User", pterm.Sprint(data.DefaultUserID)},
		{"Default Home Currency", data.HomeCurrency},
		{"Balance Tolerance", data.BalanceTolerance},
		{"FX Cache TTL", formatTTL(data.FxCacheTTL)},
		{"AppData Directory", data.AppDataDir},
	}

	return pterm.DefaultTable.WithData(tableData).Render()
}

func formatTTL(ttl time.Duration) string {
	if ttl <= 0 {
		return "disabled"
	}
	return durafmt.Parse(ttl).String()
}
