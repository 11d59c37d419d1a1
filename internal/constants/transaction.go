package constants

const (
	// Date Layout
	DateFormat = "2006-01-02"

	// Month layout used for FX periods
	MonthFormat = "2006-01"

	DefaultListLimit = 20
)
