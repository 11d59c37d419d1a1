package constants

const (
	MaxSafeAmount = 9223372036854775.0
)

const (
	MaxNameLen = 100
)
