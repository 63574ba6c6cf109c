package config

type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors.
const (
	ErrNoConfigPath = constError("config path not set")
	ErrUnknownKey   = constError("unknown configuration key")
	ErrInvalidValue = constError("invalid configuration value")
)
