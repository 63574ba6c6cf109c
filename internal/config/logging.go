package config

import "github.com/carbonhub-app/carbonhub/internal/logging"

// ToLoggingConfig converts the logging section into a logging.Config.
//
// When File is set the output becomes "file"; otherwise logs go to stderr.
func (lc *LoggingConfig) ToLoggingConfig() logging.Config {
	output := logging.OutputStderr
	if lc.File != "" {
		output = outputTypeFile
	}

	return logging.Config{
		Level:  lc.Level,
		Format: lc.Format,
		Output: output,
		File:   lc.File,
	}
}
