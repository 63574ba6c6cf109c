package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/carbonhub-app/carbonhub/internal/cache"
	"github.com/carbonhub-app/carbonhub/internal/config"
	"github.com/carbonhub-app/carbonhub/internal/logging"
)

// validateGlobalFlags rejects malformed global flag values before any work.
func validateGlobalFlags(cmd *cobra.Command) error {
	if ttl, _ := cmd.Flags().GetString("cache-ttl"); ttl != "" {
		if _, err := cache.ParseTTL(ttl); err != nil {
			return usageErrorf("invalid --cache-ttl: %w", err)
		}
	}
	return nil
}

// applyConfigOverlay merges the --config file onto the global configuration.
// Sections present in the file replace the configured ones; environment
// variables still take precedence.
func applyConfigOverlay(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		return nil
	}

	cfg := config.GetGlobalConfig()
	if err := config.ShallowMergeYAML(cfg, path); err != nil {
		return fmt.Errorf("loading --config overlay: %w", err)
	}
	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration after --config overlay: %w", err)
	}
	return nil
}

// setupLogging configures logging from the config file, environment and
// CLI flags, and stores the logger and a trace ID in the command context.
func setupLogging(cmd *cobra.Command) *logging.Result {
	cfg := config.GetGlobalConfig()
	loggingCfg := cfg.Logging

	debug, _ := cmd.Flags().GetBool("debug")
	if debug {
		loggingCfg.Level = "debug"
		loggingCfg.Format = logging.FormatConsole
		loggingCfg.File = ""
	}

	if loggingCfg.File != "" {
		if err := cfg.EnsureLogDir(); err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not create log directory: %v\n", err)
		}
	}

	result := logging.New(loggingCfg.ToLoggingConfig())
	logger = logging.ComponentLogger(result.Logger, "cli")

	if result.UsingFile {
		logging.PrintLogPathMessage(cmd.ErrOrStderr(), result.FilePath)
	} else if result.FallbackUsed {
		logging.PrintFallbackWarning(cmd.ErrOrStderr(), result.FallbackReason)
	}

	ctx := cmd.Context()
	traceID := logging.GetOrGenerateTraceID(ctx)
	ctx = logging.ContextWithTraceID(ctx, traceID)
	ctx = logger.WithContext(ctx)
	cmd.SetContext(ctx)

	logger.Debug().Ctx(ctx).Str("command", cmd.CommandPath()).Msg("command started")

	return result
}

// cleanupLogging closes the log file handle.
func cleanupLogging(logResult *logging.Result) error {
	if logResult != nil {
		return logResult.Close()
	}
	return nil
}
