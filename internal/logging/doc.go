// Package logging configures zerolog for carbonhub.
//
// Loggers are built from a Config (level, json or console format, stderr or
// file output), carried through context.Context, and tagged with a per-command
// ULID trace ID so every record of one invocation can be correlated.
// Library packages obtain their logger with FromContext and never write to a
// global logger.
package logging
