// Package logging builds the application's slog logger: a console handler
// with compact "TIMESTAMP LEVEL component: message key=value" lines for
// interactive use, or the standard JSON handler for machine consumption.
package logging
