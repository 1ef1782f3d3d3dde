// Package logger builds configured slog loggers for toastkit and its
// host applications.
//
// The factory supports JSON output for log aggregation and text output
// for development, a minimum level, a custom destination, and static
// attributes attached to every record. Domain attribute helpers keep
// log keys consistent across packages.
//
//	log := logger.New(
//		logger.WithFormat(logger.FormatText),
//		logger.WithLevel(slog.LevelDebug),
//		logger.WithAttrs(slog.String("service", "toastkit")),
//	)
//	log.Info("notification shown", logger.ToastID("toast-7"))
package logger
