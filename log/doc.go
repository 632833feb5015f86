// Package log builds [log/slog] handlers from command line flags.
//
// Three formats are supported: [FormatJSON] and [FormatLogfmt] use the
// standard library handlers, and [FormatText] uses charm log for readable
// terminal output. Levels are [LevelError], [LevelWarn], [LevelInfo] and
// [LevelDebug].
//
//	cfg := log.NewConfig()
//	cfg.RegisterFlags(rootCmd.PersistentFlags())
//
//	handler, err := cfg.NewHandler(os.Stderr)
//	slog.SetDefault(slog.New(handler))
//
// A [Tail] keeps the most recent log lines in memory so that a terminal UI,
// which owns the screen, can still show them in a status bar:
//
//	tail := log.NewTail(50)
//	slog.SetDefault(slog.New(log.NewHandler(tail, log.LevelInfo, log.FormatLogfmt)))
//	...
//	status := tail.Last()
package log
