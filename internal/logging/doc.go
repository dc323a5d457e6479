// Package logger provides leveled logging for cenv CLI commands.
//
// Logging behavior is controlled by two flags:
//
//   - --verbose: shows info and warning messages
//   - --debug: shows all messages including debug details
//
// Without flags, only user-facing warnings are shown; errors surface through
// the command's returned error instead.
//
//	Logger.Infof()           // Shown with --verbose or --debug
//	Logger.Debugf()          // Shown only with --debug
//	Logger.Warnf()           // Shown with --verbose or --debug
//	Logger.WarnfUser()       // Always shown
//	Logger.Errorf()          // Shown with --debug
//	Logger.ErrorfAndReturn() // Logs, then returns the error for cobra to print
//
// Commands create a logger in their PersistentPreRun and pass it to internal
// functions that need to report progress.
package logger
