// Package logger provides leveled terminal logging for Pagelock commands.
//
// The logger is a small value type controlled by the --verbose and --debug
// persistent flags. Output uses the semantic colors from the ui package.
//
// # Log Methods
//
//	Logger.Infof()           // Shown with --verbose or --debug
//	Logger.Debugf()          // Shown only with --debug
//	Logger.Warnf()           // Always shown
//	Logger.Errorf()          // Always shown
//	Logger.ErrorfAndReturn() // Prints the error and returns it for RunE
//
// Commands create a logger in their PersistentPreRun and pass it down.
package logger
