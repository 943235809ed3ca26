// Package logging builds the application's leveled logger and manages
// per-session log files.
//
// Session logs live under <log_dir>/<project>-<hash>/, one file per
// process named <timestamp>-<pid>.log. The TUI owns the terminal, so
// while it runs every log line goes to the session file instead.
package logging
