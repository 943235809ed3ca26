package config

// ExampleConfig returns an example configuration showing all available options.
func ExampleConfig() string {
	return `# Kanban configuration file
# Values can be overridden by KANBAN_* environment variables or CLI flags

# Storage backend: file, redis or memory
store = "file"

# Key the board is stored under (file name or redis key suffix)
store_key = "cards"

# Directory for the file store (relative to the project root)
data_dir = ".kanban"

# Allow cards with empty text
allow_empty_cards = true

# Log directory (supports ~ expansion and %VAR% on Windows)
log_dir = "~/.kanban/logs"

# Logging: debug, info, warn or error; text, json or logfmt
log_level = "info"
log_format = "text"
log_timestamps = false
log_caller = false

[redis]
addr = "localhost:6379"
# password = ""
db = 0
`
}
