package main

const helpText = `fg - A fast Git/GitHub CLI wrapper

CONFIGURATION:
  --setMode <git|gh>        Set the mode (git or gh CLI)
  --getMode                 Show current mode

ALIASES:
  --createAlias <name> <cmd1> <cmd2> ...  Create a custom alias
  --alias <name>            Run an alias
  --listAliases             List all aliases

GIT COMMANDS:
  --init                    Initialize repository
  --add [path]              Add files (default: .)
  --commit <message>        Commit changes
  --pull [remote]           Pull from remote (default: origin)
  --push [remote]           Push to remote (default: origin)
  --setBranch <name>        Create and checkout branch
  --new <name>              Create new branch
  --ro <url>                Add remote origin
  --info [path]             Show status (default: .)

OTHER:
  -v, --verbose             Show backend commands being executed
  -q, --quiet               Suppress all log output
  --version                 Show version
  -h, --help                Show this help

Settings are read from settings.toml in the config directory
($FG_CONFIG_DIR, or fg under the user config directory).
`
