package dotaudit

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	MsgRootShort       = "Audit which dotfiles in your home directory could move to XDG directories"
	MsgConfigShort     = "Print the effective configuration"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate the man page"

	// Flag descriptions
	MsgFlagSkipOK          = "display messages for all files checked, including missing ones (verbose)"
	MsgFlagSkipUnsupported = "don't display messages for files without fixes (quiet)"
	MsgFlagPrograms        = "directory containing program documents (default ./programs)"
	MsgFlagPattern         = "glob pattern for program documents (default *.json)"
	MsgFlagFormat          = "report format: text, term, json, yaml"
	MsgFlagConfig          = "config file (default $XDG_CONFIG_HOME/dotaudit/config.toml)"
	MsgFlagNoAdvisory      = "don't warn about unset XDG base directory variables"
	MsgFlagLogVerbose      = "increase log verbosity on stderr (repeat for more)"

	// Error messages
	MsgErrLoadConfig = "failed to load configuration: %w"
	MsgErrAudit      = "audit failed: %w"

	// Output
	MsgConfigSource = "# loaded from %s\n"
	MsgErrorPrefix  = "Error: %v"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
