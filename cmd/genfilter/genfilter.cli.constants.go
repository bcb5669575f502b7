package main

// Version is the CLI version string.
const Version = "0.1.0"

// Command names
const (
	CmdNameGenerate = "generate"
	CmdNameOutput   = "output"
	CmdNameVersion  = "version"
	CmdNameHelp     = "help"
)

// Flag names - long form
const (
	FlagConfig    = "config"
	FlagNamespace = "namespace"
	FlagMarker    = "marker"
	FlagVerbose   = "verbose"
)

// Flag names - short form
const (
	FlagConfigShort  = "c"
	FlagVerboseShort = "v"
)

// Exit codes
const (
	ExitCodeSuccess    = 0
	ExitCodeError      = 1
	ExitCodeUsageError = 2
	ExitCodeInputError = 4
)

// Error messages - ALL must be constants
const (
	ErrMsgUnknownCommand   = "unknown command"
	ErrMsgNoTemplates      = "at least one template file required"
	ErrMsgLoadConfigFailed = "failed to load plugin configuration"
	ErrMsgGenerateFailed   = "generation failed"
	ErrMsgLoggerFailed     = "failed to create logger"
)

// Output format strings
const (
	FmtErrorWithDetail = "%s: %s\n"
	FmtErrorWithCause  = "%s: %v\n"
	FmtGenerated       = "%s -> %s\n"
	FmtVersion         = "genfilter %s (%s)\n"
)

// Help text templates
const (
	HelpMainUsage = `go-genfilter - XML template generation with plugin extension points

Usage:
    genfilter <command> [options]

Commands:
    generate    Generate output files from template files
    output      Print the derived output path for template files
    version     Show version information
    help        Show help for a command

Use "genfilter help <command>" for more information about a command.`

	HelpGenerateUsage = `Generate output files from template files

Usage:
    genfilter generate [options] <template-file>...

Options:
    -c, --config <file>     Plugin configuration file (YAML)
    --namespace <uri>       Reserved extension namespace URI
    --marker <marker>       Template path marker (default: "_template.")
    -v, --verbose           Enable debug logging

Each template path must contain the marker; the output path is derived
by removing it, so "catalog_template.xml" generates "catalog.xml".

Examples:
    genfilter generate -c plugins.yaml build/catalog_template.xml
    genfilter generate --marker "_tmpl." build/catalog_tmpl.xml`

	HelpOutputUsage = `Print the derived output path for template files

Usage:
    genfilter output [options] <template-file>...

Options:
    --marker <marker>       Template path marker (default: "_template.")`

	HelpVersionUsage = `Show version information

Usage:
    genfilter version`

	HelpHelpUsage = `Show help for a command

Usage:
    genfilter help [command]`
)
