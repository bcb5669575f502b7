package main

import (
	"context"
	"flag"
	"fmt"
	"io"

	"go.uber.org/zap"

	genfilter "github.com/itsatony/go-genfilter"
)

// generateConfig holds parsed generate command configuration
type generateConfig struct {
	configPath string
	namespace  string
	marker     string
	verbose    bool
	templates  []string
}

func runGenerate(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseGenerateFlags(args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgUnknownCommand, err)
		return ExitCodeUsageError
	}
	if len(cfg.templates) == 0 {
		fmt.Fprintln(stderr, ErrMsgNoTemplates)
		return ExitCodeUsageError
	}

	logger, err := newLogger(cfg.verbose)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgLoggerFailed, err)
		return ExitCodeError
	}
	defer logger.Sync()

	features := genfilter.FeatureTable{}
	plugins := genfilter.PluginTable{}
	namespace := cfg.namespace
	if cfg.configPath != "" {
		pluginCfg, err := genfilter.LoadPluginConfig(cfg.configPath)
		if err != nil {
			fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgLoadConfigFailed, err)
			return ExitCodeInputError
		}
		features = pluginCfg.FeatureTable()
		plugins = pluginCfg.PluginTable()
		if namespace == "" {
			namespace = pluginCfg.Namespace
		}
	}

	opts := []genfilter.Option{genfilter.WithLogger(logger)}
	if namespace != "" {
		opts = append(opts, genfilter.WithNamespace(namespace))
	}
	if cfg.marker != "" {
		opts = append(opts, genfilter.WithTemplateMarker(cfg.marker))
	}

	gen, err := genfilter.NewGenerator(features, plugins, opts...)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgGenerateFailed, err)
		return ExitCodeError
	}

	ctx := context.Background()
	for _, template := range cfg.templates {
		if err := gen.Generate(ctx, template); err != nil {
			fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgGenerateFailed, err)
			return ExitCodeError
		}
		outPath, _ := gen.OutputPath(template)
		fmt.Fprintf(stdout, FmtGenerated, template, outPath)
	}

	return ExitCodeSuccess
}

func runOutput(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseGenerateFlags(args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgUnknownCommand, err)
		return ExitCodeUsageError
	}
	if len(cfg.templates) == 0 {
		fmt.Fprintln(stderr, ErrMsgNoTemplates)
		return ExitCodeUsageError
	}

	opts := []genfilter.Option{}
	if cfg.marker != "" {
		opts = append(opts, genfilter.WithTemplateMarker(cfg.marker))
	}
	gen, err := genfilter.NewGenerator(nil, nil, opts...)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgGenerateFailed, err)
		return ExitCodeError
	}

	for _, template := range cfg.templates {
		outPath, err := gen.OutputPath(template)
		if err != nil {
			fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgGenerateFailed, err)
			return ExitCodeInputError
		}
		fmt.Fprintln(stdout, outPath)
	}

	return ExitCodeSuccess
}

func parseGenerateFlags(args []string) (*generateConfig, error) {
	fs := flag.NewFlagSet(CmdNameGenerate, flag.ContinueOnError)
	fs.SetOutput(io.Discard) // Suppress default error messages

	cfg := &generateConfig{}

	fs.StringVar(&cfg.configPath, FlagConfig, "", "")
	fs.StringVar(&cfg.configPath, FlagConfigShort, "", "")
	fs.StringVar(&cfg.namespace, FlagNamespace, "", "")
	fs.StringVar(&cfg.marker, FlagMarker, "", "")
	fs.BoolVar(&cfg.verbose, FlagVerbose, false, "")
	fs.BoolVar(&cfg.verbose, FlagVerboseShort, false, "")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg.templates = fs.Args()
	return cfg, nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewNop(), nil
}
