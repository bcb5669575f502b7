package genfilter

import (
	"bufio"
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Generator is the transform driver. It wires the document filter between the
// upstream parser and the downstream serializer and owns the input and output
// stream lifecycle for one template file at a time.
//
// A Generator is safe for use by concurrent goroutines as long as the feature
// and plugin tables it was given are not mutated.
type Generator struct {
	features  FeatureTable
	plugins   PluginTable
	registry  *Registry
	logger    *zap.Logger
	namespace string
	marker    string
	separator string
}

// NewGenerator creates a generator over the given plugin-contributed tables.
// Nil tables are treated as empty.
func NewGenerator(features FeatureTable, plugins PluginTable, opts ...Option) (*Generator, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	logger := cfg.logger
	if logger == nil {
		logger = zap.NewNop()
	}
	registry := cfg.registry
	if registry == nil {
		registry = NewRegistry(logger)
		RegisterBuiltinActions(registry)
	}
	if features == nil {
		features = FeatureTable{}
	}
	if plugins == nil {
		plugins = PluginTable{}
	}

	return &Generator{
		features:  features,
		plugins:   plugins,
		registry:  registry,
		logger:    logger,
		namespace: cfg.namespace,
		marker:    cfg.marker,
		separator: cfg.separator,
	}, nil
}

// MustNewGenerator creates a generator and panics if there's an error.
func MustNewGenerator(features FeatureTable, plugins PluginTable, opts ...Option) *Generator {
	gen, err := NewGenerator(features, plugins, opts...)
	if err != nil {
		panic(err)
	}
	return gen
}

// Registry returns the generator's action registry so callers can register
// custom actions.
func (g *Generator) Registry() *Registry {
	return g.registry
}

// OutputPath derives the output file path from a template file path by
// removing the template marker. The marker's final character is kept, so
// "catalog_template.xml" maps to "catalog.xml". A path without the marker is
// a configuration error.
func (g *Generator) OutputPath(templateFile string) (string, error) {
	i := strings.LastIndex(templateFile, g.marker)
	if i == -1 {
		return "", NewTemplateMarkerError(templateFile, g.marker)
	}
	return templateFile[:i] + templateFile[i+len(g.marker)-1:], nil
}

// Generate transforms one template file into its derived output file. The
// output is written to a temporary file in the target directory and renamed
// into place only on success, so a failed document never leaves a partial
// output file behind. Both streams are released on every exit path.
func (g *Generator) Generate(ctx context.Context, templateFile string) error {
	abs, err := filepath.Abs(templateFile)
	if err != nil {
		return NewIOError(ErrMsgResolvePath, templateFile, err)
	}

	outPath, err := g.OutputPath(abs)
	if err != nil {
		return err
	}

	logger := g.logger.With(
		zap.String(LogFieldRunID, uuid.NewString()),
		zap.String(LogFieldTemplate, abs),
	)
	logger.Debug(LogMsgGenerationStarted)

	in, err := os.Open(abs)
	if err != nil {
		return NewIOError(ErrMsgOpenInput, abs, err)
	}
	defer in.Close()

	tmp, err := os.CreateTemp(filepath.Dir(outPath), tempFilePattern)
	if err != nil {
		return NewIOError(ErrMsgCreateOutput, outPath, err)
	}

	if err := g.transform(ctx, in, tmp, abs, logger); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		logger.Error(LogMsgGenerationFailed, zap.Error(err))
		return err
	}

	if err := g.finalize(tmp, outPath); err != nil {
		logger.Error(LogMsgGenerationFailed, zap.Error(err))
		return err
	}

	logger.Info(LogMsgGenerationComplete, zap.String(LogFieldOutput, outPath))
	return nil
}

// transform runs the parser → filter → serializer pipeline.
func (g *Generator) transform(ctx context.Context, in *os.File, out *os.File, templateFile string, logger *zap.Logger) error {
	writer := NewWriter(out, out.Name())
	filter := newFilter(writer, templateFile, g.features, g.plugins, &config{
		logger:    logger,
		registry:  g.registry,
		namespace: g.namespace,
		marker:    g.marker,
		separator: g.separator,
	})
	reader := NewReader(bufio.NewReader(in), filter, logger)
	reader.SetSystemID(templateFile)
	return reader.Parse(ctx)
}

// finalize closes the temporary file and moves it into place with the
// expected permissions. The temporary file is removed on any failure.
func (g *Generator) finalize(tmp *os.File, outPath string) error {
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return NewIOError(ErrMsgCloseOutput, outPath, err)
	}
	if err := os.Chmod(tmp.Name(), outputFilePermissions); err != nil {
		os.Remove(tmp.Name())
		return NewIOError(ErrMsgCloseOutput, outPath, err)
	}
	if err := os.Rename(tmp.Name(), outPath); err != nil {
		os.Remove(tmp.Name())
		return NewIOError(ErrMsgRenameOutput, outPath, err)
	}
	return nil
}
