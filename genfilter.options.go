package genfilter

import (
	"go.uber.org/zap"
)

// Option is a functional option for configuring a Generator or Filter.
type Option func(*config)

// config holds the shared configuration of generators and filters.
type config struct {
	logger    *zap.Logger
	registry  *Registry
	namespace string
	marker    string
	separator string
}

// defaultConfig returns the default configuration.
func defaultConfig() *config {
	return &config{
		logger:    nil,
		registry:  nil,
		namespace: DefaultExtensionNamespace,
		marker:    DefaultTemplateMarker,
		separator: DefaultFeatureValueSeparator,
	}
}

// WithLogger sets the logger.
// Default: nil (no logging)
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithRegistry sets the action registry. Use this to supply a registry with
// custom actions pre-registered.
// Default: a fresh registry holding the built-in actions.
func WithRegistry(registry *Registry) Option {
	return func(c *config) {
		if registry != nil {
			c.registry = registry
		}
	}
}

// WithNamespace sets the reserved extension namespace URI.
// Default: DefaultExtensionNamespace
func WithNamespace(namespace string) Option {
	return func(c *config) {
		if namespace != "" {
			c.namespace = namespace
		}
	}
}

// WithTemplateMarker sets the literal path marker removed to derive output
// paths from template paths.
// Default: "_template."
func WithTemplateMarker(marker string) Option {
	return func(c *config) {
		if marker != "" {
			c.marker = marker
		}
	}
}

// WithFeatureValueSeparator sets the separator splitting attribute-extension
// data values into action input.
// Default: ","
func WithFeatureValueSeparator(separator string) Option {
	return func(c *config) {
		if separator != "" {
			c.separator = separator
		}
	}
}
