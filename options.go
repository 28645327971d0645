package skikt

import "log/slog"

// Options holds configuration settings for a resolution call.
type Options struct {
	// ManifestPath is an explicit override document path. When set the
	// locator is skipped and the file must be readable.
	ManifestPath string

	// WorkDir is the directory searched for the canonical manifest
	// filenames. Empty means the current working directory.
	WorkDir string

	// LookupEnv is consulted for the manifest path variable.
	// Nil means os.LookupEnv.
	LookupEnv func(key string) (string, bool)

	// Fetcher, when set, supplies the raw override document and disables
	// the locator and filesystem read entirely.
	Fetcher Fetcher

	// Parser, when set, replaces the default strict YAML parser.
	Parser Parser

	// Logger receives the change log. Nil means slog.Default().
	Logger *slog.Logger
}

// Option defines a function type for applying resolution options.
type Option func(*Options)

// WithManifestPath sets an explicit override document path, taking
// priority over the locator's candidates.
func WithManifestPath(path string) Option {
	return func(opts *Options) {
		opts.ManifestPath = path
	}
}

// WithWorkDir sets the directory searched for the canonical manifest
// filenames.
func WithWorkDir(dir string) Option {
	return func(opts *Options) {
		opts.WorkDir = dir
	}
}

// WithLookupEnv replaces the environment lookup used by the locator.
func WithLookupEnv(lookup func(key string) (string, bool)) Option {
	return func(opts *Options) {
		opts.LookupEnv = lookup
	}
}

// WithFetcher supplies the raw override document from a custom source.
func WithFetcher(fetcher Fetcher) Option {
	return func(opts *Options) {
		opts.Fetcher = fetcher
	}
}

// WithParser replaces the default strict YAML parser.
func WithParser(parser Parser) Option {
	return func(opts *Options) {
		opts.Parser = parser
	}
}

// WithLogger sets the logger that receives the change log.
func WithLogger(logger *slog.Logger) Option {
	return func(opts *Options) {
		opts.Logger = logger
	}
}
