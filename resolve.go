package skikt

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"go.uber.org/multierr"

	"github.com/0xalexb/skikt/deployment"
	"github.com/0xalexb/skikt/manifest"
	"github.com/0xalexb/skikt/merge"
	"github.com/0xalexb/skikt/schema"
)

// ErrManifestUnreadable is returned when a located override document
// cannot be read.
var ErrManifestUnreadable = errors.New("manifest unreadable")

// ErrManifestInvalid is returned when the override document fails schema
// validation. The full aggregated field-error list travels with it; unpack
// it with schema.FieldErrors or render it with schema.Report.
var ErrManifestInvalid = errors.New("manifest invalid")

// Fetcher reads the raw override document. The default implementation
// reads the file the locator found; substitute it to resolve from other
// sources in tests or embedders.
type Fetcher interface {
	Fetch() ([]byte, error)
}

// Parser parses raw override data into a Manifest.
type Parser interface {
	Parse(data []byte) (*manifest.Manifest, error)
}

type parserFunc func(data []byte) (*manifest.Manifest, error)

func (f parserFunc) Parse(data []byte) (*manifest.Manifest, error) {
	return f(data)
}

// Result is the outcome of a successful resolution.
type Result struct {
	// Config is the resolved configuration.
	Config deployment.SystemConfig

	// Changes is the ordered change log; empty when no override document
	// was found.
	Changes []merge.ChangeRecord

	// ManifestPath is the override document path, empty when none was
	// found or when a custom Fetcher supplied the data.
	ManifestPath string
}

// Resolve produces the final deployment configuration from the base plus
// an optional override document.
//
// When no override document exists the base is returned unchanged (as a
// deep copy) with an empty change log; that is the normal case, not an
// error. An unreadable document, malformed YAML, or any schema violation
// is fatal; validation failures carry the complete aggregated error list,
// never just the first violation.
func Resolve(base deployment.SystemConfig, opts ...Option) (Result, error) {
	var options Options

	for _, apply := range opts {
		apply(&options)
	}

	logger := options.Logger
	if logger == nil {
		logger = slog.Default()
	}

	raw, path, found, err := fetchManifest(&options)
	if err != nil {
		return Result{}, err
	}

	if !found {
		logger.Info("no override document found, using base configuration unchanged")

		return Result{Config: base.Clone(), Changes: nil, ManifestPath: ""}, nil
	}

	parser := options.Parser
	if parser == nil {
		parser = parserFunc(manifest.Parse)
	}

	doc, err := parser.Parse(raw)
	if err != nil {
		return Result{}, fmt.Errorf("parsing manifest %q: %w", path, err)
	}

	validationErr := schema.Validate(doc)
	if validationErr != nil {
		return Result{}, multierr.Append(ErrManifestInvalid, validationErr)
	}

	resolved, changes := merge.Merge(base, doc)

	for _, change := range changes {
		logger.Info("override applied",
			slog.String("path", change.Path),
			slog.Any("old", change.Old),
			slog.Any("new", change.New),
		)
	}

	logger.Info("configuration resolved",
		slog.String("manifest", path),
		slog.Int("changes", len(changes)),
	)

	return Result{Config: resolved, Changes: changes, ManifestPath: path}, nil
}

func fetchManifest(options *Options) (raw []byte, path string, found bool, err error) {
	if options.Fetcher != nil {
		raw, err = options.Fetcher.Fetch()
		if err != nil {
			return nil, "", false, fmt.Errorf("%w: %w", ErrManifestUnreadable, err)
		}

		return raw, "", true, nil
	}

	// An explicit path from the caller skips the locator entirely, so a
	// missing file surfaces as a read error instead of silently falling
	// back to the base configuration.
	if options.ManifestPath != "" {
		path = filepath.Clean(options.ManifestPath)
	} else {
		locator := manifest.Locator{WorkDir: options.WorkDir, LookupEnv: options.LookupEnv}

		var located bool

		path, located = locator.Locate()
		if !located {
			return nil, "", false, nil
		}
	}

	raw, err = os.ReadFile(path) // #nosec G304 -- path is cleaned and operator-chosen
	if err != nil {
		return nil, "", false, fmt.Errorf("%w: %s: %w", ErrManifestUnreadable, path, err)
	}

	return raw, path, true, nil
}
