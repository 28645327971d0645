// Command skikt resolves a deployment configuration from a base document
// and an optional override manifest.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	skikt "github.com/0xalexb/skikt"
	"github.com/0xalexb/skikt/deployment"
	"github.com/0xalexb/skikt/logging"
	"github.com/0xalexb/skikt/schema"
)

const exitValidation = 2

var (
	flagBase      string
	flagManifest  string
	flagWorkDir   string
	flagLogLevel  string
	flagLogFormat string
)

var rootCmd = &cobra.Command{
	Use:           "skikt",
	Short:         "Deployment configuration resolver",
	Long:          "Resolve the final deployment configuration from a base document and an optional override manifest.",
	Version:       skikt.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve the deployment configuration",
	Long: `Resolve the deployment configuration.

Reads the base configuration document, locates the override manifest
(explicit --manifest path, the SKIKT_MANIFEST variable, or
deployment-manifest.yaml/.yml in the working directory), validates it,
and prints the resolved configuration as JSON on stdout. The change log
is written to stderr, one "path: old → new" line per applied override.

Exits 0 on success with or without a manifest, 2 on schema validation
failure with the full error report, and 1 on read or parse errors.`,
	RunE: runResolve,
}

func main() {
	rootCmd.AddCommand(resolveCmd)

	resolveCmd.Flags().StringVar(&flagBase, "base", "", "path to the base configuration JSON document (required)")
	resolveCmd.Flags().StringVar(&flagManifest, "manifest", "", "explicit override manifest path")
	resolveCmd.Flags().StringVar(&flagWorkDir, "workdir", "", "directory searched for the canonical manifest filenames")
	resolveCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "log level (debug, info, warn, error)")
	resolveCmd.Flags().StringVar(&flagLogFormat, "log-format", "text", "log format (text, json)")
	_ = resolveCmd.MarkFlagRequired("base")

	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, skikt.ErrManifestInvalid) {
			fmt.Fprintln(os.Stderr, "invalid override manifest:")
			fmt.Fprintln(os.Stderr, schema.Report(err))
			os.Exit(exitValidation)
		}

		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func runResolve(cmd *cobra.Command, _ []string) error {
	base, err := loadBase(flagBase)
	if err != nil {
		return err
	}

	logger := logging.NewLogger(logging.LoggerConfig{
		Level:  flagLogLevel,
		Format: flagLogFormat,
	}, cmd.ErrOrStderr())

	opts := []skikt.Option{
		skikt.WithWorkDir(flagWorkDir),
		skikt.WithLogger(logger),
	}
	if flagManifest != "" {
		opts = append(opts, skikt.WithManifestPath(flagManifest))
	}

	result, err := skikt.Resolve(base, opts...)
	if err != nil {
		return err
	}

	encoded, err := json.MarshalIndent(result.Config, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding resolved configuration: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(encoded))

	return nil
}

func loadBase(path string) (deployment.SystemConfig, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- operator-chosen path
	if err != nil {
		return deployment.SystemConfig{}, fmt.Errorf("reading base configuration: %w", err)
	}

	var base deployment.SystemConfig
	if err := json.Unmarshal(data, &base); err != nil {
		return deployment.SystemConfig{}, fmt.Errorf("parsing base configuration: %w", err)
	}

	return base, nil
}
