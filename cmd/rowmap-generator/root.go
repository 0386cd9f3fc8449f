package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"rowmap-generator/internal/config"
	"rowmap-generator/internal/diagnostic"
	"rowmap-generator/internal/mapping"
	"rowmap-generator/internal/pipeline"
)

var (
	cfgPath  string
	logLevel string
	debug    bool

	packagePatterns []string
	typeNames       []string

	env    config.Env
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "rowmap-generator",
	Short: "Generate row-to-struct mapping functions",
	Long: `rowmap-generator reads Go structs and their rowmap directives and generates,
for each struct, a FromRow function that never fails and a TryFromRow function.
Missing or undecodable columns fall back to the field's default value.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		env, err = config.FromEnv()
		if err != nil {
			return err
		}

		if !cmd.Flags().Changed("log-level") {
			logLevel = env.LogLevel
		}

		if debug {
			logLevel = "debug"
		}

		level, err := config.ParseLevel(logLevel)
		if err != nil {
			return err
		}

		logger = config.NewLogger(cmd.ErrOrStderr(), level)

		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "",
		"path to the YAML mapping file (default $ROWMAP_CONFIG or rowmap.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", config.DefaultLogLevel,
		"log level: debug, info, warn or error")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "debug logging and a dump of every compiled mapper")
}

// Execute runs the root command.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// addTargetFlags registers the flags selecting packages and structs.
func addTargetFlags(cmd *cobra.Command) {
	cmd.Flags().StringSliceVar(&packagePatterns, "package", nil,
		"package pattern to load; with no --config the mapping is built from flags")
	cmd.Flags().StringArrayVar(&typeNames, "type", nil, "struct to generate for (repeatable)")
}

// loadMapping returns the mapping to run and the directory its relative
// paths are resolved against. --package without --config builds the
// mapping from flags alone.
func loadMapping(cmd *cobra.Command) (*mapping.MappingFile, string, error) {
	if len(packagePatterns) > 0 && !cmd.Flags().Changed("config") {
		if len(typeNames) == 0 {
			return nil, "", errors.New("--type is required with --package")
		}

		return pipeline.FromFlags(packagePatterns, typeNames), "", nil
	}

	path := cfgPath
	if path == "" {
		path = env.Config
	}

	mf, err := mapping.LoadFile(path)
	if err != nil {
		return nil, "", err
	}

	logger.Debug("loaded mapping", slog.String("path", path), slog.Int("targets", len(mf.Targets)))

	dir := filepath.Dir(path)
	if len(packagePatterns) > 0 {
		// Command-line patterns are relative to the working directory.
		mf.Packages = packagePatterns
		dir = ""
	}

	return pipeline.Select(mf, typeNames...), dir, nil
}

func printDiagnostics(w io.Writer, diags diagnostic.Diagnostics) {
	for _, d := range diags.All() {
		_, _ = fmt.Fprintf(w, "%s: %s\n", d.Severity, d)
	}
}

func dumpMappers(w io.Writer, res *pipeline.Result) {
	if !debug || res == nil {
		return
	}

	cfg := spew.ConfigState{Indent: "  ", MaxDepth: 5, DisablePointerAddresses: true, SortKeys: true}
	for _, c := range res.Mappers {
		_, _ = fmt.Fprintf(w, "=== %s (%s) ===\n", c.Mapper.Struct.Name, c.Package.Path)
		cfg.Fdump(w, c.Mapper)
	}
}
