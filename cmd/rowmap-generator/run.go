package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"rowmap-generator/internal/mapping"
	"rowmap-generator/internal/pipeline"
)

// generate runs the pipeline for gen and wrap and reports its outcome.
func generate(cmd *cobra.Command, opts pipeline.Options, mf *mapping.MappingFile) error {
	res, err := pipeline.Run(cmd.Context(), mf, opts)
	if res != nil {
		printDiagnostics(cmd.ErrOrStderr(), res.Diagnostics)
	}

	dumpMappers(cmd.ErrOrStderr(), res)

	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	for _, f := range res.Files {
		if opts.DryRun {
			_, _ = fmt.Fprintf(out, "// %s\n%s\n", f.Path(), f.File.Content)
			continue
		}

		_, _ = fmt.Fprintln(out, f.Path())
	}

	return nil
}
