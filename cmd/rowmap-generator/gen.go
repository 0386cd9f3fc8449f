package main

import (
	"github.com/spf13/cobra"

	"rowmap-generator/internal/pipeline"
)

var (
	genWrapOptional bool
	genOutput       string
	genDryRun       bool
)

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate FromRow and TryFromRow for the configured structs",
	RunE: func(cmd *cobra.Command, args []string) error {
		mf, dir, err := loadMapping(cmd)
		if err != nil {
			return err
		}

		if genWrapOptional {
			if err := pipeline.WrapAll(mf, ""); err != nil {
				return err
			}
		}

		return generate(cmd, pipeline.Options{
			Dir:    dir,
			Output: firstNonEmpty(genOutput, env.Output),
			DryRun: genDryRun,
			Logger: logger,
		}, mf)
	},
}

func init() {
	addTargetFlags(genCmd)
	genCmd.Flags().BoolVar(&genWrapOptional, "wrap-optional", false,
		"generate an Optional<Name> copy of each struct with every field optional")
	genCmd.Flags().StringVar(&genOutput, "output", "", "output directory (default $ROWMAP_OUTPUT or the package directory)")
	genCmd.Flags().BoolVar(&genDryRun, "dry-run", false, "print generated files instead of writing them")
	rootCmd.AddCommand(genCmd)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
