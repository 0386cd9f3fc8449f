package main

import (
	"github.com/spf13/cobra"

	"rowmap-generator/internal/pipeline"
)

var (
	wrapName   string
	wrapOutput string
	wrapDryRun bool
)

var wrapCmd = &cobra.Command{
	Use:   "wrap",
	Short: "Generate a copy of a struct with every field optional, and its mappers",
	Long: `wrap turns every field of the selected structs that is not already Option[...]
into Option[<type>] and generates the resulting struct together with its
FromRow and TryFromRow functions. The package must declare
type Option[T any] = rowmap.Option[T].`,
	RunE: func(cmd *cobra.Command, args []string) error {
		mf, dir, err := loadMapping(cmd)
		if err != nil {
			return err
		}

		if err := pipeline.WrapAll(mf, wrapName); err != nil {
			return err
		}

		return generate(cmd, pipeline.Options{
			Dir:    dir,
			Output: firstNonEmpty(wrapOutput, env.Output),
			DryRun: wrapDryRun,
			Logger: logger,
		}, mf)
	},
}

func init() {
	addTargetFlags(wrapCmd)
	wrapCmd.Flags().StringVar(&wrapName, "name", "", "name of the wrapped struct (default Optional<Name>)")
	wrapCmd.Flags().StringVar(&wrapOutput, "output", "", "output directory (default $ROWMAP_OUTPUT or the package directory)")
	wrapCmd.Flags().BoolVar(&wrapDryRun, "dry-run", false, "print generated files instead of writing them")
	rootCmd.AddCommand(wrapCmd)
}
