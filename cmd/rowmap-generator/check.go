package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"rowmap-generator/internal/pipeline"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the mapping and the capabilities generated code relies on",
	RunE: func(cmd *cobra.Command, args []string) error {
		mf, dir, err := loadMapping(cmd)
		if err != nil {
			return err
		}

		res, err := pipeline.Check(cmd.Context(), mf, pipeline.Options{Dir: dir, Logger: logger})
		if res != nil {
			printDiagnostics(cmd.OutOrStdout(), res.Diagnostics)
		}

		dumpMappers(cmd.ErrOrStderr(), res)

		if err != nil {
			return err
		}

		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "ok: %d mappers\n", len(res.Mappers))

		return nil
	},
}

func init() {
	addTargetFlags(checkCmd)
	rootCmd.AddCommand(checkCmd)
}
