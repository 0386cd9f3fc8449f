package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"rowmap-generator/internal/mapping"
	"rowmap-generator/internal/pipeline"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a mapping file for the given packages and types",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(packagePatterns) == 0 || len(typeNames) == 0 {
			return errors.New("--package and --type are required")
		}

		path := cfgPath
		if path == "" {
			path = env.Config
		}

		if _, err := os.Stat(path); err == nil && !initForce {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}

		if err := mapping.WriteFile(pipeline.FromFlags(packagePatterns, typeNames), path); err != nil {
			return err
		}

		_, _ = fmt.Fprintln(cmd.OutOrStdout(), path)

		return nil
	},
}

func init() {
	addTargetFlags(initCmd)
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing mapping file")
	rootCmd.AddCommand(initCmd)
}
